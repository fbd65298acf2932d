package cli

import (
	"io"

	"github.com/pkg/errors"
)

type Config struct {
	FileSystem FileSystem
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Username   string
	Debug      bool

	// WorkingDirectory overrides the initial cursor location. When empty,
	// the session starts in the host's home directory.
	WorkingDirectory string
}

func (c Config) Validate() error {
	if c.FileSystem == nil {
		return errors.New("missing file-system interface")
	}

	if c.Stdin == nil {
		return errors.New("missing input stream")
	}

	if c.Stdout == nil {
		return errors.New("missing output stream")
	}

	if c.Stderr == nil {
		return errors.New("missing error stream")
	}

	if c.Username == "" {
		return errors.New("missing username")
	}

	return nil
}
