package cli

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"

	"github.com/fileman-cli/fileman/internal/errors"
	"github.com/fileman-cli/fileman/internal/sysinfo"
)

// Hash streams the file through a SHA-256 digest and prints the lowercase
// hex string once the stream ends. Nothing is printed on a mid-stream error.
func (s Service) Hash(args []string) error {
	if len(args) < 1 {
		return errors.New("hash requires a source path")
	}
	source := s.cursor.Resolve(args[0])

	file, err := s.FileSystem.Open(source)
	if err != nil {
		return err
	}
	defer file.Close()

	digest := sha256.New()
	if _, err := io.Copy(digest, file); err != nil {
		return errors.Wrapf(err, "unable to hash %q", source)
	}

	fmt.Fprintf(s.Stdout, "%x\n", digest.Sum(nil))
	return nil
}

// Compress streams the source through a Brotli encoder straight into the
// destination file, single pass.
func (s Service) Compress(args []string) error {
	if len(args) < 2 {
		return errors.New("compress requires a source and a destination")
	}
	source := s.cursor.Resolve(args[0])
	destination := s.cursor.Resolve(args[1])

	src, err := s.FileSystem.Open(source)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := s.FileSystem.Create(destination)
	if err != nil {
		return err
	}

	encoder := brotli.NewWriter(dst)
	if _, err := io.Copy(encoder, src); err != nil {
		encoder.Close()
		dst.Close()
		return errors.Wrapf(err, "unable to compress %q", source)
	}
	if err := encoder.Close(); err != nil {
		dst.Close()
		return errors.Wrapf(err, "unable to finish compressing %q", source)
	}

	return dst.Close()
}

// Decompress mirrors Compress; a source that is not valid Brotli fails.
func (s Service) Decompress(args []string) error {
	if len(args) < 2 {
		return errors.New("decompress requires a source and a destination")
	}
	source := s.cursor.Resolve(args[0])
	destination := s.cursor.Resolve(args[1])

	src, err := s.FileSystem.Open(source)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := s.FileSystem.Create(destination)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, brotli.NewReader(src)); err != nil {
		dst.Close()
		return errors.Wrapf(err, "unable to decompress %q", source)
	}

	return dst.Close()
}

// SystemInfo handles the `os` command; an unknown sub-flag is invalid input.
func (s Service) SystemInfo(args []string) error {
	if len(args) < 1 {
		return errors.Wrap(errors.ErrInvalidInput, "os requires a flag")
	}

	report, err := sysinfo.Report(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(s.Stdout, report)
	return nil
}
