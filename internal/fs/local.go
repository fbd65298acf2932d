package fs

import (
	"os"

	"github.com/fileman-cli/fileman/internal/errors"
)

type Local struct{}

func (l Local) Create(name string) (File, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to create %q", name)
	}

	return fd, nil
}

// CreateNew creates a file with exclusive-create semantics; a pre-existing
// file at name is an error, never an overwrite.
func (l Local) CreateNew(name string) (File, error) {
	fd, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to create %q", name)
	}

	return fd, nil
}

func (l Local) Open(name string) (File, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %q", name)
	}

	return fd, nil
}

func (l Local) ReadDir(name string) ([]DirEntry, error) {
	files, err := os.ReadDir(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %q", name)
	}

	entries := make([]DirEntry, len(files))
	for i, file := range files {
		entries[i] = file
	}

	return entries, nil
}

// Mkdir is non-recursive; the parent directory has to exist already.
func (l Local) Mkdir(name string) error {
	if err := os.Mkdir(name, 0o755); err != nil {
		return errors.Wrapf(err, "unable to create directory %q", name)
	}

	return nil
}

func (l Local) Rename(oldName, newName string) error {
	if err := os.Rename(oldName, newName); err != nil {
		return errors.Wrapf(err, "unable to rename %q", oldName)
	}

	return nil
}

func (l Local) Remove(name string) error {
	if err := os.Remove(name); err != nil {
		return errors.Wrapf(err, "unable to remove %q", name)
	}

	return nil
}

func (l Local) Stat(name string) (DirEntry, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to stat %q", name)
	}

	return info, nil
}

func (l Local) Exists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (l Local) HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to determine the home directory")
	}

	return home, nil
}
