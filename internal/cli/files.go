package cli

import (
	"io"
	"path/filepath"

	"github.com/fileman-cli/fileman/internal/errors"
)

// Read streams the file contents to the output as they arrive. A mid-stream
// error aborts the output that has already been partially written.
func (s Service) Read(args []string) error {
	if len(args) < 1 {
		return errors.New("cat requires a source path")
	}
	source := s.cursor.Resolve(args[0])

	entry, err := s.FileSystem.Stat(source)
	if err != nil {
		return err
	}
	if entry.IsDir() {
		return errors.Errorf("%q is a directory", source)
	}

	file, err := s.FileSystem.Open(source)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := io.Copy(s.Stdout, file); err != nil {
		return errors.Wrapf(err, "unable to read %q", source)
	}

	return nil
}

// CreateFile creates an empty file. A pre-existing target is a failure, not
// an overwrite.
func (s Service) CreateFile(args []string) error {
	if len(args) < 1 {
		return errors.New("add requires a file name")
	}

	file, err := s.FileSystem.CreateNew(s.cursor.Resolve(args[0]))
	if err != nil {
		return err
	}

	return file.Close()
}

func (s Service) MakeDirectory(args []string) error {
	if len(args) < 1 {
		return errors.New("mkdir requires a directory name")
	}

	return s.FileSystem.Mkdir(s.cursor.Resolve(args[0]))
}

// Rename applies the new name within the parent directory of the old path;
// the new name is never resolved against the cursor.
func (s Service) Rename(args []string) error {
	if len(args) < 2 {
		return errors.New("rn requires a path and a new name")
	}

	oldPath := s.cursor.Resolve(args[0])
	newPath := filepath.Join(filepath.Dir(oldPath), args[1])

	exists, err := s.FileSystem.Exists(newPath)
	if err != nil {
		return err
	}
	if exists {
		return errors.Errorf("%q already exists", newPath)
	}

	return s.FileSystem.Rename(oldPath, newPath)
}

// Copy streams the source file into the destination directory under the
// source's base name, silently overwriting an existing target.
func (s Service) Copy(args []string) error {
	if len(args) < 2 {
		return errors.New("cp requires a source and a destination directory")
	}

	source := s.cursor.Resolve(args[0])
	destination := s.cursor.Resolve(args[1])

	entry, err := s.FileSystem.Stat(destination)
	if err != nil {
		return err
	}
	if !entry.IsDir() {
		return errors.Errorf("%q is not a directory", destination)
	}

	return s.copyFile(source, filepath.Join(destination, filepath.Base(source)))
}

// Move is copy-then-delete: the source is only removed after the copy fully
// succeeded. A deletion failure after a successful copy leaves the file at
// both locations and still surfaces as a failure.
func (s Service) Move(args []string) error {
	if len(args) < 2 {
		return errors.New("mv requires a source and a destination directory")
	}

	source := s.cursor.Resolve(args[0])
	destination := s.cursor.Resolve(args[1])

	entry, err := s.FileSystem.Stat(destination)
	if err != nil {
		return err
	}
	if !entry.IsDir() {
		return errors.Errorf("%q is not a directory", destination)
	}

	if err := s.copyFile(source, filepath.Join(destination, filepath.Base(source))); err != nil {
		return err
	}

	if err := s.FileSystem.Remove(source); err != nil {
		return errors.Wrap(err, "copy succeeded but the source could not be removed")
	}

	return nil
}

// Remove deletes a single file; directories are refused.
func (s Service) Remove(args []string) error {
	if len(args) < 1 {
		return errors.New("rm requires a path")
	}
	path := s.cursor.Resolve(args[0])

	entry, err := s.FileSystem.Stat(path)
	if err != nil {
		return err
	}
	if entry.IsDir() {
		return errors.Errorf("%q is a directory", path)
	}

	return s.FileSystem.Remove(path)
}

func (s Service) copyFile(source, destination string) error {
	// Creating the destination truncates it, so copying a file onto itself
	// would destroy it before a single byte is read.
	if destination == source {
		return errors.Errorf("%q and %q are the same file", source, destination)
	}

	entry, err := s.FileSystem.Stat(source)
	if err != nil {
		return err
	}
	if entry.IsDir() {
		return errors.Errorf("%q is a directory", source)
	}

	src, err := s.FileSystem.Open(source)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := s.FileSystem.Create(destination)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		// A partial destination file stays behind; there is no cleanup.
		return errors.Wrapf(err, "unable to copy %q", source)
	}

	return dst.Close()
}
