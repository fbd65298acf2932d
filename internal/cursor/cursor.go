package cursor

import (
	"path/filepath"

	"github.com/fileman-cli/fileman/internal/errors"
	"github.com/fileman-cli/fileman/internal/fs"
)

// FileSystem is the slice of the filesystem the cursor needs to validate
// navigation targets.
type FileSystem interface {
	Stat(name string) (fs.DirEntry, error)
}

// Cursor holds the one mutable current-directory value of a session. The
// path is absolute and pointed at an existing directory when it is set; it
// is never re-validated afterwards.
type Cursor struct {
	fileSystem FileSystem
	path       string
}

func New(fileSystem FileSystem, start string) (*Cursor, error) {
	if fileSystem == nil {
		return nil, errors.New("missing file-system interface")
	}

	if !filepath.IsAbs(start) {
		return nil, errors.Errorf("%q is not an absolute path", start)
	}

	start = filepath.Clean(start)

	entry, err := fileSystem.Stat(start)
	if err != nil {
		return nil, err
	}
	if !entry.IsDir() {
		return nil, errors.Errorf("%q is not a directory", start)
	}

	return &Cursor{fileSystem: fileSystem, path: start}, nil
}

func (c *Cursor) Location() string {
	return c.path
}

// Up moves to the parent directory. At a filesystem root the parent is the
// root itself, so this never fails.
func (c *Cursor) Up() {
	c.path = filepath.Dir(c.path)
}

// Enter resolves target against the current path and adopts it if it is an
// existing directory; otherwise the cursor is left unchanged. The stat
// happens before the assignment, so the target can disappear in between;
// that race is accepted.
func (c *Cursor) Enter(target string) error {
	resolved := c.Resolve(target)

	entry, err := c.fileSystem.Stat(resolved)
	if err != nil {
		return err
	}
	if !entry.IsDir() {
		return errors.Errorf("%q is not a directory", resolved)
	}

	c.path = resolved
	return nil
}

// Resolve joins a relative argument onto the current path; absolute
// arguments pass through cleaned. Resolve never mutates the cursor.
func (c *Cursor) Resolve(argument string) string {
	if filepath.IsAbs(argument) {
		return filepath.Clean(argument)
	}

	return filepath.Join(c.path, argument)
}
