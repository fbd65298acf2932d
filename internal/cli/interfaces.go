package cli

import (
	"github.com/fileman-cli/fileman/internal/fs"
)

type FileSystem interface {
	Create(name string) (fs.File, error)
	CreateNew(name string) (fs.File, error)
	Open(name string) (fs.File, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Mkdir(name string) error
	Rename(oldName, newName string) error
	Remove(name string) error
	Stat(name string) (fs.DirEntry, error)
	Exists(name string) (bool, error)
	HomeDir() (string, error)
}
