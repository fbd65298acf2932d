package fs

import "io"

type FileSystem interface {
	Create(name string) (File, error)
	CreateNew(name string) (File, error)
	Open(name string) (File, error)
	ReadDir(name string) ([]DirEntry, error)
	Mkdir(name string) error
	Rename(oldName, newName string) error
	Remove(name string) error
	Stat(name string) (DirEntry, error)
	Exists(name string) (bool, error)
	HomeDir() (string, error)
}

type File interface {
	io.Reader
	io.Writer
	io.Closer
}

type DirEntry interface {
	Name() string
	IsDir() bool
}
