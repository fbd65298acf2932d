package mocks

import (
	"github.com/pkg/errors"

	"github.com/fileman-cli/fileman/internal/fs"
)

type FileSystem struct {
	MockCreate    func(name string) (fs.File, error)
	MockCreateNew func(name string) (fs.File, error)
	MockOpen      func(name string) (fs.File, error)
	MockReadDir   func(name string) ([]fs.DirEntry, error)
	MockMkdir     func(name string) error
	MockRename    func(oldName, newName string) error
	MockRemove    func(name string) error
	MockStat      func(name string) (fs.DirEntry, error)
	MockExists    func(name string) (bool, error)
	MockHomeDir   func() (string, error)
}

func (f *FileSystem) Create(name string) (fs.File, error) {
	if f.MockCreate != nil {
		return f.MockCreate(name)
	}

	return nil, errors.New("MockCreate was not configured")
}

func (f *FileSystem) CreateNew(name string) (fs.File, error) {
	if f.MockCreateNew != nil {
		return f.MockCreateNew(name)
	}

	return nil, errors.New("MockCreateNew was not configured")
}

func (f *FileSystem) Open(name string) (fs.File, error) {
	if f.MockOpen != nil {
		return f.MockOpen(name)
	}

	return nil, errors.New("MockOpen was not configured")
}

func (f *FileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	if f.MockReadDir != nil {
		return f.MockReadDir(name)
	}

	return nil, errors.New("MockReadDir was not configured")
}

func (f *FileSystem) Mkdir(name string) error {
	if f.MockMkdir != nil {
		return f.MockMkdir(name)
	}

	return errors.New("MockMkdir was not configured")
}

func (f *FileSystem) Rename(oldName, newName string) error {
	if f.MockRename != nil {
		return f.MockRename(oldName, newName)
	}

	return errors.New("MockRename was not configured")
}

func (f *FileSystem) Remove(name string) error {
	if f.MockRemove != nil {
		return f.MockRemove(name)
	}

	return errors.New("MockRemove was not configured")
}

func (f *FileSystem) Stat(name string) (fs.DirEntry, error) {
	if f.MockStat != nil {
		return f.MockStat(name)
	}

	return nil, errors.New("MockStat was not configured")
}

func (f *FileSystem) Exists(name string) (bool, error) {
	if f.MockExists != nil {
		return f.MockExists(name)
	}

	return false, errors.New("MockExists was not configured")
}

func (f *FileSystem) HomeDir() (string, error) {
	if f.MockHomeDir != nil {
		return f.MockHomeDir()
	}

	return "", errors.New("MockHomeDir was not configured")
}
