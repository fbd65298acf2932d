package mocks

import (
	"bytes"
	"io"
)

type File struct {
	*bytes.Buffer
}

func NewFile(content string) *File {
	file := new(File)
	file.Buffer = bytes.NewBufferString(content)
	return file
}

func (f *File) Close() error {
	return nil
}

// BrokenFile yields its content and then fails instead of signalling a clean
// end of stream, standing in for a transfer that breaks mid-stream.
//
// The wrapped File must stay unembedded: embedding would promote
// bytes.Buffer's WriteTo, letting io.Copy bypass Read and never see Err.
type BrokenFile struct {
	file *File
	Err  error
}

func NewBrokenFile(content string, err error) *BrokenFile {
	return &BrokenFile{file: NewFile(content), Err: err}
}

func (f *BrokenFile) Read(p []byte) (int, error) {
	n, err := f.file.Read(p)
	if err == io.EOF {
		err = f.Err
	}
	return n, err
}

func (f *BrokenFile) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

func (f *BrokenFile) Close() error {
	return f.file.Close()
}
