package domain

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// FileHandle is a selected document. Content is only read when the request
// is sent.
type FileHandle interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// PathFile is a document on the local filesystem.
type PathFile struct {
	Path string
}

func (f PathFile) Name() string { return filepath.Base(f.Path) }

func (f PathFile) Open() (io.ReadCloser, error) { return os.Open(f.Path) }

// MemoryFile is a document already held in memory.
type MemoryFile struct {
	Filename string
	Data     []byte
}

func (f MemoryFile) Name() string { return f.Filename }

func (f MemoryFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.Data)), nil
}

// FromFileHeader copies an uploaded multipart file into memory. The server
// removes multipart temp files once the request ends, so selections that
// outlive the request must hold their own copy.
func FromFileHeader(fh *multipart.FileHeader) (MemoryFile, error) {
	f, err := fh.Open()
	if err != nil {
		return MemoryFile{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return MemoryFile{}, err
	}
	return MemoryFile{Filename: fh.Filename, Data: data}, nil
}

// PathFiles wraps each path in a PathFile, keeping order.
func PathFiles(paths ...string) []FileHandle {
	out := make([]FileHandle, len(paths))
	for i, p := range paths {
		out[i] = PathFile{Path: p}
	}
	return out
}
