package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File stores the document in a file on disk.
//
// Writes go to a temporary file in the same directory which then replaces
// the document, so a crash never leaves a partially written document.
type File struct {
	Path string
}

// NewFile returns a file backend at path and creates its directory.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}
	return &File{Path: path}, nil
}

func (f *File) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	if len(data) == 0 {
		return nil, ErrNotFound
	}
	return data, nil
}

func (f *File) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), "."+filepath.Base(f.Path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}

	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}
	return nil
}
