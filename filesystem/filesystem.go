// Package filesystem is the file access collaborator of the HTTP engine:
// existence checks and whole-file reads, behind an interface so tests and
// embedders can substitute their own.
package filesystem

import (
	"fmt"
	"os"
)

var (
	ErrFileNotFound = fmt.Errorf("filesystem: file not found")
	ErrInvalidPath  = fmt.Errorf("filesystem: invalid path")
)

type Filesystem interface {
	ReadFile(path string) ([]byte, error)

	FileExists(path string) (bool, error)
	FileSize(path string) (int64, error)

	IsFile(path string) (bool, error)
	IsDirectory(path string) (bool, error)
}

type localFileSystem struct {
}

func NewLocalFileSystem() Filesystem {
	return &localFileSystem{}
}

// ReadFile implements Filesystem.
func (filesystem *localFileSystem) ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}

	exists, err := filesystem.FileExists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	return os.ReadFile(path)
}

// FileExists implements Filesystem. It reports whether any filesystem
// entry exists at path, regular file or not.
func (filesystem *localFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// FileSize implements Filesystem.
func (filesystem *localFileSystem) FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}

		return 0, err
	}

	return info.Size(), nil
}

// IsFile implements Filesystem. A missing path is not an error; it is
// simply not a file.
func (filesystem *localFileSystem) IsFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return info.Mode().IsRegular(), nil
}

// IsDirectory implements Filesystem.
func (filesystem *localFileSystem) IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return info.IsDir(), nil
}
