package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalFileSystem(t *testing.T) {
	fs := NewLocalFileSystem()
	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "test.txt")
	content := []byte("Hello, World!")
	if err := os.WriteFile(testFile, content, 0644); err != nil {
		t.Fatal(err)
	}

	// Test FileExists
	exists, err := fs.FileExists(testFile)
	if err != nil {
		t.Errorf("FileExists failed: %v", err)
	}
	if !exists {
		t.Error("File should exist")
	}

	exists, err = fs.FileExists(filepath.Join(tempDir, "missing.txt"))
	if err != nil {
		t.Errorf("FileExists failed: %v", err)
	}
	if exists {
		t.Error("Missing file should not exist")
	}

	// Test ReadFile
	readContent, err := fs.ReadFile(testFile)
	if err != nil {
		t.Errorf("ReadFile failed: %v", err)
	}
	if string(readContent) != string(content) {
		t.Errorf("Expected %s, got %s", content, readContent)
	}

	// Test FileSize
	size, err := fs.FileSize(testFile)
	if err != nil {
		t.Errorf("FileSize failed: %v", err)
	}
	if size != int64(len(content)) {
		t.Errorf("Expected size %d, got %d", len(content), size)
	}

	// Test IsFile / IsDirectory
	isFile, err := fs.IsFile(testFile)
	if err != nil {
		t.Errorf("IsFile failed: %v", err)
	}
	if !isFile {
		t.Error("Expected a regular file")
	}

	isFile, err = fs.IsFile(tempDir)
	if err != nil {
		t.Errorf("IsFile failed: %v", err)
	}
	if isFile {
		t.Error("A directory is not a regular file")
	}

	isDir, err := fs.IsDirectory(tempDir)
	if err != nil {
		t.Errorf("IsDirectory failed: %v", err)
	}
	if !isDir {
		t.Error("Expected a directory")
	}
}

func TestReadFileErrors(t *testing.T) {
	fs := NewLocalFileSystem()

	if _, err := fs.ReadFile(""); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Expected ErrInvalidPath, got %v", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.txt")
	if _, err := fs.ReadFile(missing); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}
