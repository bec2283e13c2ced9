package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

// Saver stores a named file somewhere the user can find it
type Saver interface {
	Save(name string, content []byte) (string, error)
}

// FileSaver writes files into a directory, replacing any file of the same name
type FileSaver struct {
	Dir string
}

// NewFileSaver creates a saver for dir
func NewFileSaver(dir string) *FileSaver {
	return &FileSaver{Dir: dir}
}

// Save writes content to Dir/name and returns the written path
func (s *FileSaver) Save(name string, content []byte) (string, error) {
	path := filepath.Join(s.Dir, name)
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return path, fmt.Errorf("failed to create download directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return path, err
	}
	return path, nil
}
