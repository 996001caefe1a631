package system

import (
	"fmt"
	"os"
)

// DefaultFilePerms is used when the permissions of an existing file cannot be read
const DefaultFilePerms os.FileMode = 0644

// FileSystem handles file system operations
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// ReadFile reads the whole file into memory
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	return os.ReadFile(path)
}

// WriteFile overwrites a file in place. The write is not atomic: a crash
// mid-write can leave the file truncated.
func (fs *FileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perms)
	if err != nil {
		return err
	}

	if _, err := file.Write(content); err != nil {
		file.Close()
		return err
	}

	// Explicitly check close error to prevent data loss
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}

// GetPermissions returns the permissions of a file or directory
func (fs *FileSystem) GetPermissions(path string) (os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info.Mode().Perm(), nil
}
