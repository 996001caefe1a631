package system

import "os"

// FileSystemManager defines the interface for file system operations.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, perms os.FileMode) error
	GetPermissions(path string) (os.FileMode, error)
}
