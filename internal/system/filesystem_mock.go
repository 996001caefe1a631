package system

import (
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// MockFileSystem keeps files in memory and implements FileSystemManager.
// ReadErrors and WriteErrors inject failures for specific paths.
type MockFileSystem struct {
	mu          sync.Mutex
	Files       map[string][]byte
	Perms       map[string]os.FileMode
	ReadErrors  map[string]error
	WriteErrors map[string]error
	// Writes counts WriteFile calls per path
	Writes map[string]int
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:       make(map[string][]byte),
		Perms:       make(map[string]os.FileMode),
		ReadErrors:  make(map[string]error),
		WriteErrors: make(map[string]error),
		Writes:      make(map[string]int),
	}
}

// AddFile seeds the mock with a file.
func (m *MockFileSystem) AddFile(path, content string, perms os.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Files[path] = []byte(content)
	m.Perms[path] = perms
}

// ReadFile returns the stored content or fs.ErrNotExist.
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.ReadErrors[path]; ok {
		return nil, err
	}
	content, ok := m.Files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), content...), nil
}

// WriteFile captures the content that would be written to a file.
func (m *MockFileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.WriteErrors[path]; ok {
		return err
	}
	m.Files[path] = append([]byte(nil), content...)
	m.Perms[path] = perms
	m.Writes[path]++
	return nil
}

// GetPermissions returns the stored permissions.
func (m *MockFileSystem) GetPermissions(path string) (os.FileMode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	perms, ok := m.Perms[path]
	if !ok {
		return 0, fmt.Errorf("failed to stat %s: %w", path, fs.ErrNotExist)
	}
	return perms, nil
}

// Content returns the current content of a file as a string.
func (m *MockFileSystem) Content(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.Files[path])
}
