// Package config manages the optional fix-templates configuration file: a
// key=value file naming the files to patch and the directory they live in.
// Access is thread-safe and saves are atomic.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Config manages fix-templates configuration with thread-safe operations
type Config struct {
	filePath string
	data     map[string]string
	loaded   bool // Track if configuration has been loaded from disk
	mu       sync.Mutex
}

// ensureLoaded loads configuration data from disk once before read operations.
// This method must only be called while holding c.mu.Lock.
func (c *Config) ensureLoaded() error {
	if c.loaded {
		return nil
	}
	return c.Load()
}

// New creates a new Config instance. An empty filePath selects
// DefaultFileName in the working directory.
func New(filePath string) *Config {
	if filePath == "" {
		filePath = DefaultFileName
	}

	return &Config{
		filePath: filePath,
		data:     make(map[string]string),
	}
}

// Load reads configuration from file
func (c *Config) Load() error {
	// If file doesn't exist, that's okay - we'll create it on Save
	if _, err := os.Stat(c.filePath); os.IsNotExist(err) {
		c.loaded = true
		return nil
	}

	file, err := os.Open(c.filePath)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse key=value
		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			c.data[key] = value
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	c.loaded = true
	return nil
}

// Save writes configuration to file using atomic write pattern
func (c *Config) Save() error {
	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create temporary file in the same directory for atomic rename
	tmpFile, err := os.CreateTemp(dir, ".fix-templates.conf.tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // Cleanup on error

	if err := tmpFile.Chmod(0644); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	fmt.Fprintln(tmpFile, "# fix-templates configuration")
	fmt.Fprintf(tmpFile, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintln(tmpFile, "")

	// Sorted so the file diffs cleanly
	keys := make([]string, 0, len(c.data))
	for key := range c.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(tmpFile, "%s=%s\n", key, c.data[key])
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	// Explicitly check close error to prevent data loss
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, c.filePath); err != nil {
		return fmt.Errorf("failed to rename temp file to config: %w", err)
	}

	return nil
}

// Get retrieves a configuration value (thread-safe)
func (c *Config) Get(key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	value, exists := c.data[key]
	if !exists {
		return "", fmt.Errorf("config key not found: %s", key)
	}
	return value, nil
}

// GetOrDefault retrieves a value or returns default if not found (thread-safe)
// First checks the config, then the Defaults table, then the provided fallback
func (c *Config) GetOrDefault(key, defaultValue string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return defaultValue
	}
	if value, exists := c.data[key]; exists {
		return value
	}
	if tableDefault, exists := Defaults[key]; exists {
		return tableDefault
	}
	return defaultValue
}

// Set sets a configuration value and saves the file (thread-safe)
func (c *Config) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Load existing configuration first to avoid overwriting
	if err := c.ensureLoaded(); err != nil {
		return fmt.Errorf("failed to load existing config before set: %w", err)
	}

	c.data[key] = value
	return c.Save()
}

// Exists checks if a key exists (thread-safe)
func (c *Config) Exists(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return false
	}
	_, exists := c.data[key]
	return exists
}

// GetAll returns all configuration data (thread-safe)
func (c *Config) GetAll() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return map[string]string{}
	}
	// Return a copy to prevent external modification
	result := make(map[string]string, len(c.data))
	for k, v := range c.data {
		result[k] = v
	}
	return result
}

// Delete removes a configuration key and saves the file (thread-safe)
func (c *Config) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return fmt.Errorf("failed to load existing config before delete: %w", err)
	}

	delete(c.data, key)
	return c.Save()
}

// FilePath returns the configuration file path
func (c *Config) FilePath() string {
	return c.filePath
}

// TargetFiles returns the TARGET_FILES list, or defaults when the key is
// unset or empty. Entries are trimmed and empty entries dropped.
func (c *Config) TargetFiles(defaults []string) []string {
	raw := c.GetOrDefault(KeyTargetFiles, "")
	files := ParseList(raw)
	if len(files) == 0 {
		return append([]string(nil), defaults...)
	}
	return files
}

// ParseList splits a comma-separated value into trimmed, non-empty entries
func ParseList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
