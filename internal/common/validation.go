package common

import (
	"fmt"
	"strings"
)

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateTargetPath validates one entry of the target file list.
// Glob patterns are rejected: targets are exact paths, never discovered.
func ValidateTargetPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("target path cannot be empty")
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("target path contains a NUL byte: %q", path)
	}
	if strings.ContainsAny(path, "*?[") {
		return fmt.Errorf("target path must not be a glob pattern: %s", path)
	}
	if strings.HasSuffix(path, "/") {
		return fmt.Errorf("target path must name a file, not a directory: %s", path)
	}
	return nil
}

// ValidateTargetList validates a comma-separated target file list
func ValidateTargetList(list string) error {
	if err := ValidateNotEmpty(list); err != nil {
		return fmt.Errorf("target list cannot be empty")
	}

	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if err := ValidateTargetPath(entry); err != nil {
			return err
		}
	}
	return nil
}

// ValidateBaseDir validates the base directory setting
func ValidateBaseDir(dir string) error {
	if err := ValidateNotEmpty(dir); err != nil {
		return fmt.Errorf("base directory cannot be empty")
	}
	if strings.ContainsRune(dir, 0) {
		return fmt.Errorf("base directory contains a NUL byte: %q", dir)
	}
	return nil
}
