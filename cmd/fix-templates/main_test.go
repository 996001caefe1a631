package main

import (
	"os"
	"path/filepath"
	"testing"
)

// setFlags points the command flags at a temp config and base directory and
// restores them when the test ends.
func setFlags(t *testing.T, dir string) string {
	t.Helper()

	saved := []interface{}{configPath, baseDir, noColor, nonInteractive, confirm}
	t.Cleanup(func() {
		configPath = saved[0].(string)
		baseDir = saved[1].(string)
		noColor = saved[2].(bool)
		nonInteractive = saved[3].(bool)
		confirm = saved[4].(bool)
	})

	configPath = filepath.Join(t.TempDir(), "test.conf")
	baseDir = dir
	noColor = true
	nonInteractive = false
	confirm = false
	return configPath
}

func TestRunFixMissingTargetsExitsCleanly(t *testing.T) {
	// None of the default targets exist under an empty directory
	setFlags(t, t.TempDir())

	if err := runFix(rootCmd, nil); err != nil {
		t.Errorf("runFix() error = %v, want nil when individual files fail", err)
	}
}

func TestRunFixPatchesExistingTarget(t *testing.T) {
	dir := t.TempDir()
	setFlags(t, dir)

	path := filepath.Join(dir, "src", "strategies.ts")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create src dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("log(\\`\\\\${n}\\`);\n"), 0644); err != nil {
		t.Fatalf("Failed to write target: %v", err)
	}

	if err := runFix(rootCmd, nil); err != nil {
		t.Fatalf("runFix() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read target: %v", err)
	}
	if string(got) != "log(`${n}`);\n" {
		t.Errorf("patched content = %q", got)
	}
}

func TestRunFixConfirmNonInteractive(t *testing.T) {
	dir := t.TempDir()
	setFlags(t, dir)
	confirm = true
	nonInteractive = true

	path := filepath.Join(dir, "src", "api-server.ts")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create src dir: %v", err)
	}
	original := "send(\\`ok\\`);\n"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatalf("Failed to write target: %v", err)
	}

	if err := runFix(rootCmd, nil); err != nil {
		t.Fatalf("runFix() error = %v, want nil without a terminal", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read target: %v", err)
	}
	if string(got) != original {
		t.Errorf("file changed to %q after confirmation was declined", got)
	}
}

func TestRunFixBadConfig(t *testing.T) {
	setFlags(t, t.TempDir())
	// A directory cannot be read as a config file
	configPath = t.TempDir()

	if err := runFix(rootCmd, nil); err == nil {
		t.Error("runFix() error = nil, want setup error")
	}
}
