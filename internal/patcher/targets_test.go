package patcher

import (
	"path/filepath"
	"testing"
)

func TestResolvePaths(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "abs.ts")

	tests := []struct {
		name     string
		baseDir  string
		paths    []string
		expected []string
	}{
		{
			name:     "current directory keeps relative paths",
			baseDir:  ".",
			paths:    []string{"src/api-server.ts", "src/backfill/utils.ts"},
			expected: []string{"src/api-server.ts", "src/backfill/utils.ts"},
		},
		{
			name:     "empty base directory",
			baseDir:  "",
			paths:    []string{"./src/strategies.ts"},
			expected: []string{"src/strategies.ts"},
		},
		{
			name:     "base directory prefix",
			baseDir:  "/srv/collector",
			paths:    []string{"src/api-server.ts"},
			expected: []string{"/srv/collector/src/api-server.ts"},
		},
		{
			name:     "absolute path is not prefixed",
			baseDir:  "/srv/collector",
			paths:    []string{abs},
			expected: []string{abs},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePaths(tt.baseDir, tt.paths)
			if len(got) != len(tt.expected) {
				t.Fatalf("ResolvePaths() returned %d paths, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("ResolvePaths()[%d] = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestDefaultTargets(t *testing.T) {
	if len(DefaultTargets) != 6 {
		t.Fatalf("len(DefaultTargets) = %d, want 6", len(DefaultTargets))
	}
	if DefaultTargets[0] != "src/api-server.ts" || DefaultTargets[5] != "src/strategies.ts" {
		t.Errorf("DefaultTargets order changed: %v", DefaultTargets)
	}
}
