package patcher

import "path/filepath"

// DefaultTargets lists the files patched when no TARGET_FILES entry is configured.
var DefaultTargets = []string{
	"src/api-server.ts",
	"src/backfill/utils.ts",
	"src/jetstream-collector-enhanced.ts",
	"src/production-test.ts",
	"src/startup-validator.ts",
	"src/strategies.ts",
}

// ResolvePaths joins relative paths onto baseDir. Absolute paths are kept,
// order is preserved and nothing is globbed or discovered.
func ResolvePaths(baseDir string, paths []string) []string {
	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		if baseDir == "" || filepath.IsAbs(p) {
			resolved = append(resolved, filepath.Clean(p))
			continue
		}
		resolved = append(resolved, filepath.Join(baseDir, p))
	}
	return resolved
}
