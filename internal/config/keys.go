package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// KeyTargetFiles is a comma-separated list of files to patch
	KeyTargetFiles = "TARGET_FILES"
	// KeyBaseDir is the directory relative target paths are resolved against
	KeyBaseDir = "BASE_DIR"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = ".fix-templates.conf"

// Default values for configuration keys
var Defaults = map[string]string{
	KeyBaseDir: ".",
}

// KnownKeys lists the keys accepted by Set from the command line
var KnownKeys = []string{KeyTargetFiles, KeyBaseDir}

// IsKnownKey reports whether key is one of KnownKeys
func IsKnownKey(key string) bool {
	for _, k := range KnownKeys {
		if k == key {
			return true
		}
	}
	return false
}
