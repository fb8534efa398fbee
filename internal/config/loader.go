package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HomeDir is the per-user directory under $HOME holding configs, word packs,
// the word database and logs.
const HomeDir = ".typefall"

// Load loads the game configuration.
// Search order: customPath -> ~/.typefall/configs/typefall.yaml -> ./configs/typefall.yaml -> embedded default.
// Files are decoded over DefaultConfig, so they only need the keys they change.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	data, source, err := ReadFirst(customPath, "typefall.yaml", defaultYAML)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		if source == "" {
			return DefaultConfig(), nil // Fallback to hardcoded if embed fails
		}
		return cfg, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ReadFirst returns the contents of the first configuration source found for
// filename, along with its path. An explicit customPath must exist. When no
// file is found the embedded bytes are returned with an empty path.
func ReadFirst(customPath, filename string, embedded []byte) ([]byte, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, customPath, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return data, customPath, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userPath := UserPath("configs", filename); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}
	for _, path := range candidates {
		if data, err := os.ReadFile(path); err == nil {
			return data, path, nil
		}
	}

	return embedded, "", nil
}

// UserPath joins elem under ~/.typefall, or returns empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, HomeDir}, elem...)...)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
