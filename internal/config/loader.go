package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ParseChameleon validates a YAML document and decodes it on top of the
// defaults, so a file only needs the keys it changes.
func ParseChameleon(data []byte) (ChameleonConfig, error) {
	cfg := DefaultChameleonConfig()

	if err := Validate(data); err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Session().Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadChameleon loads Hungry Chameleon configuration.
// Search order: customPath -> ~/.arcade/configs/chameleon.yaml -> ./configs/chameleon.yaml -> embedded default
//
// A custom path must exist and be valid. Broken files in the other locations
// are skipped.
func LoadChameleon(customPath string) (ChameleonConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultChameleonConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := ParseChameleon(data)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("chameleon.yaml"), filepath.Join("configs", "chameleon.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := ParseChameleon(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := ParseChameleon(defaultChameleonYAML)
	if err != nil {
		return DefaultChameleonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
