package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the config directories.
const FileName = "gargoyle.yaml"

// Load loads the game configuration. Keys missing from a file keep their
// default values.
// Search order: customPath -> ~/.arcade/configs/gargoyle.yaml -> ./configs/gargoyle.yaml -> embedded default
func Load(customPath string) (GargoyleConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GargoyleConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return GargoyleConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return GargoyleConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", FileName)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultGargoyleYAML)
	if err != nil {
		return DefaultGargoyleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile loads an optional config file. Unreadable or invalid files are
// skipped so a broken user file never blocks the game.
func tryFile(path string) (GargoyleConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GargoyleConfig{}, false
	}
	cfg, err := parse(data)
	if err != nil || cfg.Validate() != nil {
		return GargoyleConfig{}, false
	}
	cfg.Source = path
	return cfg, true
}

// parse decodes YAML over the defaults.
func parse(data []byte) (GargoyleConfig, error) {
	cfg := DefaultGargoyleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GargoyleConfig{}, err
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

// AssetRoot resolves the sprite directory. A relative Dir is taken relative
// to the directory of the config file it was loaded from, or the working
// directory for built-in defaults.
func (c GargoyleConfig) AssetRoot() string {
	dir := c.Assets.Dir
	if dir == "" || filepath.IsAbs(dir) || c.Source == "" {
		return dir
	}
	return filepath.Join(filepath.Dir(c.Source), dir)
}
