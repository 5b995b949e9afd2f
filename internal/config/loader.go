package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up on the search path.
const FileName = "breakout3d.yaml"

// Load loads the simulation configuration.
// Search order: customPath -> ~/.breakout3d/configs/breakout3d.yaml ->
// ./configs/breakout3d.yaml -> embedded default -> Default().
//
// An explicit customPath must exist, parse and validate. Files found on
// the search path are skipped when they fail to parse or validate.
// Keys missing from a file keep their default values.
func Load(customPath string) (Breakout, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Breakout{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Breakout{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultYAML); err == nil {
		return cfg, nil
	}
	return Default(), nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Breakout, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Breakout{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Breakout{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg Breakout) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout3d", "configs", filename)
}
