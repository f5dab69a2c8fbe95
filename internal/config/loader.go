package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in every config directory.
const configFile = "brickfield.yaml"

// LoadBrickfield loads the game configuration.
// Search order: customPath -> ~/.brickfield/configs/brickfield.yaml -> ./configs/brickfield.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error. Broken
// files in the fallback locations are skipped.
func LoadBrickfield(customPath string) (BrickfieldConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readBrickfield(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if cfg, err := readBrickfield(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg BrickfieldConfig
	if err := yaml.Unmarshal(defaultBrickfieldYAML, &cfg); err != nil {
		return DefaultBrickfieldConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseBrickfield decodes and validates a YAML document. Fields missing from
// the document keep their default values.
func ParseBrickfield(data []byte) (BrickfieldConfig, error) {
	cfg := DefaultBrickfieldConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid: %w", err)
	}
	return cfg, nil
}

func readBrickfield(path string) (BrickfieldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BrickfieldConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := ParseBrickfield(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickfield", "configs", filename)
}

// ApplyBrickfieldPreset modifies the config based on a difficulty preset.
func ApplyBrickfieldPreset(cfg *BrickfieldConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 140
		cfg.Ball.MaxBoost = 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 70
		cfg.Ball.MaxBoost = 8
	}
}
