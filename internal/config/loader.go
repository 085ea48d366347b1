package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// QuestFile is the file name searched for in the user and local config directories.
const QuestFile = "quest.yaml"

// LoadQuest loads the quest configuration.
// Search order: customPath -> ~/.arcade/configs/quest.yaml -> ./configs/quest.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
// The result is validated; an invalid file yields a *Error.
func LoadQuest(customPath string) (QuestConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return QuestConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseQuest(data)
		if err != nil {
			return QuestConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(QuestFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseQuest(data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", QuestFile)); err == nil {
		if cfg, err := parseQuest(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parseQuest(defaultQuestYAML)
	if err != nil {
		return DefaultQuestConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// ResolvePath reports which file LoadQuest would read, or "" for the embedded default.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	if p := userConfigPath(QuestFile); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	local := filepath.Join("configs", QuestFile)
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return ""
}

func parseQuest(data []byte) (QuestConfig, error) {
	cfg := DefaultQuestConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return QuestConfig{}, err
	}
	if cfg.Layout.HeightNoise == "" {
		cfg.Layout.HeightNoise = NoiseUniform
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
