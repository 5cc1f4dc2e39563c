package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of a track config in the search directories.
const FileName = "track.yaml"

// Load loads a track configuration.
// Search order: customPath -> ~/.trackgen/configs/track.yaml ->
// ./configs/track.yaml -> embedded default. Fields missing from a file keep
// their default values. It also returns where the config came from.
func Load(customPath string) (TrackFile, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TrackFile{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return TrackFile{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// A broken file in a search directory is skipped, not fatal.
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, path, nil
			}
		}
	}

	cfg, err := Parse(defaultTrackYAML)
	if err != nil {
		return DefaultTrackFile(), "builtin", nil
	}
	return cfg, "embedded", nil
}

// Parse decodes YAML on top of DefaultTrackFile.
func Parse(data []byte) (TrackFile, error) {
	cfg := DefaultTrackFile()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TrackFile{}, err
	}
	return cfg, nil
}

// Marshal encodes a track file as YAML.
func Marshal(cfg TrackFile) ([]byte, error) {
	return yaml.Marshal(&cfg)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trackgen", "configs", filename)
}
