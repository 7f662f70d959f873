package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by LoadTheme when no file was found.
const SourceEmbedded = "embedded"

// LocalThemeFile is the project-local theme file name.
const LocalThemeFile = "versionflag.yaml"

// LoadTheme loads a theme file and reports where it came from.
// Search order: customPath -> ~/.config/versionflag/theme.yaml -> ./versionflag.yaml -> embedded default.
// Only a failing customPath is an error; unreadable or malformed files further
// down the chain are skipped.
func LoadTheme(customPath string) (ThemeFile, string, error) {
	// Try custom path first
	if customPath != "" {
		f, err := readThemeFile(customPath)
		if err != nil {
			return ThemeFile{}, customPath, err
		}
		return f, customPath, nil
	}

	// Try user config directory
	if userPath := userConfigPath("theme.yaml"); userPath != "" {
		if f, err := readThemeFile(userPath); err == nil {
			return f, userPath, nil
		}
	}

	// Try working directory
	if f, err := readThemeFile(LocalThemeFile); err == nil {
		return f, LocalThemeFile, nil
	}

	// Use embedded default YAML
	var f ThemeFile
	if err := yaml.Unmarshal(defaultThemeYAML, &f); err != nil {
		return DefaultThemeFile(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return f, SourceEmbedded, nil
}

// readThemeFile decodes one candidate. Each call starts from an empty
// ThemeFile, since yaml.v3 keeps the fields it set before a type error.
func readThemeFile(path string) (ThemeFile, error) {
	var f ThemeFile
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("config: failed to read theme %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return ThemeFile{}, fmt.Errorf("config: failed to parse theme %s: %w", path, err)
	}
	return f, nil
}

// MarshalTheme encodes a theme file as YAML, the format LoadTheme reads.
func MarshalTheme(f ThemeFile) ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode theme: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if the config dir is unavailable.
func userConfigPath(filename string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "versionflag", filename)
}
