package config

import (
	_ "embed"

	"github.com/vovakirdan/versionflag/internal/theme"
)

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// DefaultThemeFile returns the theme file used when nothing is configured.
func DefaultThemeFile() ThemeFile {
	return ThemeFile{Preset: theme.DefaultName}
}
