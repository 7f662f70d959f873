package versionflag

import (
	"fmt"

	"github.com/vovakirdan/versionflag/internal/config"
	"github.com/vovakirdan/versionflag/internal/theme"
)

// Theme holds the four banner colors as hex strings.
type Theme = theme.Theme

// ErrUnknownTheme is returned for theme names that are not registered.
var ErrUnknownTheme = theme.ErrUnknown

// ThemeInfo describes a registered theme.
type ThemeInfo = theme.Info

// Themes lists the registered themes, sorted by name.
func Themes() []ThemeInfo {
	return theme.List()
}

// LookupTheme returns the registered theme called name.
func LookupTheme(name string) (Theme, error) {
	return theme.Get(name)
}

// RegisterTheme adds a named theme. It panics if the name is already taken or
// a color is missing, so it belongs in init functions.
func RegisterTheme(name string, t Theme) {
	theme.Register(name, t)
}

// LoadTheme loads a theme file and resolves it against the registered presets.
// Search order: path -> $XDG_CONFIG_HOME/versionflag/theme.yaml ->
// ./versionflag.yaml -> the built-in default. Only an explicit path that
// cannot be read or parsed is an error.
func LoadTheme(path string) (Theme, error) {
	f, src, err := config.LoadTheme(path)
	if err != nil {
		return Theme{}, fmt.Errorf("versionflag: %w", err)
	}

	t, err := f.Resolve()
	if err != nil {
		return Theme{}, fmt.Errorf("versionflag: theme %s: %w", src, err)
	}

	Logger().Debug("loaded theme", "source", src, "preset", f.Preset)
	return t, nil
}

// WithTheme returns a copy of b using the colors of t.
// Empty fields in t keep b's current color. As with WithHexColors, b is
// returned unchanged if any color is invalid.
func (b Banner) WithTheme(t Theme) (Banner, error) {
	current := Theme{
		NameFG:  b.colors.NameFG.Hex(),
		NameBG:  b.colors.NameBG.Hex(),
		Version: b.colors.Version.Hex(),
		Author:  b.colors.Author.Hex(),
	}
	t = current.Overlay(t)
	return b.WithHexColors(t.NameFG, t.NameBG, t.Version, t.Author)
}
