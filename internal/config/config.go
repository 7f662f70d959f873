// Package config provides YAML loading for banner themes and application
// version manifests.
package config

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/versionflag/internal/theme"
)

// ThemeFile is the on-disk form of a banner theme.
// Preset selects a registered theme; Colors overrides individual colors on top of it.
type ThemeFile struct {
	Preset string      `yaml:"preset,omitempty"`
	Colors theme.Theme `yaml:"colors,omitempty"`
}

// Resolve returns the effective theme: the preset (or the default preset)
// with any non-empty color overrides applied.
func (f ThemeFile) Resolve() (theme.Theme, error) {
	name := f.Preset
	if name == "" {
		name = theme.DefaultName
	}

	base, err := theme.Get(name)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("config: %w", err)
	}
	return base.Overlay(f.Colors), nil
}

// Manifest is an application's version metadata, usually embedded into the
// application binary with go:embed.
type Manifest struct {
	Name    string     `yaml:"name"`
	Version string     `yaml:"version"`
	Author  string     `yaml:"author,omitempty"`
	Authors []string   `yaml:"authors,omitempty"`
	Theme   *ThemeFile `yaml:"theme,omitempty"`
}

// AuthorLine returns Authors joined with ", ", or Author when the list is empty.
func (m Manifest) AuthorLine() string {
	if len(m.Authors) > 0 {
		return strings.Join(m.Authors, ", ")
	}
	return m.Author
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("config: failed to parse manifest: %w", err)
	}

	var missing []string
	if m.Name == "" {
		missing = append(missing, "name")
	}
	if m.Version == "" {
		missing = append(missing, "version")
	}
	if len(missing) > 0 {
		return m, fmt.Errorf("config: manifest missing %s: %w", strings.Join(missing, ", "), ErrIncomplete)
	}

	return m, nil
}

// ErrIncomplete is returned for manifests lacking a required field.
var ErrIncomplete = errors.New("incomplete manifest")
