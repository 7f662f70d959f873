// Package theme provides a global registry of named banner color themes.
// Presets register themselves in init(), and callers look them up by name
// from flags or config files.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// DefaultName is the preset used when nothing else is configured.
const DefaultName = "default"

// ErrUnknown is returned by Get for names that were never registered.
var ErrUnknown = errors.New("unknown theme")

// Theme holds the four banner colors as hex strings.
// Empty fields mean "keep the current color" when a theme is used as an overlay.
type Theme struct {
	NameFG  string `yaml:"name_fg,omitempty"`
	NameBG  string `yaml:"name_bg,omitempty"`
	Version string `yaml:"version,omitempty"`
	Author  string `yaml:"author,omitempty"`
}

// Overlay returns t with every non-empty field of o applied on top.
func (t Theme) Overlay(o Theme) Theme {
	if o.NameFG != "" {
		t.NameFG = o.NameFG
	}
	if o.NameBG != "" {
		t.NameBG = o.NameBG
	}
	if o.Version != "" {
		t.Version = o.Version
	}
	if o.Author != "" {
		t.Author = o.Author
	}
	return t
}

// Complete reports whether all four colors are set.
func (t Theme) Complete() bool {
	return t.NameFG != "" && t.NameBG != "" && t.Version != "" && t.Author != ""
}

// Info describes a registered theme.
type Info struct {
	Name  string
	Theme Theme
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a named theme.
// Panics if the name is taken or the theme is missing a color.
func Register(name string, t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[name]; exists {
		panic(fmt.Sprintf("theme: %q already registered", name))
	}
	if !t.Complete() {
		panic(fmt.Sprintf("theme: %q is missing a color", name))
	}

	themes[name] = t
}

// List returns all registered themes, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(themes))
	for name, t := range themes {
		result = append(result, Info{Name: name, Theme: t})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the theme registered under name.
func Get(name string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("theme: %w %q", ErrUnknown, name)
	}
	return t, nil
}

// Exists checks if a theme with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[name]
	return ok
}
