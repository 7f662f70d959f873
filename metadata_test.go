package versionflag

import (
	"errors"
	"testing"

	"github.com/vovakirdan/versionflag/internal/config"
)

func TestFromManifest(t *testing.T) {
	data := []byte(`
name: myapp
version: 2.0.0
authors:
  - Jane Doe
  - John Roe
`)
	b, err := FromManifest(data)
	if err != nil {
		t.Fatalf("FromManifest() failed: %v", err)
	}

	if got := b.PlainString(); got != "myapp v2.0.0 by Jane Doe, John Roe" {
		t.Errorf("PlainString() = %q", got)
	}
	if b.Colors() != DefaultColors() {
		t.Error("manifest without theme should keep default colors")
	}
}

func TestFromManifestWithTheme(t *testing.T) {
	data := []byte(`
name: myapp
version: 2.0.0
author: Jane Doe
theme:
  preset: mono
  colors:
    author: "#F80"
`)
	b, err := FromManifest(data)
	if err != nil {
		t.Fatalf("FromManifest() failed: %v", err)
	}

	mono, _ := LookupTheme("mono")
	bg, _ := ParseHex(mono.NameBG)
	if b.Colors().NameBG != bg {
		t.Errorf("NameBG = %v, expected mono preset %v", b.Colors().NameBG, bg)
	}
	if b.Colors().Author != (RGB{R: 0xff, G: 0x88, B: 0x00}) {
		t.Errorf("Author = %v, expected override #ff8800", b.Colors().Author)
	}
}

func TestFromManifestErrors(t *testing.T) {
	tests := map[string]string{
		"missing fields": "author: nobody\n",
		"malformed":      "name: [\n",
		"unknown preset": "name: a\nversion: \"1\"\ntheme:\n  preset: glitter\n",
		"bad color":      "name: a\nversion: \"1\"\ntheme:\n  colors:\n    name_fg: \"#12\"\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := FromManifest([]byte(data)); err == nil {
				t.Error("expected error")
			}
		})
	}

	_, err := FromManifest([]byte("author: nobody\n"))
	if !errors.Is(err, config.ErrIncomplete) {
		t.Errorf("expected ErrIncomplete, got %v", err)
	}
}

func TestMustManifestPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustManifest should panic on an invalid manifest")
		}
	}()
	MustManifest([]byte("version: 1\n"))
}

func TestFromBuildInfo(t *testing.T) {
	b := FromBuildInfo("Tester")

	if b.Name() == "" {
		t.Error("name should never be empty")
	}
	if b.Version() == "" {
		t.Error("version should never be empty")
	}
	if b.Author() != "Tester" {
		t.Errorf("Author() = %q", b.Author())
	}
}

func TestModuleName(t *testing.T) {
	tests := []struct {
		mod, pkg, want string
	}{
		{"github.com/acme/tool", "github.com/acme/tool/cmd/tool", "tool"},
		{"github.com/acme/tool/v2", "", "tool"},
		{"example.com/v3", "", "example.com"},
		{"", "command-line-arguments", "command-line-arguments"},
		{"", "", "unknown"},
		{"github.com/acme/video", "", "video"},
	}

	for _, tt := range tests {
		if got := moduleName(tt.mod, tt.pkg); got != tt.want {
			t.Errorf("moduleName(%q, %q) = %q, expected %q", tt.mod, tt.pkg, got, tt.want)
		}
	}
}

func TestModuleVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", DevelVersion},
		{"(devel)", DevelVersion},
		{"v1.2.3", "1.2.3"},
		{"v0.0.0-20250101000000-abcdef123456", "0.0.0-20250101000000-abcdef123456"},
	}

	for _, tt := range tests {
		if got := moduleVersion(tt.in); got != tt.want {
			t.Errorf("moduleVersion(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
