package versionflag

import (
	"fmt"
	"path"
	"runtime/debug"
	"strings"

	"github.com/vovakirdan/versionflag/internal/config"
)

// DevelVersion is reported by FromBuildInfo when the main module has no
// release version, as with "go run" or "go build" inside the module.
const DevelVersion = "devel"

// FromManifest builds a banner from the calling application's own YAML
// manifest, typically embedded next to its main package:
//
//	//go:embed version.yaml
//	var manifest []byte
//
//	banner, err := versionflag.FromManifest(manifest)
//
// The manifest needs name and version; the author comes from "authors"
// (joined with ", ") or "author". An optional "theme" block uses the theme
// file format.
func FromManifest(data []byte) (Banner, error) {
	m, err := config.ParseManifest(data)
	if err != nil {
		return Banner{}, fmt.Errorf("versionflag: %w", err)
	}

	b := New(m.Name, m.Version, m.AuthorLine())
	if m.Theme == nil {
		return b, nil
	}

	t, err := m.Theme.Resolve()
	if err != nil {
		return Banner{}, fmt.Errorf("versionflag: %w", err)
	}
	return b.WithTheme(t)
}

// MustManifest is like FromManifest but panics on error.
// Intended for manifests embedded at build time.
func MustManifest(data []byte) Banner {
	b, err := FromManifest(data)
	if err != nil {
		panic(err)
	}
	return b
}

// FromBuildInfo builds a banner from the build info of the running binary.
// The name is the last element of the main module path and the version is
// the main module version, so both describe the application that links this
// package. Binaries built without module support get "unknown" and devel.
func FromBuildInfo(author string) Banner {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return New("unknown", DevelVersion, author)
	}
	return New(moduleName(info.Main.Path, info.Path), moduleVersion(info.Main.Version), author)
}

// moduleName picks a display name from the main module path, falling back to
// the main package path used by "go run file.go".
func moduleName(modPath, pkgPath string) string {
	p := modPath
	if p == "" {
		p = pkgPath
	}
	if p == "" {
		return "unknown"
	}

	name := path.Base(p)
	// Major version suffixes ("example.com/app/v2") are not the name.
	if len(name) > 1 && name[0] == 'v' && strings.Trim(name[1:], "0123456789") == "" {
		if parent := path.Base(path.Dir(p)); parent != "." && parent != "/" {
			name = parent
		}
	}
	return name
}

func moduleVersion(v string) string {
	switch v {
	case "", "(devel)":
		return DevelVersion
	}
	return strings.TrimPrefix(v, "v")
}
