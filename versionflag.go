// Package versionflag replaces a command-line parser's plain --version output
// with a colorized banner:
//
//	myapp v1.2.3 by Jane Doe
//
// The package name is drawn with its own foreground and background colors,
// the version and the author each with a foreground color. Colors are given
// as hex strings ("#AA00FF", "#A0F") or RGB values.
//
// Banner metadata always describes the calling application. It is passed
// explicitly (New), read from the application's own embedded manifest
// (FromManifest) or taken from the main module's build info (FromBuildInfo).
//
// Usage with cobra:
//
//	banner := versionflag.New("myapp", "1.2.3", "Jane Doe")
//	if _, err := versionflag.Execute(rootCmd, banner); err != nil {
//		os.Exit(1)
//	}
//
// Running "myapp -V" or "myapp sub --version" prints the banner and exits 0.
package versionflag

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// exit terminates the process; replaced in tests.
var exit = os.Exit

// trueColor always emits 24-bit color sequences, whatever the output is.
var trueColor = func() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}()

// Banner is an application's version line and its colors.
// The zero value is usable but renders as " v by ".
// Banner is a value type: the With* methods return a modified copy.
type Banner struct {
	name    string
	version string
	author  string
	colors  Colors
}

// New creates a banner with the default colors.
func New(name, version, author string) Banner {
	return Banner{
		name:    name,
		version: version,
		author:  author,
		colors:  DefaultColors(),
	}
}

// WithHexColors returns a copy of b using the given hex colors.
// All four are parsed before any is applied; on error b is returned unchanged
// together with the error for the first invalid string.
func (b Banner) WithHexColors(nameFG, nameBG, version, author string) (Banner, error) {
	c, err := ParseColors(nameFG, nameBG, version, author)
	if err != nil {
		return b, err
	}
	b.colors = c
	return b, nil
}

// MustHexColors is like WithHexColors but panics on an invalid color.
// Intended for colors written as literals in the calling program.
func (b Banner) MustHexColors(nameFG, nameBG, version, author string) Banner {
	nb, err := b.WithHexColors(nameFG, nameBG, version, author)
	if err != nil {
		panic(fmt.Sprintf("versionflag: %v", err))
	}
	return nb
}

// WithRGBColors returns a copy of b using the given colors.
func (b Banner) WithRGBColors(nameFG, nameBG, version, author RGB) Banner {
	b.colors = Colors{
		NameFG:  nameFG,
		NameBG:  nameBG,
		Version: version,
		Author:  author,
	}
	return b
}

// WithColors returns a copy of b using c.
func (b Banner) WithColors(c Colors) Banner {
	b.colors = c
	return b
}

// Name returns the package name.
func (b Banner) Name() string { return b.name }

// Version returns the version, without the "v" prefix.
func (b Banner) Version() string { return b.version }

// Author returns the author line.
func (b Banner) Author() string { return b.author }

// Colors returns the banner colors.
func (b Banner) Colors() Colors { return b.colors }

// PlainString returns "{name} v{version} by {author}" with no escape sequences.
func (b Banner) PlainString() string {
	return b.name + " v" + b.version + " by " + b.author
}

// String implements fmt.Stringer and returns the plain banner.
func (b Banner) String() string {
	return b.PlainString()
}

// ColoredString returns the banner with 24-bit color escape sequences,
// independent of the terminal it ends up on.
func (b Banner) ColoredString() string {
	return b.render(trueColor)
}

// Fprint writes the banner and a newline to w. Colors are downsampled or
// dropped according to the profile lipgloss detects for w.
func (b Banner) Fprint(w io.Writer) error {
	line := b.render(lipgloss.NewRenderer(w))
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return fmt.Errorf("versionflag: write banner: %w", err)
	}
	return nil
}

// Print writes the banner to standard output.
func (b Banner) Print() error {
	return b.Fprint(os.Stdout)
}

// PrintAndExit writes the banner to standard output and exits with status 0.
// If the write fails the error is logged and the exit status is 1.
func (b Banner) PrintAndExit() {
	printAndExit(os.Stdout, b)
}

func printAndExit(w io.Writer, b Banner) {
	if err := b.Fprint(w); err != nil {
		Logger().Error("cannot print version", "error", err)
		exit(1)
		return
	}
	exit(0)
}

// render wraps the three segments in color sequences for r's profile.
// The text itself is never altered, so stripping the sequences yields
// PlainString exactly.
func (b Banner) render(r *lipgloss.Renderer) string {
	p := r.ColorProfile()

	name := p.String(b.name).
		Foreground(p.Color(b.colors.NameFG.Hex())).
		Background(p.Color(b.colors.NameBG.Hex()))
	version := p.String(" v" + b.version).Foreground(p.Color(b.colors.Version.Hex()))
	author := p.String(" by " + b.author).Foreground(p.Color(b.colors.Author.Hex()))

	return name.String() + version.String() + author.String()
}
