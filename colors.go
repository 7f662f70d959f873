package versionflag

import (
	"github.com/vovakirdan/versionflag/internal/color"
)

// RGB is a 24-bit color, one byte per channel.
type RGB = color.RGB

// HexColorError reports a color string that is not #RGB or #RRGGBB.
// Its Input field holds the string without the leading '#'.
type HexColorError = color.HexError

// ErrInvalidHexColor matches every HexColorError via errors.Is.
var ErrInvalidHexColor = color.ErrInvalidHex

// ParseHex converts "#RRGGBB", "#RGB", "RRGGBB" or "RGB" (any case) into an RGB.
func ParseHex(s string) (RGB, error) {
	return color.ParseHex(s)
}

// Colors is the full set of banner colors.
type Colors struct {
	NameFG  RGB // package name foreground
	NameBG  RGB // package name background
	Version RGB // " v{version}" foreground
	Author  RGB // " by {author}" foreground
}

// DefaultColors returns white on purple for the name, yellow for the version
// and cyan for the author.
func DefaultColors() Colors {
	return Colors{
		NameFG:  RGB{R: 255, G: 255, B: 255},
		NameBG:  RGB{R: 170, G: 0, B: 255},
		Version: RGB{R: 255, G: 255, B: 0},
		Author:  RGB{R: 0, G: 255, B: 255},
	}
}

// ParseColors parses four hex strings in the order name foreground, name
// background, version, author. It stops at the first invalid string and
// returns its error; a partially filled set is never returned.
func ParseColors(nameFG, nameBG, version, author string) (Colors, error) {
	var c Colors

	inputs := []string{nameFG, nameBG, version, author}
	targets := []*RGB{&c.NameFG, &c.NameBG, &c.Version, &c.Author}
	for i, in := range inputs {
		rgb, err := color.ParseHex(in)
		if err != nil {
			return Colors{}, err
		}
		*targets[i] = rgb
	}

	return c, nil
}
