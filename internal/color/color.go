// Package color parses hex color triplets into 8-bit RGB channels.
package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is the sentinel wrapped by every HexError.
var ErrInvalidHex = errors.New("invalid hex color format")

// HexError reports a color string that is not #RGB or #RRGGBB.
// Input is the string with its leading '#' already removed.
type HexError struct {
	Input string
}

func (e *HexError) Error() string {
	return fmt.Sprintf("invalid hex color format %q: expected #RRGGBB or #RGB", e.Input)
}

func (e *HexError) Unwrap() error {
	return ErrInvalidHex
}

// RGB is a 24-bit color, one byte per channel.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// ParseHex converts "#RRGGBB", "#RGB", "RRGGBB" or "RGB" into an RGB.
// Digits are case-insensitive. A three digit form expands each digit,
// so "#F00" equals "#FF0000".
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")

	var groups [3]string
	switch len(hex) {
	case 6:
		groups = [3]string{hex[0:2], hex[2:4], hex[4:6]}
	case 3:
		groups = [3]string{
			strings.Repeat(hex[0:1], 2),
			strings.Repeat(hex[1:2], 2),
			strings.Repeat(hex[2:3], 2),
		}
	default:
		return RGB{}, &HexError{Input: hex}
	}

	var channels [3]uint8
	for i, g := range groups {
		v, err := strconv.ParseUint(g, 16, 8)
		if err != nil {
			return RGB{}, &HexError{Input: hex}
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// MustParseHex is like ParseHex but panics on invalid input.
// Intended for package-level literals.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
