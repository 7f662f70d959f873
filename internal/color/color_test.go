package color

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseHexValid(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#FFFFFF", RGB{255, 255, 255}},
		{"#000000", RGB{0, 0, 0}},
		{"#FF0000", RGB{255, 0, 0}},
		{"FF0000", RGB{255, 0, 0}},
		{"#F00", RGB{255, 0, 0}},
		{"#f00", RGB{255, 0, 0}},
		{"FFF", RGB{255, 255, 255}},
		{"#AaBbCc", RGB{170, 187, 204}},
		{"#aabbcc", RGB{170, 187, 204}},
		{"#AA00FF", RGB{170, 0, 255}},
		{"#123456", RGB{0x12, 0x34, 0x56}},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	invalid := []string{
		"",
		"#",
		"#GGG",
		"#GGGGGG",
		"#ZZZZZZ",
		"#12345",
		"#1234567",
		"#FF",
		"#FFFF",
		"NOT_A_COLOR",
		"##FFF",
		"#+1F",
		"#-1-1-1",
		"#é0",
	}

	for _, in := range invalid {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) should fail", in)
		}
	}
}

func TestParseHexErrorCarriesInput(t *testing.T) {
	_, err := ParseHex("#GGG")
	if err == nil {
		t.Fatal("expected error")
	}

	var hexErr *HexError
	if !errors.As(err, &hexErr) {
		t.Fatalf("expected *HexError, got %T", err)
	}
	if hexErr.Input != "GGG" {
		t.Errorf("Input = %q, expected %q", hexErr.Input, "GGG")
	}
	if !errors.Is(err, ErrInvalidHex) {
		t.Error("error should match ErrInvalidHex")
	}
}

func TestHexErrorMessage(t *testing.T) {
	err := &HexError{Input: "INVALID"}
	msg := err.Error()

	for _, want := range []string{"invalid hex color format", "INVALID", "#RRGGBB", "#RGB"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should contain %q", msg, want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	// Every channel value, in every position.
	for v := 0; v < 256; v++ {
		b := uint8(v)
		for _, c := range []RGB{{b, 0, 0}, {0, b, 0}, {0, 0, b}, {b, 255 - b, b / 2}} {
			got, err := ParseHex(c.Hex())
			if err != nil {
				t.Fatalf("ParseHex(%q) failed: %v", c.Hex(), err)
			}
			if got != c {
				t.Fatalf("round trip %v -> %q -> %v", c, c.Hex(), got)
			}
		}
	}
}

func TestRGBHex(t *testing.T) {
	c := RGB{170, 0, 255}
	if c.Hex() != "#aa00ff" {
		t.Errorf("Hex() = %q, expected %q", c.Hex(), "#aa00ff")
	}
	if fmt.Sprint(c) != "#aa00ff" {
		t.Errorf("String() = %q, expected %q", fmt.Sprint(c), "#aa00ff")
	}
}

func TestMustParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseHex should panic on invalid input")
		}
	}()
	MustParseHex("#XYZ")
}
