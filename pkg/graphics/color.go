package graphics

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit per channel, non-premultiplied RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes.
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Common colors.
var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	White       = RGB(0xFF, 0xFF, 0xFF)
	Red         = RGB(0xFF, 0, 0)
	Green       = RGB(0, 0xFF, 0)
	Blue        = RGB(0, 0, 0xFF)
	Pink        = RGB(0xFF, 0xC0, 0xCB)
	Yellow      = RGB(0xFF, 0xFF, 0)
)

var namedColors = map[string]Color{
	"transparent": Transparent,
	"alpha":       Transparent,
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"pink":        Pink,
	"yellow":      Yellow,
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or a named color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	alpha := uint8(0xFF)
	hex := s
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = s[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBA8(r, g, b, alpha), nil
}

// MustParseColor is like ParseColor but panics on malformed input.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns a copy of the color with the given alpha byte.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String formats the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
