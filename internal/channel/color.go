package channel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA text color with components in [0, 1].
type Color [4]float32

// Colors of the default channel set. They are built from hex so they
// survive a text round trip unchanged.
var (
	White  = MustParseColor("#ffffffff")
	Red    = MustParseColor("#b3331aff")
	Purple = MustParseColor("#cc00b3ff")
	Blue   = MustParseColor("#3366e6ff")
	Green  = MustParseColor("#1acc4dff")
)

// ParseColor parses "#RRGGBB" or "#RRGGBBAA". A missing alpha component is
// treated as fully opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := float32(1)

	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = float32(a) / 255
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{float32(c.R), float32(c.G), float32(c.B), alpha}, nil
}

// MustParseColor is like ParseColor but panics on malformed input. It is
// meant for package-level literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the RGB components as "#rrggbb". Alpha is dropped because
// terminals cannot blend text.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// HexAlpha renders the color as "#rrggbbaa".
func (c Color) HexAlpha() string {
	a := min(max(c[3], 0), 1)
	return fmt.Sprintf("%s%02x", c.Hex(), uint8(a*255+0.5))
}

// Alpha returns the alpha component.
func (c Color) Alpha() float32 {
	return c[3]
}

// Blend mixes c towards other in RGB space by t in [0, 1]. Used to derive
// dimmed and highlighted variants of a channel color.
func (c Color) Blend(other Color, t float64) Color {
	b := c.colorful().BlendRgb(other.colorful(), t).Clamped()
	return Color{float32(b.R), float32(b.G), float32(b.B), c[3]}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}
}

// MarshalText implements encoding.TextMarshaler so colors round-trip through
// TOML and JSON as hex strings. Components are quantized to 8 bits.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.HexAlpha()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
