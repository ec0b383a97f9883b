package theme

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses a hex colour string ("#FF0000" or "FF0000").
func ParseHex(hex string) (colorful.Color, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return c, nil
}

// ParseHexColor converts a hex colour string to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}
	return TCell(c), nil
}

// MustParseHexColor converts a hex colour string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// TCell converts a colour to its tcell equivalent.
func TCell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
