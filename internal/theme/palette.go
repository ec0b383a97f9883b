package theme

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colours used to draw a layout, as hex strings.
type Palette struct {
	Name        string `json:"name"`
	Background  string `json:"background"`  // Canvas background
	Grid        string `json:"grid"`        // Empty grid cells
	RoomFill    string `json:"roomFill"`    // Fill of the first room
	RoomFillAlt string `json:"roomFillAlt"` // Fill of the last room; others are blended
	RoomBorder  string `json:"roomBorder"`  // Room outlines
	Edge        string `json:"edge"`        // Triangulation edges
	Hull        string `json:"hull"`        // Convex hull outline
	Point       string `json:"point"`       // Accepted vertices
	Circle      string `json:"circle"`      // Circumcircles
	Text        string `json:"text"`        // Status text
}

// LoadPalette loads the embedded palette.json and checks every colour parses.
func LoadPalette() (Palette, error) {
	p, err := Load[Palette]("palette.json")
	if err != nil {
		return Palette{}, err
	}
	if err := p.Validate(); err != nil {
		return Palette{}, err
	}
	return p, nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Validate reports every colour that does not parse.
func (p Palette) Validate() error {
	var errs []error
	for _, hex := range []string{
		p.Background, p.Grid, p.RoomFill, p.RoomFillAlt, p.RoomBorder,
		p.Edge, p.Hull, p.Point, p.Circle, p.Text,
	} {
		if _, err := ParseHex(hex); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Color returns a palette entry as a tcell.Color, falling back to white.
func (p Palette) Color(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// RoomShade blends from RoomFill to RoomFillAlt so neighbouring rooms can be
// told apart. i is the room index out of n.
func (p Palette) RoomShade(i, n int) colorful.Color {
	from, err := ParseHex(p.RoomFill)
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	to, err := ParseHex(p.RoomFillAlt)
	if err != nil || n <= 1 {
		return from
	}
	return from.BlendLab(to, float64(i)/float64(n-1)).Clamped()
}
