package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}
	if p.Name != "blueprint" {
		t.Errorf("Expected palette name 'blueprint', got %q", p.Name)
	}
	if p.Edge == "" {
		t.Error("Palette has no edge colour")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GG0000", false},
		{"", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestParseHexColorValue(t *testing.T) {
	got := MustParseHexColor("#FF8000")
	if want := tcell.NewRGBColor(255, 128, 0); got != want {
		t.Errorf("MustParseHexColor = %v, want %v", got, want)
	}
}

func TestPaletteValidate(t *testing.T) {
	p := MustLoadPalette()
	p.Hull = "nope"
	if err := p.Validate(); err == nil {
		t.Error("Validate accepted an invalid colour")
	}
	if p.Color(p.Hull) != tcell.ColorWhite {
		t.Error("Color did not fall back to white")
	}
}

func TestRoomShade(t *testing.T) {
	p := MustLoadPalette()

	first := p.RoomShade(0, 5)
	last := p.RoomShade(4, 5)
	if first.Hex() != mustHex(t, p.RoomFill) {
		t.Errorf("RoomShade(0) = %s, want %s", first.Hex(), p.RoomFill)
	}
	if last.Hex() != mustHex(t, p.RoomFillAlt) {
		t.Errorf("RoomShade(last) = %s, want %s", last.Hex(), p.RoomFillAlt)
	}
	if single := p.RoomShade(0, 1); single.Hex() != first.Hex() {
		t.Errorf("RoomShade(0, 1) = %s, want %s", single.Hex(), first.Hex())
	}
}

func mustHex(t *testing.T, hex string) string {
	t.Helper()
	c, err := ParseHex(hex)
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", hex, err)
	}
	return c.Hex()
}
