package ui

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomweave/internal/delaunay"
	"github.com/samdwyer/roomweave/internal/layout"
	"github.com/samdwyer/roomweave/internal/theme"
)

// fakeCanvas records the last rune written to each cell.
type fakeCanvas struct {
	cells  map[[2]int]rune
	shown  int
	cleans int
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{cells: make(map[[2]int]rune)}
}

func (c *fakeCanvas) Clear() {
	c.cleans++
	c.cells = make(map[[2]int]rune)
}

func (c *fakeCanvas) SetContent(x, y int, r rune, _ tcell.Style) {
	c.cells[[2]int{x, y}] = r
}

func (c *fakeCanvas) DrawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		c.SetContent(x, y, ch, style)
		x++
	}
}

func (c *fakeCanvas) Show() {
	c.shown++
}

func TestPointTracker(t *testing.T) {
	tracker := NewPointTracker()
	tracker.VertexAccepted(delaunay.Vertex{X: 1, Y: 2})
	tracker.VertexAccepted(delaunay.Vertex{X: 3, Y: 4})

	if got := len(tracker.Points()); got != 2 {
		t.Fatalf("Points() has %d entries, want 2", got)
	}

	tracker.Reset()
	if got := len(tracker.Points()); got != 0 {
		t.Errorf("Points() has %d entries after Reset, want 0", got)
	}
	if tracker.Resets() != 1 {
		t.Errorf("Resets() = %d, want 1", tracker.Resets())
	}
}

func TestPointTrackerFollowsGeneration(t *testing.T) {
	g, err := layout.NewGenerator(layout.Config{GridSize: 40, RoomsAmount: 15, RoomMinSize: 3, RoomMaxSize: 5, Seed: 5})
	if err != nil {
		t.Fatalf("NewGenerator returned error: %v", err)
	}

	tracker := NewPointTracker()
	ctx := context.Background()
	for run := 0; run < 2; run++ {
		l, err := g.Generate(ctx, tracker)
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		if len(l.GetTriangles()) > 0 && len(tracker.Points()) != len(l.GetAcceptedRooms()) {
			t.Errorf("run %d: tracker has %d points for %d rooms", run, len(tracker.Points()), len(l.GetAcceptedRooms()))
		}
	}
	if tracker.Resets() != 2 {
		t.Errorf("Resets() = %d, want 2", tracker.Resets())
	}
}

func TestLayerString(t *testing.T) {
	tests := []struct {
		layer    Layer
		expected string
	}{
		{0, "none"},
		{LayerRooms, "rooms"},
		{LayerRooms | LayerPoints, "rooms+points"},
		{LayersAll, "rooms+edges+points"},
	}

	for _, tt := range tests {
		if got := tt.layer.String(); got != tt.expected {
			t.Errorf("Layer(%d).String() = %q, want %q", tt.layer, got, tt.expected)
		}
	}
}

func TestLayerToggle(t *testing.T) {
	l := LayersAll.Toggle(LayerEdges)
	if l.Has(LayerEdges) {
		t.Error("Toggle did not disable edges")
	}
	if !l.Has(LayerRooms | LayerPoints) {
		t.Error("Toggle disabled other layers")
	}
	if !l.Toggle(LayerEdges).Has(LayersAll) {
		t.Error("second Toggle did not restore edges")
	}
}

func TestLine(t *testing.T) {
	cells := line(0, 0, 4, 2)
	if cells[0] != [2]int{0, 0} || cells[len(cells)-1] != [2]int{4, 2} {
		t.Errorf("line endpoints = %v .. %v", cells[0], cells[len(cells)-1])
	}
	if len(cells) != 5 {
		t.Errorf("line has %d cells, want 5", len(cells))
	}

	if got := line(3, 3, 3, 3); len(got) != 1 {
		t.Errorf("single-point line has %d cells", len(got))
	}
	if got := line(5, 1, 0, 1); len(got) != 6 {
		t.Errorf("reversed horizontal line has %d cells, want 6", len(got))
	}
}

func TestRender(t *testing.T) {
	g, err := layout.NewGenerator(layout.Config{GridSize: 30, RoomsAmount: 10, RoomMinSize: 3, RoomMaxSize: 5, Seed: 11})
	if err != nil {
		t.Fatalf("NewGenerator returned error: %v", err)
	}
	tracker := NewPointTracker()
	l, err := g.Generate(context.Background(), tracker)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	canvas := newFakeCanvas()
	r := NewRenderer(canvas, theme.MustLoadPalette())
	r.Render(l, tracker.Points(), LayerRooms|LayerPoints)

	if canvas.shown != 1 || canvas.cleans != 1 {
		t.Errorf("shown=%d cleans=%d, want 1 and 1", canvas.shown, canvas.cleans)
	}
	for _, room := range l.GetAcceptedRooms() {
		if got := canvas.cells[[2]int{room.X * cellWidth, room.Y}]; got != '#' {
			t.Errorf("room corner %+v drawn as %q, want '#'", room, got)
		}
	}
	for _, v := range tracker.Points() {
		x, y := screenPos(v)
		if got := canvas.cells[[2]int{x, y}]; got != '@' {
			t.Errorf("point %v drawn as %q, want '@'", v, got)
		}
	}
	if canvas.cells[[2]int{0, l.Grid.Size}] != 's' {
		t.Error("status line missing")
	}
}

func TestRenderPaintsGridWithNoLayers(t *testing.T) {
	g, err := layout.NewGenerator(layout.Config{GridSize: 12, RoomsAmount: 3, RoomMinSize: 3, RoomMaxSize: 4, Seed: 3})
	if err != nil {
		t.Fatalf("NewGenerator returned error: %v", err)
	}
	l, err := g.Generate(context.Background(), nil)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	canvas := newFakeCanvas()
	NewRenderer(canvas, theme.MustLoadPalette()).Render(l, nil, 0)

	for y := 0; y < l.Grid.Size; y++ {
		for x := 0; x < l.Grid.Size*cellWidth; x++ {
			if got, ok := canvas.cells[[2]int{x, y}]; !ok || got != ' ' {
				t.Fatalf("cell (%d,%d) = %q, want a painted blank", x, y, got)
			}
		}
	}
}
