package world

import (
	"testing"

	"github.com/samdwyer/roomweave/internal/delaunay"
)

func TestRoomOverlaps(t *testing.T) {
	base := Room{X: 10, Y: 10, Width: 5, Height: 5}

	tests := []struct {
		name  string
		other Room
		want  bool
	}{
		{"identical", base, true},
		{"inside", Room{X: 11, Y: 11, Width: 2, Height: 2}, true},
		{"partial", Room{X: 13, Y: 13, Width: 5, Height: 5}, true},
		{"touching right edge", Room{X: 15, Y: 10, Width: 3, Height: 3}, true},
		{"touching bottom edge", Room{X: 10, Y: 15, Width: 3, Height: 3}, true},
		{"touching corner", Room{X: 15, Y: 15, Width: 2, Height: 2}, true},
		{"one cell gap", Room{X: 16, Y: 10, Width: 3, Height: 3}, false},
		{"far away", Room{X: 40, Y: 40, Width: 3, Height: 3}, false},
		{"left gap", Room{X: 0, Y: 10, Width: 9, Height: 3}, false},
	}

	for _, tt := range tests {
		if got := base.Overlaps(tt.other); got != tt.want {
			t.Errorf("%s: Overlaps(%+v) = %v, want %v", tt.name, tt.other, got, tt.want)
		}
		if got := tt.other.Overlaps(base); got != tt.want {
			t.Errorf("%s: reversed Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRoomCentroid(t *testing.T) {
	r := Room{X: 3, Y: 4, Width: 5, Height: 2}
	if got, want := r.Centroid(), (delaunay.Vertex{X: 5.5, Y: 5}); got != want {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
	if x, y := r.Center(); x != 5 || y != 5 {
		t.Errorf("Center() = (%d, %d), want (5, 5)", x, y)
	}

	centers := Centroids([]Room{r, {X: 0, Y: 0, Width: 2, Height: 2}})
	if len(centers) != 2 || centers[1] != (delaunay.Vertex{X: 1, Y: 1}) {
		t.Errorf("Centroids = %v", centers)
	}
}

func TestRoomContains(t *testing.T) {
	r := Room{X: 2, Y: 2, Width: 3, Height: 3}
	if !r.Contains(2, 2) || !r.Contains(4, 4) {
		t.Error("Contains rejected a cell inside the room")
	}
	if r.Contains(5, 2) || r.Contains(1, 3) {
		t.Error("Contains accepted a cell outside the room")
	}
}

func TestGridFits(t *testing.T) {
	g := Grid{Size: 10}
	if !g.Fits(Room{X: 0, Y: 0, Width: 10, Height: 10}) {
		t.Error("full-size room does not fit")
	}
	if g.Fits(Room{X: 1, Y: 0, Width: 10, Height: 3}) {
		t.Error("room past the right edge fits")
	}
	if g.Fits(Room{X: -1, Y: 0, Width: 2, Height: 2}) {
		t.Error("room with negative x fits")
	}
}

func TestRasterize(t *testing.T) {
	tiles := Rasterize(Grid{Size: 6}, []Room{{X: 1, Y: 1, Width: 4, Height: 3}})

	want := []string{
		"      ",
		" #### ",
		" #..# ",
		" #### ",
		"      ",
		"      ",
	}
	for y, row := range want {
		for x, ch := range row {
			if tiles[y][x].Rune() != ch {
				t.Errorf("tile (%d,%d) = %q, want %q", x, y, tiles[y][x].Rune(), ch)
			}
		}
	}
	if !tiles[1][1].IsRoom() || tiles[0][0].IsRoom() {
		t.Error("IsRoom misclassified tiles")
	}
}
