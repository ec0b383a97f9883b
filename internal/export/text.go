package export

import (
	"fmt"
	"io"

	"github.com/samdwyer/roomweave/internal/layout"
	"github.com/samdwyer/roomweave/internal/world"
)

// centerMark is drawn on the cell nearest each room center.
const centerMark = '+'

// WriteText prints a summary line, an ASCII map of the rooms with their
// centers marked, and the triangle list.
func WriteText(w io.Writer, l *layout.Layout) error {
	ew := &errWriter{w: w}
	rooms := l.GetAcceptedRooms()
	triangles := l.GetTriangles()

	edges := l.Edges()
	var length float64
	for _, e := range edges {
		length += e.Length()
	}

	fmt.Fprintf(ew, "layout %s seed=%d grid=%d rooms=%d/%d triangles=%d edges=%d length=%.1f\n",
		l.ID, l.Seed, l.Grid.Size, len(rooms), l.Attempts, len(triangles), len(edges), length)

	tiles := world.Rasterize(l.Grid, rooms)
	for _, room := range rooms {
		x, y := room.Center()
		if l.Grid.InBounds(x, y) {
			tiles[y][x] = centerMark
		}
	}

	line := make([]rune, l.Grid.Size)
	for _, row := range tiles {
		for x, tile := range row {
			line[x] = tile.Rune()
		}
		fmt.Fprintln(ew, string(line))
	}

	for i, tri := range triangles {
		fmt.Fprintf(ew, "triangle %d: %v %v %v\n", i, tri.A, tri.B, tri.C)
	}
	return ew.err
}
