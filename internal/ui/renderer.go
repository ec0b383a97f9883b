package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomweave/internal/delaunay"
	"github.com/samdwyer/roomweave/internal/layout"
	"github.com/samdwyer/roomweave/internal/theme"
	"github.com/samdwyer/roomweave/internal/world"
)

// cellWidth is the number of terminal columns per grid unit. Terminal cells
// are about twice as tall as they are wide.
const cellWidth = 2

// Layer selects what the renderer draws.
type Layer uint8

const (
	// LayerRooms draws room outlines and floors.
	LayerRooms Layer = 1 << iota
	// LayerEdges draws triangulation edges.
	LayerEdges
	// LayerPoints draws accepted vertex markers.
	LayerPoints

	// LayersAll enables every layer.
	LayersAll = LayerRooms | LayerEdges | LayerPoints
)

// Has returns true if every layer in other is enabled.
func (l Layer) Has(other Layer) bool {
	return l&other == other
}

// Toggle flips the given layer.
func (l Layer) Toggle(other Layer) Layer {
	return l ^ other
}

// String returns a compact description such as "rooms+edges".
func (l Layer) String() string {
	names := []struct {
		layer Layer
		name  string
	}{
		{LayerRooms, "rooms"},
		{LayerEdges, "edges"},
		{LayerPoints, "points"},
	}
	out := ""
	for _, n := range names {
		if !l.Has(n.layer) {
			continue
		}
		if out != "" {
			out += "+"
		}
		out += n.name
	}
	if out == "" {
		return "none"
	}
	return out
}

// Canvas is the drawing surface the renderer needs. *Screen satisfies it.
type Canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	DrawText(x, y int, text string, style tcell.Style)
	Show()
}

// Renderer draws layouts to a canvas.
type Renderer struct {
	canvas  Canvas
	palette theme.Palette
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas, palette theme.Palette) *Renderer {
	return &Renderer{canvas: canvas, palette: palette}
}

// Render draws the enabled layers of the layout plus a status line below it.
func (r *Renderer) Render(l *layout.Layout, points []delaunay.Vertex, layers Layer) {
	r.canvas.Clear()
	r.drawGrid(l.Grid)

	if layers.Has(LayerRooms) {
		r.drawRooms(l)
	}
	if layers.Has(LayerEdges) {
		r.drawEdges(l.Edges())
	}
	if layers.Has(LayerPoints) {
		r.drawPoints(points)
	}

	text := tcell.StyleDefault.Foreground(r.palette.Color(r.palette.Text))
	status := fmt.Sprintf("seed %d  rooms %d/%d  triangles %d  [%s]",
		l.Seed, len(l.GetAcceptedRooms()), l.Attempts, len(l.GetTriangles()), layers)
	r.canvas.DrawText(0, l.Grid.Size, status, text)
	r.canvas.DrawText(0, l.Grid.Size+1, "r: reseed  b/e/p: rooms/edges/points  q: quit", text)

	r.canvas.Show()
}

// drawGrid paints the empty grid area.
func (r *Renderer) drawGrid(grid world.Grid) {
	style := tcell.StyleDefault.Background(r.palette.Color(r.palette.Grid))
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			r.setCell(x, y, world.TileVoid.Rune(), style)
		}
	}
}

// drawRooms draws each room's tiles in its own shade.
func (r *Renderer) drawRooms(l *layout.Layout) {
	rooms := l.GetAcceptedRooms()
	tiles := world.Rasterize(l.Grid, rooms)
	border := r.palette.Color(r.palette.RoomBorder)

	for i, room := range rooms {
		floor := tcell.StyleDefault.Background(theme.TCell(r.palette.RoomShade(i, len(rooms))))
		for y := room.Y; y < room.Y+room.Height; y++ {
			for x := room.X; x < room.X+room.Width; x++ {
				if !l.Grid.InBounds(x, y) {
					continue
				}
				style := floor
				if tiles[y][x] == world.TileWall {
					style = floor.Foreground(border)
				}
				r.setCell(x, y, tiles[y][x].Rune(), style)
			}
		}
	}
}

// drawEdges rasterizes each edge with Bresenham's line algorithm.
func (r *Renderer) drawEdges(edges []delaunay.Edge) {
	style := tcell.StyleDefault.Foreground(r.palette.Color(r.palette.Edge))
	for _, e := range edges {
		x0, y0 := screenPos(e.P)
		x1, y1 := screenPos(e.Q)
		for _, p := range line(x0, y0, x1, y1) {
			r.canvas.SetContent(p[0], p[1], '*', style)
		}
	}
}

// drawPoints marks accepted vertices.
func (r *Renderer) drawPoints(points []delaunay.Vertex) {
	style := tcell.StyleDefault.Foreground(r.palette.Color(r.palette.Point)).Bold(true)
	for _, v := range points {
		x, y := screenPos(v)
		r.canvas.SetContent(x, y, '@', style)
	}
}

// setCell fills the columns of one grid cell.
func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	for dx := 0; dx < cellWidth; dx++ {
		r.canvas.SetContent(x*cellWidth+dx, y, ch, style)
	}
}

// screenPos maps a grid point to a terminal column and row.
func screenPos(v delaunay.Vertex) (int, int) {
	return int(math.Round(v.X * cellWidth)), int(math.Round(v.Y))
}

// line returns the cells from (x0, y0) to (x1, y1) inclusive.
func line(x0, y0, x1, y1 int) [][2]int {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	cells := make([][2]int, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		cells = append(cells, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return cells
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
