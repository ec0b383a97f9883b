package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"

	"github.com/samdwyer/roomweave/internal/delaunay"
	"github.com/samdwyer/roomweave/internal/layout"
	"github.com/samdwyer/roomweave/internal/theme"
)

// SVGOptions controls WriteSVG output.
type SVGOptions struct {
	Scale         int           // Pixels per grid unit; values below 1 use 10
	Palette       theme.Palette // Colours; the zero value uses the embedded palette
	Circumcircles bool          // Draw each triangle's circumcircle
	Hull          bool          // Outline the convex hull of the room centers
}

// WriteSVG draws the layout's rooms, triangulation edges and room centers.
// The view box covers the grid, and grows to fit circumcircles when they are
// drawn.
func WriteSVG(w io.Writer, l *layout.Layout, opts SVGOptions) error {
	if opts.Scale < 1 {
		opts.Scale = 10
	}
	if opts.Palette.Name == "" {
		p, err := theme.LoadPalette()
		if err != nil {
			return err
		}
		opts.Palette = p
	}
	pal := opts.Palette
	scale := float64(opts.Scale)
	size := l.Grid.Size * opts.Scale

	view := viewBox(l, opts.Circumcircles, scale)

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startview(view.width, view.height, view.x, view.y, view.width, view.height)
	canvas.Title(fmt.Sprintf("roomweave layout %s (seed %d)", l.ID, l.Seed))
	canvas.Rect(view.x, view.y, view.width, view.height, fill(pal.Background))
	canvas.Rect(0, 0, size, size, fill(pal.Grid))

	rooms := l.GetAcceptedRooms()
	canvas.Gid("rooms")
	for i, room := range rooms {
		shade := pal.RoomShade(i, len(rooms))
		canvas.Rect(room.X*opts.Scale, room.Y*opts.Scale, room.Width*opts.Scale, room.Height*opts.Scale,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", shade.Hex(), pal.RoomBorder))
	}
	canvas.Gend()

	if opts.Circumcircles {
		canvas.Gid("circumcircles")
		for _, tri := range l.GetTriangles() {
			center, radius := tri.Circumcircle()
			x, y := px(center, scale)
			canvas.Circle(x, y, int(math.Round(radius*scale)),
				fmt.Sprintf("fill:none;stroke:%s;stroke-width:1;stroke-dasharray:4,4", pal.Circle))
		}
		canvas.Gend()
	}

	if opts.Hull {
		hull := l.Hull()
		if len(hull) >= 3 {
			xs, ys := make([]int, len(hull)), make([]int, len(hull))
			for i, v := range hull {
				xs[i], ys[i] = px(v.Point(), scale)
			}
			canvas.Polygon(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", pal.Hull))
		}
	}

	canvas.Gid("edges")
	for _, e := range l.Edges() {
		x1, y1 := px(e.P.Point(), scale)
		x2, y2 := px(e.Q.Point(), scale)
		canvas.Line(x1, y1, x2, y2, fmt.Sprintf("stroke:%s;stroke-width:2", pal.Edge))
	}
	canvas.Gend()

	canvas.Gid("centers")
	radius := max(2, opts.Scale/4)
	for _, v := range l.Centers() {
		x, y := px(v.Point(), scale)
		canvas.Circle(x, y, radius, fill(pal.Point))
	}
	canvas.Gend()

	canvas.End()
	return ew.err
}

type box struct {
	x, y, width, height int
}

// viewBox returns the pixel rectangle covering the grid and room centers,
// plus every circumcircle when withCircles is set.
func viewBox(l *layout.Layout, withCircles bool, scale float64) box {
	size := float64(l.Grid.Size)
	corners := []delaunay.Vertex{{X: 0, Y: 0}, {X: size, Y: size}}
	extent := delaunay.Bounds(append(corners, l.Centers()...))

	if withCircles {
		for _, tri := range l.GetTriangles() {
			center, radius := tri.Circumcircle()
			extent = extent.Union(r2.RectFromCenterSize(center, r2.Point{X: 2 * radius, Y: 2 * radius}))
		}
	}

	lo, hi := extent.Lo().Mul(scale), extent.Hi().Mul(scale)
	x, y := int(math.Floor(lo.X)), int(math.Floor(lo.Y))
	return box{
		x:      x,
		y:      y,
		width:  int(math.Ceil(hi.X)) - x,
		height: int(math.Ceil(hi.Y)) - y,
	}
}

func px(p r2.Point, scale float64) (int, int) {
	s := p.Mul(scale)
	return int(math.Round(s.X)), int(math.Round(s.Y))
}

func fill(hex string) string {
	return "fill:" + hex
}
