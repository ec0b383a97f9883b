package delaunay

import (
	"math"

	"github.com/golang/geo/r2"
)

// Triangle is a non-degenerate triangle. Triangles produced by Triangulate
// are wound counter-clockwise.
type Triangle struct {
	A, B, C Vertex
}

// Vertices returns the three corners in order.
func (t Triangle) Vertices() [3]Vertex {
	return [3]Vertex{t.A, t.B, t.C}
}

// Has reports whether v is one of the corners.
func (t Triangle) Has(v Vertex) bool {
	return t.A == v || t.B == v || t.C == v
}

// Edges returns the three sides a-b, b-c and c-a.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{NewEdge(t.A, t.B), NewEdge(t.B, t.C), NewEdge(t.C, t.A)}
}

// Area returns the unsigned area.
func (t Triangle) Area() float64 {
	ab := t.B.Point().Sub(t.A.Point())
	ac := t.C.Point().Sub(t.A.Point())
	return math.Abs(ab.Cross(ac)) / 2
}

// InCircumcircle reports whether v lies strictly inside the circle through
// the three corners. Points on the circle are not inside.
func (t Triangle) InCircumcircle(v Vertex) bool {
	a, b, c := t.A, t.B, t.C
	if orient(a, b, c) < 0 {
		b, c = c, b
	}
	return inCircle(a, b, c, v) > 0
}

// Circumcircle returns the center and radius of the circle through the
// three corners.
func (t Triangle) Circumcircle() (r2.Point, float64) {
	origin := t.A.Point()
	b := t.B.Point().Sub(origin)
	c := t.C.Point().Sub(origin)
	d := 2 * b.Cross(c)
	bb := b.Dot(b)
	cc := c.Dot(c)
	u := r2.Point{
		X: (c.Y*bb - b.Y*cc) / d,
		Y: (b.X*cc - c.X*bb) / d,
	}
	return origin.Add(u), u.Norm()
}

// Edge is an undirected segment between two vertices. P is always the
// lexicographically smaller endpoint so equal edges compare equal.
type Edge struct {
	P, Q Vertex
}

// NewEdge returns the canonical edge between p and q.
func NewEdge(p, q Vertex) Edge {
	if q.less(p) {
		p, q = q, p
	}
	return Edge{P: p, Q: q}
}

// Length returns the euclidean length of the edge.
func (e Edge) Length() float64 {
	return e.Q.Point().Sub(e.P.Point()).Norm()
}
