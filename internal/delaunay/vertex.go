// Package delaunay builds Delaunay triangulations of planar point sets.
//
// Triangulate runs an incremental Bowyer-Watson construction. The hull is
// closed by a single ghost vertex standing in for the super-triangle.
// Orientation and in-circle decisions fall back to exact rational arithmetic
// when the floating point result is within its error bound.
package delaunay

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Vertex is a point in the plane. Two vertices are equal when their
// coordinates are equal.
type Vertex struct {
	X, Y float64
}

// Point converts the vertex to an r2.Point.
func (v Vertex) Point() r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

// IsFinite reports whether both coordinates are finite numbers.
func (v Vertex) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// String returns the vertex as "(x, y)".
func (v Vertex) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// less orders vertices lexicographically by X then Y.
func (v Vertex) less(o Vertex) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	return v.Y < o.Y
}

// Bounds returns the smallest rectangle containing all vertices.
func Bounds(vertices []Vertex) r2.Rect {
	if len(vertices) == 0 {
		return r2.EmptyRect()
	}
	rect := r2.RectFromPoints(vertices[0].Point())
	for _, v := range vertices[1:] {
		rect = rect.AddPoint(v.Point())
	}
	return rect
}
