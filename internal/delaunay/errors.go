package delaunay

import "fmt"

// GeometryError reports an input vertex that cannot be triangulated.
type GeometryError struct {
	Index  int    // Position of the vertex in the input slice
	Vertex Vertex // The offending vertex
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("delaunay: vertex %d has non-finite coordinates %v", e.Index, e.Vertex)
}

// ValidationError describes a triangle that breaks the Delaunay condition.
type ValidationError struct {
	Triangle Triangle
	Vertex   Vertex // Vertex found inside the circumcircle, zero if the triangle is degenerate
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("delaunay: triangle %v %v %v: %s", e.Triangle.A, e.Triangle.B, e.Triangle.C, e.Reason)
}
