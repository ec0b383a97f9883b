package delaunay

import "sort"

// Validate checks that every triangle is non-degenerate and that no vertex
// lies strictly inside the circumcircle of a triangle it is not part of.
// It returns a *ValidationError for the first violation found.
func Validate(triangles []Triangle, vertices []Vertex) error {
	for _, t := range triangles {
		a, b, c := t.A, t.B, t.C
		switch orient(a, b, c) {
		case 0:
			return &ValidationError{Triangle: t, Reason: "degenerate triangle"}
		case -1:
			b, c = c, b
		}
		for _, v := range vertices {
			if t.Has(v) {
				continue
			}
			if inCircle(a, b, c, v) > 0 {
				return &ValidationError{Triangle: t, Vertex: v, Reason: "vertex " + v.String() + " inside circumcircle"}
			}
		}
	}
	return nil
}

// Hull returns the convex hull of vertices in counter-clockwise order,
// starting from the vertex with the smallest X (then Y). Collinear points on
// hull edges are dropped, so collinear input gives its two extreme points.
func Hull(vertices []Vertex) []Vertex {
	pts := unique(vertices)
	sort.Slice(pts, func(i, j int) bool { return pts[i].less(pts[j]) })
	if len(pts) < 3 {
		return pts
	}

	hull := make([]Vertex, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && orient(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && orient(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}
