package ui

import "github.com/samdwyer/roomweave/internal/delaunay"

// PointTracker keeps the vertices the triangulator has accepted so far, so
// they can be drawn as markers. It implements delaunay.Observer.
type PointTracker struct {
	points []delaunay.Vertex
	resets int
}

// NewPointTracker creates an empty tracker.
func NewPointTracker() *PointTracker {
	return &PointTracker{}
}

// Reset discards all markers.
func (t *PointTracker) Reset() {
	t.resets++
	if len(t.points) != 0 {
		t.points = t.points[:0]
	}
}

// VertexAccepted adds a marker for v.
func (t *PointTracker) VertexAccepted(v delaunay.Vertex) {
	t.points = append(t.points, v)
}

// Points returns a copy of the current markers.
func (t *PointTracker) Points() []delaunay.Vertex {
	out := make([]delaunay.Vertex, len(t.points))
	copy(out, t.points)
	return out
}

// Resets returns how many times the markers have been cleared.
func (t *PointTracker) Resets() int {
	return t.resets
}
