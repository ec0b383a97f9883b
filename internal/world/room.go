package world

import "github.com/samdwyer/roomweave/internal/delaunay"

// Room represents a rectangular room on the grid.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Center returns the cell nearest the middle of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Centroid returns the exact middle of the room.
func (r Room) Centroid() delaunay.Vertex {
	return delaunay.Vertex{
		X: float64(r.X) + float64(r.Width)/2,
		Y: float64(r.Y) + float64(r.Height)/2,
	}
}

// Contains returns true if the given cell is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Overlaps returns true if this room overlaps or touches another room.
// Rooms sharing an edge or a corner count as overlapping.
func (r Room) Overlaps(other Room) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Centroids returns the centroid of every room, in order.
func Centroids(rooms []Room) []delaunay.Vertex {
	centers := make([]delaunay.Vertex, len(rooms))
	for i, room := range rooms {
		centers[i] = room.Centroid()
	}
	return centers
}
