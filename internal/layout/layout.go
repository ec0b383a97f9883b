// Package layout generates room layouts and their Delaunay connectivity.
package layout

import (
	"github.com/google/uuid"

	"github.com/samdwyer/roomweave/internal/delaunay"
	"github.com/samdwyer/roomweave/internal/world"
)

// Layout is the immutable result of one generation run.
type Layout struct {
	ID       uuid.UUID  // Unique per run
	Seed     int64      // Seed the rooms were drawn with
	Grid     world.Grid // Domain the rooms were placed in
	Attempts int        // Placement attempts made
	Rejected int        // Candidates dropped for overlapping

	rooms         []world.Room
	triangulation *delaunay.Triangulation
}

// GetAcceptedRooms returns the placed rooms in acceptance order.
func (l *Layout) GetAcceptedRooms() []world.Room {
	out := make([]world.Room, len(l.rooms))
	copy(out, l.rooms)
	return out
}

// GetTriangles returns the Delaunay triangles over the room centers.
func (l *Layout) GetTriangles() []delaunay.Triangle {
	return l.triangulation.Triangles()
}

// Centers returns the room centers, one per room, in room order.
func (l *Layout) Centers() []delaunay.Vertex {
	return world.Centroids(l.rooms)
}

// Edges returns the unique connections between room centers.
func (l *Layout) Edges() []delaunay.Edge {
	return l.triangulation.Edges()
}

// Hull returns the convex hull of the room centers.
func (l *Layout) Hull() []delaunay.Vertex {
	return delaunay.Hull(l.Centers())
}

// RoomAt returns the index of the room whose center is v, or -1.
func (l *Layout) RoomAt(v delaunay.Vertex) int {
	for i, room := range l.rooms {
		if room.Centroid() == v {
			return i
		}
	}
	return -1
}
