package world

// Grid is the square domain [0, Size) x [0, Size) that rooms are placed in.
type Grid struct {
	Size int
}

// NewGrid creates a grid with the given side length.
func NewGrid(size int) (Grid, error) {
	if size <= 0 {
		return Grid{}, &ConfigurationError{Field: "gridSize", Value: size, Reason: "must be positive"}
	}
	return Grid{Size: size}, nil
}

// Fits returns true if the room lies entirely inside the grid.
func (g Grid) Fits(r Room) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.Width <= g.Size && r.Y+r.Height <= g.Size
}

// InBounds returns true if the cell is inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Size && y >= 0 && y < g.Size
}
