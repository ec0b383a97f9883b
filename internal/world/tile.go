// Package world provides room placement on a square grid.
package world

// Tile represents a single grid cell in a rasterized layout.
type Tile rune

const (
	// TileVoid is a cell outside every room.
	TileVoid Tile = ' '
	// TileWall is a cell on the border of a room.
	TileWall Tile = '#'
	// TileFloor is a cell inside a room.
	TileFloor Tile = '.'
)

// IsRoom returns true if the tile belongs to a room.
func (t Tile) IsRoom() bool {
	return t == TileWall || t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// Rasterize draws the rooms onto a Size x Size tile map indexed [y][x].
// Room borders become walls and interiors become floor. Cells outside the
// grid are clipped.
func Rasterize(grid Grid, rooms []Room) [][]Tile {
	tiles := make([][]Tile, grid.Size)
	for y := range tiles {
		tiles[y] = make([]Tile, grid.Size)
		for x := range tiles[y] {
			tiles[y][x] = TileVoid
		}
	}

	for _, room := range rooms {
		for y := room.Y; y < room.Y+room.Height; y++ {
			for x := room.X; x < room.X+room.Width; x++ {
				if !grid.InBounds(x, y) {
					continue
				}
				border := x == room.X || x == room.X+room.Width-1 ||
					y == room.Y || y == room.Y+room.Height-1
				if border {
					tiles[y][x] = TileWall
				} else {
					tiles[y][x] = TileFloor
				}
			}
		}
	}
	return tiles
}
