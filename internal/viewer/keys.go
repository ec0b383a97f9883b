package viewer

import "github.com/samdwyer/roomweave/internal/ui"

// action is something a key press asks the viewer to do.
type action int

const (
	actionQuit action = iota
	actionReseed
	actionToggleRooms
	actionToggleEdges
	actionTogglePoints
)

// keyActions maps rune keys to viewer actions.
var keyActions = map[rune]action{
	'q': actionQuit,
	'Q': actionQuit,
	'r': actionReseed,
	'b': actionToggleRooms,
	'e': actionToggleEdges,
	'p': actionTogglePoints,
}

// apply returns the layers after a toggle action. Other actions leave the
// layers unchanged.
func (a action) apply(layers ui.Layer) ui.Layer {
	switch a {
	case actionToggleRooms:
		return layers.Toggle(ui.LayerRooms)
	case actionToggleEdges:
		return layers.Toggle(ui.LayerEdges)
	case actionTogglePoints:
		return layers.Toggle(ui.LayerPoints)
	default:
		return layers
	}
}

// String returns a human-readable action name.
func (a action) String() string {
	switch a {
	case actionQuit:
		return "quit"
	case actionReseed:
		return "reseed"
	case actionToggleRooms:
		return "toggle_rooms"
	case actionToggleEdges:
		return "toggle_edges"
	case actionTogglePoints:
		return "toggle_points"
	default:
		return "unknown"
	}
}
