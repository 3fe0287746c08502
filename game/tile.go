// Package game implements the tile, bag, hand and board bookkeeping for a
// Qwirkle-style placement game: a shuffled 108-tile bag, a six-slot hand,
// a sparse board, and the staging of a turn's provisional placements.
package game

import "fmt"

// Shape is the symbol printed on a tile.
type Shape int

// The six tile shapes.
const (
	Circle Shape = iota
	Square
	Diamond
	Fourpoint
	Clover
	Asterisk
)

// Color is the color a tile's shape is printed in.
type Color int

// The six tile colors.
const (
	Red Color = iota
	Orange
	Yellow
	Green
	Blue
	Purple
)

const (
	// NumShapes is the number of distinct shapes.
	NumShapes = 6
	// NumColors is the number of distinct colors.
	NumColors = 6
	// CopiesPerCombo is how many identical tiles of each shape/color
	// combination the bag starts with.
	CopiesPerCombo = 3
	// TotalTiles is the number of tiles in a full bag.
	TotalTiles = NumShapes * NumColors * CopiesPerCombo
)

var shapeNames = [NumShapes]string{"circle", "square", "diamond", "fourpoint", "clover", "asterisk"}
var colorNames = [NumColors]string{"red", "orange", "yellow", "green", "blue", "purple"}

// String returns the lowercase shape name, or "shape(n)" if out of range.
func (s Shape) String() string {
	if s < 0 || s >= NumShapes {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

// String returns the lowercase color name, or "color(n)" if out of range.
func (c Color) String() string {
	if c < 0 || c >= NumColors {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

// Tile is a game piece. Tiles are plain comparable values; two tiles with the
// same shape and color are interchangeable.
type Tile struct {
	Shape Shape
	Color Color
}

// String returns e.g. "blue square".
func (t Tile) String() string {
	return t.Color.String() + " " + t.Shape.String()
}

// Coord addresses a cell on the unbounded sparse board.
type Coord struct {
	X int
	Y int
}

// String returns e.g. "(3, -1)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Placement pairs a tile with the cell it occupies.
type Placement struct {
	Coord Coord
	Tile  Tile
}
