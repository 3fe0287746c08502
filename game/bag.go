package game

import (
	"errors"
	"math/rand"
)

// ErrBagEmpty is returned when drawing from a bag with no tiles left.
var ErrBagEmpty = errors.New("bag is empty")

// Bag holds the tiles that have not yet been drawn into the hand.
type Bag struct {
	tiles []Tile
}

// NewBag creates a full bag, CopiesPerCombo tiles of every shape/color
// combination, shuffled with the given source. Callers that need a
// reproducible order must supply a seeded source.
func NewBag(r *rand.Rand) *Bag {
	tiles := make([]Tile, 0, TotalTiles)
	for s := Shape(0); s < NumShapes; s++ {
		for c := Color(0); c < NumColors; c++ {
			for i := 0; i < CopiesPerCombo; i++ {
				tiles = append(tiles, Tile{Shape: s, Color: c})
			}
		}
	}
	r.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	return &Bag{tiles: tiles}
}

// Draw removes and returns the top tile. It never fabricates a tile:
// drawing from an empty bag returns ErrBagEmpty.
func (b *Bag) Draw() (Tile, error) {
	if len(b.tiles) == 0 {
		return Tile{}, ErrBagEmpty
	}
	t := b.tiles[len(b.tiles)-1]
	b.tiles = b.tiles[:len(b.tiles)-1]
	return t, nil
}

// Return puts a tile back on top of the bag.
func (b *Bag) Return(t Tile) {
	b.tiles = append(b.tiles, t)
}

// Len returns the number of undrawn tiles.
func (b *Bag) Len() int {
	return len(b.tiles)
}

// Empty returns true if no tiles are left.
func (b *Bag) Empty() bool {
	return len(b.tiles) == 0
}
