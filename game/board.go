package game

import (
	"errors"
	"sort"
)

// ErrOccupied is returned when a placement targets a cell that already holds
// a tile, committed or staged.
var ErrOccupied = errors.New("cell is already occupied")

// Board is the sparse grid of committed tiles. Tiles are only ever added;
// a committed tile is never moved, removed or overwritten.
type Board struct {
	tiles map[Coord]Tile
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{tiles: make(map[Coord]Tile)}
}

// Place commits a tile to the cell. The board enforces its own invariant:
// placing on an occupied cell returns ErrOccupied and changes nothing.
func (b *Board) Place(c Coord, t Tile) error {
	if _, ok := b.tiles[c]; ok {
		return ErrOccupied
	}
	b.tiles[c] = t
	return nil
}

// Occupied returns true if the cell holds a committed tile.
func (b *Board) Occupied(c Coord) bool {
	_, ok := b.tiles[c]
	return ok
}

// At returns the tile at the cell, with false if the cell is empty.
func (b *Board) At(c Coord) (Tile, bool) {
	t, ok := b.tiles[c]
	return t, ok
}

// Len returns the number of committed tiles.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Tiles returns the committed placements ordered by row, then column.
// The slice is a snapshot; mutating it does not affect the board.
func (b *Board) Tiles() []Placement {
	return sortPlacements(b.tiles)
}

// sortPlacements flattens a cell map into a row-major sorted slice.
func sortPlacements(tiles map[Coord]Tile) []Placement {
	ps := make([]Placement, 0, len(tiles))
	for c, t := range tiles {
		ps = append(ps, Placement{Coord: c, Tile: t})
	}
	sort.Slice(ps, func(i, j int) bool {
		a, b := ps[i].Coord, ps[j].Coord
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return ps
}
