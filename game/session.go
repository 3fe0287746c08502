package game

import (
	"errors"
	"math/rand"
)

// ErrNoSelection is returned when a board placement is requested with no hand
// slot selected.
var ErrNoSelection = errors.New("no hand slot selected")

// noSelection marks an empty selection.
const noSelection = -1

// Session owns the state of one sitting: the bag, the hand, the committed
// board, and the current turn's staged placements plus the selected hand
// slot. All mutation goes through the intent methods below; the UI only
// reads. A tile is always in exactly one of bag, hand, staging or board.
type Session struct {
	bag      *Bag
	hand     *Hand
	board    *Board
	staged   map[Coord]Tile
	selected int
}

// NewSession shuffles a fresh bag with the given source and deals the
// opening hand.
func NewSession(r *rand.Rand) *Session {
	s := &Session{
		bag:      NewBag(r),
		hand:     &Hand{},
		board:    NewBoard(),
		staged:   make(map[Coord]Tile),
		selected: noSelection,
	}
	s.hand.Refill(s.bag)
	return s
}

// SelectSlot toggles the hand selection. Selecting the already-selected slot
// clears the selection, selecting a different filled slot moves it, and
// selecting an empty slot or an out-of-range index changes nothing.
func (s *Session) SelectSlot(i int) {
	if _, ok := s.hand.Slot(i); !ok {
		return
	}
	if s.selected == i {
		s.selected = noSelection
		return
	}
	s.selected = i
}

// PlaceAt stages the selected hand tile at the cell and clears the
// selection. The cell must be free on both the board and the staging area;
// otherwise nothing changes and the reason is returned.
func (s *Session) PlaceAt(c Coord) error {
	if s.selected == noSelection {
		return ErrNoSelection
	}
	if s.board.Occupied(c) {
		return ErrOccupied
	}
	if _, ok := s.staged[c]; ok {
		return ErrOccupied
	}
	t, err := s.hand.Take(s.selected)
	if err != nil {
		return err
	}
	s.staged[c] = t
	s.selected = noSelection
	return nil
}

// Confirm commits every staged placement to the board, then refills the hand
// from the bag. With nothing staged it only clears the selection.
func (s *Session) Confirm() {
	for c, t := range s.staged {
		// Staging already guaranteed the cell is free on the board.
		_ = s.board.Place(c, t)
	}
	s.staged = make(map[Coord]Tile)
	s.hand.Refill(s.bag)
	s.selected = noSelection
}

// Reset takes back the turn's staged placements. Each staged tile goes to the
// first empty hand slot; if the hand is somehow full (each staged tile vacated
// a slot, so this cannot normally happen) the tile goes back to the bag so no
// tile is ever lost. The board and selection end up as they were at the start
// of the turn.
func (s *Session) Reset() {
	for _, p := range sortPlacements(s.staged) {
		i, ok := s.hand.FirstEmpty()
		if !ok {
			s.bag.Return(p.Tile)
			continue
		}
		_ = s.hand.Put(i, p.Tile)
	}
	s.staged = make(map[Coord]Tile)
	s.selected = noSelection
}

// SelectedSlot returns the selected hand slot, with false if none is
// selected.
func (s *Session) SelectedSlot() (int, bool) {
	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}

// Staged returns the turn's staged placements ordered by row, then column.
func (s *Session) Staged() []Placement {
	return sortPlacements(s.staged)
}

// StagedAt returns the staged tile at the cell, with false if the cell has
// no staged tile.
func (s *Session) StagedAt(c Coord) (Tile, bool) {
	t, ok := s.staged[c]
	return t, ok
}

// StagedCount returns the number of staged placements.
func (s *Session) StagedCount() int {
	return len(s.staged)
}

// Hand returns the player's hand.
func (s *Session) Hand() *Hand {
	return s.hand
}

// Board returns the committed board.
func (s *Session) Board() *Board {
	return s.board
}

// BagCount returns the number of undrawn tiles.
func (s *Session) BagCount() int {
	return s.bag.Len()
}
