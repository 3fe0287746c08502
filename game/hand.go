package game

import "errors"

// HandSize is the fixed number of slots in a hand.
const HandSize = 6

// ErrInvalidSlot is returned when a slot index is out of range or the slot is
// in the wrong filled/empty state for the requested operation.
var ErrInvalidSlot = errors.New("invalid hand slot")

type handSlot struct {
	tile   Tile
	filled bool
}

// Hand is the player's six tile slots. The number of slots never changes;
// individual slots are filled or empty.
type Hand struct {
	slots [HandSize]handSlot
}

// Refill draws from the bag into each empty slot in index order. It stops
// quietly when the bag runs out, leaving the remaining slots empty.
func (h *Hand) Refill(b *Bag) {
	for i := range h.slots {
		if h.slots[i].filled {
			continue
		}
		t, err := b.Draw()
		if err != nil {
			return
		}
		h.slots[i] = handSlot{tile: t, filled: true}
	}
}

// Take empties the slot and returns its tile.
func (h *Hand) Take(i int) (Tile, error) {
	if i < 0 || i >= HandSize || !h.slots[i].filled {
		return Tile{}, ErrInvalidSlot
	}
	t := h.slots[i].tile
	h.slots[i] = handSlot{}
	return t, nil
}

// Put fills an empty slot with the tile. Used when a staged placement is
// taken back.
func (h *Hand) Put(i int, t Tile) error {
	if i < 0 || i >= HandSize || h.slots[i].filled {
		return ErrInvalidSlot
	}
	h.slots[i] = handSlot{tile: t, filled: true}
	return nil
}

// Slot returns the tile in slot i, with false if the slot is empty or the
// index is out of range.
func (h *Hand) Slot(i int) (Tile, bool) {
	if i < 0 || i >= HandSize || !h.slots[i].filled {
		return Tile{}, false
	}
	return h.slots[i].tile, true
}

// Occupied returns the number of filled slots.
func (h *Hand) Occupied() int {
	n := 0
	for i := range h.slots {
		if h.slots[i].filled {
			n++
		}
	}
	return n
}

// FirstEmpty returns the lowest empty slot index, with false if the hand is
// full.
func (h *Hand) FirstEmpty() (int, bool) {
	for i := range h.slots {
		if !h.slots[i].filled {
			return i, true
		}
	}
	return 0, false
}
