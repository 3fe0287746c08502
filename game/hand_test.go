package game

import (
	"math/rand"
	"testing"
)

func TestRefillFullBag(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(1)))
	h := &Hand{}
	h.Refill(b)
	if h.Occupied() != HandSize {
		t.Fatalf("expected %d filled slots, got %d", HandSize, h.Occupied())
	}
	if b.Len() != TotalTiles-HandSize {
		t.Fatalf("expected %d tiles left in bag, got %d", TotalTiles-HandSize, b.Len())
	}
}

func TestRefillShortBag(t *testing.T) {
	b := &Bag{}
	b.Return(Tile{Shape: Square, Color: Blue})
	b.Return(Tile{Shape: Circle, Color: Red})
	h := &Hand{}
	h.Refill(b)
	if h.Occupied() != 2 {
		t.Fatalf("expected 2 filled slots, got %d", h.Occupied())
	}
	if !b.Empty() {
		t.Fatalf("bag should be drained, has %d", b.Len())
	}
	// Slots fill in index order.
	if _, ok := h.Slot(0); !ok {
		t.Fatal("slot 0 should be filled")
	}
	if _, ok := h.Slot(1); !ok {
		t.Fatal("slot 1 should be filled")
	}
	if _, ok := h.Slot(2); ok {
		t.Fatal("slot 2 should be empty")
	}
}

func TestRefillSkipsFilledSlots(t *testing.T) {
	h := &Hand{}
	keep := Tile{Shape: Asterisk, Color: Purple}
	if err := h.Put(3, keep); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}
	b := NewBag(rand.New(rand.NewSource(1)))
	h.Refill(b)
	got, ok := h.Slot(3)
	if !ok || got != keep {
		t.Fatalf("slot 3 should still hold %v, got %v (filled=%t)", keep, got, ok)
	}
	if b.Len() != TotalTiles-(HandSize-1) {
		t.Fatalf("expected %d draws, bag has %d", HandSize-1, TotalTiles-b.Len())
	}
}

func TestTake(t *testing.T) {
	h := &Hand{}
	want := Tile{Shape: Diamond, Color: Orange}
	if err := h.Put(2, want); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}
	got, err := h.Take(2)
	if err != nil {
		t.Fatalf("unexpected take error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if _, ok := h.Slot(2); ok {
		t.Fatal("slot 2 should be empty after take")
	}
}

func TestTakeInvalid(t *testing.T) {
	h := &Hand{}
	for _, i := range []int{-1, HandSize, 0} {
		if _, err := h.Take(i); err != ErrInvalidSlot {
			t.Fatalf("Take(%d): expected ErrInvalidSlot, got %v", i, err)
		}
	}
}

func TestPutOccupied(t *testing.T) {
	h := &Hand{}
	tile := Tile{Shape: Circle, Color: Yellow}
	if err := h.Put(0, tile); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}
	if err := h.Put(0, tile); err != ErrInvalidSlot {
		t.Fatalf("expected ErrInvalidSlot for occupied slot, got %v", err)
	}
	if err := h.Put(HandSize, tile); err != ErrInvalidSlot {
		t.Fatalf("expected ErrInvalidSlot for out-of-range slot, got %v", err)
	}
}

func TestFirstEmpty(t *testing.T) {
	h := &Hand{}
	i, ok := h.FirstEmpty()
	if !ok || i != 0 {
		t.Fatalf("expected slot 0, got %d (ok=%t)", i, ok)
	}
	for j := 0; j < HandSize; j++ {
		if err := h.Put(j, Tile{}); err != nil {
			t.Fatalf("unexpected put error: %v", err)
		}
	}
	if _, ok := h.FirstEmpty(); ok {
		t.Fatal("full hand should have no empty slot")
	}
}
