package game

import (
	"math/rand"
	"testing"
)

func TestNewBagComposition(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(1)))
	if b.Len() != TotalTiles {
		t.Fatalf("expected %d tiles, got %d", TotalTiles, b.Len())
	}
	counts := make(map[Tile]int)
	for !b.Empty() {
		tile, err := b.Draw()
		if err != nil {
			t.Fatalf("unexpected draw error: %v", err)
		}
		counts[tile]++
	}
	if len(counts) != NumShapes*NumColors {
		t.Fatalf("expected %d distinct tiles, got %d", NumShapes*NumColors, len(counts))
	}
	for tile, n := range counts {
		if n != CopiesPerCombo {
			t.Fatalf("expected %d copies of %v, got %d", CopiesPerCombo, tile, n)
		}
	}
}

func TestDrawReducesBag(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(1)))
	if _, err := b.Draw(); err != nil {
		t.Fatalf("unexpected draw error: %v", err)
	}
	if b.Len() != TotalTiles-1 {
		t.Fatalf("expected %d tiles after draw, got %d", TotalTiles-1, b.Len())
	}
}

func TestDrawEmptyBag(t *testing.T) {
	b := &Bag{}
	if !b.Empty() {
		t.Fatal("zero-value bag should be empty")
	}
	if _, err := b.Draw(); err != ErrBagEmpty {
		t.Fatalf("expected ErrBagEmpty, got %v", err)
	}
}

func TestReturnThenDraw(t *testing.T) {
	b := &Bag{}
	want := Tile{Shape: Clover, Color: Green}
	b.Return(want)
	if b.Len() != 1 {
		t.Fatalf("expected 1 tile, got %d", b.Len())
	}
	got, err := b.Draw()
	if err != nil {
		t.Fatalf("unexpected draw error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestShuffleReproducible(t *testing.T) {
	b1 := NewBag(rand.New(rand.NewSource(42)))
	b2 := NewBag(rand.New(rand.NewSource(42)))
	for !b1.Empty() {
		t1, _ := b1.Draw()
		t2, _ := b2.Draw()
		if t1 != t2 {
			t.Fatalf("same seed should give same order: %v != %v", t1, t2)
		}
	}
	if !b2.Empty() {
		t.Fatal("bags should drain together")
	}
}
