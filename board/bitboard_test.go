package board

import "testing"

func TestBitboardSetHasClear(t *testing.T) {
	var b Bitboard
	if !b.Empty() {
		t.Fatal("zero value should be empty")
	}
	b = b.Set(5).Set(10)
	if !b.Has(5) || !b.Has(10) {
		t.Fatal("expected 5 and 10 to be set")
	}
	if b.Has(6) {
		t.Fatal("6 should not be set")
	}
	if b.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", b.Count())
	}
	b = b.Clear(5)
	if b.Has(5) {
		t.Fatal("5 should be cleared")
	}
	if b.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", b.Count())
	}
}

func TestBitboardUnionIntersectComplement(t *testing.T) {
	a := Bitboard(0).Set(1).Set(2).Set(3)
	b := Bitboard(0).Set(2).Set(3).Set(4)
	if u := a.Union(b); u.Count() != 4 {
		t.Fatalf("union count = %d, want 4", u.Count())
	}
	if i := a.Intersect(b); i.Count() != 2 || !i.Has(2) || !i.Has(3) {
		t.Fatalf("intersect = %v, want {2,3}", i.Cells())
	}
	full := Bitboard(0).Complement()
	if full.Count() != NumCells {
		t.Fatalf("complement of empty has %d bits, want %d", full.Count(), NumCells)
	}
	if full.Has(NumCells) {
		t.Fatal("complement must not set bits beyond NumCells")
	}
}

func TestBitboardCellsAscending(t *testing.T) {
	b := Bitboard(0).Set(40).Set(1).Set(20)
	cells := b.Cells()
	want := []Cell{1, 20, 40}
	if len(cells) != len(want) {
		t.Fatalf("Cells() = %v, want %v", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("Cells() = %v, want %v", cells, want)
		}
	}
}
