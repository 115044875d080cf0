package board

import (
	"testing"

	"golang.org/x/exp/rand"
)

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TestStartup is spec seed scenario 1.
func TestStartup(t *testing.T) {
	s := New(seededRand(1))

	if !s.IsDrafting() {
		t.Fatal("fresh game should be drafting")
	}
	if s.ActivePlayer != Player0 {
		t.Fatalf("active player = %v, want Player0", s.ActivePlayer)
	}
	if s.Turn != 0 {
		t.Fatalf("turn = %d, want 0", s.Turn)
	}

	oneFish := 0
	for c := Cell(0); c < NumCells; c++ {
		if s.Fish[c] == 1 {
			oneFish++
		}
	}
	if oneFish != 30 {
		t.Fatalf("one-fish cells = %d, want 30", oneFish)
	}
	if s.LegalDrafts().Count() != 30 {
		t.Fatalf("LegalDrafts().Count() = %d, want 30", s.LegalDrafts().Count())
	}

	for c := Cell(0); c < NumCells; c++ {
		if s.LegalMoves(c).Count() != 0 {
			t.Fatalf("LegalMoves(%d) should be empty before any penguin is placed", c)
		}
	}
}

// TestInitialFishMultiset checks the fixed 30/20/10 fish multiset survives
// the Fisher-Yates shuffle regardless of seed.
func TestInitialFishMultiset(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 12345} {
		s := New(seededRand(seed))
		counts := map[uint8]int{}
		for c := Cell(0); c < NumCells; c++ {
			counts[s.Fish[c]]++
		}
		if counts[1] != 30 || counts[2] != 20 || counts[3] != 10 {
			t.Fatalf("seed %d: fish counts = %v, want {1:30,2:20,3:10}", seed, counts)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New(seededRand(7))
	clone := s.Clone()
	dst := s.LegalDrafts().Cells()[0]
	if err := s.Place(dst); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if !clone.IsDrafting() || clone.Turn != 0 {
		t.Fatal("clone should be unaffected by mutating the original")
	}
	if clone.Fish[dst] != 1 {
		t.Fatal("clone's fish array should be untouched")
	}
}
