package board

import (
	"errors"
	"testing"
)

// TestIllegalDraftLeavesStateUnchanged is spec seed scenario 2.
func TestIllegalDraftLeavesStateUnchanged(t *testing.T) {
	s := New(seededRand(2))
	var target Cell = -1
	for c := Cell(0); c < NumCells; c++ {
		if s.Fish[c] != 1 {
			target = c
			break
		}
	}
	if target < 0 {
		t.Fatal("expected at least one non-one-fish cell")
	}
	before := *s

	err := s.Place(target)
	if err == nil {
		t.Fatal("expected an error placing on a non-one-fish cell")
	}
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
	if *s != before {
		t.Fatal("state must be unchanged after a rejected placement")
	}
}

// TestDraftCompletes is spec seed scenario 3.
func TestDraftCompletes(t *testing.T) {
	s := New(seededRand(3))
	for i := 0; i < 4; i++ {
		drafts := s.LegalDrafts().Cells()
		if len(drafts) == 0 {
			t.Fatalf("round %d: no legal drafts left", i)
		}
		if err := s.Place(drafts[0]); err != nil {
			t.Fatalf("round %d: unexpected error: %v", i, err)
		}
	}
	if !s.FinishedDrafting() {
		t.Fatal("expected drafting to be finished after 4 placements")
	}
	if s.Scores[0] != 2 || s.Scores[1] != 2 {
		t.Fatalf("scores = %v, want [2 2]", s.Scores)
	}
	if s.Turn != 4 {
		t.Fatalf("turn = %d, want 4", s.Turn)
	}
	if s.ActivePlayer != Player0 {
		t.Fatalf("active player = %v, want Player0", s.ActivePlayer)
	}
}

// buildPlayState constructs a post-draft State directly, bypassing Place,
// so play-phase rules can be exercised in isolation.
func buildPlayState() *State {
	s := &State{
		ActivePlayer: Player0,
		Phase:        PhasePlay,
	}
	for c := Cell(0); c < NumCells; c++ {
		s.Fish[c] = 1
	}
	return s
}

// TestSlideOnAOneFishTile is spec seed scenario 4.
func TestSlideOnAOneFishTile(t *testing.T) {
	s := buildPlayState()
	src := CellAt(0, 0)
	mid := CellAt(0, 1)
	dst := CellAt(0, 2)
	if !src.Valid() || !mid.Valid() || !dst.Valid() {
		t.Fatal("row 0 must have at least 3 cells")
	}
	s.Penguins[Player0] = s.Penguins[Player0].Set(src)
	s.Penguins[Player1] = s.Penguins[Player1].Set(CellAt(7, 0))

	if s.LegalMoves(src).Count() == 0 {
		t.Fatal("expected at least one legal slide from src")
	}
	if !s.LegalMoves(src).Has(dst) {
		t.Fatal("expected dst to be reachable by an unobstructed ray of length 2")
	}

	wantGain := int(s.Fish[src])
	wantScore := s.Scores[Player0] + wantGain

	if err := s.Move(src, dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Scores[Player0] != wantScore {
		t.Fatalf("scores[0] = %d, want %d", s.Scores[Player0], wantScore)
	}
	if s.Penguins[Player0].Has(src) || !s.Penguins[Player0].Has(dst) {
		t.Fatal("penguin should have moved from src to dst")
	}
	if !s.Claimed[Player0].Has(src) {
		t.Fatal("src should now be claimed by the mover")
	}
	if s.LegalMoves(src).Count() != 0 {
		t.Fatal("possible_moves(src) must be empty once no penguin occupies it")
	}
}

// TestBlockedSlide is spec seed scenario 5.
func TestBlockedSlide(t *testing.T) {
	s := buildPlayState()
	src := CellAt(0, 0)
	mid := CellAt(0, 1)
	dst := CellAt(0, 2)
	s.Penguins[Player0] = s.Penguins[Player0].Set(src)
	s.Claimed[Player1] = s.Claimed[Player1].Set(mid)
	s.Fish[mid] = 0

	before := *s
	err := s.Move(src, dst)
	if err == nil {
		t.Fatal("expected a blocked slide to fail")
	}
	if *s != before {
		t.Fatal("state must be unchanged after a rejected slide")
	}
}

// TestTerminal is spec seed scenario 6.
func TestTerminal(t *testing.T) {
	s := buildPlayState()

	p0Cell := CellAt(3, 3)
	p1Cell := CellAt(5, 5)
	if !p0Cell.Valid() || !p1Cell.Valid() {
		t.Fatal("expected both interior cells to be valid")
	}
	s.Penguins[Player0] = s.Penguins[Player0].Set(p0Cell)
	s.Penguins[Player1] = s.Penguins[Player1].Set(p1Cell)

	// Surround both penguins completely so neither has a legal slide.
	for _, n := range Neighbors(p0Cell) {
		if n.Valid() {
			s.Claimed[Player1] = s.Claimed[Player1].Set(n)
			s.Fish[n] = 0
		}
	}
	for _, n := range Neighbors(p1Cell) {
		if n.Valid() {
			s.Claimed[Player0] = s.Claimed[Player0].Set(n)
			s.Fish[n] = 0
		}
	}

	if s.hasMovablePenguin(Player0) || s.hasMovablePenguin(Player1) {
		t.Fatal("expected neither player to have a movable penguin")
	}

	wantScore0 := s.Scores[Player0] + int(s.Fish[p0Cell])
	wantScore1 := s.Scores[Player1] + int(s.Fish[p1Cell])

	s.advanceAfterMove()

	if !s.GameOver() {
		t.Fatal("expected game to be over")
	}
	if s.ActivePlayer != NoPlayer {
		t.Fatalf("active player = %v, want NoPlayer", s.ActivePlayer)
	}
	if s.Scores[Player0] != wantScore0 || s.Scores[Player1] != wantScore1 {
		t.Fatalf("scores = %v, want [%d %d]", s.Scores, wantScore0, wantScore1)
	}
	if !s.Penguins[Player0].Empty() || !s.Penguins[Player1].Empty() {
		t.Fatal("penguins bitboards must be empty once the game ends")
	}
	if !s.Claimed[Player0].Has(p0Cell) {
		t.Fatal("player 0's final cell should be auto-claimed at game end")
	}
	if !s.Claimed[Player1].Has(p1Cell) {
		t.Fatal("player 1's final cell should be auto-claimed at game end")
	}
}

func TestAdvanceAfterMoveSkipsStuckPlayer(t *testing.T) {
	s := buildPlayState()
	stuck := CellAt(3, 3)
	mover := CellAt(5, 5)
	s.Penguins[Player0] = s.Penguins[Player0].Set(stuck)
	s.Penguins[Player1] = s.Penguins[Player1].Set(mover)
	for _, n := range Neighbors(stuck) {
		if n.Valid() {
			s.Claimed[Player1] = s.Claimed[Player1].Set(n)
			s.Fish[n] = 0
		}
	}
	s.ActivePlayer = Player1

	s.advanceAfterMove()
	if s.GameOver() {
		t.Fatal("player 1 still has a movable penguin; game should not be over")
	}
	if s.ActivePlayer != Player1 {
		t.Fatalf("active player = %v, want Player1 (player 0 is stuck)", s.ActivePlayer)
	}
}
