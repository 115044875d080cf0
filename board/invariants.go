package board

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// maxTotalFish is the sum of every fish value ever on the board:
// 30*1 + 20*2 + 10*3.
const maxTotalFish = 30*1 + 20*2 + 10*3

// CheckInvariants verifies the board's bookkeeping invariants against s,
// aggregating every violation found (rather than stopping at the first)
// via multierror. It is a debug/test helper, never called from
// Place/Move/RandomPlayout themselves: internal invariant violations are a
// programming error to be caught in tests, not runtime-checked on every
// call.
//
// original is the fish assignment New(...) produced before any claims;
// since Fish[c] reads 0 once c is claimed, the scoring invariant
// (scores[p] == sum of initial fish over claimed[p]) can only be checked
// against that original snapshot. Pass nil to skip that one check (e.g.
// when the original assignment is unknown to the caller).
func CheckInvariants(s *State, original *[NumCells]uint8) error {
	var errs *multierror.Error

	if s.Claimed[0].Intersect(s.Claimed[1]) != 0 {
		errs = multierror.Append(errs, fmt.Errorf("claimed[0] and claimed[1] overlap"))
	}
	if s.Penguins[0].Intersect(s.Penguins[1]) != 0 {
		errs = multierror.Append(errs, fmt.Errorf("penguins[0] and penguins[1] overlap"))
	}
	if s.Claimed[0].Intersect(s.Penguins[1]) != 0 {
		errs = multierror.Append(errs, fmt.Errorf("claimed[0] overlaps penguins[1]"))
	}
	if s.Claimed[1].Intersect(s.Penguins[0]) != 0 {
		errs = multierror.Append(errs, fmt.Errorf("claimed[1] overlaps penguins[0]"))
	}

	claimedUnion := s.Claimed[0].Union(s.Claimed[1])
	occupied := s.occupied()
	for c := Cell(0); c < NumCells; c++ {
		if s.Fish[c] > 0 && claimedUnion.Has(c) {
			errs = multierror.Append(errs, fmt.Errorf("cell %d has fish but is claimed", c))
		}
		if s.Fish[c] == 0 && !claimedUnion.Has(c) && !occupied.Has(c) {
			errs = multierror.Append(errs, fmt.Errorf("cell %d has zero fish but is neither claimed nor occupied", c))
		}
	}

	for p := Player(0); p < NumPlayers; p++ {
		if s.Scores[p] < 0 {
			errs = multierror.Append(errs, fmt.Errorf("player %d has negative score %d", p, s.Scores[p]))
		}
		if original != nil {
			want := 0
			for _, c := range s.Claimed[p].Cells() {
				want += int(original[c])
			}
			if s.Scores[p] != want {
				errs = multierror.Append(errs, fmt.Errorf("player %d score %d, want %d (sum of original fish over claimed cells)", p, s.Scores[p], want))
			}
		}
	}
	if total := s.Scores[0] + s.Scores[1]; total > maxTotalFish {
		errs = multierror.Append(errs, fmt.Errorf("combined score %d exceeds the %d fish on the board", total, maxTotalFish))
	}

	penguinCount := s.totalPenguins()
	switch {
	case s.IsDrafting():
		if penguinCount != s.draftsPlaced[0]+s.draftsPlaced[1] {
			errs = multierror.Append(errs, fmt.Errorf("penguin count %d does not match drafts placed", penguinCount))
		}
	case s.FinishedDrafting() && !s.GameOver():
		if penguinCount != draftsPerPlayer*NumPlayers {
			errs = multierror.Append(errs, fmt.Errorf("penguin count %d, want %d once drafting finished", penguinCount, draftsPerPlayer*NumPlayers))
		}
	case s.GameOver():
		if penguinCount != 0 {
			errs = multierror.Append(errs, fmt.Errorf("penguin count %d, want 0 once the game is over", penguinCount))
		}
	}

	for p := Player(0); p < NumPlayers; p++ {
		for _, src := range s.Penguins[p].Cells() {
			if s.rawLegalMoves(src).Intersect(claimedUnion.Union(occupied)) != 0 {
				errs = multierror.Append(errs, fmt.Errorf("legal moves from %d include a claimed or occupied cell", src))
			}
		}
	}

	return errs.ErrorOrNil()
}
