package board

import "golang.org/x/exp/rand"

// Phase distinguishes the draft phase (placing the initial two penguins per
// player) from the play phase (sliding penguins).
type Phase int8

const (
	PhaseDraft Phase = iota
	PhasePlay
)

// NoPlayer is the sentinel ActivePlayer value once the game has ended.
const NoPlayer Player = -1

// State is the complete game record: bitboards for claimed cells and
// penguin positions per player, the remaining fish count per cell, scores,
// whose turn it is, the turn counter, and the current phase.
//
// Invariants hold between every call to Place/Move:
// claimed[0] and claimed[1] are disjoint, penguins[0] and penguins[1] are
// disjoint, and neither player's claimed cells overlap the other player's
// penguins (a drafted penguin's own cell is claimed by its owner at
// placement); a claimed cell has Fish == 0, and a cell with Fish == 0 is
// claimed or occupied (a penguin that slid onto a cell leaves its fish
// there until it departs); Scores[p] is the sum of the original fish count
// over Claimed[p].
type State struct {
	Claimed     [NumPlayers]Bitboard
	Penguins    [NumPlayers]Bitboard
	Fish        [NumCells]uint8
	Scores      [NumPlayers]int
	ActivePlayer Player
	Turn        int
	Phase       Phase

	// draftsPlaced counts placements made by each player so far, used to
	// decide when the draft phase ends and whose turn is next during it.
	draftsPlaced [NumPlayers]int
	// draftOrder is the player who acted first in the draft; play resumes
	// with this player once the draft completes.
	draftOrder Player
}

// initialFish returns the fixed multiset of fish values: 30 ones, 20 twos,
// 10 threes (summing to NumCells entries), shuffled by r.
func initialFish(r *rand.Rand) [NumCells]uint8 {
	var values [NumCells]uint8
	idx := 0
	for i := 0; i < 30; i++ {
		values[idx] = 1
		idx++
	}
	for i := 0; i < 20; i++ {
		values[idx] = 2
		idx++
	}
	for i := 0; i < 10; i++ {
		values[idx] = 3
		idx++
	}
	// Fisher-Yates, written out with Intn rather than Rand.Shuffle so the
	// exact sequence of draws (and thus the resulting permutation for a
	// given seed) is pinned down explicitly by this function alone.
	for i := len(values) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
	return values
}

// New creates a fresh game: a shuffled fish assignment, empty bitboards,
// zero scores, active player 0, turn 0, draft phase.
func New(r *rand.Rand) *State {
	return &State{
		Fish:         initialFish(r),
		ActivePlayer: Player0,
		Phase:        PhaseDraft,
		draftOrder:   Player0,
	}
}

// Clone returns a deep, independent copy of s. State is small (two
// bitboards per player and 60 bytes of fish counts per instance) and alloc-free to
// copy, which matters because playouts copy state on every simulated move.
func (s *State) Clone() *State {
	clone := *s
	return &clone
}

// IsDrafting reports whether the game is still in the draft phase.
func (s *State) IsDrafting() bool {
	return s.Phase == PhaseDraft
}

// FinishedDrafting reports whether the draft phase has completed.
func (s *State) FinishedDrafting() bool {
	return s.Phase == PhasePlay
}

// GameOver reports whether the game has ended.
func (s *State) GameOver() bool {
	return s.ActivePlayer == NoPlayer
}

// totalPenguins returns the number of penguins placed so far, across both
// players.
func (s *State) totalPenguins() int {
	return s.Penguins[Player0].Count() + s.Penguins[Player1].Count()
}
