package board

import "golang.org/x/exp/rand"

// RandomPlayout simulates a uniform-random game from a *copy* of s to a
// terminal state and returns the reward from player 0's perspective: 1 if
// player 0 scored strictly more, 0 if strictly less, 0.5 on a tie. s itself
// is untouched. r must be a seeded source for reproducibility — the global
// math/rand source is never used directly.
func RandomPlayout(s *State, r *rand.Rand) float64 {
	sim := s.Clone()
	for {
		if sim.GameOver() {
			return terminalRewardP0(sim)
		}
		moves := sim.LegalActions()
		if len(moves) == 0 {
			// Defensive: a non-terminal state with no legal action should be
			// unreachable given the rules engine's own rotation guarantees,
			// but the playout policy never errors — treat it as terminal
			// rather than panic or loop forever.
			return terminalRewardP0(sim)
		}
		m := moves[r.Intn(len(moves))]
		if err := sim.Apply(m); err != nil {
			// Unreachable: m was drawn from LegalActions(sim), so Apply
			// cannot fail. Treat defensively as terminal rather than panic.
			return terminalRewardP0(sim)
		}
	}
}

// terminalRewardP0 reads the reward from player 0's perspective off a
// terminal (game-over) state's scores.
func terminalRewardP0(s *State) float64 {
	switch {
	case s.Scores[0] > s.Scores[1]:
		return 1
	case s.Scores[0] < s.Scores[1]:
		return 0
	default:
		return 0.5
	}
}
