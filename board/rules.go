package board

// draftsPerPlayer is the number of penguins each player places during the
// draft phase (four placements total in 2-player mode).
const draftsPerPlayer = 2

// occupied returns the union of every claimed and penguin bitboard: the
// cells a ray cannot pass through.
func (s *State) occupied() Bitboard {
	return s.Claimed[0].Union(s.Claimed[1]).Union(s.Penguins[0]).Union(s.Penguins[1])
}

// LegalDrafts returns the bitboard of cells available for placement: the
// one-fish cells, which by the fish-invariant are automatically unclaimed
// and unoccupied. Returns 0 outside the draft phase.
func (s *State) LegalDrafts() Bitboard {
	if !s.IsDrafting() {
		return 0
	}
	var result Bitboard
	for c := Cell(0); c < NumCells; c++ {
		if s.Fish[c] == 1 {
			result = result.Set(c)
		}
	}
	return result
}

// rawLegalMoves computes the slide destinations reachable from src purely
// from board occupation, independent of whose turn it is or who owns src.
// It backs both the public LegalMoves query and the internal
// stuck-penguin check used when rotating the active player.
func (s *State) rawLegalMoves(src Cell) Bitboard {
	blocked := s.occupied()
	var result Bitboard
	for _, d := range AllDirections() {
		for _, c := range Ray(src, d) {
			if blocked.Has(c) {
				break
			}
			result = result.Set(c)
		}
	}
	return result
}

// LegalMoves returns the legal slide destinations from src for the current
// active player. It is defined (non-empty candidate) only outside the
// draft phase with src belonging to the active player's penguins; any other
// call returns the empty bitboard rather than failing, so hosts can query
// arbitrary cells cheaply (see spec seed scenario 1).
func (s *State) LegalMoves(src Cell) Bitboard {
	if s.IsDrafting() || s.GameOver() {
		return 0
	}
	if !src.Valid() || !s.Penguins[s.ActivePlayer].Has(src) {
		return 0
	}
	return s.rawLegalMoves(src)
}

// hasMovablePenguin reports whether player p has at least one penguin with
// at least one legal slide available, regardless of whose turn it is.
func (s *State) hasMovablePenguin(p Player) bool {
	for _, src := range s.Penguins[p].Cells() {
		if !s.rawLegalMoves(src).Empty() {
			return true
		}
	}
	return false
}

// Place performs a draft placement. Precondition: dst is in LegalDrafts().
// On failure, the state is left unchanged and an error wrapping
// ErrIllegalMove (or ErrOutOfRange) is returned.
func (s *State) Place(dst Cell) error {
	if !s.IsDrafting() {
		return illegalf("game is not in draft phase")
	}
	if err := CheckCell(dst); err != nil {
		return err
	}
	if s.Fish[dst] != 1 {
		return illegalf("cell %d is not a one-fish tile available for drafting", dst)
	}

	active := s.ActivePlayer
	s.Fish[dst] = 0
	s.Penguins[active] = s.Penguins[active].Set(dst)
	s.Scores[active]++
	s.Claimed[active] = s.Claimed[active].Set(dst)
	s.draftsPlaced[active]++
	s.Turn++

	s.advanceAfterDraft(active)
	return nil
}

// advanceAfterDraft picks the next player to draft, or transitions to the
// play phase once every player has placed draftsPerPlayer penguins. The
// draft-end active player is whoever drafted first (draftOrder), not
// whoever placed last.
func (s *State) advanceAfterDraft(justPlaced Player) {
	allDone := true
	for p := Player(0); p < NumPlayers; p++ {
		if s.draftsPlaced[p] < draftsPerPlayer {
			allDone = false
			break
		}
	}
	if allDone {
		s.Phase = PhasePlay
		s.ActivePlayer = s.draftOrder
		return
	}
	next := justPlaced
	for i := 0; i < NumPlayers; i++ {
		next = next.Other()
		if s.draftsPlaced[next] < draftsPerPlayer {
			s.ActivePlayer = next
			return
		}
	}
}

// Move performs a play-phase slide. Precondition: not drafting, and dst is
// in LegalMoves(src). On failure, the state is left unchanged and an error
// wrapping ErrIllegalMove (or ErrOutOfRange) is returned.
func (s *State) Move(src, dst Cell) error {
	if s.IsDrafting() {
		return illegalf("game is still in draft phase")
	}
	if s.GameOver() {
		return illegalf("game is over")
	}
	if err := CheckCell(src); err != nil {
		return err
	}
	if err := CheckCell(dst); err != nil {
		return err
	}
	active := s.ActivePlayer
	if !s.Penguins[active].Has(src) {
		return illegalf("cell %d has no penguin belonging to the active player", src)
	}
	if !s.rawLegalMoves(src).Has(dst) {
		return illegalf("cell %d is not reachable from %d", dst, src)
	}

	fishAtSrc := s.Fish[src]
	s.Scores[active] += int(fishAtSrc)
	s.Claimed[active] = s.Claimed[active].Set(src)
	s.Fish[src] = 0
	s.Penguins[active] = s.Penguins[active].Clear(src).Set(dst)
	s.Turn++

	s.advanceAfterMove()
	return nil
}

// advanceAfterMove rotates the active player to the next one with a
// movable penguin, skipping stuck players; if no player anywhere has a
// movable penguin, the game ends.
func (s *State) advanceAfterMove() {
	cand := s.ActivePlayer
	for i := 0; i < NumPlayers; i++ {
		cand = cand.Other()
		if s.hasMovablePenguin(cand) {
			s.ActivePlayer = cand
			return
		}
	}
	s.endGame()
}

// endGame claims every still-occupied cell for its occupant (crediting the
// remaining fish to that player's score) and clears the penguin bitboards:
// the conservative choice for what happens to penguins still on the board
// when the game ends.
func (s *State) endGame() {
	for p := Player(0); p < NumPlayers; p++ {
		for _, c := range s.Penguins[p].Cells() {
			s.Scores[p] += int(s.Fish[c])
			s.Claimed[p] = s.Claimed[p].Set(c)
			s.Fish[c] = 0
		}
		s.Penguins[p] = 0
	}
	s.ActivePlayer = NoPlayer
}
