package board

// LegalActions enumerates every legal Move for the state's active player:
// the draft targets during the draft phase, or the union over all of the
// active player's penguins of their (src, dst) slides during play. Returns
// nil once the game is over.
func (s *State) LegalActions() []Move {
	if s.GameOver() {
		return nil
	}
	if s.IsDrafting() {
		drafts := s.LegalDrafts().Cells()
		moves := make([]Move, 0, len(drafts))
		for _, c := range drafts {
			moves = append(moves, Place(c))
		}
		return moves
	}
	var moves []Move
	for _, src := range s.Penguins[s.ActivePlayer].Cells() {
		for _, dst := range s.LegalMoves(src).Cells() {
			moves = append(moves, Slide(src, dst))
		}
	}
	return moves
}

// Apply applies m to s, dispatching to Place or Move depending on the
// move's tag.
func (s *State) Apply(m Move) error {
	if m.IsPlacement() {
		return s.Place(m.Dst)
	}
	return s.Move(m.Src, m.Dst)
}
