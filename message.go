package floeengine

import "github.com/jthemphill/floeengine/board"

// Request is the shell's side of the in-process, language-neutral
// request/response record. There is no network transport here — a host
// that does need one marshals these as JSON itself.
type Request struct {
	Type string `json:"type"` // "getGameState", "getPossibleMoves", "movePenguin"

	// Src is set for getPossibleMoves and for a play-phase movePenguin.
	// Its absence (nil) on movePenguin means "this is a draft placement".
	Src *board.Cell `json:"src,omitempty"`
	Dst board.Cell  `json:"dst,omitempty"`
}

// GameStateResponse is a full snapshot of the board plus whatever the
// active player's move set looks like right now, plus whether the
// caller's last request was rejected.
type GameStateResponse struct {
	Fish         [board.NumCells]uint8 `json:"fish"`
	Claimed      [2][]board.Cell       `json:"claimed"`
	Penguins     [2][]board.Cell       `json:"penguins"`
	Scores       [2]int                `json:"scores"`
	ActivePlayer *board.Player         `json:"activePlayer,omitempty"`
	IsDrafting   bool                  `json:"isDrafting"`
	GameOver     bool                  `json:"gameOver"`
	Turn         int                   `json:"turn"`

	PossibleMoves []board.Cell `json:"possibleMoves"`

	LastMoveWasIllegal bool `json:"lastMoveWasIllegal"`
}

// MoveScore is one entry of a ThinkingProgressResponse's per-move
// breakdown: Src is nil for a draft placement, matching Request's
// convention.
type MoveScore struct {
	Src     *board.Cell `json:"src,omitempty"`
	Dst     board.Cell  `json:"dst"`
	Visits  uint32      `json:"visits"`
	Rewards float64     `json:"rewards"`
}

// PlayerMoveScores groups MoveScore entries under the player they're
// scored for.
type PlayerMoveScores struct {
	Player     board.Player `json:"player"`
	MoveScores []MoveScore  `json:"moveScores"`
}

// ThinkingProgressResponse is the thinkingProgress message: the
// shell polls this while the AI ponders to decide whether it has done
// enough search work yet, and to render a "thinking" visualization.
type ThinkingProgressResponse struct {
	Visits        uint32 `json:"visits"`
	Required      uint32 `json:"required"`
	TotalPlayouts int    `json:"totalPlayouts"`
	TotalTimeMs   int64  `json:"totalTimeMs"`
	MemoryBytes   int64  `json:"memoryBytes"`
	TreeSize      int    `json:"treeSize"`

	PlayerMoveScores PlayerMoveScores `json:"playerMoveScores"`
}

// GameState builds a GameStateResponse snapshot of e. src, if non-nil, is
// the cell to report possible_moves for; otherwise possibleMoves reports
// draftable_cells during the draft phase and is empty during play (the
// shell is expected to query per-penguin once drafting ends).
func (e *Engine) GameState(src *board.Cell, lastMoveWasIllegal bool) GameStateResponse {
	resp := GameStateResponse{
		Fish:               e.state.Fish,
		Scores:             e.state.Scores,
		IsDrafting:         e.IsDrafting(),
		GameOver:           e.GameOver(),
		Turn:               e.Turn(),
		LastMoveWasIllegal: lastMoveWasIllegal,
	}
	for p := board.Player(0); p < board.NumPlayers; p++ {
		resp.Claimed[p] = e.state.Claimed[p].Cells()
		resp.Penguins[p] = e.state.Penguins[p].Cells()
	}
	if !e.GameOver() {
		active := e.ActivePlayer()
		resp.ActivePlayer = &active
	}
	switch {
	case src != nil:
		resp.PossibleMoves = e.PossibleMoves(*src)
	case e.IsDrafting():
		resp.PossibleMoves = e.DraftableCells()
	}
	return resp
}

// ThinkingProgress builds a ThinkingProgressResponse for the active
// player, reporting required as the playout threshold the shell should
// wait for before calling TakeAction (28,000 by default, doubled
// for the opening two turns).
func (e *Engine) ThinkingProgress(required uint32, totalTimeMs, memoryBytes int64) ThinkingProgressResponse {
	resp := ThinkingProgressResponse{
		Visits:        e.GetVisits(),
		Required:      required,
		TotalPlayouts: e.GetTotalPlayouts(),
		TotalTimeMs:   totalTimeMs,
		MemoryBytes:   memoryBytes,
		TreeSize:      e.TreeSize(),
		PlayerMoveScores: PlayerMoveScores{
			Player: e.ActivePlayer(),
		},
	}

	if e.IsDrafting() {
		for _, dst := range e.DraftableCells() {
			visits, rewards := e.PlaceInfo(dst)
			resp.PlayerMoveScores.MoveScores = append(resp.PlayerMoveScores.MoveScores, MoveScore{
				Dst: dst, Visits: visits, Rewards: rewards,
			})
		}
		return resp
	}

	active := e.ActivePlayer()
	if active == board.NoPlayer {
		return resp
	}
	for _, src := range e.state.Penguins[active].Cells() {
		src := src
		for _, dst := range e.PossibleMoves(src) {
			visits, rewards := e.MoveInfo(src, dst)
			resp.PlayerMoveScores.MoveScores = append(resp.PlayerMoveScores.MoveScores, MoveScore{
				Src: &src, Dst: dst, Visits: visits, Rewards: rewards,
			})
		}
	}
	return resp
}

// RequiredPlayouts implements the shell-side threshold:
// 28,000 playouts per AI turn, doubled for the opening two turns.
func RequiredPlayouts(turn int) uint32 {
	const base = 28000
	if turn < 2 {
		return base * 2
	}
	return base
}
