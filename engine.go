// Package floeengine is the engine facade for the ice-floe penguin game:
// it owns the current board.State and the current mcts.Tree and exposes
// the narrow operation set a shell (rendering, input handling, ponder
// loop) drives the game through. It has no network protocol, no
// persistence, and no notion of more than two players.
package floeengine

import (
	"log"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/jthemphill/floeengine/board"
	"github.com/jthemphill/floeengine/mcts"
)

// Engine is a single game in progress: the state, the persistent search
// tree rooted at that state, and a logger for diagnostics. The outside
// must not call Engine methods re-entrantly from within another Engine
// call (in particular, never from inside a callback run during
// PlayoutNTimes) — Engine is single-threaded and keeps no internal
// locking.
type Engine struct {
	state *board.State
	tree  *mcts.Tree
	log   *log.Logger
}

// New creates a fresh game: a shuffled fish assignment, empty bitboards,
// draft phase, active_player 0, and a search tree rooted there. seed
// drives both the fish shuffle and every playout this engine ever runs.
func New(seed uint64) *Engine {
	r := rand.New(rand.NewSource(seed))
	state := board.New(r)
	return &Engine{
		state: state,
		tree:  mcts.NewTree(state, r, mcts.DefaultDOTMaxDepth),
		log:   log.New(log.Writer(), "floeengine: ", log.LstdFlags),
	}
}

// NumFish returns the fish count at c.
func (e *Engine) NumFish(c board.Cell) (uint8, error) {
	if err := board.CheckCell(c); err != nil {
		return 0, err
	}
	return e.state.Fish[c], nil
}

// Score returns p's score.
func (e *Engine) Score(p board.Player) (int, error) {
	if err := board.CheckPlayer(p); err != nil {
		return 0, err
	}
	return e.state.Scores[p], nil
}

// Penguins returns p's penguin cells in ascending order.
func (e *Engine) Penguins(p board.Player) ([]board.Cell, error) {
	if err := board.CheckPlayer(p); err != nil {
		return nil, err
	}
	return e.state.Penguins[p].Cells(), nil
}

// Claimed returns the cells p has claimed, in ascending order.
func (e *Engine) Claimed(p board.Player) ([]board.Cell, error) {
	if err := board.CheckPlayer(p); err != nil {
		return nil, err
	}
	return e.state.Claimed[p].Cells(), nil
}

// ActivePlayer returns the active player, or board.NoPlayer if the game
// has ended.
func (e *Engine) ActivePlayer() board.Player {
	return e.state.ActivePlayer
}

// IsDrafting reports whether the game is still in the draft phase.
func (e *Engine) IsDrafting() bool { return e.state.IsDrafting() }

// FinishedDrafting reports whether the draft phase has completed.
func (e *Engine) FinishedDrafting() bool { return e.state.FinishedDrafting() }

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool { return e.state.GameOver() }

// Turn returns the number of individual actions completed so far.
func (e *Engine) Turn() int { return e.state.Turn }

// DraftableCells returns the one-fish cells available for placement.
func (e *Engine) DraftableCells() []board.Cell {
	return e.state.LegalDrafts().Cells()
}

// PossibleMoves returns the legal slide destinations from src for the
// current active player.
func (e *Engine) PossibleMoves(src board.Cell) []board.Cell {
	return e.state.LegalMoves(src).Cells()
}

// PlacePenguin commits a draft placement: applies it to the state and
// reparents the search tree onto the corresponding child.
func (e *Engine) PlacePenguin(dst board.Cell) error {
	return e.commit(board.Place(dst))
}

// MovePenguin commits a play-phase slide: applies it to the state and
// reparents the search tree onto the corresponding child.
func (e *Engine) MovePenguin(src, dst board.Cell) error {
	return e.commit(board.Slide(src, dst))
}

// commit is the shared reparenting path for both draft and play moves:
// on success the state and tree both advance; on failure, both are left
// exactly as they were.
func (e *Engine) commit(m board.Move) error {
	if err := e.tree.CommitMove(m); err != nil {
		return errors.Wrapf(board.ErrIllegalMove, "%v: %v", m, err)
	}
	e.state = e.tree.State()
	return nil
}

// Playout runs a single MCTS search iteration.
func (e *Engine) Playout() { e.tree.RunPlayouts(1) }

// PlayoutNTimes runs n MCTS search iterations. The shell is expected to
// call this in small chunks (200 per chunk is a reasonable default) between
// yields to its own event loop; the engine itself never schedules this.
func (e *Engine) PlayoutNTimes(n int) { e.tree.RunPlayouts(n) }

// TakeAction commits the AI's current best move: the root child with the
// highest visit count (the "robust child" choice). No-op if the game is
// already over or the tree has no children yet (no playouts have run).
func (e *Engine) TakeAction() error {
	if e.GameOver() {
		return nil
	}
	move, visits, ok := e.tree.RobustChild()
	if !ok {
		return nil
	}
	e.log.Printf("taking action %v after %d visits", move, visits)
	return e.commit(move)
}

// PlaceInfo reports the root's child statistics for a candidate draft
// placement: (0, 0) if that child hasn't been expanded yet.
func (e *Engine) PlaceInfo(dst board.Cell) (visits uint32, rewards float64) {
	return e.tree.ChildStats(board.Place(dst))
}

// MoveInfo reports the root's child statistics for a candidate slide:
// (0, 0) if that child hasn't been expanded yet.
func (e *Engine) MoveInfo(src, dst board.Cell) (visits uint32, rewards float64) {
	return e.tree.ChildStats(board.Slide(src, dst))
}

// GetVisits returns the root's visit count: the total search work behind
// the current tree.
func (e *Engine) GetVisits() uint32 { return e.tree.Visits() }

// GetTotalPlayouts returns the cumulative playout count since the game
// started, including playouts run before past reparents.
func (e *Engine) GetTotalPlayouts() int { return e.tree.TotalPlayouts() }

// TreeSize returns the number of live nodes in the search tree.
func (e *Engine) TreeSize() int { return e.tree.Size() }

// Tree exposes the underlying search tree for diagnostics (DOT export,
// visit-share statistics) that don't belong on the engine's narrow
// gameplay surface.
func (e *Engine) Tree() *mcts.Tree { return e.tree }
