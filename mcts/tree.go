package mcts

import (
	"fmt"
	"math"
	"sort"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"github.com/jthemphill/floeengine/board"
)

// ErrMoveNotLegal is returned by CommitMove when the move does not appear
// among the root's legal actions.
var ErrMoveNotLegal = errors.New("mcts: move is not legal at the current root")

// Tree is the persistent, arena-backed search tree: an indexed pool of
// Nodes plus an out-of-line child-list table, a single logical root, and
// the board.State the root corresponds to. A Tree owns exactly one RNG,
// used for every playout it runs, so that a sequence of RunPlayouts calls
// is reproducible given the seed it was built with.
type Tree struct {
	nodes    []Node
	children [][]NodeRef
	freelist []NodeRef

	root  NodeRef
	state *board.State
	rng   *rand.Rand

	// totalPlayouts is cumulative across the game, including reparents —
	// unlike the root's own visit count, it is never reset by CommitMove.
	totalPlayouts int

	// dotMaxDepth bounds how many levels DOT descends from the root. An
	// unbounded dump of a multi-million-node arena isn't useful; the cap
	// is fixed here, at construction, rather than hardcoded inside DOT.
	dotMaxDepth int
}

// DefaultDOTMaxDepth is the depth cap NewTree applies when the caller has
// no specific diagnostics budget in mind.
const DefaultDOTMaxDepth = 6

// NewTree creates a search tree rooted at a clone of state, with its own
// playout RNG. dotMaxDepth bounds how many levels DOT ever descends;
// pass DefaultDOTMaxDepth when the caller has no stronger preference.
func NewTree(state *board.State, rng *rand.Rand, dotMaxDepth int) *Tree {
	t := &Tree{
		nodes:       make([]Node, 0, 4096),
		children:    make([][]NodeRef, 0, 4096),
		state:       state.Clone(),
		rng:         rng,
		dotMaxDepth: dotMaxDepth,
	}
	t.root = t.newNode(board.Move{}, t.state)
	return t
}

// Size returns the number of live nodes in the tree.
func (t *Tree) Size() int {
	return len(t.nodes) - len(t.freelist)
}

// Visits returns the current root's visit count: the total search work
// behind the live tree.
func (t *Tree) Visits() uint32 {
	return t.nodeFromNodeRef(t.root).visits
}

// TotalPlayouts returns the cumulative number of playouts run since the
// tree was created, including playouts run before past reparents.
func (t *Tree) TotalPlayouts() int {
	return t.totalPlayouts
}

// State returns the board state the current root corresponds to. The
// caller must not mutate the returned value.
func (t *Tree) State() *board.State {
	return t.state
}

func (t *Tree) nodeFromNodeRef(n NodeRef) *Node {
	return &t.nodes[n]
}

// Children returns the (possibly empty) list of n's children.
func (t *Tree) Children(n NodeRef) []NodeRef {
	return t.children[n]
}

// alloc pulls a handle off the freelist, or grows the arena.
func (t *Tree) alloc() NodeRef {
	if l := len(t.freelist); l > 0 {
		n := t.freelist[l-1]
		t.freelist = t.freelist[:l-1]
		return n
	}
	id := NodeRef(len(t.nodes))
	t.nodes = append(t.nodes, Node{id: id, status: Active})
	t.children = append(t.children, nil)
	return id
}

// newNode allocates a node for move m, reached by arriving at state, and
// marks it active with zero visits and the full legal-move set of state as
// its untried moves, ready to be expanded or simulated on its first visit.
func (t *Tree) newNode(m board.Move, state *board.State) NodeRef {
	id := t.alloc()
	n := t.nodeFromNodeRef(id)
	n.move = m
	n.visits = 0
	n.reward = 0
	n.status = Active
	n.untriedMoves = append(n.untriedMoves[:0], state.LegalActions()...)
	t.children[id] = t.children[id][:0]
	return id
}

// free returns n to the freelist after resetting its payload.
func (t *Tree) free(n NodeRef) {
	node := t.nodeFromNodeRef(n)
	node.reset()
	node.status = Pruned
	t.children[n] = t.children[n][:0]
	t.freelist = append(t.freelist, n)
}

// pruneSubtree recursively frees every node under (and including) n.
func (t *Tree) pruneSubtree(n NodeRef) {
	for _, kid := range t.Children(n) {
		t.pruneSubtree(kid)
	}
	t.nodeFromNodeRef(n).status = Pruned
	t.free(n)
}

// expandOne picks a single untried move uniformly at random from n's
// untriedMoves, applies it to state (mutating it in place), and creates
// exactly one new child for it. This is the one-move-at-a-time expansion
// the descend/playout/backup loop requires: the playout that follows runs
// from the resulting child's state, and only that child (plus its
// ancestors) is credited in backup — no sibling is created or visited
// until its own turn is drawn from untriedMoves in a later playout.
func (t *Tree) expandOne(n NodeRef, state *board.State) NodeRef {
	parent := t.nodeFromNodeRef(n)
	i := t.rng.Intn(len(parent.untriedMoves))
	m := parent.untriedMoves[i]
	last := len(parent.untriedMoves) - 1
	parent.untriedMoves[i] = parent.untriedMoves[last]
	parent.untriedMoves = parent.untriedMoves[:last]

	if err := state.Apply(m); err != nil {
		// Unreachable: m came from this same node's LegalActions() call.
		panic(errors.Wrapf(err, "expanding untried move %v", m))
	}
	child := t.newNode(m, state)
	t.children[n] = append(t.children[n], child)
	return child
}

// selectChild returns the UCB1-best child of n, given the state's active
// player (the mover choosing among these children) and n's visit count.
// Ties (equal UCB score) break by lowest move key.
func (t *Tree) selectChild(n NodeRef, mover board.Player) NodeRef {
	parent := t.nodeFromNodeRef(n)
	best := nilNode
	var bestNode *Node
	bestScore := math.Inf(-1)
	for _, kid := range t.Children(n) {
		kidNode := t.nodeFromNodeRef(kid)
		score := ucb1(kidNode, parent.visits, mover)
		switch {
		case score > bestScore:
			bestScore, best, bestNode = score, kid, kidNode
		case score == bestScore && kidNode.move.Less(bestNode.move):
			best, bestNode = kid, kidNode
		}
	}
	if best == nilNode {
		panic("mcts: selectChild called on a childless node")
	}
	return best
}

// RobustChild returns the move with the highest visit count at the current
// root — the move the search commits to — and its visit count. Ties break
// by highest mean reward for the root's active player, then by lowest move
// key (board.Move.Less).
func (t *Tree) RobustChild() (board.Move, uint32, bool) {
	kids := t.Children(t.root)
	if len(kids) == 0 {
		return board.Move{}, 0, false
	}
	mover := t.state.ActivePlayer
	sorted := append([]NodeRef(nil), kids...)
	sort.Slice(sorted, func(i, j int) bool {
		ni, nj := t.nodeFromNodeRef(sorted[i]), t.nodeFromNodeRef(sorted[j])
		if ni.visits != nj.visits {
			return ni.visits > nj.visits
		}
		if ri, rj := ni.valueFor(mover), nj.valueFor(mover); ri != rj {
			return ri > rj
		}
		return ni.move.Less(nj.move)
	})
	best := t.nodeFromNodeRef(sorted[0])
	return best.move, best.visits, true
}

// ChildStats reports (visits, accumulated reward) for the root's child
// reached by m, or (0, 0) if no such child has been expanded yet.
func (t *Tree) ChildStats(m board.Move) (visits uint32, reward float64) {
	for _, kid := range t.Children(t.root) {
		n := t.nodeFromNodeRef(kid)
		if n.move == m {
			return n.visits, n.reward
		}
	}
	return 0, 0
}

// CommitMove reparents the tree onto the child of the current root reached
// by m, applying m to the root state in the process. If the root never
// expanded a child for m (the move was never explored), a fresh root is
// allocated instead and the rest of the old tree is discarded. When a
// matching child does exist, its visit count (and the subtree beneath it)
// survive untouched.
func (t *Tree) CommitMove(m board.Move) error {
	if err := t.state.Apply(m); err != nil {
		return errors.Wrapf(ErrMoveNotLegal, "%v: %v", m, err)
	}

	oldRoot := t.root
	var newRoot NodeRef = nilNode
	for _, kid := range t.Children(oldRoot) {
		if t.nodeFromNodeRef(kid).move == m {
			newRoot = kid
			continue
		}
		t.pruneSubtree(kid)
	}
	if newRoot == nilNode {
		newRoot = t.newNode(board.Move{}, t.state)
	}
	t.free(oldRoot)
	t.root = newRoot
	return nil
}

// DOT renders the current tree as a Graphviz DOT document: visit counts
// and mean reward label every node, handy for inspecting a search gone
// wrong. Descent stops at t.dotMaxDepth levels below the root (set at
// construction via NewTree) — an unbounded dump of a multi-million-node
// arena isn't useful, and nodes beyond the cap are simply omitted.
func (t *Tree) DOT() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("search"); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}
	var walk func(n NodeRef, depth int) error
	walk = func(n NodeRef, depth int) error {
		node := t.nodeFromNodeRef(n)
		name := fmt.Sprintf("n%d", n)
		label := fmt.Sprintf("\"%s\\nv=%d r=%.2f\"", node.move, node.visits, node.meanRewardP0())
		if err := g.AddNode("search", name, map[string]string{"label": label}); err != nil {
			return err
		}
		if depth >= t.dotMaxDepth {
			return nil
		}
		for _, kid := range t.Children(n) {
			kidName := fmt.Sprintf("n%d", kid)
			if err := walk(kid, depth+1); err != nil {
				return err
			}
			if err := g.AddEdge(name, kidName, true, nil); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(t.root, 0); err != nil {
		return "", err
	}
	return g.String(), nil
}

// VisitShare returns, for each direct child of the root, visits/totalVisits
// along with the mean and variance of that distribution (via gonum/stat),
// used by the engine's thinking-progress diagnostics to describe how
// concentrated the search has become on its favorite move.
func (t *Tree) VisitShare() (shares []float64, mean, variance float64) {
	kids := t.Children(t.root)
	if len(kids) == 0 {
		return nil, 0, 0
	}
	total := 0.0
	visits := make([]float64, len(kids))
	for i, kid := range kids {
		v := float64(t.nodeFromNodeRef(kid).visits)
		visits[i] = v
		total += v
	}
	shares = make([]float64, len(kids))
	if total == 0 {
		return shares, 0, 0
	}
	for i, v := range visits {
		shares[i] = v / total
	}
	mean, variance = stat.MeanVariance(shares, nil)
	return shares, mean, variance
}
