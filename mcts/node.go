package mcts

import (
	"fmt"
	"math"

	"github.com/jthemphill/floeengine/board"
)

// Status mirrors a node's place in the arena: Active nodes are part of the
// live tree, Pruned nodes have been cut loose by a reparent and are waiting
// to be recycled, Invalid is the zero value of a never-allocated slot.
type Status uint8

const (
	Invalid Status = iota
	Active
	Pruned
)

func (st Status) String() string {
	switch st {
	case Active:
		return "Active"
	case Pruned:
		return "Pruned"
	}
	return "Invalid"
}

// Node is one search-tree node: the move that reached it from its parent,
// its visit count, and the accumulated reward from player 0's perspective
// (board.RandomPlayout's convention). Children are tracked out-of-line in
// Tree.children, keyed by this node's id, separating node payload from
// child-list storage.
//
// untriedMoves holds the legal moves at this node's state that have not
// yet been given a child. It starts as the full legal-move set on node
// creation and shrinks by one, uniformly at random, on each expansion —
// exactly one child is created per expansion, never the whole set at once.
type Node struct {
	move         board.Move
	visits       uint32
	reward       float64 // sum of per-playout rewards, player 0's perspective
	status       Status
	untriedMoves []board.Move

	id NodeRef
}

func (n *Node) String() string {
	return fmt.Sprintf("{id:%d move:%s visits:%d reward:%.3f status:%s}",
		n.id, n.move, n.visits, n.reward, n.status)
}

// Move returns the move that led to n.
func (n *Node) Move() board.Move { return n.move }

// Visits returns the number of playouts backed up through n.
func (n *Node) Visits() uint32 { return n.visits }

// meanRewardP0 is the average playout reward through n, from player 0's
// perspective.
func (n *Node) meanRewardP0() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.reward / float64(n.visits)
}

// valueFor returns n's expected value from mover's perspective: the
// perspective of whoever chose the move leading to n.
func (n *Node) valueFor(mover board.Player) float64 {
	if mover == board.Player0 {
		return n.meanRewardP0()
	}
	return 1 - n.meanRewardP0()
}

func (n *Node) update(rewardP0 float64) {
	n.visits++
	n.reward += rewardP0
}

func (n *Node) reset() {
	n.move = board.Move{}
	n.visits = 0
	n.reward = 0
	n.status = Invalid
	n.untriedMoves = n.untriedMoves[:0]
}

// explorationConstant is UCB1's C, fixed at sqrt(2) per spec.
const explorationConstant = math.Sqrt2

// ucb1 scores a child for selection from the perspective of mover, the
// player who is choosing among these children.
func ucb1(child *Node, parentVisits uint32, mover board.Player) float64 {
	if child.visits == 0 {
		return math.Inf(1)
	}
	exploitation := child.valueFor(mover)
	exploration := explorationConstant * math.Sqrt(math.Log(float64(parentVisits))/float64(child.visits))
	return exploitation + exploration
}
