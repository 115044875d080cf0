package mcts

import "github.com/jthemphill/floeengine/board"

/*
RunPlayouts drives the tree's core loop, one playout at a time:

	descend:  while the current node's untried moves are empty and its
	          state is non-terminal, walk to its UCB1-best child,
	          recording the path on a stack as we go (there are no parent
	          back-pointers, so backup replays this stack).
	expand:   if the state is non-terminal, pick one untried move
	          uniformly at random, apply it, and create exactly one new
	          child for it — never the whole untried set at once. The
	          new child is pushed onto the path too.
	simulate: run a uniform-random playout from the post-expansion state
	          to a terminal reward, via board.RandomPlayout.
	backup:   credit every node on the descent stack (including the
	          freshly expanded child, if any) with that reward.

A terminal node has no untried moves and no children; descend stops there
immediately and simulate is a no-op reward read off the terminal state.
*/
func (t *Tree) RunPlayouts(n int) {
	for i := 0; i < n; i++ {
		t.runOnePlayout()
	}
}

func (t *Tree) runOnePlayout() {
	sim := t.state.Clone()
	path := make([]NodeRef, 0, 8)
	node := t.root

	for {
		path = append(path, node)
		if sim.GameOver() {
			break
		}
		if len(t.nodeFromNodeRef(node).untriedMoves) > 0 {
			child := t.expandOne(node, sim)
			path = append(path, child)
			break
		}
		child := t.selectChild(node, sim.ActivePlayer)
		if err := sim.Apply(t.nodeFromNodeRef(child).move); err != nil {
			// Unreachable: child.move came from a prior LegalActions() call
			// against this same node's state.
			break
		}
		node = child
	}

	reward := board.RandomPlayout(sim, t.rng)
	for _, n := range path {
		t.nodeFromNodeRef(n).update(reward)
	}
	t.totalPlayouts++
}
