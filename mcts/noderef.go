// Package mcts implements an arena-backed Monte Carlo Tree Search over
// board.State/board.Move: UCB1 selection, lazy expansion, uniform-random
// playouts, and root reparenting so a search tree survives across moves
// instead of being rebuilt from scratch.
package mcts

// NodeRef is a handle into the arena: an index into Tree.nodes, not a
// pointer, so nodes can be pooled and reused without per-node allocation.
type NodeRef int32

// nilNode is the zero-value handle meaning "no node".
const nilNode NodeRef = -1
