package searcher

import "battle/game"

// Node is one queue state of an iteratively built search tree.
type Node struct {
	ID       int
	Score    *int        // Nil until computed
	Action   game.Action // Action that led here from the parent, NoOp for the root
	Queue    *game.Queue
	Children []*Node
	depth    int
}

// Value returns the node's score and whether it has been computed.
func (n *Node) Value() (int, bool) {
	if n.Score == nil {
		return 0, false
	}
	return *n.Score, true
}

func (n *Node) setScore(score int) {
	n.Score = &score
}

// bestChild is the score of the highest scored child. All children must be
// scored.
func (n *Node) bestChild() int {
	best, ok := n.Children[0].Value()
	if !ok {
		panic("node has unscored children")
	}
	for _, child := range n.Children[1:] {
		score, ok := child.Value()
		if !ok {
			panic("node has unscored children")
		}
		best = max(best, score)
	}
	return best
}
