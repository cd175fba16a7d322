package searcher

import "battle/game"

// BuildTree scores every queue state reachable from q with an explicit stack
// instead of recursion. Scores are rated from the perspective of the
// character at the front of q, exactly as BranchScores does, so the root
// score equals StateScore and each root child scores one available action.
func (s *Searcher) BuildTree(q *game.Queue) *Node {
	first := firstPlayer(q)

	s.begin()
	defer s.finish("iterative")

	nextID := 1
	root := &Node{ID: nextID, Queue: q.Clone()}
	s.visit(0)

	stack := []*Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case node.Queue.IsOver():
			s.terminal()
			node.setScore(Score(node.Queue, first))
		case len(node.Children) > 0: // Revisited after all children were scored
			node.setScore(node.bestChild())
		default:
			stack = append(stack, node)
			for _, action := range node.Queue.Peek().Actions() {
				nextID++
				child := &Node{
					ID:     nextID,
					Action: action,
					Queue:  advance(node.Queue, action),
					depth:  node.depth + 1,
				}
				s.visit(child.depth)
				node.Children = append(node.Children, child)
				stack = append(stack, child)
			}
		}
	}
	return root
}

// IterativeScore is StateScore computed with BuildTree.
func (s *Searcher) IterativeScore(q *game.Queue) int {
	score, _ := s.BuildTree(q).Value()
	return score
}
