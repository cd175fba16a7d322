package searcher

import (
	"slices"

	"battle/game"
)

// StateScore returns the best score the character at the front of q can
// reach, rated from that character's perspective.
func (s *Searcher) StateScore(q *game.Queue) int {
	best, _ := s.Evaluate(q)
	return best
}

// Evaluate returns the best score for the character at the front of q along
// with the score of each of its available actions, in action order.
func (s *Searcher) Evaluate(q *game.Queue) (best int, scores []int) {
	first := firstPlayer(q)
	scores = s.BranchScores(q, first)
	return slices.Max(scores), scores
}

// BranchScores rates every action of the front character of q from the
// perspective of first. A finished battle yields its single terminal score.
func (s *Searcher) BranchScores(q *game.Queue, first game.Side) []int {
	s.begin()
	defer s.finish("recursive")

	return s.branchScores(q.Clone(), first, 0)
}

// branchScores takes the maximum at every level, whoever is to move. The
// perspective stays with first, so a line the opponent prefers shows up as a
// low score for first.
func (s *Searcher) branchScores(q *game.Queue, first game.Side, depth int) []int {
	s.visit(depth)
	if q.IsOver() {
		s.terminal()
		return []int{Score(q, first)}
	}

	actions := q.Peek().Actions()
	scores := make([]int, 0, len(actions))
	for _, action := range actions {
		branch := advance(q, action)
		scores = append(scores, slices.Max(s.branchScores(branch, first, depth+1)))
	}
	return scores
}
