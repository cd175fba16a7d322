package player

import (
	"battle/experiments/metrics"
	"battle/game"
	"battle/searcher"
	"battle/utils"
)

func (o *options) searcherOptions() []searcher.Option {
	options := []searcher.Option{searcher.WithMaxNodes(o.maxNodes)}
	if o.metrics {
		options = append(options, searcher.WithMetrics(metrics.NewCollector()))
	}
	return options
}

// RecursiveMinimax plays the first action whose branch score equals the best
// score the front character can force.
type RecursiveMinimax struct {
	searcher *searcher.Searcher
}

func NewRecursiveMinimax(options ...searcher.Option) *RecursiveMinimax {
	return &RecursiveMinimax{searcher: searcher.New(options...)}
}

func (p *RecursiveMinimax) SelectAction(q *game.Queue, _ game.Action) game.Action {
	actions, ok := searchable(q)
	if !ok {
		return game.NoOp
	}
	best, scores := p.searcher.Evaluate(q)
	return actions[utils.FindIndex(scores, best)]
}

func (p *RecursiveMinimax) Manual() bool { return false }

func (p *RecursiveMinimax) Metric() metrics.SearchMetric {
	return p.searcher.Metric()
}

// IterativeMinimax builds the whole search tree with an explicit stack and
// plays the action of the first root child scoring as well as the root.
type IterativeMinimax struct {
	searcher *searcher.Searcher
}

func NewIterativeMinimax(options ...searcher.Option) *IterativeMinimax {
	return &IterativeMinimax{searcher: searcher.New(options...)}
}

func (p *IterativeMinimax) SelectAction(q *game.Queue, _ game.Action) game.Action {
	if _, ok := searchable(q); !ok {
		return game.NoOp
	}
	root := p.searcher.BuildTree(q)
	best, _ := root.Value()
	for _, child := range root.Children {
		if score, _ := child.Value(); score == best {
			return child.Action
		}
	}
	panic("search tree has no child matching the root score")
}

func (p *IterativeMinimax) Manual() bool { return false }

func (p *IterativeMinimax) Metric() metrics.SearchMetric {
	return p.searcher.Metric()
}

// searchable returns the actions of the front character. A finished battle
// with a character still able to act is a programmer error.
func searchable(q *game.Queue) ([]game.Action, bool) {
	actor := q.Peek()
	if actor == nil {
		return nil, false
	}
	actions := actor.Actions()
	if len(actions) == 0 {
		return nil, false
	}
	if q.IsOver() {
		panic("cannot select an action in a finished battle")
	}
	return actions, true
}
