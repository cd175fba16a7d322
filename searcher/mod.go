package searcher

import (
	"errors"
	"fmt"
	"time"

	"battle/experiments/metrics"
	"battle/game"

	"github.com/rs/zerolog/log"
)

// ErrNodeLimit is the panic value, wrapped, of a search that visits more
// states than WithMaxNodes allows.
var ErrNodeLimit = errors.New("search node limit exceeded")

type Option func(s *Searcher)

// Searcher runs exhaustive minimax over the queue states reachable from a
// battle. Every branch works on its own cloned queue, so the searched queue
// is never modified. A Searcher is not safe for concurrent use.
type Searcher struct {
	maxNodes  int
	metrics   metrics.Collector
	nodes     int
	terminals int
	started   time.Time
	last      metrics.SearchMetric
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// WithMaxNodes aborts a search, by panicking, once it visits more than n
// queue states. Zero means unlimited.
func WithMaxNodes(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.maxNodes = n
		}
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Score rates a finished battle from the first player's perspective: the
// winner's remaining HP, negated if the winner is the opponent, or 0 for a
// draw.
func Score(q *game.Queue, first game.Side) int {
	winner := q.Winner()
	if winner == nil {
		return 0
	}
	if winner.Side() == first {
		return winner.HP()
	}
	return -winner.HP()
}

// advance plays one action for the front character of a copy of q and hands
// the turn on.
func advance(q *game.Queue, action game.Action) *game.Queue {
	branch := q.Clone()
	branch.Peek().Apply(action)
	if !branch.IsEmpty() {
		branch.Dequeue()
	}
	return branch
}

func firstPlayer(q *game.Queue) game.Side {
	front := q.Peek()
	if front == nil {
		panic("cannot search a queue without characters")
	}
	return front.Side()
}

func (s *Searcher) begin() {
	s.nodes = 0
	s.terminals = 0
	s.started = time.Now()
	s.metrics.Start()
}

func (s *Searcher) visit(depth int) {
	s.nodes++
	if s.maxNodes > 0 && s.nodes > s.maxNodes {
		panic(fmt.Errorf("%w: more than %d nodes", ErrNodeLimit, s.maxNodes))
	}
	s.metrics.AddNode(depth)
}

func (s *Searcher) terminal() {
	s.terminals++
	s.metrics.AddTerminal()
}

// Metric returns the metrics of the last completed search. It is zero unless
// a collector was configured with WithMetrics.
func (s *Searcher) Metric() metrics.SearchMetric {
	return s.last
}

func (s *Searcher) finish(kind string) {
	s.last = s.metrics.Complete()
	log.Debug().
		Str("search", kind).
		Int("nodes", s.nodes).
		Int("terminals", s.terminals).
		Dur("elapsed", time.Since(s.started)).
		Msg("search complete")
}
