package player

import (
	"errors"
	"fmt"

	"battle/experiments/metrics"
	"battle/game"
)

var ErrUnknownPolicy = errors.New("unknown policy")

// Policy chooses the action for the character at the front of a queue.
type Policy interface {
	// SelectAction returns the action to play, or NoOp when there is none.
	// input is only consulted by manual policies.
	SelectAction(q *game.Queue, input game.Action) game.Action
	// Manual reports whether the policy expects an input action.
	Manual() bool
}

// Searching is implemented by policies that run a game-tree search.
type Searching interface {
	Metric() metrics.SearchMetric
}

type Option func(o *options)

type options struct {
	seed     uint64
	metrics  bool
	maxNodes int
}

func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithMetrics collects search metrics for searching policies.
func WithMetrics() Option {
	return func(o *options) {
		o.metrics = true
	}
}

// WithMaxNodes bounds every search of a searching policy. Zero means
// unlimited. See searcher.WithMaxNodes.
func WithMaxNodes(n int) Option {
	return func(o *options) {
		o.maxNodes = n
	}
}

// New builds a policy by its config name.
func New(name string, opts ...Option) (Policy, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	switch name {
	case "manual":
		return NewManual(), nil
	case "random":
		return NewRandom(o.seed), nil
	case "recursive":
		return NewRecursiveMinimax(o.searcherOptions()...), nil
	case "iterative":
		return NewIterativeMinimax(o.searcherOptions()...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
