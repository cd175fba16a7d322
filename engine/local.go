package engine

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"battle/experiments/metrics"
	"battle/game"
	"battle/meta"
	"battle/player"
	"battle/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Option func(e *Local)

// WithInput sets where manual policies read their actions from.
func WithInput(input Input) Option {
	return func(e *Local) {
		e.input = input
	}
}

func WithMaxTurns(n int) Option {
	return func(e *Local) {
		if n > 0 {
			e.maxTurns = n
		}
	}
}

// Local drives a battle on a real queue, asking the policy of the character
// at the front for an action every turn and applying it.
type Local struct {
	ID       string
	queue    *game.Queue
	policies [2]player.Policy // Indexed by game.Side
	input    Input
	maxTurns int
	turns    int
}

func LocalEngine(q *game.Queue, policies [2]player.Policy, options ...Option) *Local {
	if q.Peek() == nil {
		panic("battle has no characters")
	}
	for _, p := range policies {
		if p == nil {
			panic("every side needs a policy")
		}
	}

	e := &Local{ // Default values
		ID:       uuid.NewString(),
		queue:    q,
		policies: policies,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Step plays one turn. NoOp passes the turn. An action the front character
// cannot afford is rejected with ErrIllegalAction and the queue is left
// untouched.
func (e *Local) Step() (metrics.MoveMetric, error) {
	if e.queue.IsOver() {
		return metrics.MoveMetric{}, ErrBattleOver
	}
	actor := e.queue.Peek()
	policy := e.policies[actor.Side()]

	input := game.NoOp
	if policy.Manual() {
		if e.input == nil {
			return metrics.MoveMetric{}, ErrNoInput
		}
		var err error
		input, err = e.input.Next(actor)
		if err != nil {
			return metrics.MoveMetric{}, fmt.Errorf("failed to get action for %s: %w", actor.Name(), err)
		}
	}

	action, err := selectAction(policy, e.queue, input)
	if err != nil {
		return metrics.MoveMetric{}, fmt.Errorf("%s: %w", actor.Name(), err)
	}
	if action != game.NoOp && !slices.Contains(actor.Actions(), action) {
		return metrics.MoveMetric{}, fmt.Errorf("%w: %s cannot afford %s", ErrIllegalAction, actor.Name(), action)
	}

	e.turns++
	move := metrics.MoveMetric{
		Step:   e.turns,
		Player: actor.Name(),
		Action: action.String(),
	}
	if searching, ok := policy.(player.Searching); ok {
		move.SearchMetric = searching.Metric()
	}

	if action != game.NoOp {
		actor.Apply(action)
	}
	if !e.queue.IsEmpty() {
		e.queue.Dequeue()
	}

	log.Debug().
		Str("battle", e.ID).
		Int("step", move.Step).
		Str("player", move.Player).
		Str("action", move.Action).
		Str("queue", e.queue.String()).
		Msg("turn played")
	return move, nil
}

// selectAction turns a search that hit its node limit into an error. The
// search only touches clones, so the battle queue is unchanged.
func selectAction(policy player.Policy, q *game.Queue, input game.Action) (action game.Action, err error) {
	defer func() {
		if r := recover(); r != nil {
			limit, ok := r.(error)
			if !ok || !errors.Is(limit, searcher.ErrNodeLimit) {
				panic(r)
			}
			action, err = game.NoOp, limit
		}
	}()
	return policy.SelectAction(q, input), nil
}

// Run executes the entire battle loop. A battle that outlasts the turn limit
// is drained, which ends it as a draw.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	starting := e.queue.Peek()
	log.Info().Str("battle", e.ID).Msgf("%s is starting against %s", starting, starting.Enemy())

	var moves []metrics.MoveMetric
	for !e.queue.IsOver() && e.turns < e.maxTurns {
		manual := e.policies[e.queue.Peek().Side()].Manual()
		move, err := e.Step()
		if errors.Is(err, ErrIllegalAction) && manual {
			log.Warn().Err(err).Msg("action rejected, asking again")
			continue
		}
		if err != nil {
			return "", metrics.GameMetric{}, moves, err
		}
		moves = append(moves, move)
	}

	if !e.queue.IsOver() {
		log.Info().Str("battle", e.ID).Msgf("stopped after %d turns (no winner yet)", e.turns)
		e.queue.Drain()
	}

	winner := ""
	if w := e.queue.Winner(); w != nil {
		winner = w.Name()
	}
	end := time.Now()
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		StartingPlayer: starting.Name(),
		Winner:         winner,
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     len(moves),
	}

	if winner == "" {
		log.Info().Str("battle", e.ID).Msg("battle ended in a draw")
	} else {
		log.Info().Str("battle", e.ID).Msgf("battle won by %s", e.queue.Winner())
	}
	return winner, gameMetric, moves, nil
}
