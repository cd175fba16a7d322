package engine

import (
	"errors"

	"battle/experiments/metrics"
	"battle/game"
)

var (
	ErrBattleOver    = errors.New("battle is over")
	ErrIllegalAction = errors.New("illegal action")
	ErrNoInput       = errors.New("manual policy without input")
)

type Engine interface {
	// Run plays a battle till there's a winner or the turn limit is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Input supplies the actions of manual players.
type Input interface {
	Next(actor *game.Character) (game.Action, error)
}
