package player

import (
	"battle/game"
	"battle/utils"

	"golang.org/x/exp/rand"
)

type random struct {
	rng *rand.Rand
}

// NewRandom returns a policy that picks uniformly among the available actions.
// Equal seeds replay equal battles.
func NewRandom(seed uint64) Policy {
	return &random{rng: utils.NewRand(seed)}
}

func (p *random) SelectAction(q *game.Queue, _ game.Action) game.Action {
	actor := q.Peek()
	if actor == nil {
		return game.NoOp
	}
	actions := actor.Actions()
	if len(actions) == 0 {
		return game.NoOp
	}
	return actions[p.rng.Intn(len(actions))]
}

func (p *random) Manual() bool { return false }
