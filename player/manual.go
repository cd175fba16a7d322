package player

import "battle/game"

type manual struct{}

// NewManual returns a policy that plays whatever key the player pressed.
func NewManual() Policy {
	return manual{}
}

// SelectAction passes input through when it is Attack or Special. The engine
// checks the action is affordable.
func (manual) SelectAction(_ *game.Queue, input game.Action) game.Action {
	if input == game.Attack || input == game.Special {
		return input
	}
	return game.NoOp
}

func (manual) Manual() bool { return true }
