package game

import "fmt"

// Action represents the move a character can make on its turn.
type Action int

const (
	NoOp Action = iota // No legal action, never returned by Character.Actions
	Attack
	Special
)

func (a Action) String() string {
	switch a {
	case Attack:
		return "A"
	case Special:
		return "S"
	default:
		return "X"
	}
}

// ParseAction maps a manual key to an action. Unknown keys map to NoOp.
func ParseAction(key string) Action {
	switch key {
	case "A", "a":
		return Attack
	case "S", "s":
		return Special
	default:
		return NoOp
	}
}

// Target names who gets enqueued after a skill resolves.
type Target int

const (
	Caster Target = iota
	Enemy
)

func (t Target) String() string {
	if t == Enemy {
		return "enemy"
	}
	return "caster"
}

// ParseTarget maps a config value to a Target.
func ParseTarget(s string) (Target, error) {
	switch s {
	case "caster", "self":
		return Caster, nil
	case "enemy", "target":
		return Enemy, nil
	default:
		return Caster, fmt.Errorf("unknown enqueue target %q", s)
	}
}
