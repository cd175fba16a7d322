package game

// Side is an arena slot of a queue. Each queue seats exactly two characters,
// and a character's enemy is always the character in the other slot.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) Other() Side {
	return 1 - s
}

func (s Side) String() string {
	if s == SideB {
		return "B"
	}
	return "A"
}

// Condition decides, for a caster and its target, whether a skill tree node
// descends into its children (true) or offers its own skill (false).
type Condition func(caster, target *Character) bool
