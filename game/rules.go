package game

// Skill is one entry of a class's effect table.
type Skill struct {
	Name    string
	Cost    int      // SP spent by the caster
	Damage  int      // Raw damage before the target's defense
	Enqueue []Target // Who is added to the queue once the skill resolves, in order
}

// Class holds the fixed stats and effect table shared by characters of one kind.
type Class struct {
	Name    string
	HP      int
	SP      int
	Defense int
	Attack  Skill
	Special Skill
	// Tree, when set, picks the skill resolved by Special. The caster still
	// pays Special.Cost for it.
	Tree *SkillTree
}

// Skill returns the table entry for an action.
func (c *Class) Skill(action Action) (Skill, bool) {
	switch action {
	case Attack:
		return c.Attack, true
	case Special:
		return c.Special, true
	default:
		return Skill{}, false
	}
}

// DamageTo is the HP a skill takes from a defender of the given class.
func (s Skill) DamageTo(defender *Class) int {
	return max(0, s.Damage-defender.Defense)
}
