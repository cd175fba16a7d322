package game

func NewStandardRogue() *Class {
	return &Class{
		Name:    "Rogue",
		HP:      100,
		SP:      100,
		Defense: 10,
		Attack:  Skill{Name: "RogueAttack", Cost: 3, Damage: 15, Enqueue: []Target{Caster}},
		Special: Skill{Name: "RogueSpecial", Cost: 10, Damage: 20, Enqueue: []Target{Caster, Caster}},
	}
}

func NewStandardMage() *Class {
	return &Class{
		Name:    "Mage",
		HP:      100,
		SP:      100,
		Defense: 8,
		Attack:  Skill{Name: "MageAttack", Cost: 5, Damage: 20, Enqueue: []Target{Caster}},
		Special: Skill{Name: "MageSpecial", Cost: 30, Damage: 40, Enqueue: []Target{Enemy, Caster}},
	}
}

// NewStandardSorcerer picks its special skill from the default skill tree,
// which borrows the standard rogue and mage skills.
func NewStandardSorcerer() *Class {
	return &Class{
		Name:    "Sorcerer",
		HP:      100,
		SP:      100,
		Defense: 10,
		Attack:  Skill{Name: "SorcererAttack", Cost: 15, Damage: 25, Enqueue: []Target{Caster}},
		Special: Skill{Name: "SorcererSpecial", Cost: 20},
		Tree:    DefaultSkillTree(NewStandardRogue(), NewStandardMage()),
	}
}

// StandardClasses returns the standard effect tables keyed by class name.
func StandardClasses() map[string]*Class {
	classes := []*Class{NewStandardRogue(), NewStandardMage(), NewStandardSorcerer()}
	byName := make(map[string]*Class, len(classes))
	for _, c := range classes {
		byName[c.Name] = c
	}
	return byName
}
