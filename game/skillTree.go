package game

import "fmt"

// SkillTree picks a skill for a caster without searching. A node whose
// condition holds defers to its children; a node whose condition fails offers
// its own skill. Among all offered skills the one with the lowest priority
// number wins. Priorities are unique within a tree.
type SkillTree struct {
	Skill     Skill
	Condition Condition
	Priority  int
	Children  []*SkillTree
}

// Candidate is a skill offered by a tree node together with its priority.
type Candidate struct {
	Skill    Skill
	Priority int
}

func NewSkillTree(skill Skill, condition Condition, priority int, children ...*SkillTree) *SkillTree {
	return &SkillTree{
		Skill:     skill,
		Condition: condition,
		Priority:  priority,
		Children:  children,
	}
}

// Candidates collects the skills offered for caster against target.
func (t *SkillTree) Candidates(caster, target *Character) []Candidate {
	if !t.Condition(caster, target) {
		return []Candidate{{Skill: t.Skill, Priority: t.Priority}}
	}
	var candidates []Candidate
	for _, child := range t.Children {
		candidates = append(candidates, child.Candidates(caster, target)...)
	}
	return candidates
}

// PickSkill returns the offered skill with the lowest priority number. ok is
// false if no node offered a skill.
func (t *SkillTree) PickSkill(caster, target *Character) (skill Skill, ok bool) {
	candidates := t.Candidates(caster, target)
	if len(candidates) == 0 {
		return Skill{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Priority < best.Priority {
			best = c
		}
	}
	return best.Skill, true
}

// MustPickSkill is PickSkill for trees that always offer a skill. A tree
// without a reachable failing condition is a programmer error.
func (t *SkillTree) MustPickSkill(caster, target *Character) Skill {
	skill, ok := t.PickSkill(caster, target)
	if !ok {
		panic(fmt.Sprintf("skill tree rooted at priority %d offered no skill for %s", t.Priority, caster.name))
	}
	return skill
}

// DefaultSkillTree builds the sorcerer's decision tree out of the rogue and
// mage effect tables.
func DefaultSkillTree(rogue, mage *Class) *SkillTree {
	return NewSkillTree(mage.Attack, casterHPAbove(50), 5,
		NewSkillTree(mage.Attack, casterSPAbove(20), 3,
			NewSkillTree(rogue.Special, targetHPBelow(30), 4,
				NewSkillTree(rogue.Attack, Never, 6),
			),
		),
		NewSkillTree(mage.Special, targetSPAbove(40), 2,
			NewSkillTree(rogue.Attack, Never, 8),
		),
		NewSkillTree(rogue.Attack, casterHPAbove(90), 1,
			NewSkillTree(rogue.Special, Never, 7),
		),
	)
}

// Never is the catch-all condition of leaves: the node always offers its skill.
func Never(_, _ *Character) bool { return false }

func casterHPAbove(hp int) Condition {
	return func(caster, _ *Character) bool { return caster.hp > hp }
}

func casterSPAbove(sp int) Condition {
	return func(caster, _ *Character) bool { return caster.sp > sp }
}

func targetHPBelow(hp int) Condition {
	return func(_, target *Character) bool { return target.hp < hp }
}

func targetSPAbove(sp int) Condition {
	return func(_, target *Character) bool { return target.sp > sp }
}
