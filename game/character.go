package game

import "fmt"

// Character is one of the two actors of a battle. It lives in the arena of
// the queue it is seated in and reaches its enemy through that arena.
type Character struct {
	name  string
	class *Class
	hp    int
	sp    int
	side  Side
	queue *Queue
}

// NewCharacter returns a character at its class's full HP and SP. It cannot
// act until it is seated in a queue.
func NewCharacter(name string, class *Class) *Character {
	if class == nil {
		panic("character needs a class")
	}
	return &Character{
		name:  name,
		class: class,
		hp:    class.HP,
		sp:    class.SP,
	}
}

func (c *Character) Name() string  { return c.name }
func (c *Character) Class() *Class { return c.class }
func (c *Character) HP() int       { return c.hp }
func (c *Character) SP() int       { return c.sp }
func (c *Character) Side() Side    { return c.side }

func (c *Character) SetHP(hp int) { c.hp = clamp(hp, c.class.HP) }
func (c *Character) SetSP(sp int) { c.sp = clamp(sp, c.class.SP) }

func clamp(v, upper int) int {
	return min(max(v, 0), upper)
}

// Enemy returns the character seated in the other slot, or nil if c is not
// seated yet.
func (c *Character) Enemy() *Character {
	if c.queue == nil {
		return nil
	}
	return c.queue.arena[c.side.Other()]
}

// Actions lists the actions c can currently afford, Attack before Special.
// The order is the tie-break order of the search.
func (c *Character) Actions() []Action {
	actions := make([]Action, 0, 2)
	if c.sp >= c.class.Attack.Cost {
		actions = append(actions, Attack)
	}
	if c.sp >= c.class.Special.Cost {
		actions = append(actions, Special)
	}
	return actions
}

// Apply performs an action: it spends c's SP, damages the enemy and adds
// characters back to the queue as the resolved skill says. Applying an action
// c cannot afford is a programmer error.
func (c *Character) Apply(action Action) {
	if c.queue == nil {
		panic(fmt.Sprintf("character %s is not seated in a queue", c.name))
	}
	skill, ok := c.class.Skill(action)
	if !ok || c.sp < skill.Cost {
		panic(fmt.Sprintf("character %s cannot perform action %s", c.name, action))
	}
	enemy := c.Enemy()

	cost := skill.Cost
	if action == Special && c.class.Tree != nil {
		skill = c.class.Tree.MustPickSkill(c, enemy)
	}

	c.sp -= cost
	enemy.hp = max(0, enemy.hp-skill.DamageTo(enemy.class))

	for _, target := range skill.Enqueue {
		if target == Enemy {
			c.queue.Enqueue(enemy)
		} else {
			c.queue.Enqueue(c)
		}
	}
}

// cloneInto copies c into the arena of q under the same side.
func (c *Character) cloneInto(q *Queue) *Character {
	return &Character{
		name:  c.name,
		class: c.class,
		hp:    c.hp,
		sp:    c.sp,
		side:  c.side,
		queue: q,
	}
}

func (c *Character) String() string {
	return fmt.Sprintf("%s (%s): %d/%d", c.name, c.class.Name, c.hp, c.sp)
}
