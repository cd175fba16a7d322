package engine

import "battle/game"

// Fighter describes one side of a battle.
type Fighter struct {
	Name  string
	Class *game.Class
	HP    int // 0 starts at the class maximum
	SP    int // 0 starts at the class maximum
}

// NewBattle seats a and b in a fresh queue and enqueues them in that order,
// so a acts first.
func NewBattle(restricted bool, a, b Fighter) *game.Queue {
	q := game.NewQueue()
	if restricted {
		q = game.NewRestrictedQueue()
	}

	ca, cb := a.character(), b.character()
	q.Seat(ca, cb)
	q.Enqueue(ca)
	q.Enqueue(cb)
	return q
}

func (f Fighter) character() *game.Character {
	c := game.NewCharacter(f.Name, f.Class)
	if f.HP > 0 {
		c.SetHP(f.HP)
	}
	if f.SP > 0 {
		c.SetSP(f.SP)
	}
	return c
}
