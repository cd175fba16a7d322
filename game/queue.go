package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Queue is the turn order of a two-character battle. It owns an arena of the
// two seated characters and a sequence of arena slots naming whose turn is
// next. Characters with no available action are skipped lazily whenever the
// front of the queue is inspected.
type Queue struct {
	arena     [2]*Character
	content   []Side
	first     Side // Side of the first character ever enqueued
	started   bool
	admission admission
}

// NewQueue returns an empty queue without admission control.
func NewQueue() *Queue {
	return &Queue{admission: openAdmission{}}
}

// NewRestrictedQueue returns an empty queue that limits who may enqueue whom.
// See ledger for the rules.
func NewRestrictedQueue() *Queue {
	return &Queue{admission: &ledger{}}
}

// Restricted reports whether q enforces admission control.
func (q *Queue) Restricted() bool {
	_, ok := q.admission.(*ledger)
	return ok
}

// Seat binds the two opposing characters to the arena of q. It must be called
// once before anything is enqueued.
func (q *Queue) Seat(a, b *Character) {
	if q.arena[SideA] != nil {
		panic("queue already has two characters seated")
	}
	if a == b {
		panic("a character cannot fight itself")
	}
	if a.queue != nil || b.queue != nil {
		panic("character is already seated in another queue")
	}
	a.side, a.queue = SideA, q
	b.side, b.queue = SideB, q
	q.arena = [2]*Character{a, b}
}

// Enqueue appends c to the back of the queue. The first character ever
// enqueued becomes the first player and its enemy the second player.
func (q *Queue) Enqueue(c *Character) {
	if c.queue != q {
		panic(fmt.Sprintf("character %s is not seated in this queue", c.name))
	}
	if !q.admission.admit(q, c.side) {
		log.Debug().Str("character", c.name).Msg("restricted queue refused enqueue")
		return
	}
	q.content = append(q.content, c.side)
	if !q.started {
		q.started = true
		q.first = c.side
	}
}

// Dequeue removes and returns the front character after skipping characters
// with no available action, then skips again so the new front can act.
// Dequeuing an empty queue is a programmer error;
// check IsEmpty first.
func (q *Queue) Dequeue() *Character {
	q.clean()
	if len(q.content) == 0 {
		panic("dequeue from an empty queue")
	}
	front := q.arena[q.content[0]]
	q.removeFront()
	q.clean()
	return front
}

// Peek returns the front character after skipping characters with no
// available action. If nothing is left it returns the first player, so that
// a finished battle can still be inspected.
func (q *Queue) Peek() *Character {
	q.clean()
	if len(q.content) > 0 {
		return q.arena[q.content[0]]
	}
	if !q.started {
		return nil
	}
	return q.arena[q.first]
}

// IsEmpty reports whether no character that can act is left in the queue.
func (q *Queue) IsEmpty() bool {
	q.clean()
	return len(q.content) == 0
}

// IsOver reports whether the battle has ended: the queue is empty or either
// side is out of HP.
func (q *Queue) IsOver() bool {
	if q.IsEmpty() {
		return true
	}
	return q.arena[SideA].hp == 0 || q.arena[SideB].hp == 0
}

// Winner returns the surviving character of a finished battle. It returns nil
// while the battle is in progress and for a draw, where the queue emptied
// with both sides alive.
func (q *Queue) Winner() *Character {
	if !q.started || !q.IsOver() {
		return nil
	}
	first, second := q.arena[q.first], q.arena[q.first.Other()]
	if first.hp == 0 {
		return second
	}
	if second.hp == 0 {
		return first
	}
	return nil
}

// Clone returns an independent copy of q. Both characters are copied into a
// fresh arena and the turn order is replayed through Enqueue, so a restricted
// queue regenerates its ledger rather than copying it.
func (q *Queue) Clone() *Queue {
	clone := &Queue{
		first:     q.first,
		started:   q.started,
		admission: q.admission.empty(),
	}
	if q.arena[SideA] == nil {
		return clone
	}
	clone.arena = [2]*Character{q.arena[SideA].cloneInto(clone), q.arena[SideB].cloneInto(clone)}
	for _, side := range q.content {
		clone.Enqueue(clone.arena[side])
	}
	return clone
}

// Drain forcibly empties the queue. A battle drained with both sides alive
// ends in a draw.
func (q *Queue) Drain() {
	for len(q.content) > 0 {
		q.removeFront()
	}
}

// Len is the number of queued entries, including ones that would be skipped.
func (q *Queue) Len() int {
	return len(q.content)
}

// Characters returns the queued characters in turn order without skipping.
func (q *Queue) Characters() []*Character {
	characters := make([]*Character, len(q.content))
	for i, side := range q.content {
		characters[i] = q.arena[side]
	}
	return characters
}

// Character returns the character seated on a side.
func (q *Queue) Character(side Side) *Character {
	return q.arena[side]
}

// Admissions reports, per queued entry, whether that entry may still enqueue
// characters. It is nil for a queue without admission control.
func (q *Queue) Admissions() []bool {
	return q.admission.flags()
}

func (q *Queue) String() string {
	names := make([]string, len(q.content))
	for i, side := range q.content {
		names[i] = q.arena[side].String()
	}
	return strings.Join(names, " -> ")
}

func (q *Queue) clean() {
	for len(q.content) > 0 && len(q.arena[q.content[0]].Actions()) == 0 {
		q.removeFront()
	}
}

func (q *Queue) removeFront() {
	q.content = q.content[1:]
	q.admission.pop()
}
