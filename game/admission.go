package game

// admission decides whether an enqueue is allowed and keeps whatever
// bookkeeping that needs in step with the queue content.
type admission interface {
	admit(q *Queue, side Side) bool
	pop()
	flags() []bool
	empty() admission
}

type openAdmission struct{}

func (openAdmission) admit(*Queue, Side) bool { return true }
func (openAdmission) pop()                    {}
func (openAdmission) flags() []bool           { return nil }
func (openAdmission) empty() admission        { return openAdmission{} }

type entry struct {
	side    Side
	blocked bool // Whether this entry is barred from enqueuing anyone
}

// ledger is the admission control of a restricted queue. The character at the
// front of the queue is taken to be the one enqueuing. An entry is blocked if
// it was enqueued by the other character while the ledger already held more
// than one entry, or if two unblocked entries of the same character were
// already queued. A blocked entry at the front cannot enqueue anyone.
type ledger struct {
	entries []entry
}

func (l *ledger) admit(q *Queue, side Side) bool {
	if !q.started {
		l.entries = append(l.entries, entry{side: side})
		return true
	}

	enqueuer := side
	if len(l.entries) > 0 {
		if l.entries[0].blocked {
			return false
		}
		enqueuer = l.entries[0].side
	}

	blocked := l.unblocked(side) >= 2
	if enqueuer != side && len(l.entries) > 1 {
		blocked = true
	}
	l.entries = append(l.entries, entry{side: side, blocked: blocked})
	return true
}

func (l *ledger) unblocked(side Side) int {
	count := 0
	for _, e := range l.entries {
		if e.side == side && !e.blocked {
			count++
		}
	}
	return count
}

func (l *ledger) pop() {
	if len(l.entries) > 0 {
		l.entries = l.entries[1:]
	}
}

func (l *ledger) flags() []bool {
	flags := make([]bool, len(l.entries))
	for i, e := range l.entries {
		flags[i] = !e.blocked
	}
	return flags
}

func (l *ledger) empty() admission {
	return &ledger{}
}
