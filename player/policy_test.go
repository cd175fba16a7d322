package player

import (
	"fmt"
	"testing"

	"battle/game"

	"github.com/stretchr/testify/require"
)

// battle seats a mage and a rogue with the given stats, mage first.
func battle(q *game.Queue, mageHP, mageSP, rogueHP, rogueSP int) (*game.Character, *game.Character) {
	m := game.NewCharacter("m", game.NewStandardMage())
	r := game.NewCharacter("r", game.NewStandardRogue())
	q.Seat(m, r)
	m.SetHP(mageHP)
	m.SetSP(mageSP)
	r.SetHP(rogueHP)
	r.SetSP(rogueSP)
	q.Enqueue(m)
	q.Enqueue(r)
	return m, r
}

func TestNew(t *testing.T) {
	for _, name := range []string{"manual", "random", "recursive", "iterative"} {
		t.Run(name, func(t *testing.T) {
			p, err := New(name, WithSeed(7), WithMetrics())
			require.NoError(t, err)
			require.Equal(t, name == "manual", p.Manual())
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := New("greedy")
		require.ErrorIs(t, err, ErrUnknownPolicy)
	})
}

func TestManual(t *testing.T) {
	q := game.NewQueue()
	battle(q, 100, 100, 100, 100)
	p := NewManual()

	require.Equal(t, game.Attack, p.SelectAction(q, game.ParseAction("A")))
	require.Equal(t, game.Special, p.SelectAction(q, game.ParseAction("S")))
	require.Equal(t, game.NoOp, p.SelectAction(q, game.ParseAction("Q")))
	require.Equal(t, game.NoOp, p.SelectAction(q, game.NoOp))
}

func TestRandom(t *testing.T) {
	t.Run("same seed replays the same choices", func(t *testing.T) {
		q := game.NewQueue()
		battle(q, 100, 100, 100, 100)
		a, b := NewRandom(3), NewRandom(3)
		seen := map[game.Action]bool{}
		for i := 0; i < 50; i++ {
			action := a.SelectAction(q, game.NoOp)
			require.Equal(t, action, b.SelectAction(q, game.NoOp))
			seen[action] = true
		}
		require.Equal(t, map[game.Action]bool{game.Attack: true, game.Special: true}, seen)
	})

	t.Run("only available actions", func(t *testing.T) {
		q := game.NewQueue()
		battle(q, 100, 10, 100, 100) // Mage can only attack
		p := NewRandom(3)
		for i := 0; i < 20; i++ {
			require.Equal(t, game.Attack, p.SelectAction(q, game.NoOp))
		}
	})

	t.Run("no actions", func(t *testing.T) {
		q := game.NewQueue()
		battle(q, 100, 0, 100, 0)
		require.Equal(t, game.NoOp, NewRandom(3).SelectAction(q, game.NoOp))
		require.Equal(t, game.NoOp, NewRandom(3).SelectAction(game.NewQueue(), game.NoOp))
	})
}

func TestMinimax(t *testing.T) {
	policies := map[string]Policy{
		"recursive": NewRecursiveMinimax(),
		"iterative": NewIterativeMinimax(),
	}

	for name, p := range policies {
		t.Run(name, func(t *testing.T) {
			q := game.NewQueue()
			m, r := battle(q, 7, 30, 30, 3)

			// Special kills the rogue outright; attacking lets it strike back.
			require.Equal(t, game.Special, p.SelectAction(q, game.NoOp))
			require.Equal(t, 30, r.HP())
			require.Equal(t, 30, m.SP())
			require.False(t, p.Manual())
		})

		t.Run(name+" without actions", func(t *testing.T) {
			q := game.NewQueue()
			battle(q, 100, 0, 100, 0)
			require.Equal(t, game.NoOp, p.SelectAction(q, game.NoOp))
		})

		t.Run(name+" on a finished battle", func(t *testing.T) {
			q := game.NewQueue()
			battle(q, 100, 100, 0, 100)
			require.Panics(t, func() { p.SelectAction(q, game.NoOp) })
		})
	}
}

func TestMinimaxPoliciesAgree(t *testing.T) {
	queues := map[string]func() *game.Queue{
		"plain":      game.NewQueue,
		"restricted": game.NewRestrictedQueue,
	}
	recursive, iterative := NewRecursiveMinimax(), NewIterativeMinimax()

	for name, newQueue := range queues {
		t.Run(name, func(t *testing.T) {
			for _, mageHP := range []int{7, 25} {
				for _, mageSP := range []int{5, 35} {
					for _, rogueHP := range []int{7, 25} {
						for _, rogueSP := range []int{3, 12} {
							q := newQueue()
							battle(q, mageHP, mageSP, rogueHP, rogueSP)
							msg := fmt.Sprintf("mage=%d/%d rogue=%d/%d", mageHP, mageSP, rogueHP, rogueSP)
							require.Equal(t,
								recursive.SelectAction(q, game.NoOp),
								iterative.SelectAction(q, game.NoOp),
								msg)
						}
					}
				}
			}
		})
	}
}

func TestMaxNodes(t *testing.T) {
	for _, name := range []string{"recursive", "iterative"} {
		t.Run(name, func(t *testing.T) {
			q := game.NewQueue()
			battle(q, 100, 100, 100, 100)
			p, err := New(name, WithMaxNodes(10))
			require.NoError(t, err)
			require.PanicsWithError(t, "search node limit exceeded: more than 10 nodes", func() {
				p.SelectAction(q, game.NoOp)
			})
		})
	}
}

func TestSearchMetrics(t *testing.T) {
	q := game.NewQueue()
	battle(q, 7, 30, 30, 3)

	p, err := New("iterative", WithMetrics())
	require.NoError(t, err)
	p.SelectAction(q, game.NoOp)

	searching, ok := p.(Searching)
	require.True(t, ok)
	require.Positive(t, searching.Metric().Nodes)

	_, ok = NewRandom(1).(Searching)
	require.False(t, ok)
}
