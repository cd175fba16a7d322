package config

import (
	"os"
	"path/filepath"
	"testing"

	"battle/game"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, "info", cfg.Log.Level)
		require.Equal(t, 300, cfg.Battle.MaxTurns)
		require.Zero(t, cfg.Battle.MaxNodes)
		require.False(t, cfg.Battle.Restricted)
		require.Len(t, cfg.Battle.Players, 2)
		require.Equal(t, "recursive", cfg.Battle.Players[0].Policy)
		require.Equal(t, uint64(1), cfg.Battle.Players[1].Seed)
		require.Len(t, cfg.Experiment.Agents, 2)
		require.Equal(t, "", cfg.Classes)
	})

	t.Run("sample file", func(t *testing.T) {
		cfg, err := Load("../configs/battle.yaml")
		require.NoError(t, err)
		require.Equal(t, "configs/classes.yaml", cfg.Classes)
		require.Equal(t, 5000000, cfg.Battle.MaxNodes)
		require.Equal(t, "Sorcerer", cfg.Battle.Players[1].Class)
		require.Len(t, cfg.Experiment.Agents, 3)
		require.Equal(t, uint64(7), cfg.Experiment.Agents[2].Seed)
		require.Equal(t, "iterative", cfg.Experiment.Agents[1].Policy)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("BATTLE_LOG_LEVEL", "debug")
		t.Setenv("BATTLE_BATTLE_MAX_TURNS", "50")
		t.Setenv("BATTLE_BATTLE_RESTRICTED", "true")
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, 50, cfg.Battle.MaxTurns)
		require.True(t, cfg.Battle.Restricted)
	})

	t.Run("invalid", func(t *testing.T) {
		cases := map[string]string{
			"one player":       "battle:\n  players:\n    - {name: a, class: Rogue, policy: random}\n",
			"same names":       "battle:\n  players:\n    - {name: a, class: Rogue, policy: random}\n    - {name: a, class: Mage, policy: random}\n",
			"negative hp":      "battle:\n  players:\n    - {name: a, class: Rogue, policy: random, hp: -1}\n    - {name: b, class: Mage, policy: random}\n",
			"no turns":         "battle:\n  max_turns: -1\n",
			"negative nodes":   "battle:\n  max_nodes: -1\n",
			"duplicate agents": "experiment:\n  agents:\n    - {id: 1, class: Rogue, policy: random}\n    - {id: 1, class: Mage, policy: random}\n",
		}
		for name, content := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := Load(writeFile(t, "battle.yaml", content))
				require.ErrorContains(t, err, "invalid config")
			})
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestLoadClasses(t *testing.T) {
	t.Run("sample table matches the standard classes", func(t *testing.T) {
		classes, err := LoadClasses("../configs/classes.yaml")
		require.NoError(t, err)
		standard := StandardClasses()
		require.Len(t, classes, len(standard))

		for name, want := range standard {
			got, err := classes.Lookup(name)
			require.NoError(t, err)
			require.Equal(t, want.HP, got.HP, name)
			require.Equal(t, want.SP, got.SP, name)
			require.Equal(t, want.Defense, got.Defense, name)
			require.Equal(t, want.Attack, got.Attack, name)
			require.Equal(t, want.Special, got.Special, name)
			require.Equal(t, want.Tree != nil, got.Tree != nil, name)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		classes, err := LoadClasses("")
		require.NoError(t, err)
		_, err = classes.Lookup("Sorcerer")
		require.NoError(t, err)
	})

	t.Run("unknown class", func(t *testing.T) {
		_, err := StandardClasses().Lookup("Paladin")
		require.ErrorIs(t, err, ErrUnknownClass)
	})

	t.Run("loaded classes fight", func(t *testing.T) {
		classes, err := ParseClasses([]byte(`
classes:
  - name: Knight
    hp: 50
    sp: 20
    defense: 5
    attack: {cost: 4, damage: 9, enqueue: [self]}
    special: {cost: 10, damage: 30, enqueue: [target, caster]}
`))
		require.NoError(t, err)
		knight, err := classes.Lookup("Knight")
		require.NoError(t, err)
		require.Equal(t, []game.Target{game.Enemy, game.Caster}, knight.Special.Enqueue)

		q := game.NewQueue()
		a, b := game.NewCharacter("a", knight), game.NewCharacter("b", knight)
		q.Seat(a, b)
		q.Enqueue(a)
		q.Enqueue(b)
		a.Apply(game.Special)
		require.Equal(t, 25, b.HP())
		require.Equal(t, 10, a.SP())
	})

	t.Run("invalid", func(t *testing.T) {
		cases := map[string]string{
			"empty":        "classes: []\n",
			"not yaml":     "classes: [\n",
			"missing name": "classes:\n  - {hp: 1, attack: {cost: 1}, special: {cost: 1}}\n",
			"duplicate":    "classes:\n  - {name: A, hp: 1, attack: {cost: 1}, special: {cost: 1}}\n  - {name: A, hp: 1, attack: {cost: 1}, special: {cost: 1}}\n",
			"zero hp":      "classes:\n  - {name: A, hp: 0, attack: {cost: 1}, special: {cost: 1}}\n",
			"free skill":   "classes:\n  - {name: A, hp: 1, attack: {cost: 0}, special: {cost: 1}}\n",
			"bad damage":   "classes:\n  - {name: A, hp: 1, attack: {cost: 1, damage: -1}, special: {cost: 1}}\n",
			"bad target":   "classes:\n  - {name: A, hp: 1, attack: {cost: 1, enqueue: [ally]}, special: {cost: 1}}\n",
			"bad tree":     "classes:\n  - {name: A, hp: 1, attack: {cost: 1}, special: {cost: 1}, tree: oak}\n",
		}
		for name, content := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := ParseClasses([]byte(content))
				require.Error(t, err)
			})
		}
	})
}
