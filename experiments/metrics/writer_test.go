package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "exp")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(w.Dir(), filepath.Join(root, "exp")))

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		Agent1: 1,
		Agent2: 2,
		GameMetric: GameMetric{
			ID:             "g1",
			StartingPlayer: "agent1",
			Winner:         "agent2",
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     4,
		},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game: "g1",
		MoveMetric: MoveMetric{
			Step:         1,
			Player:       "agent1",
			Action:       "A",
			SearchMetric: SearchMetric{Duration: time.Millisecond, Nodes: 9, Terminals: 4, MaxDepth: 3},
		},
	}}))

	b, err := os.ReadFile(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	require.Equal(t,
		"id,agent1,agent2,starting_player,winner,start_time,end_time,duration,total_moves\n"+
			"g1,1,2,agent1,agent2,2024-01-02T03:04:05Z,2024-01-02T03:04:06Z,1s,4\n",
		string(b))

	b, err = os.ReadFile(filepath.Join(w.Dir(), "move_records.csv"))
	require.NoError(t, err)
	require.Equal(t,
		"game,step,player,action,duration,nodes,terminals,max_depth\n"+
			"g1,1,agent1,A,1ms,9,4,3\n",
		string(b))
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start()
	c.AddNode(0)
	c.AddNode(2)
	c.AddNode(1)
	c.AddTerminal()
	m := c.Complete()
	require.Equal(t, 3, m.Nodes)
	require.Equal(t, 1, m.Terminals)
	require.Equal(t, 2, m.MaxDepth)

	c.Start()
	require.Zero(t, c.Complete().Nodes)

	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete())
}
