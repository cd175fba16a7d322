package experiments

import (
	"fmt"

	"battle/config"
	"battle/engine"
	"battle/experiments/metrics"
	"battle/player"

	"github.com/rs/zerolog/log"
)

type Option func(r *runner)

func WithClasses(classes config.Classes) Option {
	return func(r *runner) {
		r.classes = classes
	}
}

func WithRestricted(restricted bool) Option {
	return func(r *runner) {
		r.restricted = restricted
	}
}

func WithMaxTurns(n int) Option {
	return func(r *runner) {
		r.maxTurns = n
	}
}

func WithMaxNodes(n int) Option {
	return func(r *runner) {
		r.maxNodes = n
	}
}

type runner struct {
	classes    config.Classes
	restricted bool
	maxTurns   int
	maxNodes   int
}

// RunMatchups plays games battles between every pair of agents, alternating
// which agent starts, and stores the records in a new directory under outDir.
// It returns that directory.
func RunMatchups(name string, configs []metrics.AgentConfig, games int, outDir string, options ...Option) (string, error) {
	r := &runner{classes: config.StandardClasses()}
	for _, option := range options {
		option(r)
	}

	// Each matchup pairs two different agents
	matchUps := [][]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	if len(matchUps) == 0 {
		return "", fmt.Errorf("experiment %s needs at least 2 agents, got %d", name, len(configs))
	}

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < games; i++ {
			first, second := matchup[0], matchup[1]
			if i%2 == 1 {
				first, second = second, first
			}

			winner, gameMetric, moveMetrics, err := r.runGame(first, second, uint64(i))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	dir, err := store(name, outDir, configs, gameRecords, moveRecords)
	if err != nil {
		return "", err
	}
	log.Info().Str("dir", dir).Msg("stored experiment records")
	return dir, nil
}

// runGame executes a single battle between two agents and returns the winner
func (r *runner) runGame(config1, config2 metrics.AgentConfig, game uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	fighters := make([]engine.Fighter, 2)
	policies := [2]player.Policy{}
	for i, cfg := range []metrics.AgentConfig{config1, config2} {
		class, err := r.classes.Lookup(cfg.Class)
		if err != nil {
			return "", metrics.GameMetric{}, nil, err
		}
		// Offset the seed so games of a matchup differ but stay reproducible
		policy, err := player.New(cfg.Policy,
			player.WithSeed(cfg.Seed+game),
			player.WithMaxNodes(r.maxNodes),
			player.WithMetrics(),
		)
		if err != nil {
			return "", metrics.GameMetric{}, nil, err
		}
		if policy.Manual() {
			return "", metrics.GameMetric{}, nil, fmt.Errorf("agent %d: manual policies cannot play experiments", cfg.ID)
		}
		fighters[i] = engine.Fighter{
			Name:  fmt.Sprintf("agent%d", cfg.ID),
			Class: class,
			HP:    cfg.HP,
			SP:    cfg.SP,
		}
		policies[i] = policy
	}

	q := engine.NewBattle(r.restricted, fighters[0], fighters[1])
	e := engine.LocalEngine(q, policies, engine.WithMaxTurns(r.maxTurns))
	return e.Run()
}

func store(name, outDir string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	return writer.Dir(), nil
}
