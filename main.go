package main

import (
	"flag"
	"fmt"
	"os"

	"battle/config"
	"battle/engine"
	"battle/experiments"
	"battle/meta"
	"battle/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", meta.CONFIG_PATH, "path to configuration file, empty for defaults")
	experiment := flag.Bool("experiment", false, "run the configured experiment instead of a single battle")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := initLogger(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	classes, err := config.LoadClasses(cfg.Classes)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load classes")
	}

	if *experiment {
		runExperiment(cfg, classes)
		return
	}
	runBattle(cfg, classes)
}

func initLogger(cfg config.LogConfig) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return nil
}

func runBattle(cfg *config.Config, classes config.Classes) {
	fighters := make([]engine.Fighter, 2)
	policies := [2]player.Policy{}
	for i, p := range cfg.Battle.Players {
		class, err := classes.Lookup(p.Class)
		if err != nil {
			log.Fatal().Err(err).Str("player", p.Name).Msg("invalid player")
		}
		policy, err := player.New(p.Policy, player.WithSeed(p.Seed), player.WithMaxNodes(cfg.Battle.MaxNodes))
		if err != nil {
			log.Fatal().Err(err).Str("player", p.Name).Msg("invalid player")
		}
		fighters[i] = engine.Fighter{Name: p.Name, Class: class, HP: p.HP, SP: p.SP}
		policies[i] = policy
	}

	q := engine.NewBattle(cfg.Battle.Restricted, fighters[0], fighters[1])
	e := engine.LocalEngine(q, policies,
		engine.WithInput(engine.NewReaderInput(os.Stdin, os.Stdout)),
		engine.WithMaxTurns(cfg.Battle.MaxTurns),
	)

	winner, gameMetric, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Str("battle", e.ID).Msg("battle aborted")
	}
	if winner == "" {
		fmt.Printf("Draw after %d moves\n", gameMetric.TotalMoves)
		return
	}
	fmt.Printf("%s wins after %d moves\n", winner, gameMetric.TotalMoves)
}

func runExperiment(cfg *config.Config, classes config.Classes) {
	dir, err := experiments.RunMatchups(
		cfg.Experiment.Name,
		cfg.Experiment.Agents,
		cfg.Experiment.Games,
		cfg.Experiment.OutDir,
		experiments.WithClasses(classes),
		experiments.WithRestricted(cfg.Battle.Restricted),
		experiments.WithMaxTurns(cfg.Battle.MaxTurns),
		experiments.WithMaxNodes(cfg.Battle.MaxNodes),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	fmt.Printf("Records written to %s\n", dir)
}
