package config

import (
	"errors"
	"fmt"
	"strings"

	"battle/experiments/metrics"
	"battle/meta"

	"github.com/spf13/viper"
)

type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Classes    string           `mapstructure:"classes"` // Class table file, empty for the standard table
	Battle     BattleConfig     `mapstructure:"battle"`
	Experiment ExperimentConfig `mapstructure:"experiment"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"` // Console output instead of JSON
}

type BattleConfig struct {
	Restricted bool           `mapstructure:"restricted"`
	MaxTurns   int            `mapstructure:"max_turns"`
	MaxNodes   int            `mapstructure:"max_nodes"` // Per search, 0 for unlimited
	Players    []PlayerConfig `mapstructure:"players"` // First player first
}

type PlayerConfig struct {
	Name   string `mapstructure:"name"`
	Class  string `mapstructure:"class"`
	Policy string `mapstructure:"policy"`
	Seed   uint64 `mapstructure:"seed"`
	HP     int    `mapstructure:"hp"` // 0 starts at the class maximum
	SP     int    `mapstructure:"sp"` // 0 starts at the class maximum
}

type ExperimentConfig struct {
	Name   string                `mapstructure:"name"`
	Games  int                   `mapstructure:"games"`
	OutDir string                `mapstructure:"out_dir"`
	Agents []metrics.AgentConfig `mapstructure:"agents"`
}

// Load reads the config file at path, if any, over the defaults. Every key can
// be overridden from the environment with the BATTLE_ prefix, for example
// BATTLE_LOG_LEVEL=debug.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BATTLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
	v.SetDefault("classes", "")
	v.SetDefault("battle.restricted", false)
	v.SetDefault("battle.max_turns", meta.MAX_TURNS)
	v.SetDefault("battle.max_nodes", meta.MAX_NODES)
	v.SetDefault("battle.players", []map[string]any{
		{"name": "r", "class": "Rogue", "policy": "recursive", "hp": 30, "sp": 15},
		{"name": "m", "class": "Mage", "policy": "random", "seed": meta.SEED, "hp": 30, "sp": 40},
	})
	v.SetDefault("experiment.name", "matchups")
	v.SetDefault("experiment.games", meta.GAMES)
	v.SetDefault("experiment.out_dir", meta.OUT_DIR)
	v.SetDefault("experiment.agents", []map[string]any{
		{"id": 1, "class": "Rogue", "policy": "recursive", "hp": 30, "sp": 15},
		{"id": 2, "class": "Mage", "policy": "random", "seed": meta.SEED, "hp": 30, "sp": 40},
	})
}

func (c *Config) validate() error {
	if len(c.Battle.Players) != 2 {
		return fmt.Errorf("a battle needs exactly 2 players, got %d", len(c.Battle.Players))
	}
	a, b := c.Battle.Players[0], c.Battle.Players[1]
	if a.Name == "" || b.Name == "" {
		return errors.New("players need a name")
	}
	if a.Name == b.Name {
		return fmt.Errorf("players share the name %q", a.Name)
	}
	for _, p := range c.Battle.Players {
		if p.HP < 0 || p.SP < 0 {
			return fmt.Errorf("player %q has negative stats", p.Name)
		}
	}
	if c.Battle.MaxTurns <= 0 {
		return fmt.Errorf("max_turns must be positive, got %d", c.Battle.MaxTurns)
	}
	if c.Battle.MaxNodes < 0 {
		return fmt.Errorf("max_nodes must not be negative, got %d", c.Battle.MaxNodes)
	}
	if c.Experiment.Games <= 0 {
		return fmt.Errorf("experiment games must be positive, got %d", c.Experiment.Games)
	}
	ids := map[int]bool{}
	for _, agent := range c.Experiment.Agents {
		if agent.HP < 0 || agent.SP < 0 {
			return fmt.Errorf("agent %d has negative stats", agent.ID)
		}
		if ids[agent.ID] {
			return fmt.Errorf("agent id %d used twice", agent.ID)
		}
		ids[agent.ID] = true
	}
	return nil
}
