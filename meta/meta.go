// meta/meta.go
package meta

// MAX_TURNS bounds a battle. A battle still running after this many turns is
// drained and scored as a draw.
const MAX_TURNS = 300

// MAX_NODES bounds the states one search may visit. Zero means unlimited.
const MAX_NODES = 0

// GAMES is the number of battles per experiment match-up.
const GAMES = 10

// SEED seeds random policies when no seed is configured.
const SEED = 1

// CONFIG_PATH is the default application config file.
const CONFIG_PATH = "configs/battle.yaml"

// OUT_DIR is where experiment records are written.
const OUT_DIR = "results"
