package app

import (
	"flag"

	"gridsnake/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Backend string
	TPS     int
	Seed    int64
	Debug   bool
}

// NewConfig returns a Config matching the classic game: a window, ten ticks per
// second and a time-based seed.
func NewConfig() *Config {
	return &Config{Backend: "window", TPS: core.DefaultTPS}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "backend to run (window, terminal, raylib)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for food placement (0 = time-based)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write logs to logs/snake.log")
}
