package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Edge     string
	Seed     int64
	Settings string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "dense", Edge: "wrap", Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "board to run (dense or sparse)")
	fs.StringVar(&c.Edge, "edge", c.Edge, "dense edge policy (wrap or bounded)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for soup fills")
	fs.StringVar(&c.Settings, "settings", c.Settings, "optional JSON settings file")
}
