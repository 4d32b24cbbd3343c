package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/fairmove/internal/config"
)

// Globals are flags shared by every command.
type Globals struct {
	Debug  bool   `help:"Enable debug logging"`
	Config string `help:"Path to an HCL config file" default:"${config_path}" placeholder:"PATH"`
}

// setup loads the config file and builds the logger. Logs go to stderr so
// the game transcript on stdout stays readable.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	path := g.Config
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, SetupLogger(os.Stderr, cfg.Level(), g.Debug), nil
}
