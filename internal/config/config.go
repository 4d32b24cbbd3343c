package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "fairmove.hcl"

// Config represents the complete game configuration
type Config struct {
	UI *UISettings `hcl:"ui,block"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
	Prompt   string `hcl:"prompt,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		UI: &UISettings{
			LogLevel: "warn",
			NoColor:  false,
			Prompt:   "Enter your move: ",
		},
	}
}

// Load reads configuration from an HCL file. A missing file is not an error
// and yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults for anything unset.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if config.UI == nil {
		config.UI = defaults.UI
	}
	if config.UI.LogLevel == "" {
		config.UI.LogLevel = defaults.UI.LogLevel
	}
	if config.UI.Prompt == "" {
		config.UI.Prompt = defaults.UI.Prompt
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks values that cannot be checked by the decoder.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("ui.log_level: %w", err)
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}
