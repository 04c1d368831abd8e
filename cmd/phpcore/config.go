package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full extent of "configuration" SPEC_FULL §4.5 allows: the
// core parser itself takes none, so this only covers CLI-level defaults.
type Config struct {
	// MaxTokens overrides the lexer's cooperative token-count guard.
	// Zero means unbounded, matching parser.ParseOptions' own zero value.
	MaxTokens int `yaml:"max_tokens"`

	// Format selects the output format of the parse command: "sexpr" or
	// "json". No command-line flag overrides it.
	Format string `yaml:"format"`
}

func defaultConfig() Config {
	return Config{Format: "sexpr"}
}

// loadConfig reads and parses a YAML config file. A missing path is not an
// error: it just means the CLI falls back to defaultConfig.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Format == "" {
		cfg.Format = "sexpr"
	}
	return cfg, nil
}
