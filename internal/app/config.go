package app

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gerrev/internal/agent"
	"github.com/maxbolgarin/gerrev/internal/gerrit"
	"github.com/maxbolgarin/gerrev/internal/reviewer"
)

// Config represents the main application configuration.
type Config struct {
	Gerrit gerrit.Config   `yaml:"gerrit"`
	Agent  agent.Config    `yaml:"agent"`
	Review reviewer.Config `yaml:"review"`
}

// LoadConfig reads the YAML config file when a path is given and applies
// environment overrides on top; with no path the environment alone is used.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, errm.Wrap(err, "read config file")
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, errm.Wrap(err, "read config from env")
	}
	return cfg, nil
}
