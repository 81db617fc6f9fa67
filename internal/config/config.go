package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/sonirico/libemit"
)

const AppVersion = "0.1.0"

type Config struct {
	Version string `yaml:"-"`

	LogLevel      string `yaml:"log_level"`
	MaxListeners  int    `yaml:"max_listeners"`
	RecoverPanics bool   `yaml:"recover_panics"`
}

func Default() Config {
	return Config{
		Version:  AppVersion,
		LogLevel: zerolog.InfoLevel.String(),
	}
}

// LoadConfig reads the YAML file at configPath over whatever cfg already holds.
func LoadConfig(configPath string, cfg *Config) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "cannot read config file")
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "cannot parse config file %s", configPath)
	}

	cfg.Version = AppVersion
	return nil
}

// Level parses LogLevel, falling back to info when it is empty or unknown.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Options maps the config onto emitter options. The logger is supplied by the caller.
func (c Config) Options(logger libemit.Logger) []libemit.Option {
	return []libemit.Option{
		libemit.WithLogger(logger),
		libemit.WithMaxListeners(c.MaxListeners),
		libemit.WithRecover(c.RecoverPanics),
	}
}
