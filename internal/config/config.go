// Package config loads creatures settings from INI files.
package config

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"creatures/internal/log"
	"creatures/internal/nn"
	"creatures/internal/storage"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Brain    BrainConfig
	Creature CreatureConfig
	Store    StoreConfig
	Log      LogConfig
}

// BrainConfig describes how standalone brains are built and mutated.
type BrainConfig struct {
	Topology          []int   `ini:"topology" delim:" "`
	Activation        string  `ini:"activation"`
	InputActivation   string  `ini:"input_activation"`
	WeightMin         float64 `ini:"weight_min"`
	WeightMax         float64 `ini:"weight_max"`
	Seed              int64   `ini:"seed"` // 0 seeds from the clock
	RandomConnections int     `ini:"random_connections"`
	ChanceNewNeuron   float64 `ini:"chance_new_neuron"`
}

type CreatureConfig struct {
	Parts             int `ini:"parts"`
	RandomConnections int `ini:"random_connections"`
}

type StoreConfig struct {
	Kind       string `ini:"kind"`
	SQLitePath string `ini:"sqlite_path"`
}

type LogConfig struct {
	Level string `ini:"level"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Brain: BrainConfig{
			Topology:          []int{2, 2},
			Activation:        nn.ActivationSigmoid,
			InputActivation:   nn.ActivationIdentity,
			WeightMin:         -1,
			WeightMax:         1,
			RandomConnections: 0,
			ChanceNewNeuron:   0.5,
		},
		Creature: CreatureConfig{
			Parts: 2,
		},
		Store: StoreConfig{
			Kind:       storage.DefaultStoreKind(),
			SQLitePath: "creatures.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path on top of Default. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", path, err)
	}

	config := Default()
	sections := []struct {
		name   string
		target interface{}
	}{
		{"brain", &config.Brain},
		{"creature", &config.Creature},
		{"store", &config.Store},
		{"log", &config.Log},
	}
	for _, section := range sections {
		if !file.HasSection(section.name) {
			continue
		}
		if err := file.Section(section.name).MapTo(section.target); err != nil {
			return nil, fmt.Errorf("failed to map [%s] section: %w", section.name, err)
		}
	}

	config.Brain.Activation = cleanIniString(config.Brain.Activation)
	config.Brain.InputActivation = cleanIniString(config.Brain.InputActivation)
	config.Store.Kind = cleanIniString(config.Store.Kind)
	config.Store.SQLitePath = cleanIniString(config.Store.SQLitePath)
	config.Log.Level = cleanIniString(config.Log.Level)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if err := c.Brain.Validate(); err != nil {
		return err
	}
	if c.Creature.Parts < 1 {
		return fmt.Errorf("%w: creature parts must be positive, got %d", ErrInvalidConfig, c.Creature.Parts)
	}
	if c.Creature.RandomConnections < 0 {
		return fmt.Errorf("%w: creature random_connections must not be negative", ErrInvalidConfig)
	}
	switch c.Store.Kind {
	case storage.KindMemory:
	case storage.KindSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("%w: sqlite_path is required for the sqlite store", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported store kind %q", ErrInvalidConfig, c.Store.Kind)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (b BrainConfig) Validate() error {
	if len(b.Topology) < 2 {
		return fmt.Errorf("%w: topology needs at least 2 layers, got %d", ErrInvalidConfig, len(b.Topology))
	}
	for i, size := range b.Topology {
		if size < 0 {
			return fmt.Errorf("%w: layer %d has negative size %d", ErrInvalidConfig, i, size)
		}
	}
	if b.WeightMin > b.WeightMax {
		return fmt.Errorf("%w: weight_min %g exceeds weight_max %g", ErrInvalidConfig, b.WeightMin, b.WeightMax)
	}
	if b.RandomConnections < 0 {
		return fmt.Errorf("%w: random_connections must not be negative", ErrInvalidConfig)
	}
	if b.ChanceNewNeuron < 0 || b.ChanceNewNeuron > 1 {
		return fmt.Errorf("%w: chance_new_neuron must be within [0, 1], got %g", ErrInvalidConfig, b.ChanceNewNeuron)
	}
	if _, err := nn.GetActivation(b.Activation); err != nil {
		return fmt.Errorf("%w: activation %q: %v", ErrInvalidConfig, b.Activation, err)
	}
	if _, err := nn.GetActivation(b.InputActivation); err != nil {
		return fmt.Errorf("%w: input_activation %q: %v", ErrInvalidConfig, b.InputActivation, err)
	}
	return nil
}

// Options converts the brain settings into network construction options.
func (b BrainConfig) Options() ([]nn.Option, error) {
	activation, err := nn.GetActivation(b.Activation)
	if err != nil {
		return nil, err
	}
	inputActivation, err := nn.GetActivation(b.InputActivation)
	if err != nil {
		return nil, err
	}

	opts := []nn.Option{
		nn.WithActivation(activation),
		nn.WithInputActivation(inputActivation),
		nn.WithWeightRange(b.WeightMin, b.WeightMax),
	}
	if b.Seed != 0 {
		opts = append(opts, nn.WithSeed(b.Seed))
	}
	return opts, nil
}

func cleanIniString(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"'`)
}
