package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"creatures/internal/config"
	"creatures/internal/log"
	"creatures/internal/nn"
	"creatures/internal/storage"
)

type commonFlags struct {
	configPath *string
	storeKind  *string
	dbPath     *string
	logLevel   *string
}

func bindCommonFlags(fs *flag.FlagSet) *commonFlags {
	return &commonFlags{
		configPath: fs.String("config", "", "INI config file"),
		storeKind:  fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite"),
		dbPath:     fs.String("db-path", "creatures.db", "sqlite database path"),
		logLevel:   fs.String("log-level", "info", "log level: debug|info|warning|error"),
	}
}

type brainFlags struct {
	topology    *string
	activation  *string
	seed        *int64
	connections *int
	chance      *float64
}

func bindBrainFlags(fs *flag.FlagSet) *brainFlags {
	return &brainFlags{
		topology:    fs.String("topology", "2,2", "comma separated neurons per layer"),
		activation:  fs.String("activation", nn.ActivationSigmoid, "activation of non-input neurons"),
		seed:        fs.Int64("seed", 0, "random seed (0 seeds from the clock)"),
		connections: fs.Int("connections", 0, "random connections added after full wiring"),
		chance:      fs.Float64("chance-new-neuron", 0.5, "probability a random connection adds a hidden neuron"),
	}
}

// loadSettings starts from the config file, or defaults when none is given,
// and applies only the flags that were set explicitly.
func loadSettings(fs *flag.FlagSet, common *commonFlags, brain *brainFlags) (*config.Config, error) {
	cfg := config.Default()
	if *common.configPath != "" {
		loaded, err := config.Load(*common.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if set["store"] {
		cfg.Store.Kind = *common.storeKind
	}
	if set["db-path"] {
		cfg.Store.SQLitePath = *common.dbPath
	}
	if set["log-level"] {
		cfg.Log.Level = *common.logLevel
	}
	if brain != nil {
		if set["topology"] {
			topology, err := parseTopology(*brain.topology)
			if err != nil {
				return nil, err
			}
			cfg.Brain.Topology = topology
		}
		if set["activation"] {
			cfg.Brain.Activation = *brain.activation
		}
		if set["seed"] {
			cfg.Brain.Seed = *brain.seed
		}
		if set["connections"] {
			cfg.Brain.RandomConnections = *brain.connections
		}
		if set["chance-new-neuron"] {
			cfg.Brain.ChanceNewNeuron = *brain.chance
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if set["log-level"] || *common.configPath != "" {
		if err := log.SetLevel(cfg.Log.Level); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// buildNetwork creates a fully connected network and then grows it by the
// configured number of random connections.
func buildNetwork(brain config.BrainConfig) (*nn.Network, error) {
	opts, err := brain.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, nn.WithLogger(log.Get()))

	network, err := nn.New(brain.Topology, opts...)
	if err != nil {
		return nil, err
	}
	network.FullyConnect()

	for i := 0; i < brain.RandomConnections; i++ {
		if _, err := network.AddRandomConnection(brain.ChanceNewNeuron); err != nil {
			return nil, fmt.Errorf("random connection %d: %w", i, err)
		}
	}
	log.Debugf("built brain topology=%v connections=%d", brain.Topology, len(network.Connections()))
	return network, nil
}

func parseTopology(raw string) ([]int, error) {
	fields := splitList(raw)
	topology := make([]int, 0, len(fields))
	for _, field := range fields {
		size, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid topology entry %q: %w", field, err)
		}
		topology = append(topology, size)
	}
	return topology, nil
}

func parseFloats(raw string) ([]float64, error) {
	fields := splitList(raw)
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid input value %q: %w", field, err)
		}
		values = append(values, value)
	}
	return values, nil
}

func splitList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	})
}
