package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rlch/cypherlite"
)

// dataFlags are shared by every command that loads a graph.
func dataFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "data",
			Aliases:  []string{"f"},
			Usage:    "JSON file to load the graph from",
			Sources:  cli.EnvVars("CYPHERLITE_DATA"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "graph config file (defaults to the nearest .cypherlite.yaml)",
		},
		&cli.BoolFlag{
			Name:  "auto",
			Usage: "infer the graph config from the JSON structure",
		},
	}
}

// loadEngine builds an engine from the shared data flags. With --auto the
// config is inferred from the data; otherwise precedence is the explicit
// --config path, then the nearest .cypherlite.yaml relative to the data
// file, then the built-in default.
func loadEngine(cmd *cli.Command, log *zap.Logger) (*cypherlite.Engine, error) {
	dataPath := cmd.String("data")
	data, err := os.ReadFile(filepath.Clean(dataPath))
	if err != nil {
		return nil, err
	}

	if cmd.Bool("auto") {
		return cypherlite.FromJSONAuto(data, cypherlite.WithLogger(log))
	}

	cfg, err := resolveConfig(cmd, dataPath)
	if err != nil {
		return nil, err
	}
	return cypherlite.FromJSON(data, *cfg, cypherlite.WithLogger(log))
}

func resolveConfig(cmd *cli.Command, dataPath string) (*cypherlite.GraphConfig, error) {
	if path := cmd.String("config"); path != "" {
		return cypherlite.LoadConfigFile(path)
	}

	cfg, err := cypherlite.LoadConfig(filepath.Dir(dataPath))
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, cypherlite.ErrConfigNotFound) {
		def := cypherlite.DefaultConfig()
		return &def, nil
	}
	return nil, fmt.Errorf("load config: %w", err)
}
