// Command cypherlite queries JSON documents with Cypher from the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "cypherlite",
		Usage:   "Query JSON data as a graph with Cypher",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			queryCommand(),
			schemaCommand(),
			replCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the CLI logger. Debug output goes to stderr so result
// output stays pipeable.
func newLogger(cmd *cli.Command) (*zap.Logger, error) {
	if !cmd.Bool("verbose") {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
