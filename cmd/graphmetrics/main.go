// SPDX-License-Identifier: MIT

// Command graphmetrics prints the structural metrics of an undirected weighted
// graph read from an adjacency-matrix file or generated from a fixture spec.
//
//	graphmetrics [flags] <matrix-file>
//	graphmetrics --generate cycle:8 --format yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/graphmetrics/adjfile"
	"github.com/katalvlaran/graphmetrics/builder"
	"github.com/katalvlaran/graphmetrics/graph"
	"github.com/katalvlaran/graphmetrics/internal/config"
	"github.com/katalvlaran/graphmetrics/internal/logging"
	"github.com/katalvlaran/graphmetrics/report"
	"github.com/katalvlaran/graphmetrics/separators"
)

// errUsage marks a command line without a graph source.
var errUsage = errors.New("usage: graphmetrics [flags] <matrix-file>")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logging.Error("graphmetrics failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// run parses args, loads the graph and writes the report to stdout.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := pflag.NewFlagSet("graphmetrics", pflag.ContinueOnError)
	config.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.SetLevel(level)
	logging.SetJSONOutput(cfg.LogJSON)

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	g, source, err := loadGraph(cfg, flags.Args())
	if err != nil {
		return err
	}
	logging.Debug("graph loaded", "source", source, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	var opts []report.Option
	if cfg.Sequential {
		opts = append(opts, report.WithSequential())
	} else if cfg.Workers > 0 {
		opts = append(opts, report.WithSeparatorOptions(separators.WithWorkers(cfg.Workers)))
	}

	start := time.Now()
	r, err := report.Build(ctx, g, opts...)
	if err != nil {
		return err
	}
	logging.Debug("report built", "sequential", cfg.Sequential, "elapsed", time.Since(start))

	return r.Encode(stdout, format)
}

// loadGraph picks the fixture spec when set, otherwise the single positional file.
func loadGraph(cfg *config.Config, args []string) (*graph.Graph, string, error) {
	if cfg.Generate != "" {
		if len(args) > 0 {
			return nil, "", fmt.Errorf("--generate and a matrix file are mutually exclusive: %w", errUsage)
		}
		cons, err := builder.ParseSpec(cfg.Generate)
		if err != nil {
			return nil, "", err
		}
		g, err := builder.BuildGraph(nil, cons)

		return g, cfg.Generate, err
	}
	if len(args) != 1 {
		return nil, "", errUsage
	}
	g, err := adjfile.Load(args[0])

	return g, args[0], err
}
