package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/outofforest/logger"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/outofforest/dats/workload"
)

const (
	flagConfig   = "config"
	flagSeed     = "seed"
	flagOps      = "ops"
	flagWorkload = "workload"
)

func main() {
	ctx, cancel := signal.NotifyContext(logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig)),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		logger.Get(ctx).Error("Command failed", zap.Error(err))
		cancel()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "dats",
		Usage: "Runs randomized workloads verifying container invariants",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Run configured workloads",
				Flags:  configFlags(),
				Action: runCommand,
			},
			{
				Name:   "config",
				Usage:  "Print effective configuration in TOML format",
				Flags:  configFlags(),
				Action: configCommand,
			},
		},
	}
}

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "Config file path",
		},
		&cli.Uint64Flag{
			Name:  flagSeed,
			Usage: "Seed of random sources (overrides config)",
		},
		&cli.Uint64Flag{
			Name:  flagOps,
			Usage: "Number of operations executed by each workload (overrides config)",
		},
		&cli.StringSliceFlag{
			Name:    flagWorkload,
			Aliases: []string{"w"},
			Usage:   fmt.Sprintf("Workload to run, repeatable (one of %v, overrides config)", workload.Names),
		},
	}
}

func runCommand(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	results, err := workload.Run(c.Context, config)
	if err != nil {
		return err
	}

	for _, result := range results {
		fmt.Fprintf(c.App.Writer, "%-10s seed: %-20d ops: %-8d length: %-8d fingerprint: %016x\n",
			result.Workload, result.Seed, result.Ops, result.Length, result.Fingerprint)
	}
	return nil
}

func configCommand(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	data, err := config.Marshal()
	if err != nil {
		return err
	}
	_, err = c.App.Writer.Write(data)
	return err
}

func loadConfig(c *cli.Context) (workload.Config, error) {
	config := workload.DefaultConfig()
	if path := c.String(flagConfig); path != "" {
		var err error
		config, err = workload.LoadConfig(path)
		if err != nil {
			return workload.Config{}, err
		}
	}

	if c.IsSet(flagSeed) {
		config.Seed = c.Uint64(flagSeed)
	}
	if c.IsSet(flagOps) {
		config.Ops = c.Uint64(flagOps)
	}
	if c.IsSet(flagWorkload) {
		config.Workloads = c.StringSlice(flagWorkload)
	}
	return config, nil
}
