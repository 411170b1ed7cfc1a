// Package main provides the CLI entry point for eventreel.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/eventreel/pkg/adapters/ffmpegencoder"
	"github.com/user/eventreel/pkg/adapters/logger"
	"github.com/user/eventreel/pkg/adapters/osfilesystem"
	"github.com/user/eventreel/pkg/batch"
	"github.com/user/eventreel/pkg/builder"
	"github.com/user/eventreel/pkg/config"
	"github.com/user/eventreel/pkg/frametime"
	"github.com/user/eventreel/pkg/ports"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:      "eventreel",
		Usage:     l10n.T("Stitch numbered event directories of JPEG frames into WebM videos"),
		ArgsUsage: "<base-dir>",
		Version:   version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"C"},
				Usage:   l10n.T("Path to a YAML configuration file"),
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: l10n.T("Name of the output directory created under the base directory"),
			},
			&cli.Float64Flag{
				Name:  "default-framerate",
				Usage: l10n.T("Frame rate used when none can be estimated"),
			},
			&cli.StringFlag{
				Name:  "ffmpeg-path",
				Usage: l10n.T("Path to the ffmpeg executable"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("Expected exactly one base directory argument"), 2)
	}
	baseDir := c.Args().First()

	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	fs := osfilesystem.New()
	encoder := ffmpegencoder.New(cfg.FFmpegPath, log)
	estimator := frametime.NewEstimator(fs)
	vb := builder.New(fs, encoder, estimator, log, cfg.DefaultFramerate)
	runner := batch.New(fs, vb, log, cfg.OutputDir)

	_, err = runner.Run(ctx, baseDir)
	return err
}

// buildConfig layers CLI flag overrides on top of the config file (or the
// defaults when no file is given).
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("default-framerate") {
		cfg.DefaultFramerate = c.Float64("default-framerate")
	}
	if c.IsSet("ffmpeg-path") {
		cfg.FFmpegPath = c.String("ffmpeg-path")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
