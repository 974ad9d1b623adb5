package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/symdoc/internal/config"
	"git.home.luguber.info/inful/symdoc/internal/metrics"
	"git.home.luguber.info/inful/symdoc/internal/site"
	"git.home.luguber.info/inful/symdoc/internal/version"
)

var CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"symdoc.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build struct {
		Output string `short:"o" help:"Output directory override"`
	} `cmd:"" help:"Build the documentation site from the configured doclet export"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Watch struct {
		Output string `short:"o" help:"Output directory override"`
	} `cmd:"" help:"Rebuild the site whenever the doclet export or configuration changes"`
}

func main() {
	ctx := kong.Parse(&CLI, kong.Vars{"version": version.Version})

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "build":
		cfg, err := loadConfig(CLI.Build.Output)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if err := runBuild(cfg); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Configuration written", "path", CLI.Config)
	case "watch":
		cfg, err := loadConfig(CLI.Watch.Output)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if err := runWatch(cfg); err != nil {
			slog.Error("Watch failed", "error", err)
			os.Exit(1)
		}
	}
}

func loadConfig(outputOverride string) (*config.Config, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, err
	}
	if outputOverride != "" {
		cfg.Output.Directory = outputOverride
	}
	return cfg, nil
}

func runBuild(cfg *config.Config) error {
	report, err := site.Run(context.Background(), cfg, metrics.NoopRecorder{})
	if err != nil {
		return err
	}
	slog.Info("Build completed",
		"run_id", report.RunID,
		"pages", report.PagesRendered,
		"write_failures", report.WriteFailures,
		"duration", report.Duration)
	return nil
}

func runWatch(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return watchAndRebuild(ctx, cfg)
}
