package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsmith/internal/config"
	"git.home.luguber.info/inful/docsmith/internal/metrics"
	"git.home.luguber.info/inful/docsmith/internal/rename"
	"git.home.luguber.info/inful/docsmith/internal/site"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"docsmith.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Output      string `short:"o" help:"Output directory for the generated site (overrides config)"`
		MetricsFile string `help:"Write build metrics in Prometheus exposition format to this file"`
	} `cmd:"" help:"Build the documentation site from the configured docs tree"`

	Nav struct{} `cmd:"" help:"Print the derived navigation as YAML without building"`

	Rename struct {
		Paths []string `arg:"" name:"path" help:"Paths to strip ordering prefixes from"`
	} `cmd:"" help:"Strip ordering prefixes from the given paths and print the results"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	switch ctx.Command() {
	case "build":
		if err := runBuild(CLI.Config, CLI.Build.Output, CLI.Build.MetricsFile); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "nav":
		if err := runNav(CLI.Config); err != nil {
			slog.Error("Nav failed", "error", err)
			os.Exit(1)
		}
	case "rename <path>":
		for _, p := range CLI.Rename.Paths {
			fmt.Println(rename.Item(p))
		}
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Configuration written", "path", CLI.Config)
	}
}

func runBuild(configPath, outputDir, metricsFile string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outputDir == "" {
		outputDir = cfg.Output.Directory
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var rec metrics.Recorder = metrics.NoopRecorder{}
	var promRec *metrics.PrometheusRecorder
	if metricsFile != "" {
		promRec = metrics.NewPrometheusRecorder()
		rec = promRec
	}

	bs := site.NewBuildState(cfg, outputDir, rec)
	slog.Info("Starting site build", "build_id", bs.BuildID, "output", outputDir)

	buildErr := site.Build(ctx, bs)

	if promRec != nil {
		if err := promRec.WriteTextfile(metricsFile); err != nil {
			slog.Warn("Failed to write metrics file", "path", metricsFile, "error", err)
		}
	}
	return buildErr
}

// runNav derives the navigation the same way the build's nav stage does and
// prints it, without touching the output directory.
func runNav(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	nodes, err := site.DeriveNav(cfg)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(nodes)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
