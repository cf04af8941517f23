package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/adpanel/internal/client/ads"
	"github.com/iudanet/adpanel/internal/client/api"
	"github.com/iudanet/adpanel/internal/client/cli"
	"github.com/iudanet/adpanel/internal/client/company"
	"github.com/iudanet/adpanel/internal/client/iocli"
	"github.com/iudanet/adpanel/internal/client/session"
	"github.com/iudanet/adpanel/internal/client/storage/boltdb"
	"github.com/iudanet/adpanel/internal/client/submit"
	"github.com/iudanet/adpanel/internal/client/subscription"
	"github.com/iudanet/adpanel/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Show version and exit if requested
	if opts.ShowVersion {
		printVersion()
		return 0
	}
	cfg := opts.Config

	// Уровень уже проверен при разборе конфигурации
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	stdio := iocli.NewStdio()
	console := cli.NewConsole(stdio)

	if len(opts.Args) == 0 {
		cli.New(stdio, console, cli.Services{}).PrintUsage()
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.ServerURL, api.WithTimeout(cfg.Timeout), api.WithLogger(logger))
	flow := submit.New(console, console, logger)
	sessions := session.NewService(apiClient, boltStorage, boltStorage, flow, console, console)

	app := cli.New(stdio, console, cli.Services{
		Sessions:  sessions,
		Ads:       ads.NewService(apiClient, boltStorage, boltStorage, flow),
		Companies: company.NewService(apiClient, boltStorage, flow),
		Plans:     subscription.NewService(apiClient, boltStorage, flow, console, console, sessions),
	})

	logger.Debug("running command", "args", opts.Args, "server", cfg.ServerURL)
	if err := app.Run(ctx, opts.Args); err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func printVersion() {
	fmt.Printf("adpanel client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
