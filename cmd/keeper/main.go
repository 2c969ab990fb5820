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
	"time"

	"github.com/wfm-tools/keeper/internal/api"
	"github.com/wfm-tools/keeper/internal/auth"
	"github.com/wfm-tools/keeper/internal/config"
	"github.com/wfm-tools/keeper/internal/presence"
	"github.com/wfm-tools/keeper/internal/refresher"
	"github.com/wfm-tools/keeper/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional; environment is used without one)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("keeper " + version.String())
		return
	}

	// Bootstrap logger until the configured one is ready
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting keeper",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadAndValidate(*configPath)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	logger = newLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("configuration loaded",
		"api_url", cfg.API.BaseURL,
		"credentials_file", cfg.Credentials.File,
		"presence", cfg.Presence.Enabled,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// One limiter for the whole process; every client shares the request
	// budget.
	limiter := api.NewLimiter(cfg.API.RequestInterval)

	// Resolve credentials: cached ones, or an interactive sign-in.
	store := auth.NewStore(cfg.Credentials.File)
	signer := api.NewClient(cfg.API.BaseURL,
		api.WithLimiter(limiter),
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
	)

	var prompter auth.Prompter = auth.NewTerminalPrompter()
	if cfg.Credentials.Email != "" {
		prompter = auth.WithEmail(cfg.Credentials.Email, prompter)
	}

	creds, err := auth.Resolve(ctx, store, signer, prompter, logger)
	if err != nil {
		logger.Error("failed to resolve credentials", "error", err)
		os.Exit(1)
	}

	// Authenticated client for the refresh loop
	client := api.NewClient(cfg.API.BaseURL,
		api.WithCredentials(creds),
		api.WithLimiter(limiter),
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
	)

	// Hold the account's status on the socket while refreshing
	if cfg.Presence.Enabled {
		pcfg := presence.DefaultConfig()
		pcfg.URL = cfg.Presence.URL
		pcfg.Status = cfg.Presence.Status
		pcfg.PingInterval = cfg.Presence.PingInterval
		pcfg.PingTimeout = 3 * cfg.Presence.PingInterval
		pcfg.ReconnectBaseDelay = cfg.Presence.ReconnectBaseDelay
		pcfg.ReconnectMaxDelay = cfg.Presence.ReconnectMaxDelay

		keeper := presence.NewKeeper(pcfg, creds, logger)
		if err := keeper.Start(ctx); err != nil {
			logger.Error("failed to start presence keeper", "error", err)
			os.Exit(1)
		}
		defer func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer stopCancel()
			keeper.Stop(stopCtx)
		}()
	}

	// Run the refresh loop until it finishes or we are told to stop
	r := refresher.New(refresher.Config{
		UpdateDelay: cfg.Refresh.UpdateDelay,
		PassDelay:   cfg.Refresh.PassDelay,
		MaxPasses:   cfg.Refresh.MaxPasses,
	}, client, logger)

	err = r.Run(ctx)

	stats := r.Stats()
	logger.Info("keeper stopped",
		"passes", stats.Passes,
		"updated", stats.Updated,
		"failed", stats.Failed,
	)

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("refresher failed", "error", err)
		os.Exit(1)
	}
}

// newLogger builds the configured logger.
func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
