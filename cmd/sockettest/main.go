// sockettest connects to the marketplace WebSocket and streams incoming
// frames to the console. Useful for checking that the socket accepts the
// cached credentials and for watching what the server pushes.
//
// Usage: go run ./cmd/sockettest -config configs/keeper.example.yaml
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/wfm-tools/keeper/internal/api"
	"github.com/wfm-tools/keeper/internal/auth"
	"github.com/wfm-tools/keeper/internal/config"
	"github.com/wfm-tools/keeper/internal/presence"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional; environment is used without one)")
	status := flag.String("status", "", "status to announce (default: configured presence status)")
	verbose := flag.Bool("verbose", false, "pretty-print full frame JSON")
	flag.Parse()

	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	// Load config
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	// The socket rejects anonymous clients, so resolve credentials first.
	store := auth.NewStore(cfg.Credentials.File)
	signer := api.NewClient(cfg.API.BaseURL,
		api.WithLimiter(api.NewLimiter(cfg.API.RequestInterval)),
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

	pcfg := presence.DefaultConfig()
	pcfg.URL = cfg.Presence.URL
	pcfg.Status = cfg.Presence.Status
	pcfg.PingInterval = cfg.Presence.PingInterval
	pcfg.PingTimeout = 3 * cfg.Presence.PingInterval
	if *status != "" {
		pcfg.Status = *status
	}

	client := presence.NewClient(pcfg, creds, logger)
	if err := client.Connect(ctx); err != nil {
		logger.Error("failed to connect", "error", err)
		os.Exit(1)
	}

	frame, err := presence.StatusFrame(pcfg.Status)
	if err != nil {
		logger.Error("failed to build status frame", "error", err)
		os.Exit(1)
	}
	if err := client.Send(frame); err != nil {
		logger.Error("failed to set status", "error", err)
		os.Exit(1)
	}
	logger.Info("status set", "status", pcfg.Status)

	var frames atomic.Int64

	// Stats printer
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				logger.Info("stats",
					"frames", frames.Load(),
					"connected", client.IsConnected(),
				)
			}
		}
	}()

	logger.Info("streaming started - press Ctrl+C to stop")

	// Stream frames until shutdown or the connection fails
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case err := <-client.Errors():
			logger.Error("connection error", "error", err)
			break loop
		case msg, ok := <-client.Messages():
			if !ok {
				break loop
			}
			frames.Add(1)
			printFrame(msg, *verbose)
		}
	}

	logger.Info("shutting down...")
	client.Close()
	logger.Info("shutdown complete", "frames", frames.Load())
}

func printFrame(data []byte, verbose bool) {
	if verbose {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			fmt.Printf("[RAW] %s\n", data)
			return
		}
		fmt.Printf("%s\n", buf.String())
		return
	}

	var frame struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &frame); err != nil || frame.Type == "" {
		fmt.Printf("[RAW] %s\n", data)
		return
	}
	fmt.Printf("[%s] %s\n", frame.Type, frame.Payload)
}
