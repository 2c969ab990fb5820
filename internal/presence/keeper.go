package presence

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/wfm-tools/keeper/internal/auth"
)

// Keeper holds the account's status on the marketplace socket, redialing
// whenever the connection drops.
type Keeper struct {
	cfg    Config
	logger *slog.Logger

	// dial builds a fresh connection per attempt.
	dial func() Client

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewKeeper creates a presence keeper authenticated as creds.
func NewKeeper(cfg Config, creds *auth.Credentials, logger *slog.Logger) *Keeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Keeper{
		cfg:    cfg,
		logger: logger,
		dial: func() Client {
			return NewClient(cfg, creds, logger)
		},
	}
}

// Start begins holding the status in the background.
func (k *Keeper) Start(ctx context.Context) error {
	k.ctx, k.cancel = context.WithCancel(ctx)

	k.wg.Add(1)
	go k.run()

	k.logger.Info("presence keeper started",
		"status", k.cfg.Status,
		"url", k.cfg.URL,
	)

	return nil
}

// Stop gracefully shuts down the keeper.
func (k *Keeper) Stop(ctx context.Context) error {
	if k.cancel != nil {
		k.cancel()
	}

	done := make(chan struct{})
	go func() {
		k.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		k.logger.Info("presence keeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the connect/monitor/reconnect loop.
func (k *Keeper) run() {
	defer k.wg.Done()

	wait := k.cfg.ReconnectBaseDelay

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			select {
			case <-k.ctx.Done():
				return
			case <-time.After(wait):
			}

			// Exponential backoff
			wait *= 2
			if wait > k.cfg.ReconnectMaxDelay {
				wait = k.cfg.ReconnectMaxDelay
			}
		}

		client := k.dial()
		if err := client.Connect(k.ctx); err != nil {
			if k.ctx.Err() != nil {
				return
			}
			k.logger.Warn("presence connect failed", "err", err, "next_attempt_in", wait)
			continue
		}

		if err := k.setStatus(client); err != nil {
			client.Close()
			if k.ctx.Err() != nil {
				return
			}
			k.logger.Warn("setting status failed", "err", err, "next_attempt_in", wait)
			continue
		}

		k.logger.Info("status set", "status", k.cfg.Status)
		wait = k.cfg.ReconnectBaseDelay

		k.monitor(client)
		client.Close()

		if k.ctx.Err() != nil {
			return
		}
		k.logger.Warn("presence connection lost, reconnecting")
	}
}

// monitor drains the connection until it fails or the keeper stops.
func (k *Keeper) monitor(client Client) {
	for {
		select {
		case <-k.ctx.Done():
			return
		case err := <-client.Errors():
			k.logger.Warn("presence connection error", "err", err)
			return
		case msg, ok := <-client.Messages():
			if !ok {
				return
			}
			k.logger.Debug("presence message", "data", string(msg))
		}
	}
}

// setStatus sends the status change message.
func (k *Keeper) setStatus(client Client) error {
	data, err := StatusFrame(k.cfg.Status)
	if err != nil {
		return err
	}
	return client.Send(data)
}
