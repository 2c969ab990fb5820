package refresher

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/wfm-tools/keeper/internal/model"
)

// Market is the marketplace surface the refresher needs. *api.Client
// implements it.
type Market interface {
	MyOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrder(ctx context.Context, order model.Order) error
}

// Config holds refresher configuration.
type Config struct {
	UpdateDelay time.Duration // Pause after each update (default: 5s)
	PassDelay   time.Duration // Pause between passes (default: none)
	MaxPasses   int           // Stop after this many passes; 0 = run until stopped
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UpdateDelay: 5 * time.Second,
	}
}

// Stats is a snapshot of refresher counters.
type Stats struct {
	Passes  int64
	Updated int64
	Failed  int64
}

// Refresher periodically re-submits the account's open orders.
type Refresher struct {
	cfg    Config
	market Market
	logger *slog.Logger

	passes  atomic.Int64
	updated atomic.Int64
	failed  atomic.Int64
}

// New creates a new Refresher.
func New(cfg Config, market Market, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{
		cfg:    cfg,
		market: market,
		logger: logger,
	}
}

// Run executes refresh passes until the context is canceled, a listing
// fails, or the configured pass count is reached. Individual update
// failures are logged and do not end the run.
func (r *Refresher) Run(ctx context.Context) error {
	r.logger.Info("refresher started",
		"update_delay", r.cfg.UpdateDelay,
		"pass_delay", r.cfg.PassDelay,
		"max_passes", r.cfg.MaxPasses,
	)

	for pass := 1; ; pass++ {
		if err := r.refreshAll(ctx); err != nil {
			return err
		}
		r.passes.Add(1)

		if r.cfg.MaxPasses > 0 && pass >= r.cfg.MaxPasses {
			r.logger.Info("refresher finished", "passes", pass)
			return nil
		}

		if err := sleep(ctx, r.cfg.PassDelay); err != nil {
			return err
		}
	}
}

// Stats returns a snapshot of the refresher's counters.
func (r *Refresher) Stats() Stats {
	return Stats{
		Passes:  r.passes.Load(),
		Updated: r.updated.Load(),
		Failed:  r.failed.Load(),
	}
}

// refreshAll performs one pass over the account's visible orders.
func (r *Refresher) refreshAll(ctx context.Context) error {
	start := time.Now()

	orders, err := r.market.MyOrders(ctx)
	if err != nil {
		return fmt.Errorf("listing own orders: %w", err)
	}
	if len(orders) == 0 {
		r.logger.Info("no visible orders to refresh")
		return nil
	}

	var updated, failed int
	for _, order := range orders {
		if err := r.market.UpdateOrder(ctx, order); err != nil {
			// Cancellation is the caller stopping us, not an order failure.
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.Warn("order update failed",
				"order_id", order.ID,
				"item", order.Item.Name,
				"err", err,
			)
			failed++
			r.failed.Add(1)
		} else {
			r.logger.Info("order refreshed",
				"item", order.Item.Name,
				"type", order.Type,
				"platinum", order.Platinum,
				"quantity", order.Quantity,
			)
			updated++
			r.updated.Add(1)
		}

		// Pace requests even after the last order and after failures.
		if err := sleep(ctx, r.cfg.UpdateDelay); err != nil {
			return err
		}
	}

	r.logger.Info("refresh pass complete",
		"orders", len(orders),
		"updated", updated,
		"failed", failed,
		"duration", time.Since(start),
	)

	return nil
}

// sleep waits for d unless the context ends first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
