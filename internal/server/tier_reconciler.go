package server

import (
	"context"
	"time"

	"github.com/and161185/posloyalty/internal/tier"
)

const reconcileWorkers = 3

// TierReconcileControl retries tier upgrades whose write failed earlier.
func (srv *Server) TierReconcileControl(ctx context.Context) {
	ch := make(chan tier.PendingUpgrade, 10*reconcileWorkers)
	go srv.CollectPending(ctx, ch)

	for i := 0; i < reconcileWorkers; i++ {
		go srv.RetryUpgrades(ctx, ch)
	}
}

func (srv *Server) CollectPending(ctx context.Context, ch chan<- tier.PendingUpgrade) {
	interval := srv.config.ReconcileInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			skipped := srv.enqueuePending(ch)
			if skipped > 0 {
				srv.deps.Logger.Warnf("channel full, skipped %d pending upgrades", skipped)
			}
		}
	}
}

func (srv *Server) enqueuePending(ch chan<- tier.PendingUpgrade) int {
	skipped := 0
	for _, p := range srv.writer.Pending() {
		select {
		case ch <- p:
		default:
			skipped++
		}
	}
	return skipped
}

func (srv *Server) RetryUpgrades(ctx context.Context, ch <-chan tier.PendingUpgrade) {
	for {
		select {
		case <-ctx.Done():
			return
		case p := <-ch:
			srv.retryUpgrade(ctx, p)
		}
	}
}

func (srv *Server) retryUpgrade(ctx context.Context, p tier.PendingUpgrade) {
	res, err := srv.writer.Retry(ctx, p)
	if err != nil {
		srv.deps.Logger.Errorf("retry tier upgrade for %s: %v", p.CustomerID, err)
		return
	}
	if res == tier.Upgraded {
		srv.customers.Invalidate(p.CustomerID)
	}
}
