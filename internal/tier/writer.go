package tier

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/and161185/posloyalty/internal/errs"
	"github.com/and161185/posloyalty/internal/model"
	"github.com/and161185/posloyalty/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Store interface {
	PersistTierUpgrade(ctx context.Context, customerID uuid.UUID, tier model.Tier, totalSpend decimal.Decimal, updatedAt time.Time) error
}

type Notifier interface {
	Notify(n model.Notification)
}

type Result int

const (
	NoOp Result = iota
	Upgraded
)

func (r Result) String() string {
	if r == Upgraded {
		return "upgraded"
	}
	return "noop"
}

type PendingUpgrade struct {
	CustomerID uuid.UUID
	From       model.Tier
	To         model.Tier
	TotalSpend decimal.Decimal
	FailedAt   time.Time
}

// Writer persists tier upgrades. It never writes a downgrade and remembers
// what it has written, so repeating a call does not repeat the write.
type Writer struct {
	store    Store
	notifier Notifier
	logger   *zap.SugaredLogger
	now      func() time.Time

	mu      sync.Mutex
	durable map[uuid.UUID]model.Tier
	pending map[uuid.UUID]PendingUpgrade
}

func NewWriter(store Store, notifier Notifier, logger *zap.SugaredLogger) *Writer {
	return &Writer{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		durable:  make(map[uuid.UUID]model.Tier),
		pending:  make(map[uuid.UUID]PendingUpgrade),
	}
}

func (w *Writer) effectiveTier(customerID uuid.UUID, current model.Tier) model.Tier {
	w.mu.Lock()
	defer w.mu.Unlock()

	if known, ok := w.durable[customerID]; ok && Rank(known) > Rank(current) {
		return known
	}
	return current
}

func (w *Writer) MaybeUpgrade(ctx context.Context, customerID uuid.UUID, currentTier, newTier model.Tier, totalSpend decimal.Decimal) (Result, error) {
	effective := w.effectiveTier(customerID, currentTier)
	if Rank(newTier) <= Rank(effective) {
		w.mu.Lock()
		if p, ok := w.pending[customerID]; ok && Rank(p.To) <= Rank(effective) {
			delete(w.pending, customerID)
		}
		w.mu.Unlock()
		return NoOp, nil
	}

	updatedAt := w.now().UTC()
	if err := w.store.PersistTierUpgrade(ctx, customerID, newTier, totalSpend, updatedAt); err != nil {
		w.logger.Errorw("persist tier upgrade",
			"customer_id", customerID,
			"from", effective,
			"to", newTier,
			"error", err,
		)

		w.mu.Lock()
		w.pending[customerID] = PendingUpgrade{
			CustomerID: customerID,
			From:       effective,
			To:         newTier,
			TotalSpend: totalSpend,
			FailedAt:   updatedAt,
		}
		w.mu.Unlock()

		return NoOp, fmt.Errorf("%w: %w", errs.ErrPersistence, err)
	}

	w.mu.Lock()
	w.durable[customerID] = newTier
	delete(w.pending, customerID)
	w.mu.Unlock()

	w.logger.Infow("tier upgraded", "customer_id", customerID, "from", effective, "to", newTier)

	if w.notifier != nil {
		w.notifier.Notify(model.Notification{
			CustomerID: customerID,
			Tier:       newTier,
			Message:    fmt.Sprintf("Customer upgraded to %s tier (lifetime spend %s)", newTier, utils.FormatCurrency(totalSpend)),
			CreatedAt:  updatedAt,
		})
	}

	return Upgraded, nil
}

// Pending lists upgrades whose write failed, oldest first.
func (w *Writer) Pending() []PendingUpgrade {
	w.mu.Lock()
	defer w.mu.Unlock()

	list := make([]PendingUpgrade, 0, len(w.pending))
	for _, p := range w.pending {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].FailedAt.Before(list[j].FailedAt)
	})
	return list
}

func (w *Writer) Retry(ctx context.Context, p PendingUpgrade) (Result, error) {
	return w.MaybeUpgrade(ctx, p.CustomerID, p.From, p.To, p.TotalSpend)
}
