package notify

import (
	"sync"

	"github.com/and161185/posloyalty/internal/model"
	"go.uber.org/zap"
)

const defaultCapacity = 100

// Feed keeps the most recent notifications for the dashboard to poll.
type Feed struct {
	logger   *zap.SugaredLogger
	capacity int

	mu    sync.Mutex
	items []model.Notification
}

func NewFeed(logger *zap.SugaredLogger, capacity int) *Feed {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Feed{
		logger:   logger,
		capacity: capacity,
		items:    make([]model.Notification, 0, capacity),
	}
}

func (f *Feed) Notify(n model.Notification) {
	f.logger.Infow("notification", "customer_id", n.CustomerID, "tier", n.Tier, "message", n.Message)

	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.items) == f.capacity {
		copy(f.items, f.items[1:])
		f.items = f.items[:len(f.items)-1]
	}
	f.items = append(f.items, n)
}

// Recent returns up to limit notifications, newest first. limit <= 0 returns all.
func (f *Feed) Recent(limit int) []model.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	if limit <= 0 || limit > len(f.items) {
		limit = len(f.items)
	}

	list := make([]model.Notification, 0, limit)
	for i := len(f.items) - 1; i >= 0 && len(list) < limit; i-- {
		list = append(list, f.items[i])
	}
	return list
}
