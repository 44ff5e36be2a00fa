package cache

import (
	"context"
	"sync"
	"time"

	"github.com/and161185/posloyalty/internal/model"
	"github.com/google/uuid"
)

type CustomerLoader interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (model.Customer, error)
}

type entry struct {
	customer  model.Customer
	expiresAt time.Time
}

// Customers is a read-through cache of customer records. A zero ttl keeps
// entries until they are invalidated or refreshed.
type Customers struct {
	loader CustomerLoader
	ttl    time.Duration
	now    func() time.Time

	mu    sync.RWMutex
	items map[uuid.UUID]entry
}

func NewCustomers(loader CustomerLoader, ttl time.Duration) *Customers {
	return &Customers{
		loader: loader,
		ttl:    ttl,
		now:    time.Now,
		items:  make(map[uuid.UUID]entry),
	}
}

func (c *Customers) Get(ctx context.Context, id uuid.UUID) (model.Customer, error) {
	c.mu.RLock()
	e, ok := c.items[id]
	c.mu.RUnlock()

	if ok && (c.ttl == 0 || c.now().Before(e.expiresAt)) {
		return e.customer, nil
	}

	return c.Refresh(ctx, id)
}

func (c *Customers) Refresh(ctx context.Context, id uuid.UUID) (model.Customer, error) {
	customer, err := c.loader.GetCustomer(ctx, id)
	if err != nil {
		c.Invalidate(id)
		return model.Customer{}, err
	}

	c.mu.Lock()
	c.items[id] = entry{customer: customer, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()

	return customer, nil
}

func (c *Customers) Invalidate(id uuid.UUID) {
	c.mu.Lock()
	delete(c.items, id)
	c.mu.Unlock()
}
