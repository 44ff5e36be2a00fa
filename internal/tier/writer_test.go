package tier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/and161185/posloyalty/internal/errs"
	"github.com/and161185/posloyalty/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type persistCall struct {
	customerID uuid.UUID
	tier       model.Tier
	totalSpend decimal.Decimal
	updatedAt  time.Time
}

type fakeStore struct {
	calls []persistCall
	err   error
}

func (s *fakeStore) PersistTierUpgrade(ctx context.Context, customerID uuid.UUID, tier model.Tier, totalSpend decimal.Decimal, updatedAt time.Time) error {
	s.calls = append(s.calls, persistCall{customerID, tier, totalSpend, updatedAt})
	return s.err
}

type fakeNotifier struct {
	sent []model.Notification
}

func (n *fakeNotifier) Notify(note model.Notification) {
	n.sent = append(n.sent, note)
}

func newTestWriter(t *testing.T, store Store) (*Writer, *fakeNotifier) {
	t.Helper()

	notifier := &fakeNotifier{}
	w := NewWriter(store, notifier, zaptest.NewLogger(t).Sugar())
	w.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return w, notifier
}

func TestMaybeUpgradeWritesUpgrade(t *testing.T) {
	store := &fakeStore{}
	w, notifier := newTestWriter(t, store)
	id := uuid.New()

	res, err := w.MaybeUpgrade(context.Background(), id, model.Bronze, model.Silver, d("550"))
	require.NoError(t, err)
	require.Equal(t, Upgraded, res)

	require.Len(t, store.calls, 1)
	require.Equal(t, id, store.calls[0].customerID)
	require.Equal(t, model.Silver, store.calls[0].tier)
	require.True(t, store.calls[0].totalSpend.Equal(d("550")))
	require.Equal(t, w.now(), store.calls[0].updatedAt)

	require.Len(t, notifier.sent, 1)
	require.Equal(t, model.Silver, notifier.sent[0].Tier)
	require.Contains(t, notifier.sent[0].Message, "$550.00")
}

func TestMaybeUpgradeIdempotent(t *testing.T) {
	store := &fakeStore{}
	w, notifier := newTestWriter(t, store)
	id := uuid.New()

	for i := 0; i < 2; i++ {
		_, err := w.MaybeUpgrade(context.Background(), id, model.Bronze, model.Gold, d("2100"))
		require.NoError(t, err)
	}

	require.Len(t, store.calls, 1)
	require.Len(t, notifier.sent, 1)
}

func TestMaybeUpgradeNeverDowngrades(t *testing.T) {
	tiers := []model.Tier{model.Bronze, model.Silver, model.Gold}

	for _, current := range tiers {
		for _, next := range tiers {
			if Rank(next) > Rank(current) {
				continue
			}
			store := &fakeStore{}
			w, notifier := newTestWriter(t, store)

			res, err := w.MaybeUpgrade(context.Background(), uuid.New(), current, next, d("10"))
			require.NoError(t, err)
			require.Equal(t, NoOp, res, "%s -> %s", current, next)
			require.Empty(t, store.calls, "%s -> %s", current, next)
			require.Empty(t, notifier.sent)
		}
	}
}

func TestMaybeUpgradeRemembersHigherTier(t *testing.T) {
	store := &fakeStore{}
	w, _ := newTestWriter(t, store)
	id := uuid.New()

	_, err := w.MaybeUpgrade(context.Background(), id, model.Bronze, model.Gold, d("2500"))
	require.NoError(t, err)

	// устаревшее значение от вызывающего не должно привести к понижению
	res, err := w.MaybeUpgrade(context.Background(), id, model.Bronze, model.Silver, d("600"))
	require.NoError(t, err)
	require.Equal(t, NoOp, res)
	require.Len(t, store.calls, 1)
}

func TestMaybeUpgradePersistenceFailure(t *testing.T) {
	dbErr := errors.New("connection reset")
	store := &fakeStore{err: dbErr}
	w, notifier := newTestWriter(t, store)
	id := uuid.New()

	res, err := w.MaybeUpgrade(context.Background(), id, model.Bronze, model.Silver, d("700"))
	require.Equal(t, NoOp, res)
	require.ErrorIs(t, err, errs.ErrPersistence)
	require.ErrorIs(t, err, dbErr)
	require.Empty(t, notifier.sent)

	pending := w.Pending()
	require.Len(t, pending, 1)
	require.Equal(t, id, pending[0].CustomerID)
	require.Equal(t, model.Bronze, pending[0].From)
	require.Equal(t, model.Silver, pending[0].To)

	store.err = nil
	res, err = w.Retry(context.Background(), pending[0])
	require.NoError(t, err)
	require.Equal(t, Upgraded, res)
	require.Empty(t, w.Pending())
	require.Len(t, store.calls, 2)
	require.Len(t, notifier.sent, 1)
}

func TestMaybeUpgradeClearsStalePending(t *testing.T) {
	store := &fakeStore{err: errors.New("timeout")}
	w, _ := newTestWriter(t, store)
	id := uuid.New()

	_, err := w.MaybeUpgrade(context.Background(), id, model.Bronze, model.Silver, d("700"))
	require.Error(t, err)
	require.Len(t, w.Pending(), 1)

	// тир уже обновлён другим путём
	res, err := w.MaybeUpgrade(context.Background(), id, model.Silver, model.Silver, d("700"))
	require.NoError(t, err)
	require.Equal(t, NoOp, res)
	require.Empty(t, w.Pending())
}

func TestResultString(t *testing.T) {
	require.Equal(t, "upgraded", Upgraded.String())
	require.Equal(t, "noop", NoOp.String())
}
