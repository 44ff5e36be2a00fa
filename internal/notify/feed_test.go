package notify

import (
	"testing"

	"github.com/and161185/posloyalty/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestFeedRecent(t *testing.T) {
	f := NewFeed(zaptest.NewLogger(t).Sugar(), 3)

	for _, msg := range []string{"a", "b", "c", "d"} {
		f.Notify(model.Notification{Message: msg, Tier: model.Silver})
	}

	all := f.Recent(0)
	require.Len(t, all, 3)
	require.Equal(t, "d", all[0].Message)
	require.Equal(t, "b", all[2].Message)

	two := f.Recent(2)
	require.Len(t, two, 2)
	require.Equal(t, "c", two[1].Message)
}

func TestFeedEmpty(t *testing.T) {
	f := NewFeed(zaptest.NewLogger(t).Sugar(), 0)
	require.Empty(t, f.Recent(10))
}
