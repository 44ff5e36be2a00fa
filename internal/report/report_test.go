package report

import (
	"testing"
	"time"

	"github.com/and161185/posloyalty/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestTrend(t *testing.T) {
	tests := []struct {
		current  string
		prior    string
		change   string
		positive bool
	}{
		{"100", "50", "100", true},
		{"0", "0", "0", false},
		{"50", "0", "100", true},
		{"25", "50", "-50", false},
		{"50", "50", "0", false},
		{"150.5", "100", "50.5", true},
		{"0", "80", "-100", false},
	}

	for _, tt := range tests {
		tr := Trend(d(tt.current), d(tt.prior))
		assert.True(t, tr.PercentChange.Equal(d(tt.change)), "trend(%s, %s) = %s; want %s", tt.current, tt.prior, tr.PercentChange, tt.change)
		assert.Equal(t, tt.positive, tr.Positive, "trend(%s, %s)", tt.current, tt.prior)
		assert.True(t, tr.CurrentValue.Equal(d(tt.current)))
		assert.True(t, tr.PriorValue.Equal(d(tt.prior)))
	}
}

func TestTrendInt(t *testing.T) {
	tr := TrendInt(3, 4)
	require.True(t, tr.PercentChange.Equal(d("-25")))
	require.False(t, tr.Positive)
}

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"day", "week", "month"} {
		p, err := ParsePeriod(s)
		require.NoError(t, err)
		require.Equal(t, model.PeriodType(s), p)
	}

	p, err := ParsePeriod("")
	require.NoError(t, err)
	require.Equal(t, model.Day, p)

	_, err = ParsePeriod("year")
	require.Error(t, err)
}

func TestWindows(t *testing.T) {
	// среда
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		period      model.PeriodType
		currentFrom time.Time
		currentTo   time.Time
		priorFrom   time.Time
	}{
		{model.Day, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
		{model.Week, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)},
		{model.Month, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			current, prior := Windows(tt.period, now)
			require.Equal(t, tt.currentFrom, current.From)
			require.Equal(t, tt.currentTo, current.To)
			require.Equal(t, tt.priorFrom, prior.From)
			require.Equal(t, current.From, prior.To)
		})
	}
}

func TestWindowsWeekOnSunday(t *testing.T) {
	now := time.Date(2026, 3, 8, 23, 0, 0, 0, time.UTC)

	current, _ := Windows(model.Week, now)
	require.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), current.From)
}

func TestSummarize(t *testing.T) {
	records := []model.TransactionRecord{
		{Total: d("20"), Status: model.Completed, Items: []model.LineItem{{ProductID: "a", Quantity: 2}, {ProductID: "b", Quantity: 1}}},
		{Total: d("5.5"), Status: model.Completed, Items: []model.LineItem{{ProductID: "c", Quantity: 1}}},
		{Total: d("40"), Status: model.Open, Items: []model.LineItem{{ProductID: "d", Quantity: 4}}},
		{Total: d("10"), Status: model.Refunded, Items: []model.LineItem{{ProductID: "e", Quantity: 1}}},
		{Total: d("1"), Status: model.Completed, Items: []model.LineItem{{ProductID: "f", Quantity: -3}}},
	}

	s := Summarize(records, 2)

	require.True(t, s.Sales.Equal(d("26.5")))
	require.Equal(t, 3, s.TransactionCount)
	require.Equal(t, 4, s.ItemsSold)
	require.Equal(t, 2, s.NewCustomers)
}

func TestCompare(t *testing.T) {
	current := Snapshot{Sales: d("300"), TransactionCount: 6, NewCustomers: 1, ItemsSold: 10}
	prior := Snapshot{Sales: d("200"), TransactionCount: 6, NewCustomers: 0, ItemsSold: 20}

	r := Compare(model.Week, current, prior)

	require.Equal(t, model.Week, r.Period)
	require.True(t, r.Sales.PercentChange.Equal(d("50")))
	require.True(t, r.TransactionCount.PercentChange.IsZero())
	require.True(t, r.NewCustomers.PercentChange.Equal(d("100")))
	require.True(t, r.ItemsSold.PercentChange.Equal(d("-50")))
	require.False(t, r.ItemsSold.Positive)
}
