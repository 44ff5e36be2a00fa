package report

import (
	"fmt"
	"time"

	"github.com/and161185/posloyalty/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Trend compares two period values. A zero prior period reports 100% growth
// for any non-zero current value and 0% when both are zero.
func Trend(current, prior decimal.Decimal) model.PeriodTrend {
	var change decimal.Decimal
	switch {
	case prior.IsZero() && current.IsZero():
		change = decimal.Zero
	case prior.IsZero():
		change = hundred
	default:
		change = current.Sub(prior).Div(prior).Mul(hundred)
	}

	return model.PeriodTrend{
		CurrentValue:  current,
		PriorValue:    prior,
		PercentChange: change,
		Positive:      change.IsPositive(),
	}
}

func TrendInt(current, prior int) model.PeriodTrend {
	return Trend(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(prior)))
}

func ParsePeriod(s string) (model.PeriodType, error) {
	switch p := model.PeriodType(s); p {
	case model.Day, model.Week, model.Month:
		return p, nil
	case "":
		return model.Day, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

type Window struct {
	From time.Time
	To   time.Time
}

// Windows returns the calendar period containing now and the one before it.
// Weeks start on Monday. Boundaries are computed in now's location.
func Windows(period model.PeriodType, now time.Time) (current, prior Window) {
	y, m, dd := now.Date()
	loc := now.Location()
	today := time.Date(y, m, dd, 0, 0, 0, 0, loc)

	switch period {
	case model.Week:
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		current = Window{From: start, To: start.AddDate(0, 0, 7)}
		prior = Window{From: start.AddDate(0, 0, -7), To: start}
	case model.Month:
		start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		current = Window{From: start, To: start.AddDate(0, 1, 0)}
		prior = Window{From: start.AddDate(0, -1, 0), To: start}
	default:
		current = Window{From: today, To: today.AddDate(0, 0, 1)}
		prior = Window{From: today.AddDate(0, 0, -1), To: today}
	}
	return current, prior
}

type Snapshot struct {
	Sales            decimal.Decimal
	TransactionCount int
	NewCustomers     int
	ItemsSold        int
}

// Summarize reduces a period's transactions to a snapshot. Only completed
// transactions count as sales; open tabs and refunds are left out.
func Summarize(records []model.TransactionRecord, newCustomers int) Snapshot {
	s := Snapshot{Sales: decimal.Zero, NewCustomers: newCustomers}
	for _, r := range records {
		if r.Status != model.Completed {
			continue
		}
		s.Sales = s.Sales.Add(r.Total)
		s.TransactionCount++
		for _, item := range r.Items {
			if item.Quantity > 0 {
				s.ItemsSold += item.Quantity
			}
		}
	}
	return s
}

func Compare(period model.PeriodType, current, prior Snapshot) model.TrendReport {
	return model.TrendReport{
		Period:           period,
		Sales:            Trend(current.Sales, prior.Sales),
		TransactionCount: TrendInt(current.TransactionCount, prior.TransactionCount),
		NewCustomers:     TrendInt(current.NewCustomers, prior.NewCustomers),
		ItemsSold:        TrendInt(current.ItemsSold, prior.ItemsSold),
	}
}
