package tier

import (
	"encoding/json"
	"strings"

	"github.com/and161185/posloyalty/internal/model"
	"github.com/and161185/posloyalty/internal/utils"
	"github.com/shopspring/decimal"
)

// Decode turns raw store rows into records. Rows with an unreadable total
// contribute zero and unreadable item lists decode as empty; both are counted
// in malformed.
func Decode(rows []model.TransactionRow) (records []model.TransactionRecord, malformed int) {
	records = make([]model.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		total, ok := utils.ParseAmount(row.Total)
		items, itemsOK := decodeItems(row.Items)
		if !ok || !itemsOK {
			malformed++
		}
		records = append(records, model.TransactionRecord{
			ID:         row.ID,
			CustomerID: row.CustomerID,
			Total:      total,
			Status:     row.Status,
			Items:      items,
			CreatedAt:  row.CreatedAt,
		})
	}
	return records, malformed
}

func decodeItems(raw string) ([]model.LineItem, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return []model.LineItem{}, true
	}
	var items []model.LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []model.LineItem{}, false
	}
	if items == nil {
		items = []model.LineItem{}
	}
	return items, true
}

// Aggregate sums over every record regardless of status; only the tab
// balance is restricted to open records.
func Aggregate(records []model.TransactionRecord) model.SpendAggregate {
	agg := model.SpendAggregate{
		TotalSpend:     decimal.Zero,
		AverageOrder:   decimal.Zero,
		OpenTabBalance: decimal.Zero,
	}

	for _, r := range records {
		agg.TotalSpend = agg.TotalSpend.Add(r.Total)
		agg.TransactionCount++
		if r.Status == model.Open {
			agg.OpenTabBalance = agg.OpenTabBalance.Add(r.Total)
		}
	}

	if agg.TransactionCount > 0 {
		agg.AverageOrder = agg.TotalSpend.Div(decimal.NewFromInt(int64(agg.TransactionCount)))
	}

	return agg
}

func AggregateRows(rows []model.TransactionRow) (model.SpendAggregate, int) {
	records, malformed := Decode(rows)
	return Aggregate(records), malformed
}
