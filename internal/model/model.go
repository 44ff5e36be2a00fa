package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	Open      TransactionStatus = "open"
	Completed TransactionStatus = "completed"
	Refunded  TransactionStatus = "refunded"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case Open, Completed, Refunded:
		return true
	}
	return false
}

type Tier string

const (
	Bronze Tier = "Bronze"
	Silver Tier = "Silver"
	Gold   Tier = "Gold"
)

type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// TransactionRow is a transaction as it comes out of the store, before coercion.
type TransactionRow struct {
	ID         uuid.UUID
	CustomerID *uuid.UUID
	Total      *string
	Status     TransactionStatus
	Items      string
	CreatedAt  time.Time
}

type TransactionRecord struct {
	ID         uuid.UUID         `json:"id"`
	CustomerID *uuid.UUID        `json:"customer_id,omitempty"`
	Total      decimal.Decimal   `json:"total"`
	Status     TransactionStatus `json:"status"`
	Items      []LineItem        `json:"items"`
	CreatedAt  time.Time         `json:"created_at"`
}

type TransactionFilter struct {
	Status *TransactionStatus
	From   *time.Time
	To     *time.Time
}

type TierThresholds struct {
	Silver decimal.Decimal `json:"silver"`
	Gold   decimal.Decimal `json:"gold"`
}

type Customer struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Tier       Tier            `json:"tier"`
	TotalSpend decimal.Decimal `json:"total_spend"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type CustomerTierState struct {
	CustomerID uuid.UUID       `json:"customer_id"`
	Tier       Tier            `json:"tier"`
	TotalSpend decimal.Decimal `json:"total_spend"`
}

type SpendAggregate struct {
	TotalSpend       decimal.Decimal `json:"total_spend"`
	TransactionCount int             `json:"transaction_count"`
	AverageOrder     decimal.Decimal `json:"average_order"`
	OpenTabBalance   decimal.Decimal `json:"open_tab_balance"`
}

type PeriodTrend struct {
	CurrentValue  decimal.Decimal `json:"current_value"`
	PriorValue    decimal.Decimal `json:"prior_value"`
	PercentChange decimal.Decimal `json:"percent_change"`
	Positive      bool            `json:"positive"`
}

type PeriodType string

const (
	Day   PeriodType = "day"
	Week  PeriodType = "week"
	Month PeriodType = "month"
)

type Notification struct {
	CustomerID uuid.UUID `json:"customer_id"`
	Tier       Tier      `json:"tier"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

type User struct {
	ID    int
	Login string
}
