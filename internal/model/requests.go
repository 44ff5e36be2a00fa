package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type CreateCustomerRequest struct {
	Name string `json:"name"`
}

type TransactionRequest struct {
	CustomerID *uuid.UUID        `json:"customer_id,omitempty"`
	Total      decimal.Decimal   `json:"total"`
	Status     TransactionStatus `json:"status"`
	Items      []LineItem        `json:"items"`
}

type CustomerStats struct {
	Customer        Customer        `json:"customer"`
	Aggregate       SpendAggregate  `json:"aggregate"`
	ComputedTier    Tier            `json:"computed_tier"`
	SpendToNextTier decimal.Decimal `json:"spend_to_next_tier"`
	Thresholds      TierThresholds  `json:"thresholds"`
}

type TierResponse struct {
	CustomerID uuid.UUID       `json:"customer_id"`
	Tier       Tier            `json:"tier"`
	TotalSpend decimal.Decimal `json:"total_spend"`
	Upgraded   bool            `json:"upgraded"`
	Persisted  bool            `json:"persisted"`
}

type TrendReport struct {
	Period           PeriodType  `json:"period"`
	Sales            PeriodTrend `json:"sales"`
	TransactionCount PeriodTrend `json:"transaction_count"`
	NewCustomers     PeriodTrend `json:"new_customers"`
	ItemsSold        PeriodTrend `json:"items_sold"`
}
