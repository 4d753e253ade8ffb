package shared

import (
	"time"

	"loyalty-ledger/internal/domain/customer"

	"github.com/shopspring/decimal"
)

// CustomerRecord is a customer together with the ledger-maintained counters.
type CustomerRecord struct {
	Customer       *customer.Customer
	TotalPurchases int32
	TotalSpent     decimal.Decimal
	CyclePurchases int32
	ValidPoints    int64
	UpdatedAt      time.Time
}

type CycleCounters struct {
	TotalPurchases int32
	CyclePurchases int32
}

type CustomerSummary struct {
	Code  string
	Name  string
	Phone string
	Email string
}

type InactiveCustomer struct {
	Code           customer.Code
	Name           string
	Email          string
	LastPurchaseOn time.Time
}

type PrizeDetails struct {
	Code         string
	CustomerCode string
	CustomerName string
	Points       int64
	Value        decimal.Decimal
	GeneratedOn  time.Time
	UpdatedOn    time.Time
}
