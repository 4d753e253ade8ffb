package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerView is the full customer record including ledger counters
type CustomerView struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email,omitempty"`
	BirthDate      *time.Time      `json:"birth_date,omitempty"`
	Sex            string          `json:"sex,omitempty"`
	PostalCode     string          `json:"postal_code,omitempty"`
	OriginStore    string          `json:"origin_store"`
	TotalPurchases int32           `json:"total_purchases"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	CyclePurchases int32           `json:"cycle_purchases"`
	ValidPoints    int64           `json:"valid_points"`
	CreatedAt      time.Time       `json:"created_at"`
}

type CustomerListItem struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type PurchaseView struct {
	ID          uuid.UUID       `json:"id"`
	Seq         int32           `json:"seq"`
	Amount      decimal.Decimal `json:"amount"`
	Points      int64           `json:"points"`
	PurchasedOn time.Time       `json:"purchased_on"`
	Store       string          `json:"store"`
}

type ActivePrizeView struct {
	Code        string          `json:"code"`
	Points      int64           `json:"points"`
	Value       decimal.Decimal `json:"value"`
	GeneratedOn time.Time       `json:"generated_on"`
	UpdatedOn   time.Time       `json:"updated_on"`
}

type RedemptionView struct {
	Code        string          `json:"code"`
	Points      int64           `json:"points"`
	Value       decimal.Decimal `json:"value"`
	GeneratedOn time.Time       `json:"generated_on"`
	RedeemedOn  time.Time       `json:"redeemed_on"`
	Store       string          `json:"store"`
}

// LoyaltyStatusView is the customer's standing as of AsOf
type LoyaltyStatusView struct {
	CustomerCode         string            `json:"customer_code"`
	CustomerName         string            `json:"customer_name"`
	TotalPurchases       int32             `json:"total_purchases"`
	CyclePurchases       int32             `json:"cycle_purchases"`
	ValidPoints          int64             `json:"valid_points"`
	ValidValue           decimal.Decimal   `json:"valid_value"`
	EligibleForPrize     bool              `json:"eligible_for_prize"`
	PurchasesToThreshold int32             `json:"purchases_to_threshold"`
	ActivePrize          *ActivePrizeView  `json:"active_prize,omitempty"`
	RecentPurchases      []*PurchaseView   `json:"recent_purchases"`
	Redemptions          []*RedemptionView `json:"redemptions"`
	AsOf                 time.Time         `json:"as_of"`
}

type PrizeView struct {
	Code         string          `json:"code"`
	CustomerCode string          `json:"customer_code"`
	CustomerName string          `json:"customer_name"`
	Points       int64           `json:"points"`
	Value        decimal.Decimal `json:"value"`
	GeneratedOn  time.Time       `json:"generated_on"`
	UpdatedOn    time.Time       `json:"updated_on"`
}
