package response

import (
	"time"

	"loyalty-ledger/internal/domain/prize"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type PurchaseResponse struct {
	PurchaseID           uuid.UUID `json:"purchase_id"`
	CustomerCode         string    `json:"customer_code"`
	Amount               string    `json:"amount"`
	PointsEarned         int64     `json:"points_earned"`
	TotalPurchases       int32     `json:"total_purchases"`
	CyclePurchases       int32     `json:"cycle_purchases"`
	ValidPoints          int64     `json:"valid_points"`
	ActivePrizeCode      string    `json:"active_prize_code,omitempty"`
	ActivePrizePoints    int64     `json:"active_prize_points,omitempty"`
	ActivePrizeValue     string    `json:"active_prize_value,omitempty"`
	PrizeGenerated       bool      `json:"prize_generated"`
	PurchasesToThreshold int32     `json:"purchases_to_threshold"`
	PurchasedOn          string    `json:"purchased_on"`
}

func FromPurchaseResult(r *commands.PurchaseResult) *PurchaseResponse {
	var res PurchaseResponse
	mustCopy(&res, r)
	if r.ActivePrizeCode != "" {
		res.ActivePrizeValue = prize.Value(r.ActivePrizePoints).StringFixed(2)
	}
	return &res
}

type RedemptionResponse struct {
	PrizeCode    string `json:"prize_code"`
	CustomerCode string `json:"customer_code"`
	Points       int64  `json:"points"`
	Value        string `json:"value"`
	ValidPoints  int64  `json:"valid_points"`
	RedeemedOn   string `json:"redeemed_on"`
	Message      string `json:"message"`
}

func FromRedemptionResult(r *commands.RedemptionResult) *RedemptionResponse {
	var res RedemptionResponse
	mustCopy(&res, r)
	return &res
}

type PrizeResponse struct {
	Code         string `json:"code"`
	CustomerCode string `json:"customer_code"`
	CustomerName string `json:"customer_name"`
	Points       int64  `json:"points"`
	Value        string `json:"value"`
	GeneratedOn  string `json:"generated_on"`
	UpdatedOn    string `json:"updated_on"`
}

func FromPrizeView(v *queries.PrizeView) *PrizeResponse {
	var res PrizeResponse
	mustCopy(&res, v)
	return &res
}

type PurchaseItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Seq         int32     `json:"seq"`
	Amount      string    `json:"amount"`
	Points      int64     `json:"points"`
	PurchasedOn string    `json:"purchased_on"`
	Store       string    `json:"store"`
}

type ActivePrizeResponse struct {
	Code        string `json:"code"`
	Points      int64  `json:"points"`
	Value       string `json:"value"`
	GeneratedOn string `json:"generated_on"`
	UpdatedOn   string `json:"updated_on"`
}

type RedemptionItemResponse struct {
	Code        string `json:"code"`
	Points      int64  `json:"points"`
	Value       string `json:"value"`
	GeneratedOn string `json:"generated_on"`
	RedeemedOn  string `json:"redeemed_on"`
	Store       string `json:"store"`
}

type LoyaltyStatusResponse struct {
	CustomerCode         string                    `json:"customer_code"`
	CustomerName         string                    `json:"customer_name"`
	TotalPurchases       int32                     `json:"total_purchases"`
	CyclePurchases       int32                     `json:"cycle_purchases"`
	ValidPoints          int64                     `json:"valid_points"`
	ValidValue           string                    `json:"valid_value"`
	EligibleForPrize     bool                      `json:"eligible_for_prize"`
	PurchasesToThreshold int32                     `json:"purchases_to_threshold"`
	ActivePrize          *ActivePrizeResponse      `json:"active_prize,omitempty"`
	RecentPurchases      []*PurchaseItemResponse   `json:"recent_purchases"`
	Redemptions          []*RedemptionItemResponse `json:"redemptions"`
	AsOf                 string                    `json:"as_of"`
}

// FromLoyaltyStatusView copies nested items one by one so every level goes
// through the money and date converters.
func FromLoyaltyStatusView(v *queries.LoyaltyStatusView) *LoyaltyStatusResponse {
	res := &LoyaltyStatusResponse{
		CustomerCode:         v.CustomerCode,
		CustomerName:         v.CustomerName,
		TotalPurchases:       v.TotalPurchases,
		CyclePurchases:       v.CyclePurchases,
		ValidPoints:          v.ValidPoints,
		ValidValue:           v.ValidValue.StringFixed(2),
		EligibleForPrize:     v.EligibleForPrize,
		PurchasesToThreshold: v.PurchasesToThreshold,
		RecentPurchases:      make([]*PurchaseItemResponse, len(v.RecentPurchases)),
		Redemptions:          make([]*RedemptionItemResponse, len(v.Redemptions)),
		AsOf:                 v.AsOf.Format(time.DateOnly),
	}
	if v.ActivePrize != nil {
		res.ActivePrize = &ActivePrizeResponse{}
		mustCopy(res.ActivePrize, v.ActivePrize)
	}
	for i, p := range v.RecentPurchases {
		res.RecentPurchases[i] = &PurchaseItemResponse{}
		mustCopy(res.RecentPurchases[i], p)
	}
	for i, r := range v.Redemptions {
		res.Redemptions[i] = &RedemptionItemResponse{}
		mustCopy(res.Redemptions[i], r)
	}
	return res
}
