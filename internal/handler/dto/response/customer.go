package response

import (
	"time"

	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"
)

type CustomerResponse struct {
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email,omitempty"`
	BirthDate      string    `json:"birth_date,omitempty"`
	Sex            string    `json:"sex,omitempty"`
	PostalCode     string    `json:"postal_code,omitempty"`
	OriginStore    string    `json:"origin_store"`
	TotalPurchases int32     `json:"total_purchases"`
	TotalSpent     string    `json:"total_spent"`
	CyclePurchases int32     `json:"cycle_purchases"`
	ValidPoints    int64     `json:"valid_points"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromCustomerView(v *queries.CustomerView) *CustomerResponse {
	var res CustomerResponse
	mustCopy(&res, v)
	res.BirthDate = ""
	if v.BirthDate != nil {
		res.BirthDate = v.BirthDate.Format(time.DateOnly)
	}
	return &res
}

type CustomerListItemResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

func FromCustomerList(items []*queries.CustomerListItem) []*CustomerListItemResponse {
	res := make([]*CustomerListItemResponse, len(items))
	for i, it := range items {
		res[i] = &CustomerListItemResponse{}
		mustCopy(res[i], it)
	}
	return res
}

type RegisterCustomerResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func FromRegisterCustomerResult(r *commands.RegisterCustomerResult) *RegisterCustomerResponse {
	return &RegisterCustomerResponse{Code: r.Code, Name: r.Name}
}
