//go:build unit || e2e

package builder

import (
	"time"

	"loyalty-ledger/internal/domain/customer"
	reqdto "loyalty-ledger/internal/handler/dto/request"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
	"loyalty-ledger/internal/usecase/queries"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CustomerBuilder struct {
	Code           string
	Name           string
	Phone          string
	Email          string
	BirthDate      time.Time
	Sex            string
	PostalCode     string
	OriginStore    string
	TotalPurchases int32
	TotalSpent     decimal.Decimal
	CyclePurchases int32
	ValidPoints    int64
	CreatedAt      time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	now := time.Now()
	return &CustomerBuilder{
		Code:        "00001",
		Name:        "Maria Silva",
		Phone:       "11 98765-4321",
		Email:       "maria@example.com",
		BirthDate:   time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC),
		Sex:         "F",
		PostalCode:  "01310-100",
		OriginStore: "loja01",
		TotalSpent:  decimal.Zero,
		CreatedAt:   now,
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

func (c *CustomerBuilder) ProfileInput() customer.ProfileInput {
	return customer.ProfileInput{
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		BirthDate:  c.BirthDate,
		Sex:        c.Sex,
		PostalCode: c.PostalCode,
	}
}

// Build methods
func (c *CustomerBuilder) BuildProfile() customer.Profile {
	return customer.ReconstructProfile(c.Name, c.Phone, c.Email, c.BirthDate, c.Sex, c.PostalCode)
}

func (c *CustomerBuilder) BuildDomain() *customer.Customer {
	return customer.ReconstructCustomer(customer.ReconstructCode(c.Code), c.BuildProfile(), c.OriginStore, c.CreatedAt)
}

func (c *CustomerBuilder) BuildRecord() *shared.CustomerRecord {
	return &shared.CustomerRecord{
		Customer:       c.BuildDomain(),
		TotalPurchases: c.TotalPurchases,
		TotalSpent:     c.TotalSpent,
		CyclePurchases: c.CyclePurchases,
		ValidPoints:    c.ValidPoints,
		UpdatedAt:      c.CreatedAt,
	}
}

func (c *CustomerBuilder) BuildRow() sqlc.Customers {
	return sqlc.Customers{
		Code:           c.Code,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          pgconv.EmptyStringToPgtype(c.Email),
		BirthDate:      pgconv.DateToPgtype(c.BirthDate),
		Sex:            pgconv.EmptyStringToPgtype(c.Sex),
		PostalCode:     pgconv.EmptyStringToPgtype(c.PostalCode),
		OriginStore:    c.OriginStore,
		TotalPurchases: c.TotalPurchases,
		TotalSpent:     pgconv.DecimalToNumeric(c.TotalSpent),
		CyclePurchases: c.CyclePurchases,
		ValidPoints:    c.ValidPoints,
		CreatedAt:      pgtype.Timestamptz{Time: c.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: c.CreatedAt, Valid: true},
	}
}

func (c *CustomerBuilder) BuildRowWithSpent(spent pgtype.Numeric) sqlc.Customers {
	row := c.BuildRow()
	row.TotalSpent = spent
	return row
}

func (c *CustomerBuilder) BuildRequestDTO() reqdto.CustomerRequest {
	req := reqdto.CustomerRequest{
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		Sex:        c.Sex,
		PostalCode: c.PostalCode,
	}
	if !c.BirthDate.IsZero() {
		req.BirthDate = c.BirthDate.Format(time.DateOnly)
	}
	return req
}

func (c *CustomerBuilder) BuildView() *queries.CustomerView {
	view := &queries.CustomerView{
		Code:           c.Code,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Sex:            c.Sex,
		PostalCode:     c.PostalCode,
		OriginStore:    c.OriginStore,
		TotalPurchases: c.TotalPurchases,
		TotalSpent:     c.TotalSpent,
		CyclePurchases: c.CyclePurchases,
		ValidPoints:    c.ValidPoints,
		CreatedAt:      c.CreatedAt,
	}
	if !c.BirthDate.IsZero() {
		bd := c.BirthDate
		view.BirthDate = &bd
	}
	return view
}
