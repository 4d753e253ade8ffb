//go:build unit || e2e

package builder

import (
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/domain/purchase"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseBuilder struct {
	ID           uuid.UUID
	CustomerCode string
	Seq          int32
	Amount       decimal.Decimal
	Date         time.Time
	Store        string
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		ID:           uuid.New(),
		CustomerCode: "00001",
		Seq:          1,
		Amount:       decimal.RequireFromString("50.00"),
		Date:         time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Store:        "loja01",
	}
}

func (p *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PurchaseBuilder) BuildDomain() *purchase.Purchase {
	amount := purchase.ReconstructAmount(p.Amount)
	return purchase.ReconstructPurchase(p.ID, customer.ReconstructCode(p.CustomerCode), p.Seq, amount, amount.Points(), p.Date, p.Store)
}

func (p *PurchaseBuilder) BuildRow() sqlc.Purchases {
	return sqlc.Purchases{
		ID:           p.ID,
		CustomerCode: p.CustomerCode,
		Seq:          p.Seq,
		Amount:       pgconv.DecimalToNumeric(p.Amount),
		Points:       purchase.ReconstructAmount(p.Amount).Points(),
		PurchasedOn:  pgconv.DateToPgtype(p.Date),
		Store:        p.Store,
	}
}
