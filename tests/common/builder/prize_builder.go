//go:build unit || e2e

package builder

import (
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/domain/prize"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PrizeBuilder struct {
	Code         string
	CustomerCode string
	Points       int64
	GeneratedOn  time.Time
	UpdatedOn    time.Time
}

func NewPrizeBuilder() *PrizeBuilder {
	on := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	return &PrizeBuilder{
		Code:         "48213",
		CustomerCode: "00001",
		Points:       1250,
		GeneratedOn:  on,
		UpdatedOn:    on,
	}
}

func (p *PrizeBuilder) With(mutate func(*PrizeBuilder)) *PrizeBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PrizeBuilder) BuildDomain() *prize.Active {
	return prize.ReconstructActive(
		prize.ReconstructCode(p.Code),
		customer.ReconstructCode(p.CustomerCode),
		p.Points,
		p.GeneratedOn,
		p.UpdatedOn,
	)
}

func (p *PrizeBuilder) BuildRow() sqlc.ActivePrizes {
	return sqlc.ActivePrizes{
		Code:         p.Code,
		CustomerCode: p.CustomerCode,
		Points:       p.Points,
		GeneratedOn:  pgconv.DateToPgtype(p.GeneratedOn),
		UpdatedOn:    pgconv.DateToPgtype(p.UpdatedOn),
	}
}

func (p *PrizeBuilder) BuildRedeemedRow(store string, redeemedOn time.Time) sqlc.RedeemedPrizes {
	return sqlc.RedeemedPrizes{
		ID:           uuid.New(),
		Code:         p.Code,
		CustomerCode: p.CustomerCode,
		Points:       p.Points,
		Value:        pgconv.DecimalToNumeric(prize.Value(p.Points)),
		GeneratedOn:  pgconv.DateToPgtype(p.GeneratedOn),
		RedeemedOn:   pgconv.DateToPgtype(redeemedOn),
		Store:        store,
	}
}
