package converter

import (
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/domain/purchase"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
)

func PurchaseToCreateParams(p *purchase.Purchase) sqlc.CreatePurchaseParams {
	return sqlc.CreatePurchaseParams{
		ID:           p.ID(),
		CustomerCode: p.CustomerCode().String(),
		Seq:          p.Seq(),
		Amount:       pgconv.DecimalToNumeric(p.Amount().Decimal()),
		Points:       p.Points(),
		PurchasedOn:  pgconv.DateToPgtype(p.Date()),
		Store:        p.Store(),
	}
}

func PurchaseFromRow(row sqlc.Purchases) (*purchase.Purchase, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	return purchase.ReconstructPurchase(
		row.ID,
		customer.ReconstructCode(row.CustomerCode),
		row.Seq,
		purchase.ReconstructAmount(amount),
		row.Points,
		pgconv.DateFromPgtype(row.PurchasedOn, time.UTC),
		row.Store,
	), nil
}
