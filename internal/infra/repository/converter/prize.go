package converter

import (
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/domain/prize"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
	"loyalty-ledger/internal/usecase/shared"
)

func ActivePrizeToCreateParams(p *prize.Active) sqlc.CreateActivePrizeParams {
	return sqlc.CreateActivePrizeParams{
		Code:         p.Code().String(),
		CustomerCode: p.CustomerCode().String(),
		Points:       p.Points(),
		GeneratedOn:  pgconv.DateToPgtype(p.GeneratedOn()),
		UpdatedOn:    pgconv.DateToPgtype(p.UpdatedOn()),
	}
}

func ActivePrizeFromRow(row sqlc.ActivePrizes) *prize.Active {
	return prize.ReconstructActive(
		prize.ReconstructCode(row.Code),
		customer.ReconstructCode(row.CustomerCode),
		row.Points,
		pgconv.DateFromPgtype(row.GeneratedOn, time.UTC),
		pgconv.DateFromPgtype(row.UpdatedOn, time.UTC),
	)
}

func PrizeDetailsFromRow(row sqlc.GetActivePrizeDetailsRow) *shared.PrizeDetails {
	return &shared.PrizeDetails{
		Code:         row.Code,
		CustomerCode: row.CustomerCode,
		CustomerName: row.CustomerName,
		Points:       row.Points,
		Value:        prize.Value(row.Points),
		GeneratedOn:  pgconv.DateFromPgtype(row.GeneratedOn, time.UTC),
		UpdatedOn:    pgconv.DateFromPgtype(row.UpdatedOn, time.UTC),
	}
}

func RedemptionToCreateParams(r *prize.Redemption) sqlc.CreateRedeemedPrizeParams {
	return sqlc.CreateRedeemedPrizeParams{
		ID:           r.ID(),
		Code:         r.Code().String(),
		CustomerCode: r.CustomerCode().String(),
		Points:       r.Points(),
		Value:        pgconv.DecimalToNumeric(r.Value()),
		GeneratedOn:  pgconv.DateToPgtype(r.GeneratedOn()),
		RedeemedOn:   pgconv.DateToPgtype(r.RedeemedOn()),
		Store:        r.Store(),
	}
}

func RedemptionFromRow(row sqlc.RedeemedPrizes) (*prize.Redemption, error) {
	value, err := pgconv.DecimalFromNumeric(row.Value)
	if err != nil {
		return nil, err
	}
	return prize.ReconstructRedemption(
		row.ID,
		prize.ReconstructCode(row.Code),
		customer.ReconstructCode(row.CustomerCode),
		row.Points,
		value,
		pgconv.DateFromPgtype(row.GeneratedOn, time.UTC),
		pgconv.DateFromPgtype(row.RedeemedOn, time.UTC),
		row.Store,
	), nil
}
