package repository

//go:generate mockgen -source=redemption.go -destination=../../../tests/mock/repository/redemption_mock.go -package=repositorymock

import (
	"context"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/domain/prize"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/repository/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
)

type RedemptionQueries interface {
	CreateRedeemedPrize(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRedeemedPrizeParams) (sqlc.RedeemedPrizes, error)
	ListRedeemedPrizesByCustomer(ctx context.Context, db sqlc.DBTX, customerCode string) ([]sqlc.RedeemedPrizes, error)
}

type RedemptionRepository struct {
	queries RedemptionQueries
	db      sqlc.DBTX
}

func NewRedemptionRepository(queries RedemptionQueries, db sqlc.DBTX) *RedemptionRepository {
	return &RedemptionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RedemptionRepository) Create(ctx context.Context, rd *prize.Redemption) error {
	if _, err := r.queries.CreateRedeemedPrize(ctx, r.db, converter.RedemptionToCreateParams(rd)); err != nil {
		return infra.WrapRepoErr("failed to record redemption", err)
	}
	return nil
}

func (r *RedemptionRepository) ListByCustomer(ctx context.Context, owner customer.Code) ([]*prize.Redemption, error) {
	rows, err := r.queries.ListRedeemedPrizesByCustomer(ctx, r.db, owner.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list redemptions", err)
	}

	result := make([]*prize.Redemption, 0, len(rows))
	for _, row := range rows {
		rd, err := converter.RedemptionFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode redemption row", err)
		}
		result = append(result, rd)
	}
	return result, nil
}
