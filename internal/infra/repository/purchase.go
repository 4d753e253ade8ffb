package repository

//go:generate mockgen -source=purchase.go -destination=../../../tests/mock/repository/purchase_mock.go -package=repositorymock

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/domain/purchase"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/repository/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
)

type PurchaseQueries interface {
	CreatePurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePurchaseParams) (sqlc.Purchases, error)
	SumValidPoints(ctx context.Context, db sqlc.DBTX, arg sqlc.SumValidPointsParams) (int64, error)
	ListPurchasesSince(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPurchasesSinceParams) ([]sqlc.Purchases, error)
}

type PurchaseRepository struct {
	queries PurchaseQueries
	db      sqlc.DBTX
}

func NewPurchaseRepository(queries PurchaseQueries, db sqlc.DBTX) *PurchaseRepository {
	return &PurchaseRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseRepository) Create(ctx context.Context, p *purchase.Purchase) error {
	if _, err := r.queries.CreatePurchase(ctx, r.db, converter.PurchaseToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to record purchase", err)
	}
	return nil
}

func (r *PurchaseRepository) SumPointsSince(ctx context.Context, code customer.Code, cutoff time.Time) (int64, error) {
	total, err := r.queries.SumValidPoints(ctx, r.db, sqlc.SumValidPointsParams{
		CustomerCode: code.String(),
		Cutoff:       pgconv.DateToPgtype(cutoff),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum valid points", err)
	}
	return total, nil
}

// ListSince returns purchases dated on or after cutoff, most recent first.
func (r *PurchaseRepository) ListSince(ctx context.Context, code customer.Code, cutoff time.Time) ([]*purchase.Purchase, error) {
	rows, err := r.queries.ListPurchasesSince(ctx, r.db, sqlc.ListPurchasesSinceParams{
		CustomerCode: code.String(),
		Cutoff:       pgconv.DateToPgtype(cutoff),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list purchases", err)
	}

	result := make([]*purchase.Purchase, 0, len(rows))
	for _, row := range rows {
		p, err := converter.PurchaseFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode purchase row", err)
		}
		result = append(result, p)
	}
	return result, nil
}
