package repository

//go:generate mockgen -source=prize.go -destination=../../../tests/mock/repository/prize_mock.go -package=repositorymock

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/domain/prize"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/repository/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
	"loyalty-ledger/internal/usecase/shared"
)

type PrizeQueries interface {
	ReservePrizeCode(ctx context.Context, db sqlc.DBTX, arg sqlc.ReservePrizeCodeParams) (int64, error)
	CreateActivePrize(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateActivePrizeParams) (sqlc.ActivePrizes, error)
	GetActivePrizeByCustomer(ctx context.Context, db sqlc.DBTX, customerCode string) (sqlc.ActivePrizes, error)
	AccrueActivePrize(ctx context.Context, db sqlc.DBTX, arg sqlc.AccrueActivePrizeParams) (sqlc.ActivePrizes, error)
	GetActivePrizeOwner(ctx context.Context, db sqlc.DBTX, code string) (string, error)
	GetActivePrizeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.ActivePrizes, error)
	GetActivePrizeDetails(ctx context.Context, db sqlc.DBTX, code string) (sqlc.GetActivePrizeDetailsRow, error)
	DeleteActivePrize(ctx context.Context, db sqlc.DBTX, code string) (int64, error)
}

type PrizeRepository struct {
	queries PrizeQueries
	db      sqlc.DBTX
}

func NewPrizeRepository(queries PrizeQueries, db sqlc.DBTX) *PrizeRepository {
	return &PrizeRepository{
		queries: queries,
		db:      db,
	}
}

// ReserveCode inserts with ON CONFLICT DO NOTHING so a taken code does not
// abort the surrounding transaction.
func (r *PrizeRepository) ReserveCode(ctx context.Context, code prize.Code, owner customer.Code) (bool, error) {
	rows, err := r.queries.ReservePrizeCode(ctx, r.db, sqlc.ReservePrizeCodeParams{
		Code:         code.String(),
		CustomerCode: owner.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve prize code", err)
	}
	return rows == 1, nil
}

func (r *PrizeRepository) Create(ctx context.Context, p *prize.Active) error {
	if _, err := r.queries.CreateActivePrize(ctx, r.db, converter.ActivePrizeToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create active prize", err)
	}
	return nil
}

func (r *PrizeRepository) FindActiveByCustomer(ctx context.Context, owner customer.Code) (*prize.Active, error) {
	row, err := r.queries.GetActivePrizeByCustomer(ctx, r.db, owner.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active prize", err)
	}
	return converter.ActivePrizeFromRow(row), nil
}

func (r *PrizeRepository) Accrue(ctx context.Context, owner customer.Code, points int64, on time.Time) (*prize.Active, error) {
	row, err := r.queries.AccrueActivePrize(ctx, r.db, sqlc.AccrueActivePrizeParams{
		Points:       points,
		UpdatedOn:    pgconv.DateToPgtype(on),
		CustomerCode: owner.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active prize not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to accrue active prize", err)
	}
	return converter.ActivePrizeFromRow(row), nil
}

func (r *PrizeRepository) OwnerOf(ctx context.Context, code prize.Code) (customer.Code, error) {
	owner, err := r.queries.GetActivePrizeOwner(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return customer.Code{}, infra.WrapRepoErr("active prize not found", err, infra.KindNotFound)
		}
		return customer.Code{}, infra.WrapRepoErr("failed to find prize owner", err)
	}
	return customer.ReconstructCode(owner), nil
}

func (r *PrizeRepository) LockByCode(ctx context.Context, code prize.Code) (*prize.Active, error) {
	row, err := r.queries.GetActivePrizeForUpdate(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active prize not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock active prize", err)
	}
	return converter.ActivePrizeFromRow(row), nil
}

func (r *PrizeRepository) Details(ctx context.Context, code prize.Code) (*shared.PrizeDetails, error) {
	row, err := r.queries.GetActivePrizeDetails(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active prize not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load prize details", err)
	}
	return converter.PrizeDetailsFromRow(row), nil
}

func (r *PrizeRepository) Delete(ctx context.Context, code prize.Code) error {
	rows, err := r.queries.DeleteActivePrize(ctx, r.db, code.String())
	if err != nil {
		return infra.WrapRepoErr("failed to delete active prize", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("active prize not found", nil, infra.KindNotFound)
	}
	return nil
}
