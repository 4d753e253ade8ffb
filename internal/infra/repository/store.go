package repository

//go:generate mockgen -source=store.go -destination=../../../tests/mock/repository/store_mock.go -package=repositorymock

import (
	"context"

	"loyalty-ledger/internal/domain/store"
	"loyalty-ledger/internal/infra"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
)

type StoreWriteQueries interface {
	CreateStore(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateStoreParams) (sqlc.Stores, error)
}

type StoreRepository struct {
	queries StoreWriteQueries
	db      sqlc.DBTX
}

func NewStoreRepository(queries StoreWriteQueries, db sqlc.DBTX) *StoreRepository {
	return &StoreRepository{
		queries: queries,
		db:      db,
	}
}

func (r *StoreRepository) Create(ctx context.Context, s *store.Store) error {
	_, err := r.queries.CreateStore(ctx, r.db, sqlc.CreateStoreParams{
		Username:     s.Username(),
		Identifier:   s.Identifier(),
		PasswordHash: s.PasswordHash(),
		Name:         s.Name(),
	})
	if err != nil {
		if infra.PgCode(err) == infra.PgUniqueViolation {
			return infra.WrapRepoErr("store already exists", err)
		}
		return infra.WrapRepoErr("failed to create store", err)
	}
	return nil
}
