package readstore

import (
	"context"

	"loyalty-ledger/internal/domain/store"
	"loyalty-ledger/internal/infra"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
)

type StoreReadQueries interface {
	GetStoreByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Stores, error)
	GetStoreByIdentifier(ctx context.Context, db sqlc.DBTX, identifier string) (sqlc.Stores, error)
}

type StoreReadStore struct {
	queries StoreReadQueries
	db      sqlc.DBTX
}

func NewStoreReadStore(queries StoreReadQueries, db sqlc.DBTX) *StoreReadStore {
	return &StoreReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StoreReadStore) FindByUsername(ctx context.Context, username string) (*store.Store, error) {
	row, err := r.queries.GetStoreByUsername(ctx, r.db, username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store by username", err)
	}
	return toStore(row), nil
}

func (r *StoreReadStore) FindByIdentifier(ctx context.Context, identifier string) (*store.Store, error) {
	row, err := r.queries.GetStoreByIdentifier(ctx, r.db, identifier)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store by identifier", err)
	}
	return toStore(row), nil
}

func toStore(row sqlc.Stores) *store.Store {
	return store.ReconstructStore(row.Username, row.Identifier, row.Name, row.PasswordHash, row.IsActive)
}
