//go:build unit || e2e

package builder

import (
	"loyalty-ledger/internal/domain/store"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/password"
)

type StoreBuilder struct {
	Username   string
	Identifier string
	Name       string
	Password   string
	Active     bool
}

func NewStoreBuilder() *StoreBuilder {
	return &StoreBuilder{
		Username:   "loja01",
		Identifier: "loja01",
		Name:       "Loja Centro",
		Password:   "password123",
		Active:     true,
	}
}

func (s *StoreBuilder) With(mutate func(*StoreBuilder)) *StoreBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *StoreBuilder) BuildDomain() (*store.Store, error) {
	hash, err := password.HashPassword(s.Password)
	if err != nil {
		return nil, err
	}
	return store.ReconstructStore(s.Username, s.Identifier, s.Name, hash, s.Active), nil
}

func (s *StoreBuilder) BuildRow() (sqlc.Stores, error) {
	hash, err := password.HashPassword(s.Password)
	if err != nil {
		return sqlc.Stores{}, err
	}
	return sqlc.Stores{
		ID:           1,
		Username:     s.Username,
		Identifier:   s.Identifier,
		PasswordHash: hash,
		Name:         s.Name,
		IsActive:     s.Active,
	}, nil
}
