package queries

//go:generate mockgen -source=customer.go -destination=../../../tests/mock/queries/customer_mock.go -package=queriesmock

import (
	"context"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/usecase/shared"
)

type CustomerQueries interface {
	GetCustomer(ctx context.Context, code string) (*CustomerView, error)
	SearchCustomers(ctx context.Context, term string) ([]*CustomerListItem, error)
}

type customerQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCustomerQueries(uow shared.UnitOfWork) CustomerQueries {
	return &customerQueriesImpl{uow: uow}
}

// GetCustomer reports the cached balance as of the last ledger touch.
func (q *customerQueriesImpl) GetCustomer(ctx context.Context, code string) (*CustomerView, error) {
	cc, err := customer.NewCode(code)
	if err != nil {
		return nil, invalid(err, ErrInvalidCode)
	}

	var view *CustomerView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Customers().FindByCode(ctx, cc)
		if err != nil {
			return notFoundAs(err, ErrCustomerNotFound)
		}
		view = toCustomerView(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *customerQueriesImpl) SearchCustomers(ctx context.Context, term string) ([]*CustomerListItem, error) {
	st, err := customer.NewSearchTerm(term)
	if err != nil {
		return nil, invalid(err, ErrInvalidSearch)
	}

	var items []*CustomerListItem
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Customers().Search(ctx, st)
		if err != nil {
			return err
		}
		items = make([]*CustomerListItem, 0, len(found))
		for _, s := range found {
			items = append(items, &CustomerListItem{
				Code:  s.Code,
				Name:  s.Name,
				Phone: s.Phone,
				Email: s.Email,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func toCustomerView(rec *shared.CustomerRecord) *CustomerView {
	c := rec.Customer
	p := c.Profile()
	view := &CustomerView{
		Code:           c.Code().String(),
		Name:           p.Name().String(),
		Phone:          p.Phone().String(),
		Email:          p.Email().String(),
		Sex:            p.Sex(),
		PostalCode:     p.PostalCode().String(),
		OriginStore:    c.OriginStore(),
		TotalPurchases: rec.TotalPurchases,
		TotalSpent:     rec.TotalSpent,
		CyclePurchases: rec.CyclePurchases,
		ValidPoints:    rec.ValidPoints,
		CreatedAt:      c.CreatedAt(),
	}
	if bd := p.BirthDate(); !bd.IsZero() {
		view.BirthDate = &bd
	}
	return view
}
