package queries

//go:generate mockgen -source=loyalty.go -destination=../../../tests/mock/queries/loyalty_mock.go -package=queriesmock

import (
	"context"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/domain/points"
	"loyalty-ledger/internal/domain/prize"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/usecase/shared"
)

type LoyaltyQueries interface {
	// GetLoyaltyStatus refreshes the cached balance under the customer row
	// lock before reading, so it runs in a read-write transaction.
	GetLoyaltyStatus(ctx context.Context, customerCode string) (*LoyaltyStatusView, error)
	LookupPrize(ctx context.Context, prizeCode string) (*PrizeView, error)
}

type loyaltyQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLoyaltyQueries(uow shared.UnitOfWork, clk clock.Clock) LoyaltyQueries {
	return &loyaltyQueriesImpl{uow: uow, clock: clk}
}

func (q *loyaltyQueriesImpl) GetLoyaltyStatus(ctx context.Context, customerCode string) (*LoyaltyStatusView, error) {
	code, err := customer.NewCode(customerCode)
	if err != nil {
		return nil, invalid(err, ErrInvalidCode)
	}

	var view *LoyaltyStatusView
	err = q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		today := clock.Today(q.clock.Now())

		rec, err := tx.Customers().LockByCode(ctx, code)
		if err != nil {
			return notFoundAs(err, ErrCustomerNotFound)
		}

		validPoints, err := shared.RecomputeValidPoints(ctx, tx, code, today)
		if err != nil {
			return err
		}

		active, err := tx.Prizes().FindActiveByCustomer(ctx, code)
		if err != nil {
			return err
		}

		recent, err := tx.Purchases().ListSince(ctx, code, points.Cutoff(today))
		if err != nil {
			return err
		}

		redemptions, err := tx.Redemptions().ListByCustomer(ctx, code)
		if err != nil {
			return err
		}

		view = &LoyaltyStatusView{
			CustomerCode:         code.String(),
			CustomerName:         rec.Customer.Profile().Name().String(),
			TotalPurchases:       rec.TotalPurchases,
			CyclePurchases:       rec.CyclePurchases,
			ValidPoints:          validPoints,
			ValidValue:           prize.Value(validPoints),
			EligibleForPrize:     prize.Eligible(rec.CyclePurchases),
			PurchasesToThreshold: prize.PurchasesToThreshold(rec.CyclePurchases),
			RecentPurchases:      make([]*PurchaseView, 0, len(recent)),
			Redemptions:          make([]*RedemptionView, 0, len(redemptions)),
			AsOf:                 today,
		}
		if active != nil {
			view.ActivePrize = &ActivePrizeView{
				Code:        active.Code().String(),
				Points:      active.Points(),
				Value:       active.Value(),
				GeneratedOn: active.GeneratedOn(),
				UpdatedOn:   active.UpdatedOn(),
			}
		}
		for _, p := range recent {
			view.RecentPurchases = append(view.RecentPurchases, &PurchaseView{
				ID:          p.ID(),
				Seq:         p.Seq(),
				Amount:      p.Amount().Decimal(),
				Points:      p.Points(),
				PurchasedOn: p.Date(),
				Store:       p.Store(),
			})
		}
		for _, r := range redemptions {
			view.Redemptions = append(view.Redemptions, &RedemptionView{
				Code:        r.Code().String(),
				Points:      r.Points(),
				Value:       r.Value(),
				GeneratedOn: r.GeneratedOn(),
				RedeemedOn:  r.RedeemedOn(),
				Store:       r.Store(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *loyaltyQueriesImpl) LookupPrize(ctx context.Context, prizeCode string) (*PrizeView, error) {
	code, err := prize.NewCode(prizeCode)
	if err != nil {
		return nil, invalid(err, ErrInvalidCode)
	}

	var view *PrizeView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Prizes().Details(ctx, code)
		if err != nil {
			return notFoundAs(err, ErrPrizeNotFound)
		}
		view = &PrizeView{
			Code:         d.Code,
			CustomerCode: d.CustomerCode,
			CustomerName: d.CustomerName,
			Points:       d.Points,
			Value:        d.Value,
			GeneratedOn:  d.GeneratedOn,
			UpdatedOn:    d.UpdatedOn,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
