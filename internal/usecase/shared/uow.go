package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/domain/prize"
	"loyalty-ledger/internal/domain/purchase"
)

type UnitOfWork interface {
	// Within: read-write transaction with lock timeout and retry on serialization/deadlock
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one open transaction.
type Tx interface {
	Customers() CustomerRepository
	Purchases() PurchaseRepository
	Prizes() PrizeRepository
	Redemptions() RedemptionRepository
}

type CustomerRepository interface {
	NextCode(ctx context.Context) (customer.Code, error)
	Create(ctx context.Context, c *customer.Customer) error
	FindByCode(ctx context.Context, code customer.Code) (*CustomerRecord, error)
	// LockByCode takes the customer row lock for the rest of the transaction.
	LockByCode(ctx context.Context, code customer.Code) (*CustomerRecord, error)
	ApplyPurchase(ctx context.Context, code customer.Code, amount purchase.Amount) (*CycleCounters, error)
	SetValidPoints(ctx context.Context, code customer.Code, points int64) error
	ResetCycle(ctx context.Context, code customer.Code) error
	UpdateProfile(ctx context.Context, code customer.Code, profile customer.Profile) error
	Search(ctx context.Context, term customer.SearchTerm) ([]*CustomerSummary, error)
	ListBirthdays(ctx context.Context, today time.Time) ([]*CustomerRecord, error)
	MarkBirthdayMailed(ctx context.Context, code customer.Code, year int) error
	ListInactive(ctx context.Context, lastPurchaseBefore time.Time) ([]*InactiveCustomer, error)
	MarkInactivityMailed(ctx context.Context, code customer.Code, on time.Time) error
}

type PurchaseRepository interface {
	Create(ctx context.Context, p *purchase.Purchase) error
	SumPointsSince(ctx context.Context, code customer.Code, cutoff time.Time) (int64, error)
	ListSince(ctx context.Context, code customer.Code, cutoff time.Time) ([]*purchase.Purchase, error)
}

type PrizeRepository interface {
	// ReserveCode claims code in the never-reused registry; false means taken.
	ReserveCode(ctx context.Context, code prize.Code, owner customer.Code) (bool, error)
	Create(ctx context.Context, p *prize.Active) error
	// FindActiveByCustomer returns nil without error when the customer has no active prize.
	FindActiveByCustomer(ctx context.Context, owner customer.Code) (*prize.Active, error)
	Accrue(ctx context.Context, owner customer.Code, points int64, on time.Time) (*prize.Active, error)
	OwnerOf(ctx context.Context, code prize.Code) (customer.Code, error)
	LockByCode(ctx context.Context, code prize.Code) (*prize.Active, error)
	Details(ctx context.Context, code prize.Code) (*PrizeDetails, error)
	Delete(ctx context.Context, code prize.Code) error
}

type RedemptionRepository interface {
	Create(ctx context.Context, r *prize.Redemption) error
	ListByCustomer(ctx context.Context, owner customer.Code) ([]*prize.Redemption, error)
}
