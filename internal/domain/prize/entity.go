package prize

import (
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNonPositiveSeed = errs.New("prize must be seeded with a positive balance")

// Value converts prize points into money: points / 100, two decimals.
func Value(points int64) decimal.Decimal {
	return decimal.New(points, -2)
}

// Active is a customer's unredeemed, accumulating prize.
type Active struct {
	code         Code
	customerCode customer.Code
	points       int64
	generatedOn  time.Time
	updatedOn    time.Time
}

func NewActive(code Code, customerCode customer.Code, seedPoints int64, on time.Time) (*Active, error) {
	if seedPoints <= 0 {
		return nil, ErrNonPositiveSeed
	}
	return &Active{
		code:         code,
		customerCode: customerCode,
		points:       seedPoints,
		generatedOn:  on,
		updatedOn:    on,
	}, nil
}

func ReconstructActive(code Code, customerCode customer.Code, points int64, generatedOn, updatedOn time.Time) *Active {
	return &Active{
		code:         code,
		customerCode: customerCode,
		points:       points,
		generatedOn:  generatedOn,
		updatedOn:    updatedOn,
	}
}

func (a *Active) Code() Code                  { return a.code }
func (a *Active) CustomerCode() customer.Code { return a.customerCode }
func (a *Active) Points() int64               { return a.points }
func (a *Active) GeneratedOn() time.Time      { return a.generatedOn }
func (a *Active) UpdatedOn() time.Time        { return a.updatedOn }
func (a *Active) Value() decimal.Decimal      { return Value(a.points) }

// Accrue adds a later purchase's points to the prize.
func (a *Active) Accrue(points int64, on time.Time) {
	a.points += points
	a.updatedOn = on
}

// Redeem closes the prize into its historical record.
func (a *Active) Redeem(store string, on time.Time) *Redemption {
	return &Redemption{
		id:           uuid.New(),
		code:         a.code,
		customerCode: a.customerCode,
		points:       a.points,
		value:        a.Value(),
		generatedOn:  a.generatedOn,
		redeemedOn:   on,
		store:        store,
	}
}

// Redemption is the immutable record left behind by a redeemed prize.
type Redemption struct {
	id           uuid.UUID
	code         Code
	customerCode customer.Code
	points       int64
	value        decimal.Decimal
	generatedOn  time.Time
	redeemedOn   time.Time
	store        string
}

func ReconstructRedemption(id uuid.UUID, code Code, customerCode customer.Code, points int64, value decimal.Decimal, generatedOn, redeemedOn time.Time, store string) *Redemption {
	return &Redemption{
		id:           id,
		code:         code,
		customerCode: customerCode,
		points:       points,
		value:        value,
		generatedOn:  generatedOn,
		redeemedOn:   redeemedOn,
		store:        store,
	}
}

func (r *Redemption) ID() uuid.UUID               { return r.id }
func (r *Redemption) Code() Code                  { return r.code }
func (r *Redemption) CustomerCode() customer.Code { return r.customerCode }
func (r *Redemption) Points() int64               { return r.points }
func (r *Redemption) Value() decimal.Decimal      { return r.value }
func (r *Redemption) GeneratedOn() time.Time      { return r.generatedOn }
func (r *Redemption) RedeemedOn() time.Time       { return r.redeemedOn }
func (r *Redemption) Store() string               { return r.store }
