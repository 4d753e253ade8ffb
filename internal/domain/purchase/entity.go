package purchase

import (
	"time"

	"loyalty-ledger/internal/domain/customer"

	"github.com/google/uuid"
)

// Purchase is an immutable ledger entry.
type Purchase struct {
	id           uuid.UUID
	customerCode customer.Code
	seq          int32
	amount       Amount
	points       int64
	date         time.Time
	store        string
}

// NewPurchase stamps the entry with the caller's sequence number; seq must be
// the customer's lifetime purchase count plus one, read under the row lock.
func NewPurchase(customerCode customer.Code, seq int32, amount Amount, date time.Time, store string) *Purchase {
	return &Purchase{
		id:           uuid.New(),
		customerCode: customerCode,
		seq:          seq,
		amount:       amount,
		points:       amount.Points(),
		date:         date,
		store:        store,
	}
}

func ReconstructPurchase(id uuid.UUID, customerCode customer.Code, seq int32, amount Amount, points int64, date time.Time, store string) *Purchase {
	return &Purchase{
		id:           id,
		customerCode: customerCode,
		seq:          seq,
		amount:       amount,
		points:       points,
		date:         date,
		store:        store,
	}
}

func (p *Purchase) ID() uuid.UUID               { return p.id }
func (p *Purchase) CustomerCode() customer.Code { return p.customerCode }
func (p *Purchase) Seq() int32                  { return p.seq }
func (p *Purchase) Amount() Amount              { return p.amount }
func (p *Purchase) Points() int64               { return p.points }
func (p *Purchase) Date() time.Time             { return p.date }
func (p *Purchase) Store() string               { return p.store }
