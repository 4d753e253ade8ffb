package purchase

import (
	"strings"

	"loyalty-ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	amountScale = 2
	// PointsPerUnit converts one currency unit into points.
	PointsPerUnit = 100
)

var (
	ErrInvalidAmount   = errs.New("amount must be a positive value with at most 2 decimal places")
	ErrAmountTooLarge  = errs.New("amount exceeds the supported maximum")
	maxAmount          = decimal.New(1_000_000, 0)
	pointsPerUnitValue = decimal.NewFromInt(PointsPerUnit)
)

// Amount is a positive monetary value with cent precision.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(d decimal.Decimal) (Amount, error) {
	if !d.IsPositive() || !d.Equal(d.Truncate(amountScale)) {
		return Amount{}, ErrInvalidAmount
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return Amount{}, ErrAmountTooLarge
	}
	return Amount{value: d}, nil
}

func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	return NewAmount(d)
}

func ReconstructAmount(d decimal.Decimal) Amount { return Amount{value: d} }

func (a Amount) Decimal() decimal.Decimal { return a.value }
func (a Amount) String() string           { return a.value.StringFixed(amountScale) }

// Points is floor(amount * 100).
func (a Amount) Points() int64 {
	return a.value.Mul(pointsPerUnitValue).Floor().IntPart()
}
