package shared

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/domain/points"
)

// RecomputeValidPoints sums the customer's purchases inside the validity
// window ending at asOf and stores the result as the cached balance. The
// caller must already hold the customer row lock in tx.
func RecomputeValidPoints(ctx context.Context, tx Tx, code customer.Code, asOf time.Time) (int64, error) {
	total, err := tx.Purchases().SumPointsSince(ctx, code, points.Cutoff(asOf))
	if err != nil {
		return 0, err
	}
	if err := tx.Customers().SetValidPoints(ctx, code, total); err != nil {
		return 0, err
	}
	return total, nil
}
