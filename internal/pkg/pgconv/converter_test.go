//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"loyalty-ledger/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	testCases := []string{"10.00", "0.01", "1234567.89", "0"}

	for _, s := range testCases {
		t.Run(s, func(t *testing.T) {
			in := decimal.RequireFromString(s)
			out, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(in))
			require.NoError(t, err)
			assert.True(t, in.Equal(out), "want %s got %s", in, out)
		})
	}
}

func TestDecimalFromNumeric_Invalid(t *testing.T) {
	_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Valid: false})
	assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)

	_, err = pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(1), NaN: true, Valid: true})
	assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
}

func TestDateConversion_KeepsCalendarDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 23:30 local is already the next day in UTC; the stored date must stay local.
	local := time.Date(2025, 3, 10, 23, 30, 0, 0, loc)

	pd := pgconv.DateToPgtype(local)
	require.True(t, pd.Valid)

	back := pgconv.DateFromPgtype(pd, loc)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), back)
}
