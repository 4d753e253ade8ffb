package response

import (
	"time"

	"loyalty-ledger/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money leaves the API with two decimals and calendar dates as YYYY-MM-DD.
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				d, ok := src.(decimal.Decimal)
				if !ok {
					return nil, errs.New("expected decimal.Decimal")
				}
				return d.StringFixed(2), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				t, ok := src.(time.Time)
				if !ok {
					return nil, errs.New("expected time.Time")
				}
				if t.IsZero() {
					return "", nil
				}
				return t.Format(time.DateOnly), nil
			},
		},
	},
}

// mustCopy panics on a failed copy; only a mismatched converter can fail,
// which is a programming error recovered by the recovery middleware.
func mustCopy(to, from any) {
	if err := copier.CopyWithOption(to, from, copyOptions); err != nil {
		panic(errs.Wrap(err, "response mapping"))
	}
}
