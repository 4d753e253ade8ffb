//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"loyalty-ledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClass(t *testing.T) {
	errPrizeGone := errs.Mark(errs.New("prize not found"), errs.ErrNotFound)

	testCases := []struct {
		name string
		err  error
		want error
	}{
		{name: "marked not found", err: errPrizeGone, want: errs.ErrNotFound},
		{name: "wrapped keeps the mark", err: errs.Wrap(errPrizeGone, "redeem"), want: errs.ErrNotFound},
		{name: "transient", err: errs.Mark(errors.New("pool exhausted"), errs.ErrTransient), want: errs.ErrTransient},
		{name: "unmarked", err: errors.New("boom"), want: nil},
		{name: "nil", err: nil, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.Class(tc.err))
		})
	}
}
