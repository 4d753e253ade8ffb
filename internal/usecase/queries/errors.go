package queries

import (
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"
)

var (
	ErrCustomerNotFound = errs.New("customer not found")
	ErrPrizeNotFound    = errs.New("prize not found or already redeemed")
	ErrInvalidCode      = errs.New("invalid code")
	ErrInvalidSearch    = errs.New("invalid search term")
)

func invalid(err, sentinel error) error {
	return errs.Mark(errs.Mark(err, sentinel), errs.ErrValidation)
}

func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Mark(err, sentinel), errs.ErrNotFound)
	}
	return err
}
