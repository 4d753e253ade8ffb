package commands

import (
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"
)

var (
	ErrCustomerNotFound   = errs.New("customer not found")
	ErrPrizeNotFound      = errs.New("prize not found or already redeemed")
	ErrInvalidAmount      = errs.New("invalid purchase amount")
	ErrInvalidCustomer    = errs.New("invalid customer code")
	ErrInvalidPrizeCode   = errs.New("invalid prize code")
	ErrMissingStore       = errs.New("store identifier is required")
	ErrPrizeCodeExhausted = errs.New("could not allocate a unique prize code")
)

// mark tags err with a use-case sentinel and the failure class callers map.
func mark(err, sentinel, class error) error {
	return errs.Mark(errs.Mark(err, sentinel), class)
}

// notFoundAs rewrites a repository NOT_FOUND into sentinel; other errors pass through.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return mark(err, sentinel, errs.ErrNotFound)
	}
	return err
}
