package commands

//go:generate mockgen -source=customer.go -destination=../../../tests/mock/commands/customer_mock.go -package=commandsmock

import (
	"context"
	"strings"
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/patch"
	"loyalty-ledger/internal/usecase/shared"
)

// PublicOrigin is recorded as origin store for self-registered customers.
const PublicOrigin = "public"

var (
	ErrInvalidProfile   = errs.New("invalid customer profile")
	ErrCustomerCodeFull = errs.New("no customer codes left")
)

type RegisterCustomerInput struct {
	Profile     customer.ProfileInput
	OriginStore string
	// Honeypot is a form field humans never fill in.
	Honeypot string
}

type RegisterCustomerResult struct {
	Code string
	Name string
}

type UpdateCustomerInput struct {
	Name       *string
	Phone      *string
	Email      *string
	BirthDate  *time.Time
	Sex        *string
	PostalCode *string
}

type CustomerCommands interface {
	RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (*RegisterCustomerResult, error)
	UpdateCustomer(ctx context.Context, code string, in UpdateCustomerInput) error
}

type customerCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
}

func NewCustomerCommands(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock) CustomerCommands {
	return &customerCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
	}
}

func (uc *customerCommandsImpl) RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (*RegisterCustomerResult, error) {
	if strings.TrimSpace(in.Honeypot) != "" {
		return nil, errs.Mark(customer.ErrSuspiciousSubmitter, errs.ErrValidation)
	}
	origin := strings.TrimSpace(in.OriginStore)
	if origin == "" {
		return nil, errs.Mark(ErrMissingStore, errs.ErrValidation)
	}

	now := uc.clock.Now()
	profile, err := customer.NewProfile(in.Profile, clock.Today(now))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidProfile)
	}

	var created *customer.Customer
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		code, err := tx.Customers().NextCode(ctx)
		if err != nil {
			if errs.Is(err, customer.ErrCodeSpaceExhausted) {
				return mark(err, ErrCustomerCodeFull, errs.ErrIntegrity)
			}
			return err
		}

		c := customer.NewCustomer(code, profile, origin, now)
		if err := tx.Customers().Create(ctx, c); err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	if email := profile.Email(); !email.IsZero() {
		send(ctx, uc.notifier, shared.NotifyWelcome, email.String(), map[string]any{
			"Name": profile.Name().String(),
			"Code": created.Code().String(),
		})
	}

	return &RegisterCustomerResult{
		Code: created.Code().String(),
		Name: profile.Name().String(),
	}, nil
}

// UpdateCustomer applies the non-nil fields of in over the stored profile
// while holding the customer row lock.
func (uc *customerCommandsImpl) UpdateCustomer(ctx context.Context, code string, in UpdateCustomerInput) error {
	cc, err := customer.NewCode(code)
	if err != nil {
		return mark(err, ErrInvalidCustomer, errs.ErrValidation)
	}

	today := clock.Today(uc.clock.Now())
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Customers().LockByCode(ctx, cc)
		if err != nil {
			return notFoundAs(err, ErrCustomerNotFound)
		}

		current := rec.Customer.Profile()
		profile, err := customer.NewProfile(customer.ProfileInput{
			Name:       patch.Coalesce(in.Name, current.Name().String()),
			Phone:      patch.Coalesce(in.Phone, current.Phone().String()),
			Email:      patch.Coalesce(in.Email, current.Email().String()),
			BirthDate:  patch.Coalesce(in.BirthDate, current.BirthDate()),
			Sex:        patch.Coalesce(in.Sex, current.Sex()),
			PostalCode: patch.Coalesce(in.PostalCode, current.PostalCode().String()),
		}, today)
		if err != nil {
			return errs.Mark(err, ErrInvalidProfile)
		}

		return notFoundAs(tx.Customers().UpdateProfile(ctx, cc, profile), ErrCustomerNotFound)
	})
}
