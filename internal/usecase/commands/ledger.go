package commands

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/commands/ledger_mock.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/domain/prize"
	"loyalty-ledger/internal/domain/purchase"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RegisterPurchaseInput struct {
	CustomerCode string
	Amount       decimal.Decimal
	Store        string
}

type PurchaseResult struct {
	PurchaseID           uuid.UUID
	CustomerCode         string
	Amount               decimal.Decimal
	PointsEarned         int64
	TotalPurchases       int32
	CyclePurchases       int32
	ValidPoints          int64
	ActivePrizeCode      string
	ActivePrizePoints    int64
	PrizeGenerated       bool
	PurchasesToThreshold int32
	PurchasedOn          time.Time
}

type RedeemPrizeInput struct {
	PrizeCode string
	Store     string
}

type RedemptionResult struct {
	PrizeCode    string
	CustomerCode string
	Points       int64
	Value        decimal.Decimal
	ValidPoints  int64
	RedeemedOn   time.Time
	Message      string
}

type LedgerCommands interface {
	RegisterPurchase(ctx context.Context, in RegisterPurchaseInput) (*PurchaseResult, error)
	RedeemPrize(ctx context.Context, in RedeemPrizeInput) (*RedemptionResult, error)
}

type ledgerCommandsImpl struct {
	uow      shared.UnitOfWork
	codes    prize.CodeGenerator
	notifier shared.Notifier
	clock    clock.Clock
}

func NewLedgerCommands(uow shared.UnitOfWork, codes prize.CodeGenerator, notifier shared.Notifier, clk clock.Clock) LedgerCommands {
	return &ledgerCommandsImpl{
		uow:      uow,
		codes:    codes,
		notifier: notifier,
		clock:    clk,
	}
}

// recipient is what a committed ledger change needs to mail the customer.
type recipient struct {
	name  string
	email string
}

func (uc *ledgerCommandsImpl) RegisterPurchase(ctx context.Context, in RegisterPurchaseInput) (*PurchaseResult, error) {
	code, err := customer.NewCode(in.CustomerCode)
	if err != nil {
		return nil, mark(err, ErrInvalidCustomer, errs.ErrValidation)
	}
	amount, err := purchase.NewAmount(in.Amount)
	if err != nil {
		return nil, mark(err, ErrInvalidAmount, errs.ErrValidation)
	}
	store := strings.TrimSpace(in.Store)
	if store == "" {
		return nil, errs.Mark(ErrMissingStore, errs.ErrValidation)
	}

	var (
		result *PurchaseResult
		to     recipient
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		today := clock.Today(uc.clock.Now())

		rec, err := tx.Customers().LockByCode(ctx, code)
		if err != nil {
			return notFoundAs(err, ErrCustomerNotFound)
		}

		p := purchase.NewPurchase(code, rec.TotalPurchases+1, amount, today, store)
		if err := tx.Purchases().Create(ctx, p); err != nil {
			return err
		}

		counters, err := tx.Customers().ApplyPurchase(ctx, code, amount)
		if err != nil {
			return notFoundAs(err, ErrCustomerNotFound)
		}

		validPoints, err := shared.RecomputeValidPoints(ctx, tx, code, today)
		if err != nil {
			return err
		}

		active, err := tx.Prizes().FindActiveByCustomer(ctx, code)
		if err != nil {
			return err
		}

		generated := false
		switch prize.Decide(active != nil, counters.CyclePurchases, validPoints) {
		case prize.TransitionAccrue:
			active, err = tx.Prizes().Accrue(ctx, code, p.Points(), today)
		case prize.TransitionCreate:
			active, err = uc.issuePrize(ctx, tx, code, validPoints, today)
			generated = err == nil
		}
		if err != nil {
			return err
		}

		result = &PurchaseResult{
			PurchaseID:           p.ID(),
			CustomerCode:         code.String(),
			Amount:               amount.Decimal(),
			PointsEarned:         p.Points(),
			TotalPurchases:       counters.TotalPurchases,
			CyclePurchases:       counters.CyclePurchases,
			ValidPoints:          validPoints,
			PrizeGenerated:       generated,
			PurchasesToThreshold: prize.PurchasesToThreshold(counters.CyclePurchases),
			PurchasedOn:          today,
		}
		if active != nil {
			result.ActivePrizeCode = active.Code().String()
			result.ActivePrizePoints = active.Points()
		}
		to = recipient{
			name:  rec.Customer.Profile().Name().String(),
			email: rec.Customer.Profile().Email().String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifyPurchase(ctx, to, result)
	return result, nil
}

// issuePrize draws codes until one is free in the registry. The seed is the
// customer's whole valid balance at the moment the threshold is crossed.
func (uc *ledgerCommandsImpl) issuePrize(ctx context.Context, tx shared.Tx, owner customer.Code, seed int64, today time.Time) (*prize.Active, error) {
	for attempt := 1; attempt <= prize.MaxCodeAttempts; attempt++ {
		code, err := uc.codes.Generate()
		if err != nil {
			return nil, err
		}

		reserved, err := tx.Prizes().ReserveCode(ctx, code, owner)
		if err != nil {
			return nil, err
		}
		if !reserved {
			slog.Warn("prize code already issued, drawing again",
				"attempt", attempt,
				"customer_code", owner.String())
			continue
		}

		active, err := prize.NewActive(code, owner, seed, today)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrIntegrity)
		}
		if err := tx.Prizes().Create(ctx, active); err != nil {
			return nil, err
		}
		return active, nil
	}

	return nil, errs.Mark(ErrPrizeCodeExhausted, errs.ErrIntegrity)
}

func (uc *ledgerCommandsImpl) RedeemPrize(ctx context.Context, in RedeemPrizeInput) (*RedemptionResult, error) {
	code, err := prize.NewCode(in.PrizeCode)
	if err != nil {
		return nil, mark(err, ErrInvalidPrizeCode, errs.ErrValidation)
	}
	store := strings.TrimSpace(in.Store)
	if store == "" {
		return nil, errs.Mark(ErrMissingStore, errs.ErrValidation)
	}

	var (
		result *RedemptionResult
		to     recipient
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		today := clock.Today(uc.clock.Now())

		owner, err := tx.Prizes().OwnerOf(ctx, code)
		if err != nil {
			return notFoundAs(err, ErrPrizeNotFound)
		}

		// Customer row first, prize row second: the same order RegisterPurchase
		// touches them in, so the two cannot deadlock each other.
		rec, err := tx.Customers().LockByCode(ctx, owner)
		if err != nil {
			return notFoundAs(err, ErrCustomerNotFound)
		}

		active, err := tx.Prizes().LockByCode(ctx, code)
		if err != nil {
			return notFoundAs(err, ErrPrizeNotFound)
		}

		redemption := active.Redeem(store, today)
		if err := tx.Redemptions().Create(ctx, redemption); err != nil {
			return err
		}
		if err := tx.Prizes().Delete(ctx, code); err != nil {
			return notFoundAs(err, ErrPrizeNotFound)
		}
		if err := tx.Customers().ResetCycle(ctx, owner); err != nil {
			return notFoundAs(err, ErrCustomerNotFound)
		}

		validPoints, err := shared.RecomputeValidPoints(ctx, tx, owner, today)
		if err != nil {
			return err
		}

		result = &RedemptionResult{
			PrizeCode:    code.String(),
			CustomerCode: owner.String(),
			Points:       redemption.Points(),
			Value:        redemption.Value(),
			ValidPoints:  validPoints,
			RedeemedOn:   today,
			Message:      fmt.Sprintf("Prize worth %s redeemed successfully!", redemption.Value().StringFixed(2)),
		}
		to = recipient{
			name:  rec.Customer.Profile().Name().String(),
			email: rec.Customer.Profile().Email().String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifyRedemption(ctx, to, result)
	return result, nil
}

func (uc *ledgerCommandsImpl) notifyPurchase(ctx context.Context, to recipient, r *PurchaseResult) {
	if to.email == "" {
		return
	}
	variant := "progress"
	switch {
	case r.PrizeGenerated:
		variant = "generated"
	case r.ActivePrizeCode != "":
		variant = "active"
	}
	send(ctx, uc.notifier, shared.NotifyPurchase, to.email, map[string]any{
		"Name":        to.name,
		"Variant":     variant,
		"Amount":      r.Amount.StringFixed(2),
		"Points":      r.PointsEarned,
		"ValidPoints": r.ValidPoints,
		"PrizeCode":   r.ActivePrizeCode,
		"PrizeValue":  prize.Value(r.ActivePrizePoints).StringFixed(2),
		"Remaining":   r.PurchasesToThreshold,
	})
}

func (uc *ledgerCommandsImpl) notifyRedemption(ctx context.Context, to recipient, r *RedemptionResult) {
	if to.email == "" {
		return
	}
	send(ctx, uc.notifier, shared.NotifyRedemption, to.email, map[string]any{
		"Name":        to.name,
		"PrizeCode":   r.PrizeCode,
		"Value":       r.Value.StringFixed(2),
		"ValidPoints": r.ValidPoints,
	})
}

// send hands the message to the notifier after commit. Failures are logged
// and never reach the caller.
func send(ctx context.Context, n shared.Notifier, kind shared.NotificationKind, to string, data map[string]any) {
	if n == nil {
		return
	}
	if err := n.Notify(context.WithoutCancel(ctx), kind, to, data); err != nil {
		slog.Warn("notification not dispatched",
			"kind", string(kind),
			"error", err.Error())
	}
}
