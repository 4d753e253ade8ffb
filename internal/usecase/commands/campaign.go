package commands

//go:generate mockgen -source=campaign.go -destination=../../../tests/mock/commands/campaign_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"
)

var ErrInvalidInactivityWindow = errs.New("inactivity window must be at least one day")

// CampaignResult counts the customers a scheduled mailing reached.
type CampaignResult struct {
	Candidates int
	Sent       int
}

type CampaignCommands interface {
	SendBirthdayGreetings(ctx context.Context) (*CampaignResult, error)
	SendInactivityReminders(ctx context.Context, inactiveDays int) (*CampaignResult, error)
}

type campaignCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
}

func NewCampaignCommands(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock) CampaignCommands {
	return &campaignCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
	}
}

// SendBirthdayGreetings mails every customer born on today's month and day
// who was not greeted yet this year. A customer is marked only once the
// notifier accepted the message, so a dropped message is retried next run.
func (uc *campaignCommandsImpl) SendBirthdayGreetings(ctx context.Context) (*CampaignResult, error) {
	today := clock.Today(uc.clock.Now())

	var candidates []*shared.CustomerRecord
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		candidates, err = tx.Customers().ListBirthdays(ctx, today)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := &CampaignResult{Candidates: len(candidates)}
	for _, rec := range candidates {
		profile := rec.Customer.Profile()
		if profile.Email().IsZero() {
			continue
		}
		code := rec.Customer.Code()
		if !uc.deliver(ctx, shared.NotifyBirthday, profile.Email().String(), profile.Name().String()) {
			continue
		}

		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Customers().MarkBirthdayMailed(ctx, code, today.Year())
		})
		if err != nil {
			return result, errs.Wrapf(err, "mark birthday mail for %s", code.String())
		}
		result.Sent++
	}

	slog.Info("birthday greetings sent",
		"candidates", result.Candidates,
		"sent", result.Sent)
	return result, nil
}

// SendInactivityReminders mails customers whose last purchase is older than
// inactiveDays and who were not reminded since that purchase.
func (uc *campaignCommandsImpl) SendInactivityReminders(ctx context.Context, inactiveDays int) (*CampaignResult, error) {
	if inactiveDays < 1 {
		return nil, errs.Mark(ErrInvalidInactivityWindow, errs.ErrValidation)
	}
	today := clock.Today(uc.clock.Now())
	before := today.AddDate(0, 0, -inactiveDays)

	var candidates []*shared.InactiveCustomer
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		candidates, err = tx.Customers().ListInactive(ctx, before)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := &CampaignResult{Candidates: len(candidates)}
	for _, c := range candidates {
		if c.Email == "" {
			continue
		}
		if !uc.deliver(ctx, shared.NotifyInactivity, c.Email, c.Name) {
			continue
		}

		code := c.Code
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Customers().MarkInactivityMailed(ctx, code, today)
		})
		if err != nil {
			return result, errs.Wrapf(err, "mark inactivity mail for %s", code.String())
		}
		result.Sent++
	}

	slog.Info("inactivity reminders sent",
		"inactive_days", inactiveDays,
		"cutoff", before.Format(time.DateOnly),
		"candidates", result.Candidates,
		"sent", result.Sent)
	return result, nil
}

func (uc *campaignCommandsImpl) deliver(ctx context.Context, kind shared.NotificationKind, to, name string) bool {
	if uc.notifier == nil {
		return false
	}
	if err := uc.notifier.Notify(ctx, kind, to, map[string]any{"Name": name}); err != nil {
		slog.Warn("campaign mail not queued",
			"kind", string(kind),
			"error", err.Error())
		return false
	}
	return true
}
