//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/shared"
	"loyalty-ledger/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func (m *txMocks) campaigns() commands.CampaignCommands {
	return commands.NewCampaignCommands(m.uow, m.notifier, clock.NewMockClock(now))
}

func (m *txMocks) expectReadTx() {
	m.uow.EXPECT().
		WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}

func TestSendBirthdayGreetings(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)

	maria := builder.NewCustomerBuilder().BuildRecord()
	noEmail := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
		b.Code = "00002"
		b.Email = ""
	}).BuildRecord()
	dropped := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
		b.Code = "00003"
		b.Name = "Joao Souza"
		b.Email = "joao@example.com"
	}).BuildRecord()

	m.expectReadTx()
	m.customers.EXPECT().ListBirthdays(gomock.Any(), today).
		Return([]*shared.CustomerRecord{maria, noEmail, dropped}, nil)

	m.notifier.EXPECT().
		Notify(gomock.Any(), shared.NotifyBirthday, "maria@example.com", map[string]any{"Name": "Maria Silva"}).
		Return(nil)
	m.notifier.EXPECT().
		Notify(gomock.Any(), shared.NotifyBirthday, "joao@example.com", gomock.Any()).
		Return(errors.New("queue full"))

	m.expectTx()
	m.customers.EXPECT().MarkBirthdayMailed(gomock.Any(), code("00001"), 2024).Return(nil)

	result, err := m.campaigns().SendBirthdayGreetings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &commands.CampaignResult{Candidates: 3, Sent: 1}, result)
}

func TestSendBirthdayGreetings_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)

	dbErr := errs.Mark(errors.New("pool exhausted"), errs.ErrTransient)
	m.expectReadTx()
	m.customers.EXPECT().ListBirthdays(gomock.Any(), today).Return(nil, dbErr)

	result, err := m.campaigns().SendBirthdayGreetings(context.Background())

	assert.Nil(t, result)
	assert.Equal(t, errs.ErrTransient, errs.Class(err))
}

func TestSendInactivityReminders(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)

	cutoff := today.AddDate(0, 0, -45)
	lastVisit := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

	m.expectReadTx()
	m.customers.EXPECT().ListInactive(gomock.Any(), cutoff).Return([]*shared.InactiveCustomer{
		{Code: code("00007"), Name: "Ana Lima", Email: "ana@example.com", LastPurchaseOn: lastVisit},
		{Code: code("00008"), Name: "Sem Email", LastPurchaseOn: lastVisit},
	}, nil)

	m.notifier.EXPECT().
		Notify(gomock.Any(), shared.NotifyInactivity, "ana@example.com", map[string]any{"Name": "Ana Lima"}).
		Return(nil)
	m.expectTx()
	m.customers.EXPECT().MarkInactivityMailed(gomock.Any(), code("00007"), today).Return(nil)

	result, err := m.campaigns().SendInactivityReminders(context.Background(), 45)

	require.NoError(t, err)
	assert.Equal(t, &commands.CampaignResult{Candidates: 2, Sent: 1}, result)
}

func TestSendInactivityReminders_MarkFailureStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)

	m.expectReadTx()
	m.customers.EXPECT().ListInactive(gomock.Any(), gomock.Any()).Return([]*shared.InactiveCustomer{
		{Code: code("00007"), Name: "Ana Lima", Email: "ana@example.com"},
		{Code: code("00009"), Name: "Rui Costa", Email: "rui@example.com"},
	}, nil)
	m.notifier.EXPECT().Notify(gomock.Any(), shared.NotifyInactivity, "ana@example.com", gomock.Any()).Return(nil)
	m.expectTx()
	m.customers.EXPECT().MarkInactivityMailed(gomock.Any(), code("00007"), today).
		Return(notFound("customer vanished"))

	result, err := m.campaigns().SendInactivityReminders(context.Background(), 45)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "00007")
	assert.Equal(t, 0, result.Sent)
}

func TestSendInactivityReminders_InvalidWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)

	_, err := m.campaigns().SendInactivityReminders(context.Background(), 0)

	assert.True(t, errs.Is(err, commands.ErrInvalidInactivityWindow))
	assert.Equal(t, errs.ErrValidation, errs.Class(err))
}
