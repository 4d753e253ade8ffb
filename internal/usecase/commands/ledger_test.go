//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/domain/prize"
	"loyalty-ledger/internal/domain/purchase"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/shared"
	"loyalty-ledger/tests/common/builder"
	domainmock "loyalty-ledger/tests/mock/domain"
	sharedmock "loyalty-ledger/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

var today = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

type txMocks struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	customers   *sharedmock.MockCustomerRepository
	purchases   *sharedmock.MockPurchaseRepository
	prizes      *sharedmock.MockPrizeRepository
	redemptions *sharedmock.MockRedemptionRepository
	notifier    *sharedmock.MockNotifier
	codes       *domainmock.MockCodeGenerator
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		customers:   sharedmock.NewMockCustomerRepository(ctrl),
		purchases:   sharedmock.NewMockPurchaseRepository(ctrl),
		prizes:      sharedmock.NewMockPrizeRepository(ctrl),
		redemptions: sharedmock.NewMockRedemptionRepository(ctrl),
		notifier:    sharedmock.NewMockNotifier(ctrl),
		codes:       domainmock.NewMockCodeGenerator(ctrl),
	}
	m.tx.EXPECT().Customers().Return(m.customers).AnyTimes()
	m.tx.EXPECT().Purchases().Return(m.purchases).AnyTimes()
	m.tx.EXPECT().Prizes().Return(m.prizes).AnyTimes()
	m.tx.EXPECT().Redemptions().Return(m.redemptions).AnyTimes()
	return m
}

// expectTx runs the callback against the mocked transaction exactly once.
func (m *txMocks) expectTx() {
	m.uow.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}

func (m *txMocks) ledger() commands.LedgerCommands {
	return commands.NewLedgerCommands(m.uow, m.codes, m.notifier, clock.NewMockClock(now))
}

func code(s string) customer.Code { return customer.ReconstructCode(s) }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// =============================================================================
// RegisterPurchase Tests
// =============================================================================

func TestRegisterPurchase_Validation(t *testing.T) {
	testCases := []struct {
		name     string
		input    commands.RegisterPurchaseInput
		sentinel error
	}{
		{
			name:     "customer code with letters",
			input:    commands.RegisterPurchaseInput{CustomerCode: "12a45", Amount: decimal.RequireFromString("10"), Store: "loja01"},
			sentinel: commands.ErrInvalidCustomer,
		},
		{
			name:     "zero amount",
			input:    commands.RegisterPurchaseInput{CustomerCode: "00001", Amount: decimal.Zero, Store: "loja01"},
			sentinel: commands.ErrInvalidAmount,
		},
		{
			name:     "amount with three decimals",
			input:    commands.RegisterPurchaseInput{CustomerCode: "00001", Amount: decimal.RequireFromString("10.005"), Store: "loja01"},
			sentinel: commands.ErrInvalidAmount,
		},
		{
			name:     "negative amount",
			input:    commands.RegisterPurchaseInput{CustomerCode: "00001", Amount: decimal.RequireFromString("-5"), Store: "loja01"},
			sentinel: commands.ErrInvalidAmount,
		},
		{
			name:     "blank store",
			input:    commands.RegisterPurchaseInput{CustomerCode: "00001", Amount: decimal.RequireFromString("10"), Store: "  "},
			sentinel: commands.ErrMissingStore,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTxMocks(ctrl)

			result, err := m.ledger().RegisterPurchase(context.Background(), tc.input)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errs.Is(err, tc.sentinel), "expected [%v] but got [%v]", tc.sentinel, err)
			assert.Equal(t, errs.ErrValidation, errs.Class(err))
		})
	}
}

func TestRegisterPurchase_CustomerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTxMocks(ctrl)
	m.expectTx()

	m.customers.EXPECT().LockByCode(gomock.Any(), code("00042")).Return(nil, notFound("customer not found"))

	_, err := m.ledger().RegisterPurchase(context.Background(), commands.RegisterPurchaseInput{
		CustomerCode: "00042",
		Amount:       decimal.RequireFromString("10.00"),
		Store:        "loja01",
	})

	require.Error(t, err)
	assert.True(t, errs.Is(err, commands.ErrCustomerNotFound))
	assert.Equal(t, errs.ErrNotFound, errs.Class(err))
}

func TestRegisterPurchase_Transitions(t *testing.T) {
	amount := decimal.RequireFromString("49.90")

	testCases := []struct {
		name          string
		cycleBefore   int32
		cycleAfter    int32
		validPoints   int64
		active        *prize.Active
		setupPrize    func(*txMocks)
		wantGenerated bool
		wantPrizeCode string
		wantPrizePts  int64
		wantRemaining int32
		wantVariant   string
	}{
		{
			name:          "below threshold: no prize",
			cycleBefore:   2,
			cycleAfter:    3,
			validPoints:   15000,
			wantRemaining: 2,
			wantVariant:   "progress",
		},
		{
			name:        "fifth purchase seeds a prize with the whole valid balance",
			cycleBefore: 4,
			cycleAfter:  5,
			validPoints: 24950,
			setupPrize: func(m *txMocks) {
				m.codes.EXPECT().Generate().Return(prize.ReconstructCode("48213"), nil)
				m.prizes.EXPECT().ReserveCode(gomock.Any(), prize.ReconstructCode("48213"), code("00001")).Return(true, nil)
				m.prizes.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *prize.Active) error {
						assert.Equal(t, int64(24950), p.Points())
						assert.True(t, today.Equal(p.GeneratedOn()))
						return nil
					})
			},
			wantGenerated: true,
			wantPrizeCode: "48213",
			wantPrizePts:  24950,
			wantVariant:   "generated",
		},
		{
			name:        "existing prize accrues the purchase points",
			cycleBefore: 6,
			cycleAfter:  7,
			validPoints: 40000,
			active:      builder.NewPrizeBuilder().BuildDomain(),
			setupPrize: func(m *txMocks) {
				m.prizes.EXPECT().
					Accrue(gomock.Any(), code("00001"), int64(4990), today).
					Return(builder.NewPrizeBuilder().With(func(b *builder.PrizeBuilder) { b.Points = 1250 + 4990 }).BuildDomain(), nil)
			},
			wantPrizeCode: "48213",
			wantPrizePts:  6240,
			wantVariant:   "active",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTxMocks(ctrl)
			m.expectTx()

			rec := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
				b.TotalPurchases = 9
				b.CyclePurchases = tc.cycleBefore
			}).BuildRecord()

			m.customers.EXPECT().LockByCode(gomock.Any(), code("00001")).Return(rec, nil)
			m.purchases.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p *purchase.Purchase) error {
					assert.Equal(t, int32(10), p.Seq())
					assert.Equal(t, int64(4990), p.Points())
					assert.True(t, today.Equal(p.Date()))
					assert.Equal(t, "loja01", p.Store())
					return nil
				})
			m.customers.EXPECT().ApplyPurchase(gomock.Any(), code("00001"), gomock.Any()).
				Return(&shared.CycleCounters{TotalPurchases: 10, CyclePurchases: tc.cycleAfter}, nil)
			m.purchases.EXPECT().SumPointsSince(gomock.Any(), code("00001"), today.AddDate(0, 0, -180)).Return(tc.validPoints, nil)
			m.customers.EXPECT().SetValidPoints(gomock.Any(), code("00001"), tc.validPoints).Return(nil)
			m.prizes.EXPECT().FindActiveByCustomer(gomock.Any(), code("00001")).Return(tc.active, nil)
			if tc.setupPrize != nil {
				tc.setupPrize(m)
			}

			m.notifier.EXPECT().
				Notify(gomock.Any(), shared.NotifyPurchase, "maria@example.com", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ shared.NotificationKind, _ string, data map[string]any) error {
					assert.Equal(t, tc.wantVariant, data["Variant"])
					assert.Equal(t, "49.90", data["Amount"])
					return nil
				})

			result, err := m.ledger().RegisterPurchase(context.Background(), commands.RegisterPurchaseInput{
				CustomerCode: "00001",
				Amount:       amount,
				Store:        " loja01 ",
			})

			require.NoError(t, err)
			assert.Equal(t, "00001", result.CustomerCode)
			assert.Equal(t, int64(4990), result.PointsEarned)
			assert.Equal(t, int32(10), result.TotalPurchases)
			assert.Equal(t, tc.cycleAfter, result.CyclePurchases)
			assert.Equal(t, tc.validPoints, result.ValidPoints)
			assert.Equal(t, tc.wantGenerated, result.PrizeGenerated)
			assert.Equal(t, tc.wantPrizeCode, result.ActivePrizeCode)
			assert.Equal(t, tc.wantPrizePts, result.ActivePrizePoints)
			assert.Equal(t, tc.wantRemaining, result.PurchasesToThreshold)
			assert.True(t, today.Equal(result.PurchasedOn))
		})
	}
}

// expectPurchaseAtThreshold wires a purchase that crosses the cycle threshold
// with no active prize, leaving the prize-code calls to the caller.
func expectPurchaseAtThreshold(m *txMocks) {
	rec := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
		b.TotalPurchases = 4
		b.CyclePurchases = 4
	}).BuildRecord()

	m.customers.EXPECT().LockByCode(gomock.Any(), code("00001")).Return(rec, nil)
	m.purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.customers.EXPECT().ApplyPurchase(gomock.Any(), code("00001"), gomock.Any()).
		Return(&shared.CycleCounters{TotalPurchases: 5, CyclePurchases: 5}, nil)
	m.purchases.EXPECT().SumPointsSince(gomock.Any(), code("00001"), gomock.Any()).Return(int64(25000), nil)
	m.customers.EXPECT().SetValidPoints(gomock.Any(), code("00001"), int64(25000)).Return(nil)
	m.prizes.EXPECT().FindActiveByCustomer(gomock.Any(), code("00001")).Return(nil, nil)
}

func TestRegisterPurchase_PrizeCodeCollisionRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTxMocks(ctrl)
	m.expectTx()
	expectPurchaseAtThreshold(m)

	gomock.InOrder(
		m.codes.EXPECT().Generate().Return(prize.ReconstructCode("11111"), nil),
		m.prizes.EXPECT().ReserveCode(gomock.Any(), prize.ReconstructCode("11111"), code("00001")).Return(false, nil),
		m.codes.EXPECT().Generate().Return(prize.ReconstructCode("22222"), nil),
		m.prizes.EXPECT().ReserveCode(gomock.Any(), prize.ReconstructCode("22222"), code("00001")).Return(true, nil),
		m.prizes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
	)
	m.notifier.EXPECT().Notify(gomock.Any(), shared.NotifyPurchase, gomock.Any(), gomock.Any()).Return(nil)

	result, err := m.ledger().RegisterPurchase(context.Background(), commands.RegisterPurchaseInput{
		CustomerCode: "00001",
		Amount:       decimal.RequireFromString("50.00"),
		Store:        "loja01",
	})

	require.NoError(t, err)
	assert.True(t, result.PrizeGenerated)
	assert.Equal(t, "22222", result.ActivePrizeCode)
}

func TestRegisterPurchase_PrizeCodeSpaceExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTxMocks(ctrl)
	m.expectTx()
	expectPurchaseAtThreshold(m)

	m.codes.EXPECT().Generate().Return(prize.ReconstructCode("11111"), nil).Times(prize.MaxCodeAttempts)
	m.prizes.EXPECT().ReserveCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(prize.MaxCodeAttempts)

	_, err := m.ledger().RegisterPurchase(context.Background(), commands.RegisterPurchaseInput{
		CustomerCode: "00001",
		Amount:       decimal.RequireFromString("50.00"),
		Store:        "loja01",
	})

	require.Error(t, err)
	assert.True(t, errs.Is(err, commands.ErrPrizeCodeExhausted))
	assert.Equal(t, errs.ErrIntegrity, errs.Class(err))
}

func TestRegisterPurchase_ThresholdWithoutValidPointsCreatesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTxMocks(ctrl)
	m.expectTx()

	rec := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
		b.Email = ""
		b.CyclePurchases = 4
	}).BuildRecord()

	m.customers.EXPECT().LockByCode(gomock.Any(), code("00001")).Return(rec, nil)
	m.purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.customers.EXPECT().ApplyPurchase(gomock.Any(), code("00001"), gomock.Any()).
		Return(&shared.CycleCounters{TotalPurchases: 5, CyclePurchases: 5}, nil)
	m.purchases.EXPECT().SumPointsSince(gomock.Any(), code("00001"), gomock.Any()).Return(int64(0), nil)
	m.customers.EXPECT().SetValidPoints(gomock.Any(), code("00001"), int64(0)).Return(nil)
	m.prizes.EXPECT().FindActiveByCustomer(gomock.Any(), code("00001")).Return(nil, nil)

	result, err := m.ledger().RegisterPurchase(context.Background(), commands.RegisterPurchaseInput{
		CustomerCode: "00001",
		Amount:       decimal.RequireFromString("0.01"),
		Store:        "loja01",
	})

	require.NoError(t, err)
	assert.False(t, result.PrizeGenerated)
	assert.Empty(t, result.ActivePrizeCode)
}

func TestRegisterPurchase_NotifierFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTxMocks(ctrl)
	m.expectTx()

	rec := builder.NewCustomerBuilder().BuildRecord()
	m.customers.EXPECT().LockByCode(gomock.Any(), code("00001")).Return(rec, nil)
	m.purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.customers.EXPECT().ApplyPurchase(gomock.Any(), code("00001"), gomock.Any()).
		Return(&shared.CycleCounters{TotalPurchases: 1, CyclePurchases: 1}, nil)
	m.purchases.EXPECT().SumPointsSince(gomock.Any(), code("00001"), gomock.Any()).Return(int64(1000), nil)
	m.customers.EXPECT().SetValidPoints(gomock.Any(), code("00001"), int64(1000)).Return(nil)
	m.prizes.EXPECT().FindActiveByCustomer(gomock.Any(), code("00001")).Return(nil, nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("queue full"))

	result, err := m.ledger().RegisterPurchase(context.Background(), commands.RegisterPurchaseInput{
		CustomerCode: "00001",
		Amount:       decimal.RequireFromString("10.00"),
		Store:        "loja01",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1000), result.ValidPoints)
}

func TestRegisterPurchase_TransactionFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTxMocks(ctrl)

	transient := errs.Mark(errors.New("lock timeout"), errs.ErrTransient)
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(transient)

	_, err := m.ledger().RegisterPurchase(context.Background(), commands.RegisterPurchaseInput{
		CustomerCode: "00001",
		Amount:       decimal.RequireFromString("10.00"),
		Store:        "loja01",
	})

	require.Error(t, err)
	assert.Equal(t, errs.ErrTransient, errs.Class(err))
}

// =============================================================================
// RedeemPrize Tests
// =============================================================================

func TestRedeemPrize_Validation(t *testing.T) {
	testCases := []struct {
		name     string
		input    commands.RedeemPrizeInput
		sentinel error
	}{
		{name: "four digits", input: commands.RedeemPrizeInput{PrizeCode: "1234", Store: "loja01"}, sentinel: commands.ErrInvalidPrizeCode},
		{name: "letters", input: commands.RedeemPrizeInput{PrizeCode: "12a45", Store: "loja01"}, sentinel: commands.ErrInvalidPrizeCode},
		{name: "blank store", input: commands.RedeemPrizeInput{PrizeCode: "12345", Store: ""}, sentinel: commands.ErrMissingStore},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTxMocks(ctrl)

			_, err := m.ledger().RedeemPrize(context.Background(), tc.input)

			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.sentinel))
			assert.Equal(t, errs.ErrValidation, errs.Class(err))
		})
	}
}

func TestRedeemPrize_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTxMocks(ctrl)
	m.expectTx()

	prizeCode := prize.ReconstructCode("48213")
	rec := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) { b.CyclePurchases = 7 }).BuildRecord()
	active := builder.NewPrizeBuilder().BuildDomain()

	gomock.InOrder(
		m.prizes.EXPECT().OwnerOf(gomock.Any(), prizeCode).Return(code("00001"), nil),
		m.customers.EXPECT().LockByCode(gomock.Any(), code("00001")).Return(rec, nil),
		m.prizes.EXPECT().LockByCode(gomock.Any(), prizeCode).Return(active, nil),
		m.redemptions.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *prize.Redemption) error {
				assert.Equal(t, "48213", r.Code().String())
				assert.Equal(t, int64(1250), r.Points())
				assert.Equal(t, "loja02", r.Store())
				assert.True(t, today.Equal(r.RedeemedOn()))
				return nil
			}),
		m.prizes.EXPECT().Delete(gomock.Any(), prizeCode).Return(nil),
		m.customers.EXPECT().ResetCycle(gomock.Any(), code("00001")).Return(nil),
		m.purchases.EXPECT().SumPointsSince(gomock.Any(), code("00001"), gomock.Any()).Return(int64(8000), nil),
		m.customers.EXPECT().SetValidPoints(gomock.Any(), code("00001"), int64(8000)).Return(nil),
	)
	m.notifier.EXPECT().
		Notify(gomock.Any(), shared.NotifyRedemption, "maria@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ shared.NotificationKind, _ string, data map[string]any) error {
			assert.Equal(t, "12.50", data["Value"])
			return nil
		})

	result, err := m.ledger().RedeemPrize(context.Background(), commands.RedeemPrizeInput{PrizeCode: "48213", Store: "loja02"})

	require.NoError(t, err)
	assert.Equal(t, "00001", result.CustomerCode)
	assert.Equal(t, int64(1250), result.Points)
	assert.True(t, decimal.RequireFromString("12.50").Equal(result.Value))
	assert.Equal(t, int64(8000), result.ValidPoints)
	assert.Equal(t, "Prize worth 12.50 redeemed successfully!", result.Message)
}

func TestRedeemPrize_NotFound(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(*txMocks)
	}{
		{
			name: "unknown code",
			setup: func(m *txMocks) {
				m.prizes.EXPECT().OwnerOf(gomock.Any(), gomock.Any()).Return(customer.Code{}, notFound("active prize not found"))
			},
		},
		{
			name: "redeemed concurrently while waiting for the customer lock",
			setup: func(m *txMocks) {
				m.prizes.EXPECT().OwnerOf(gomock.Any(), gomock.Any()).Return(code("00001"), nil)
				m.customers.EXPECT().LockByCode(gomock.Any(), code("00001")).Return(builder.NewCustomerBuilder().BuildRecord(), nil)
				m.prizes.EXPECT().LockByCode(gomock.Any(), gomock.Any()).Return(nil, notFound("active prize not found"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTxMocks(ctrl)
			m.expectTx()
			tc.setup(m)

			_, err := m.ledger().RedeemPrize(context.Background(), commands.RedeemPrizeInput{PrizeCode: "48213", Store: "loja01"})

			require.Error(t, err)
			assert.True(t, errs.Is(err, commands.ErrPrizeNotFound))
			assert.Equal(t, errs.ErrNotFound, errs.Class(err))
		})
	}
}
