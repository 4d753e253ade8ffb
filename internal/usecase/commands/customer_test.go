//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/shared"
	"loyalty-ledger/tests/common/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func (m *txMocks) customerCommands() commands.CustomerCommands {
	return commands.NewCustomerCommands(m.uow, m.notifier, clock.NewMockClock(now))
}

func ptr[T any](v T) *T { return &v }

// =============================================================================
// RegisterCustomer Tests
// =============================================================================

func TestRegisterCustomer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTxMocks(ctrl)
	m.expectTx()

	m.customers.EXPECT().NextCode(gomock.Any()).Return(code("00042"), nil)
	m.customers.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *customer.Customer) error {
			assert.Equal(t, "00042", c.Code().String())
			assert.Equal(t, "loja01", c.OriginStore())
			assert.Equal(t, "Maria Silva", c.Profile().Name().String())
			return nil
		})
	m.notifier.EXPECT().
		Notify(gomock.Any(), shared.NotifyWelcome, "maria@example.com", map[string]any{"Name": "Maria Silva", "Code": "00042"}).
		Return(nil)

	result, err := m.customerCommands().RegisterCustomer(context.Background(), commands.RegisterCustomerInput{
		Profile:     builder.NewCustomerBuilder().ProfileInput(),
		OriginStore: "loja01",
	})

	require.NoError(t, err)
	assert.Equal(t, "00042", result.Code)
	assert.Equal(t, "Maria Silva", result.Name)
}

func TestRegisterCustomer_Rejections(t *testing.T) {
	testCases := []struct {
		name     string
		input    func() commands.RegisterCustomerInput
		sentinel error
	}{
		{
			name: "honeypot filled",
			input: func() commands.RegisterCustomerInput {
				return commands.RegisterCustomerInput{
					Profile:     builder.NewCustomerBuilder().ProfileInput(),
					OriginStore: commands.PublicOrigin,
					Honeypot:    "http://spam.example",
				}
			},
			sentinel: customer.ErrSuspiciousSubmitter,
		},
		{
			name: "no origin store",
			input: func() commands.RegisterCustomerInput {
				return commands.RegisterCustomerInput{Profile: builder.NewCustomerBuilder().ProfileInput()}
			},
			sentinel: commands.ErrMissingStore,
		},
		{
			name: "malformed phone",
			input: func() commands.RegisterCustomerInput {
				in := builder.NewCustomerBuilder().ProfileInput()
				in.Phone = "11987654321"
				return commands.RegisterCustomerInput{Profile: in, OriginStore: "loja01"}
			},
			sentinel: customer.ErrInvalidPhone,
		},
		{
			name: "birth date in the future",
			input: func() commands.RegisterCustomerInput {
				in := builder.NewCustomerBuilder().ProfileInput()
				in.BirthDate = now.AddDate(0, 0, 2)
				return commands.RegisterCustomerInput{Profile: in, OriginStore: "loja01"}
			},
			sentinel: customer.ErrInvalidBirthDate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTxMocks(ctrl)

			_, err := m.customerCommands().RegisterCustomer(context.Background(), tc.input())

			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.sentinel), "expected [%v] but got [%v]", tc.sentinel, err)
			assert.Equal(t, errs.ErrValidation, errs.Class(err))
		})
	}
}

func TestRegisterCustomer_CodeSpaceExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTxMocks(ctrl)
	m.expectTx()

	exhausted := errs.Mark(infra.WrapRepoErr("customer code sequence exhausted", &pgconn.PgError{Code: "2200H"}), customer.ErrCodeSpaceExhausted)
	m.customers.EXPECT().NextCode(gomock.Any()).Return(customer.Code{}, exhausted)

	_, err := m.customerCommands().RegisterCustomer(context.Background(), commands.RegisterCustomerInput{
		Profile:     builder.NewCustomerBuilder().ProfileInput(),
		OriginStore: "loja01",
	})

	require.Error(t, err)
	assert.True(t, errs.Is(err, commands.ErrCustomerCodeFull))
	assert.Equal(t, errs.ErrIntegrity, errs.Class(err))
}

func TestRegisterCustomer_NoEmailSkipsWelcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTxMocks(ctrl)
	m.expectTx()

	in := builder.NewCustomerBuilder().ProfileInput()
	in.Email = ""

	m.customers.EXPECT().NextCode(gomock.Any()).Return(code("00002"), nil)
	m.customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	result, err := m.customerCommands().RegisterCustomer(context.Background(), commands.RegisterCustomerInput{
		Profile:     in,
		OriginStore: commands.PublicOrigin,
	})

	require.NoError(t, err)
	assert.Equal(t, "00002", result.Code)
}

// =============================================================================
// UpdateCustomer Tests
// =============================================================================

func TestUpdateCustomer_PatchesOnlyGivenFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTxMocks(ctrl)
	m.expectTx()

	rec := builder.NewCustomerBuilder().BuildRecord()
	m.customers.EXPECT().LockByCode(gomock.Any(), code("00001")).Return(rec, nil)
	m.customers.EXPECT().
		UpdateProfile(gomock.Any(), code("00001"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ customer.Code, p customer.Profile) error {
			assert.Equal(t, "11 91111-2222", p.Phone().String())
			assert.Equal(t, "Maria Silva", p.Name().String())
			assert.Equal(t, "maria@example.com", p.Email().String())
			assert.Equal(t, time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC), p.BirthDate())
			return nil
		})

	err := m.customerCommands().UpdateCustomer(context.Background(), "00001", commands.UpdateCustomerInput{
		Phone: ptr("11 91111-2222"),
	})

	require.NoError(t, err)
}

func TestUpdateCustomer_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		code      string
		input     commands.UpdateCustomerInput
		setup     func(*txMocks)
		sentinel  error
		wantClass error
	}{
		{
			name:      "malformed code",
			code:      "1",
			sentinel:  commands.ErrInvalidCustomer,
			wantClass: errs.ErrValidation,
		},
		{
			name: "unknown customer",
			code: "00099",
			setup: func(m *txMocks) {
				m.expectTx()
				m.customers.EXPECT().LockByCode(gomock.Any(), code("00099")).Return(nil, notFound("customer not found"))
			},
			sentinel:  commands.ErrCustomerNotFound,
			wantClass: errs.ErrNotFound,
		},
		{
			name:  "invalid new email",
			code:  "00001",
			input: commands.UpdateCustomerInput{Email: ptr("not-an-email")},
			setup: func(m *txMocks) {
				m.expectTx()
				m.customers.EXPECT().LockByCode(gomock.Any(), code("00001")).Return(builder.NewCustomerBuilder().BuildRecord(), nil)
			},
			sentinel:  commands.ErrInvalidProfile,
			wantClass: errs.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTxMocks(ctrl)
			if tc.setup != nil {
				tc.setup(m)
			}

			err := m.customerCommands().UpdateCustomer(context.Background(), tc.code, tc.input)

			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.sentinel), "expected [%v] but got [%v]", tc.sentinel, err)
			assert.Equal(t, tc.wantClass, errs.Class(err))
		})
	}
}
