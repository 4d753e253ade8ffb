//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/domain/store"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/repository"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/tests/common/builder"
	repositorymock "loyalty-ledger/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Purchase Tests
// =============================================================================

func TestPurchaseRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: purchase recorded"},
		{name: "error: unknown customer", queryErr: &pgconn.PgError{Code: infra.PgForeignKeyViolation}, expectKind: infra.KindForeignKeyViolated},
		{name: "error: duplicate sequence number", queryErr: &pgconn.PgError{Code: infra.PgUniqueViolation}, expectKind: infra.KindDuplicateKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPurchaseQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPurchaseRepository(mockQueries, mockDB)

			p := builder.NewPurchaseBuilder().With(func(b *builder.PurchaseBuilder) {
				b.Amount = decimal.RequireFromString("49.90")
			}).BuildDomain()

			mockQueries.EXPECT().
				CreatePurchase(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreatePurchaseParams) (sqlc.Purchases, error) {
					assert.Equal(t, p.ID(), arg.ID)
					assert.Equal(t, "00001", arg.CustomerCode)
					assert.Equal(t, int64(4990), arg.Points)
					return sqlc.Purchases{}, tc.queryErr
				})

			err := repo.Create(ctx, p)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%v]", tc.expectKind, err)
		})
	}
}

func TestPurchaseRepository_SumPointsSince(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockPurchaseQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewPurchaseRepository(mockQueries, mockDB)

	cutoff := time.Date(2023, time.September, 5, 0, 0, 0, 0, time.UTC)
	mockQueries.EXPECT().
		SumValidPoints(ctx, mockDB, sqlc.SumValidPointsParams{
			CustomerCode: "00001",
			Cutoff:       pgtype.Date{Time: cutoff, Valid: true},
		}).
		Return(int64(12345), nil)

	total, err := repo.SumPointsSince(ctx, customer.ReconstructCode("00001"), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(12345), total)
}

func TestPurchaseRepository_ListSince(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockPurchaseQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewPurchaseRepository(mockQueries, mockDB)

	newer := builder.NewPurchaseBuilder().With(func(b *builder.PurchaseBuilder) { b.Seq = 2 }).BuildRow()
	broken := builder.NewPurchaseBuilder().BuildRow()
	broken.Amount = pgtype.Numeric{}

	t.Run("success: rows mapped in order", func(t *testing.T) {
		mockQueries.EXPECT().ListPurchasesSince(ctx, mockDB, gomock.Any()).Return([]sqlc.Purchases{newer}, nil)

		got, err := repo.ListSince(ctx, customer.ReconstructCode("00001"), time.Now())

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int32(2), got[0].Seq())
		assert.Equal(t, "50.00", got[0].Amount().String())
	})

	t.Run("error: undecodable amount", func(t *testing.T) {
		mockQueries.EXPECT().ListPurchasesSince(ctx, mockDB, gomock.Any()).Return([]sqlc.Purchases{broken}, nil)

		_, err := repo.ListSince(ctx, customer.ReconstructCode("00001"), time.Now())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		mockQueries.EXPECT().ListPurchasesSince(ctx, mockDB, gomock.Any()).Return(nil, errors.New("boom"))

		_, err := repo.ListSince(ctx, customer.ReconstructCode("00001"), time.Now())

		require.Error(t, err)
	})
}

// =============================================================================
// Redemption Tests
// =============================================================================

func TestRedemptionRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockRedemptionQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewRedemptionRepository(mockQueries, mockDB)

	redeemedOn := time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)
	active := builder.NewPrizeBuilder().BuildDomain()
	redemption := active.Redeem("loja02", redeemedOn)

	mockQueries.EXPECT().
		CreateRedeemedPrize(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateRedeemedPrizeParams) (sqlc.RedeemedPrizes, error) {
			assert.Equal(t, "48213", arg.Code)
			assert.Equal(t, int64(1250), arg.Points)
			assert.Equal(t, "loja02", arg.Store)
			return sqlc.RedeemedPrizes{}, nil
		})
	require.NoError(t, repo.Create(ctx, redemption))

	mockQueries.EXPECT().
		ListRedeemedPrizesByCustomer(ctx, mockDB, "00001").
		Return([]sqlc.RedeemedPrizes{builder.NewPrizeBuilder().BuildRedeemedRow("loja02", redeemedOn)}, nil)

	got, err := repo.ListByCustomer(ctx, customer.ReconstructCode("00001"))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, decimal.RequireFromString("12.50").Equal(got[0].Value()))
	assert.True(t, redeemedOn.Equal(got[0].RedeemedOn()))
}

// =============================================================================
// Store Tests
// =============================================================================

func TestStoreRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: store created"},
		{name: "error: username taken", queryErr: &pgconn.PgError{Code: infra.PgUniqueViolation}, expectKind: infra.KindDuplicateKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockStoreWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewStoreRepository(mockQueries, mockDB)

			s := store.ReconstructStore("loja01", "loja01", "Loja Centro", "hash", true)
			mockQueries.EXPECT().CreateStore(ctx, mockDB, sqlc.CreateStoreParams{
				Username:     "loja01",
				Identifier:   "loja01",
				PasswordHash: "hash",
				Name:         "Loja Centro",
			}).Return(sqlc.Stores{}, tc.queryErr)

			err := repo.Create(ctx, s)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}
