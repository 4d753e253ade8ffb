package repository

//go:generate mockgen -source=customer.go -destination=../../../tests/mock/repository/customer_mock.go -package=repositorymock

import (
	"context"
	"strings"
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/domain/purchase"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/repository/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/pgconv"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

const pgSequenceLimitExceeded = "2200H"

type CustomerQueries interface {
	NextCustomerCode(ctx context.Context, db sqlc.DBTX) (int64, error)
	CreateCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomerParams) (sqlc.Customers, error)
	GetCustomer(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Customers, error)
	GetCustomerForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Customers, error)
	ApplyPurchaseToCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.ApplyPurchaseToCustomerParams) (sqlc.ApplyPurchaseToCustomerRow, error)
	SetCustomerValidPoints(ctx context.Context, db sqlc.DBTX, arg sqlc.SetCustomerValidPointsParams) error
	ResetCustomerCycle(ctx context.Context, db sqlc.DBTX, code string) (int64, error)
	UpdateCustomerProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCustomerProfileParams) (int64, error)
	SearchCustomers(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchCustomersParams) ([]sqlc.SearchCustomersRow, error)
	ListBirthdayCustomers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBirthdayCustomersParams) ([]sqlc.Customers, error)
	MarkBirthdayEmailSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBirthdayEmailSentParams) error
	ListInactiveCustomers(ctx context.Context, db sqlc.DBTX, cutoff pgtype.Date) ([]sqlc.ListInactiveCustomersRow, error)
	MarkInactivityEmailSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkInactivityEmailSentParams) error
}

type CustomerRepository struct {
	queries CustomerQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) NextCode(ctx context.Context) (customer.Code, error) {
	n, err := r.queries.NextCustomerCode(ctx, r.db)
	if err != nil {
		if infra.PgCode(err) == pgSequenceLimitExceeded {
			return customer.Code{}, errs.Mark(infra.WrapRepoErr("customer code sequence exhausted", err), customer.ErrCodeSpaceExhausted)
		}
		return customer.Code{}, infra.WrapRepoErr("failed to draw customer code", err)
	}
	code, err := customer.CodeFromSequence(n)
	if err != nil {
		return customer.Code{}, err
	}
	return code, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if _, err := r.queries.CreateCustomer(ctx, r.db, converter.CustomerToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create customer", err)
	}
	return nil
}

func (r *CustomerRepository) FindByCode(ctx context.Context, code customer.Code) (*shared.CustomerRecord, error) {
	row, err := r.queries.GetCustomer(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return r.toRecord(row)
}

func (r *CustomerRepository) LockByCode(ctx context.Context, code customer.Code) (*shared.CustomerRecord, error) {
	row, err := r.queries.GetCustomerForUpdate(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock customer", err)
	}
	return r.toRecord(row)
}

func (r *CustomerRepository) ApplyPurchase(ctx context.Context, code customer.Code, amount purchase.Amount) (*shared.CycleCounters, error) {
	row, err := r.queries.ApplyPurchaseToCustomer(ctx, r.db, sqlc.ApplyPurchaseToCustomerParams{
		Amount: pgconv.DecimalToNumeric(amount.Decimal()),
		Code:   code.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to apply purchase to customer", err)
	}
	return &shared.CycleCounters{
		TotalPurchases: row.TotalPurchases,
		CyclePurchases: row.CyclePurchases,
	}, nil
}

func (r *CustomerRepository) SetValidPoints(ctx context.Context, code customer.Code, points int64) error {
	err := r.queries.SetCustomerValidPoints(ctx, r.db, sqlc.SetCustomerValidPointsParams{
		Code:        code.String(),
		ValidPoints: points,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to store valid points", err)
	}
	return nil
}

func (r *CustomerRepository) ResetCycle(ctx context.Context, code customer.Code) error {
	rows, err := r.queries.ResetCustomerCycle(ctx, r.db, code.String())
	if err != nil {
		return infra.WrapRepoErr("failed to reset purchase cycle", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) UpdateProfile(ctx context.Context, code customer.Code, profile customer.Profile) error {
	rows, err := r.queries.UpdateCustomerProfile(ctx, r.db, converter.ProfileToUpdateParams(code, profile))
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) Search(ctx context.Context, term customer.SearchTerm) ([]*shared.CustomerSummary, error) {
	rows, err := r.queries.SearchCustomers(ctx, r.db, sqlc.SearchCustomersParams{
		Pattern: escapeLike(term.String()),
		Term:    term.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search customers", err)
	}

	result := make([]*shared.CustomerSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, &shared.CustomerSummary{
			Code:  row.Code,
			Name:  row.Name,
			Phone: row.Phone,
			Email: pgconv.StringFromPgtype(row.Email),
		})
	}
	return result, nil
}

// ListBirthdays returns mailable customers born on today's month and day who
// have not been greeted this year. Feb 29 birthdays are included on Feb 28
// of non-leap years.
func (r *CustomerRepository) ListBirthdays(ctx context.Context, today time.Time) ([]*shared.CustomerRecord, error) {
	rows, err := r.queries.ListBirthdayCustomers(ctx, r.db, sqlc.ListBirthdayCustomersParams{
		Month:          int32(today.Month()),
		Day:            int32(today.Day()),
		IncludeLeapDay: today.Month() == time.February && today.Day() == 28 && !isLeapYear(today.Year()),
		Year:           int32(today.Year()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list birthday customers", err)
	}

	result := make([]*shared.CustomerRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := r.toRecord(row)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, nil
}

func (r *CustomerRepository) MarkBirthdayMailed(ctx context.Context, code customer.Code, year int) error {
	err := r.queries.MarkBirthdayEmailSent(ctx, r.db, sqlc.MarkBirthdayEmailSentParams{
		Code:                  code.String(),
		LastBirthdayEmailYear: pgconv.Int32ToPgtype(int32(year)),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark birthday email", err)
	}
	return nil
}

func (r *CustomerRepository) ListInactive(ctx context.Context, lastPurchaseBefore time.Time) ([]*shared.InactiveCustomer, error) {
	rows, err := r.queries.ListInactiveCustomers(ctx, r.db, pgconv.DateToPgtype(lastPurchaseBefore))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inactive customers", err)
	}

	result := make([]*shared.InactiveCustomer, 0, len(rows))
	for _, row := range rows {
		result = append(result, &shared.InactiveCustomer{
			Code:           customer.ReconstructCode(row.Code),
			Name:           row.Name,
			Email:          pgconv.StringFromPgtype(row.Email),
			LastPurchaseOn: pgconv.DateFromPgtype(row.LastPurchaseOn, time.UTC),
		})
	}
	return result, nil
}

func (r *CustomerRepository) MarkInactivityMailed(ctx context.Context, code customer.Code, on time.Time) error {
	err := r.queries.MarkInactivityEmailSent(ctx, r.db, sqlc.MarkInactivityEmailSentParams{
		Code:                  code.String(),
		LastInactivityEmailOn: pgconv.DateToPgtype(on),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark inactivity email", err)
	}
	return nil
}

func (r *CustomerRepository) toRecord(row sqlc.Customers) (*shared.CustomerRecord, error) {
	rec, err := converter.CustomerRecordFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode customer row", err)
	}
	return rec, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
