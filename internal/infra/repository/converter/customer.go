package converter

import (
	"time"

	"loyalty-ledger/internal/domain/customer"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

func CustomerToCreateParams(c *customer.Customer) sqlc.CreateCustomerParams {
	p := c.Profile()
	return sqlc.CreateCustomerParams{
		Code:        c.Code().String(),
		Name:        p.Name().String(),
		Phone:       p.Phone().String(),
		Email:       pgconv.EmptyStringToPgtype(p.Email().String()),
		BirthDate:   birthDateToPgtype(p.BirthDate()),
		Sex:         pgconv.EmptyStringToPgtype(p.Sex()),
		PostalCode:  pgconv.EmptyStringToPgtype(p.PostalCode().String()),
		OriginStore: c.OriginStore(),
	}
}

func ProfileToUpdateParams(code customer.Code, p customer.Profile) sqlc.UpdateCustomerProfileParams {
	return sqlc.UpdateCustomerProfileParams{
		Code:       code.String(),
		Name:       p.Name().String(),
		Phone:      p.Phone().String(),
		Email:      pgconv.EmptyStringToPgtype(p.Email().String()),
		BirthDate:  birthDateToPgtype(p.BirthDate()),
		Sex:        pgconv.EmptyStringToPgtype(p.Sex()),
		PostalCode: pgconv.EmptyStringToPgtype(p.PostalCode().String()),
	}
}

func CustomerRecordFromRow(row sqlc.Customers) (*shared.CustomerRecord, error) {
	spent, err := pgconv.DecimalFromNumeric(row.TotalSpent)
	if err != nil {
		return nil, err
	}

	profile := customer.ReconstructProfile(
		row.Name,
		row.Phone,
		pgconv.StringFromPgtype(row.Email),
		pgconv.DateFromPgtype(row.BirthDate, time.UTC),
		pgconv.StringFromPgtype(row.Sex),
		pgconv.StringFromPgtype(row.PostalCode),
	)

	return &shared.CustomerRecord{
		Customer:       customer.ReconstructCustomer(customer.ReconstructCode(row.Code), profile, row.OriginStore, pgconv.TimeFromPgtype(row.CreatedAt)),
		TotalPurchases: row.TotalPurchases,
		TotalSpent:     spent,
		CyclePurchases: row.CyclePurchases,
		ValidPoints:    row.ValidPoints,
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func birthDateToPgtype(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{}
	}
	return pgconv.DateToPgtype(t)
}
