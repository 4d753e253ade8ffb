//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TestStorePassword is the plain text behind testStoreHash.
const TestStorePassword = "password123"

// bcrypt("password123"), precomputed so fixtures stay fast
const testStoreHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestStore(t *testing.T, db DBLike, username, identifier string, active bool) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO stores (username, identifier, password_hash, name, is_active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO UPDATE SET is_active = EXCLUDED.is_active`,
		username, identifier, testStoreHash, "Store "+identifier, active)
	require.NoError(t, err)
}

// CreateTestCustomer inserts a customer with zeroed counters and returns its code.
func CreateTestCustomer(t *testing.T, db DBLike, name, email string) string {
	t.Helper()

	var code string
	err := db.QueryRow(context.Background(), `
		INSERT INTO customers (code, name, phone, email, origin_store)
		VALUES (lpad(nextval('customer_code_seq')::text, 5, '0'), $1, '11 98765-4321', NULLIF($2, ''), 'fixtures')
		RETURNING code`,
		name, email).Scan(&code)
	require.NoError(t, err)
	return code
}

// InsertPurchase writes a purchase row directly, bypassing the ledger, so
// tests can place purchases on past dates.
func InsertPurchase(t *testing.T, db DBLike, customerCode string, seq int32, amount string, on time.Time) {
	t.Helper()

	d := decimal.RequireFromString(amount)
	_, err := db.Exec(context.Background(), `
		INSERT INTO purchases (id, customer_code, seq, amount, points, purchased_on, store)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, 'fixtures')`,
		customerCode, seq, d.String(), d.Shift(2).IntPart(), on)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), `
		UPDATE customers
		SET total_purchases = GREATEST(total_purchases, $2),
		    total_spent     = total_spent + $3,
		    cycle_purchases = cycle_purchases + 1
		WHERE code = $1`,
		customerCode, seq, d.String())
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table and restarts the customer code sequence.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	_, err := pool.Exec(ctx, "ALTER SEQUENCE customer_code_seq RESTART WITH 1")
	return err
}
