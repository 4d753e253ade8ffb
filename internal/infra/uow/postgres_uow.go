package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/repository"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxRetries  = 3
	backoffBase = 50 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
	errPoolExhausted      = errs.New("no database connection available")
)

type PostgresUoW struct {
	pool           *pgxpool.Pool
	q              *sqlc.Queries
	acquireTimeout time.Duration
	lockTimeout    time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
	return &PostgresUoW{
		pool:           pool,
		q:              q,
		acquireTimeout: cfg.DB.AcquireTimeout,
		lockTimeout:    cfg.DB.LockTimeout,
	}
}

// ReadCommitted plus explicit row locks; FOR UPDATE serializes same-customer work
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadOnly}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := u.attempt(ctx, options, fn)
		if err == nil {
			return nil
		}

		if !shouldRetry(err, attempt) {
			if isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(errs.Mark(err, errMaxRetriesExceeded), errs.ErrTransient)
			}
			return classifyTxError(err)
		}

		waitTime := calculateBackoff(attempt, backoffBase)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return errs.Mark(ctx.Err(), errs.ErrTransient)
		case <-time.After(waitTime):
		}
	}

	return errs.Mark(errMaxRetriesExceeded, errs.ErrTransient)
}

func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	conn, err := u.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	pgxTx, err := conn.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	if u.lockTimeout > 0 {
		if _, err = pgxTx.Exec(ctx, "SELECT set_config('lock_timeout', $1, true)", lockTimeoutSetting(u.lockTimeout)); err != nil {
			u.rollback(ctx, pgxTx)
			return errs.Wrap(err, "failed to set lock timeout")
		}
	}

	err = fn(ctx, newPgTx(u.q, pgxTx))
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	u.rollback(ctx, pgxTx)
	return err
}

func (u *PostgresUoW) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	acquireCtx := ctx
	if u.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, u.acquireTimeout)
		defer cancel()
	}

	conn, err := u.pool.Acquire(acquireCtx)
	if err != nil {
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			slog.Warn("connection pool exhausted", "acquire_timeout_ms", u.acquireTimeout.Milliseconds())
		}
		return nil, errs.Mark(errs.Mark(err, errPoolExhausted), errs.ErrTransient)
	}
	return conn, nil
}

func (u *PostgresUoW) rollback(ctx context.Context, tx pgx.Tx) {
	// Rollback must still run when the caller's context is already done.
	rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := tx.Rollback(rbCtx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", err.Error())
	}
}

func lockTimeoutSetting(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}

func shouldRetry(err error, attempt int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative value above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	switch infra.PgCode(err) {
	case infra.PgSerializationFailure, infra.PgDeadlockDetected:
		return true
	default:
		return false
	}
}

// classifyTxError marks database failures that escaped the repositories with
// the failure class callers act on. Errors already classified pass through.
func classifyTxError(err error) error {
	if errs.Class(err) != nil {
		return err
	}
	code := infra.PgCode(err)
	switch {
	case code == infra.PgLockNotAvailable, code == infra.PgQueryCanceled:
		return errs.Mark(err, errs.ErrTransient)
	case strings.HasPrefix(code, "23"):
		return errs.Mark(err, errs.ErrIntegrity)
	case errors.Is(err, context.DeadlineExceeded):
		return errs.Mark(err, errs.ErrTransient)
	default:
		return err
	}
}

type pgTx struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	// Lazy-initialized repositories
	customerRepo   shared.CustomerRepository
	purchaseRepo   shared.PurchaseRepository
	prizeRepo      shared.PrizeRepository
	redemptionRepo shared.RedemptionRepository
}

func newPgTx(q *sqlc.Queries, dbtx sqlc.DBTX) *pgTx {
	return &pgTx{q: q, dbtx: dbtx}
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository(t.q, t.dbtx)
	}
	return t.customerRepo
}

func (t *pgTx) Purchases() shared.PurchaseRepository {
	if t.purchaseRepo == nil {
		t.purchaseRepo = repository.NewPurchaseRepository(t.q, t.dbtx)
	}
	return t.purchaseRepo
}

func (t *pgTx) Prizes() shared.PrizeRepository {
	if t.prizeRepo == nil {
		t.prizeRepo = repository.NewPrizeRepository(t.q, t.dbtx)
	}
	return t.prizeRepo
}

func (t *pgTx) Redemptions() shared.RedemptionRepository {
	if t.redemptionRepo == nil {
		t.redemptionRepo = repository.NewRedemptionRepository(t.q, t.dbtx)
	}
	return t.redemptionRepo
}
