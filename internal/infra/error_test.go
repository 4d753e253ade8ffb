//go:build unit

package infra_test

import (
	"context"
	"errors"
	"testing"

	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		kind      []infra.RepositoryErrorKind
		wantKind  infra.RepositoryErrorKind
		wantClass error
	}{
		{
			name:     "plain error becomes db failure",
			err:      errors.New("connection reset"),
			wantKind: infra.KindDBFailure,
		},
		{
			name:      "explicit kind wins",
			err:       errors.New("no rows"),
			kind:      []infra.RepositoryErrorKind{infra.KindNotFound},
			wantKind:  infra.KindNotFound,
			wantClass: errs.ErrNotFound,
		},
		{
			name:      "unique violation is an integrity failure",
			err:       &pgconn.PgError{Code: infra.PgUniqueViolation},
			wantKind:  infra.KindDuplicateKey,
			wantClass: errs.ErrIntegrity,
		},
		{
			name:      "foreign key violation is an integrity failure",
			err:       &pgconn.PgError{Code: infra.PgForeignKeyViolation},
			wantKind:  infra.KindForeignKeyViolated,
			wantClass: errs.ErrIntegrity,
		},
		{
			name:      "lock_timeout is transient",
			err:       &pgconn.PgError{Code: infra.PgLockNotAvailable},
			wantKind:  infra.KindLockTimeout,
			wantClass: errs.ErrTransient,
		},
		{
			name:      "deadline exceeded is transient",
			err:       context.DeadlineExceeded,
			wantKind:  infra.KindLockTimeout,
			wantClass: errs.ErrTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := infra.WrapRepoErr("op failed", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(got, tt.wantKind), "kind mismatch: %v", got)
			assert.Equal(t, tt.wantClass, errs.Class(got))
			assert.Contains(t, got.Error(), "op failed")
		})
	}
}

func TestPgCode(t *testing.T) {
	wrapped := errs.Wrap(&pgconn.PgError{Code: infra.PgDeadlockDetected}, "outer")

	assert.Equal(t, infra.PgDeadlockDetected, infra.PgCode(wrapped))
	assert.Equal(t, "", infra.PgCode(errors.New("plain")))
}
