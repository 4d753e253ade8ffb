//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, storeIdentifier, storeName string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(storeIdentifier, storeName)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, storeIdentifier, storeName string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(storeIdentifier, storeName)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
