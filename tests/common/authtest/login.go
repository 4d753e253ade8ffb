//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"loyalty-ledger/internal/handler/dto/request"
	"loyalty-ledger/internal/pkg/cookie"
	"loyalty-ledger/tests/common/dbtest"
	"loyalty-ledger/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginStore logs in through the API and returns the session token.
func LoginStore(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	session := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, session, "session cookie not set")
	require.NotEmpty(t, session.Value, "session cookie is empty")

	return session.Value
}

// CreateAndLogin inserts an active store whose username and identifier are
// both identifier, then logs it in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, identifier string) string {
	t.Helper()
	dbtest.CreateTestStore(t, db, identifier, identifier, true)
	return LoginStore(t, router, identifier, dbtest.TestStorePassword)
}
