//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/cookie"
	"loyalty-ledger/internal/pkg/jwt"
	"loyalty-ledger/internal/usecase"
	usecasemock "loyalty-ledger/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(validator usecase.TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", middleware.NewAuthMiddleware(validator).RequireAuth(), func(c *gin.Context) {
		id, _ := middleware.GetStoreIdentifier(c)
		c.JSON(http.StatusOK, gin.H{"store": id, "name": middleware.GetStoreName(c)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	identity := &usecase.StoreIdentity{Identifier: "loja01", Name: "Loja Centro"}

	tests := []struct {
		name       string
		setup      func(req *http.Request)
		mockSetup  func(v *usecasemock.MockTokenValidator)
		wantStatus int
		wantBody   string
	}{
		{
			name: "session cookie",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: "cookie-token"})
			},
			mockSetup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("cookie-token").Return(identity, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"store":"loja01"`,
		},
		{
			name: "bearer token",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer header-token")
			},
			mockSetup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("header-token").Return(identity, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Loja Centro"`,
		},
		{
			name: "cookie wins over header",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: "cookie-token"})
				req.Header.Set("Authorization", "Bearer header-token")
			},
			mockSetup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("cookie-token").Return(identity, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"store":"loja01"`,
		},
		{
			name:       "no credentials",
			setup:      func(req *http.Request) {},
			mockSetup:  func(v *usecasemock.MockTokenValidator) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Access token required",
		},
		{
			name: "not a bearer scheme",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Basic bG9qYTAxOnB3")
			},
			mockSetup:  func(v *usecasemock.MockTokenValidator) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Access token required",
		},
		{
			name: "expired token",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer stale")
			},
			mockSetup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("stale").Return(nil, jwt.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			tt.mockSetup(validator)

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			newAuthRouter(validator).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestNoStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", middleware.NoStore(), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", rec.Header().Get("Pragma"))
}
