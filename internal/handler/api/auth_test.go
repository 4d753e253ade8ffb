//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"loyalty-ledger/internal/handler/api"
	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/cookie"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/tests/common/builder"
	"loyalty-ledger/tests/common/httptest"
	"loyalty-ledger/tests/common/testutil"
	commandsmock "loyalty-ledger/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if c.GetHeader("Authorization") != "" {
			c.Set("store_identifier", "loja01")
			c.Set("store_name", "Loja Centro")
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func loginResult() *commands.LoginResult {
	return &commands.LoginResult{
		Token:           "test-jwt-token",
		ExpiresAt:       time.Now().Add(12 * time.Hour),
		StoreIdentifier: "loja01",
		StoreName:       "Loja Centro",
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: returns 200 OK and sets the session cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.ToInput()).
			Return(loginResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("loja01", response.StoreIdentifier)
		s.Equal("test-jwt-token", response.AccessToken)

		session := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(session)
		s.Equal("test-jwt-token", session.Value)
		s.True(session.HttpOnly)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseAuth{
			{name: "password boundary OK (8 chars)", mutate: testutil.Field("password", "password"), expectCode: http.StatusOK},
			{name: "password boundary invalid (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "username too long", mutate: testutil.Field("username", strings.Repeat("u", 51)), expectCode: http.StatusBadRequest},
			{name: "missing field: username (required)", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty username", mutate: testutil.Field("username", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
						Return(loginResult(), nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid username or password",
			},
			{
				name:           "store inactive",
				commandsError:  commands.ErrStoreInactive,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Store is inactive",
			},
			{
				name:           "database unavailable",
				commandsError:  errs.Mark(errors.New("acquire timeout"), errs.ErrTransient),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "temporarily unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.ToInput()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content and expires the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		session := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(session)
		s.Empty(session.Value)
		s.Less(session.MaxAge, 0)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the authenticated store", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("loja01", response["store_identifier"])
		s.Equal("Loja Centro", response["store_name"])
	})

	s.Run("error: 401 when no store in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
