//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/handler/api"
	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"
	"loyalty-ledger/tests/common/builder"
	"loyalty-ledger/tests/common/httptest"
	"loyalty-ledger/tests/common/testutil"
	commandsmock "loyalty-ledger/tests/mock/commands"
	queriesmock "loyalty-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for RequireAuth: any bearer token is store loja01.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Set("store_identifier", "loja01")
	c.Next()
}

type CustomerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCustomerCommands
	mockQueries  *queriesmock.MockCustomerQueries
	handler      *api.CustomerHandler
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCustomerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.handler = api.NewCustomerHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/public/customers", s.handler.PublicRegister)
	s.router.POST("/customers", fakeAuth, s.handler.Register)
	s.router.GET("/customers", fakeAuth, s.handler.Search)
	s.router.GET("/customers/:code", fakeAuth, s.handler.Get)
	s.router.PUT("/customers/:code", fakeAuth, s.handler.Update)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

type testCaseCustomer struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *CustomerHandlerTestSuite) TestRegister() {
	url := "/customers"
	reqBody := builder.NewCustomerBuilder().BuildRequestDTO()
	created := &commands.RegisterCustomerResult{Code: "00042", Name: "Maria Silva"}

	s.Run("success: returns 201 with the store as origin", func() {
		s.mockCommands.EXPECT().
			RegisterCustomer(gomock.Any(), reqBody.ToInput("loja01")).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.RegisterCustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("00042", body.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/customers/00042"})
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseCustomer{
			{name: "name length OK (120 chars)", mutate: testutil.Field("name", strings.Repeat("a", 120)), expectCode: http.StatusCreated},
			{name: "name length invalid (121 chars)", mutate: testutil.Field("name", strings.Repeat("a", 121)), expectCode: http.StatusBadRequest},
			{name: "email omitted is allowed", mutate: testutil.Field("email", nil), expectCode: http.StatusCreated},
			{name: "email malformed", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "birth date in another layout", mutate: testutil.Field("birth_date", "17/05/1990"), expectCode: http.StatusBadRequest},
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: phone (required)", mutate: testutil.Field("phone", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().RegisterCustomer(gomock.Any(), gomock.Any()).
						Return(created, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
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
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain rejects the phone",
				err:            errs.Mark(errs.Mark(customer.ErrInvalidPhone, errs.ErrValidation), commands.ErrInvalidProfile),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "phone must match",
			},
			{
				name:           "code space exhausted",
				err:            errs.Mark(errs.Mark(customer.ErrCodeSpaceExhausted, commands.ErrCustomerCodeFull), errs.ErrIntegrity),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RegisterCustomer(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CustomerHandlerTestSuite) TestPublicRegister() {
	url := "/public/customers"
	form := builder.NewCustomerBuilder().BuildRequestDTO()

	s.Run("success: registers with the public origin", func() {
		s.mockCommands.EXPECT().
			RegisterCustomer(gomock.Any(), gomock.Cond(func(in commands.RegisterCustomerInput) bool {
				return in.OriginStore == commands.PublicOrigin && in.Honeypot == ""
			})).
			Return(&commands.RegisterCustomerResult{Code: "00043", Name: "Maria Silva"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, form, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: a filled honeypot is passed through and rejected", func() {
		body := testutil.DtoMap(s.T(), form, testutil.Field("website", "http://spam.example"))
		s.mockCommands.EXPECT().
			RegisterCustomer(gomock.Any(), gomock.Cond(func(in commands.RegisterCustomerInput) bool {
				return in.Honeypot == "http://spam.example"
			})).
			Return(nil, errs.Mark(customer.ErrSuspiciousSubmitter, errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "suspicious submission")
	})
}

// ================================================================================
// TestGet / TestSearch / TestUpdate
// ================================================================================

func (s *CustomerHandlerTestSuite) TestGet() {
	view := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
		b.TotalSpent = decimal.RequireFromString("149.7")
		b.ValidPoints = 14970
	}).BuildView()

	s.Run("success: money and dates are formatted", func() {
		s.mockQueries.EXPECT().GetCustomer(gomock.Any(), "00001").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/00001", nil, "bearer-token")

		var body resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("149.70", body.TotalSpent)
		s.Equal("1990-05-17", body.BirthDate)
		s.Equal(int64(14970), body.ValidPoints)
	})

	s.Run("error: 404 for unknown customer", func() {
		notFound := errs.Mark(errs.Mark(infra.WrapRepoErr("no row", nil, infra.KindNotFound), queries.ErrCustomerNotFound), errs.ErrNotFound)
		s.mockQueries.EXPECT().GetCustomer(gomock.Any(), "99999").Return(nil, notFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/99999", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "customer not found")
	})
}

func (s *CustomerHandlerTestSuite) TestSearch() {
	s.Run("success: returns matches", func() {
		s.mockQueries.EXPECT().SearchCustomers(gomock.Any(), "silva").Return([]*queries.CustomerListItem{
			{Code: "00001", Name: "Maria Silva", Phone: "11 98765-4321"},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers?term=silva", nil, "bearer-token")

		var body struct {
			Customers []resdto.CustomerListItemResponse `json:"customers"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Customers, 1)
		s.Equal("Maria Silva", body.Customers[0].Name)
	})

	s.Run("error: empty term is a bad request", func() {
		s.mockQueries.EXPECT().SearchCustomers(gomock.Any(), "").
			Return(nil, errs.Mark(errs.Mark(customer.ErrInvalidSearchTerm, queries.ErrInvalidSearch), errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "search term must not be empty")
	})
}

func (s *CustomerHandlerTestSuite) TestUpdate() {
	s.Run("success: only sent fields reach the command", func() {
		s.mockCommands.EXPECT().
			UpdateCustomer(gomock.Any(), "00001", gomock.Cond(func(in commands.UpdateCustomerInput) bool {
				return in.Phone != nil && *in.Phone == "21 91234-5678" && in.Name == nil && in.BirthDate == nil
			})).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetCustomer(gomock.Any(), "00001").
			Return(builder.NewCustomerBuilder().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/customers/00001",
			map[string]any{"phone": "21 91234-5678"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when the customer vanished", func() {
		notFound := errs.Mark(errs.Mark(infra.WrapRepoErr("no row", nil, infra.KindNotFound), commands.ErrCustomerNotFound), errs.ErrNotFound)
		s.mockCommands.EXPECT().UpdateCustomer(gomock.Any(), "00077", gomock.Any()).Return(notFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/customers/00077",
			map[string]any{"name": "Ana"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "customer not found")
	})
}
