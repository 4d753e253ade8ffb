package api

import (
	"net/http"

	reqdto "loyalty-ledger/internal/handler/dto/request"
	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoStore = errs.New("authenticated store missing from context")

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary Register customer
// @Description Register a customer at the authenticated store
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CustomerRequest true "Customer profile"
// @Success 201 {object} resdto.RegisterCustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /customers [post]
func (h *CustomerHandler) Register(c *gin.Context) {
	store, ok := middleware.GetStoreIdentifier(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoStore, "Unauthorized", nil)
		return
	}
	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.register(c, req.ToInput(store))
}

// @Summary Self-registration
// @Description Public customer sign-up form
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.PublicRegisterRequest true "Customer profile"
// @Success 201 {object} resdto.RegisterCustomerResponse
// @Failure 400 {object} httperr.Response
// @Router /public/customers [post]
func (h *CustomerHandler) PublicRegister(c *gin.Context) {
	var req reqdto.PublicRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.register(c, req.ToInput(commands.PublicOrigin))
}

func (h *CustomerHandler) register(c *gin.Context, in commands.RegisterCustomerInput) {
	result, err := h.cmds.RegisterCustomer(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithClass(c, err)
		return
	}
	c.Header("Location", "/api/customers/"+result.Code)
	c.JSON(http.StatusCreated, resdto.FromRegisterCustomerResult(result))
}

// @Summary Search customers
// @Description Match name or email (partial, case-insensitive), phone (partial) or exact code
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param term query string true "Search term"
// @Success 200 {array} resdto.CustomerListItemResponse
// @Failure 400 {object} httperr.Response
// @Router /customers [get]
func (h *CustomerHandler) Search(c *gin.Context) {
	items, err := h.q.SearchCustomers(c.Request.Context(), c.Query("term"))
	if err != nil {
		httperr.AbortWithClass(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": resdto.FromCustomerList(items)})
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param code path string true "Customer code"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{code} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	view, err := h.q.GetCustomer(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithClass(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Update customer
// @Description Change the given profile fields; omitted fields keep their value
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Customer code"
// @Param request body reqdto.UpdateCustomerRequest true "Profile fields"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{code} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	code := c.Param("code")
	var req reqdto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateCustomer(c.Request.Context(), code, req.ToInput()); err != nil {
		httperr.AbortWithClass(c, err)
		return
	}
	view, err := h.q.GetCustomer(c.Request.Context(), code)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load customer", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}
