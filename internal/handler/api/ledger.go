package api

import (
	"net/http"

	reqdto "loyalty-ledger/internal/handler/dto/request"
	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	cmds commands.LedgerCommands
	q    queries.LoyaltyQueries
}

func NewLedgerHandler(cmds commands.LedgerCommands, q queries.LoyaltyQueries) *LedgerHandler {
	return &LedgerHandler{cmds: cmds, q: q}
}

// @Summary Register purchase
// @Description Record a purchase at the authenticated store and update the customer's points and prize
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterPurchaseRequest true "Purchase"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /purchases [post]
func (h *LedgerHandler) RegisterPurchase(c *gin.Context) {
	store, ok := middleware.GetStoreIdentifier(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoStore, "Unauthorized", nil)
		return
	}
	var req reqdto.RegisterPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.RegisterPurchase(c.Request.Context(), req.ToInput(store))
	if err != nil {
		httperr.AbortWithClass(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPurchaseResult(result))
}

// @Summary Redeem prize
// @Description Redeem an active prize at the authenticated store
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param code path string true "Prize code"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /prizes/{code}/redeem [post]
func (h *LedgerHandler) RedeemPrize(c *gin.Context) {
	store, ok := middleware.GetStoreIdentifier(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoStore, "Unauthorized", nil)
		return
	}
	result, err := h.cmds.RedeemPrize(c.Request.Context(), commands.RedeemPrizeInput{
		PrizeCode: c.Param("code"),
		Store:     store,
	})
	if err != nil {
		httperr.AbortWithClass(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedemptionResult(result))
}

// @Summary Look up prize
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param code path string true "Prize code"
// @Success 200 {object} resdto.PrizeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /prizes/{code} [get]
func (h *LedgerHandler) LookupPrize(c *gin.Context) {
	view, err := h.q.LookupPrize(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithClass(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPrizeView(view))
}

// @Summary Loyalty status
// @Description Valid points, cycle progress, active prize and history as of today
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param code path string true "Customer code"
// @Success 200 {object} resdto.LoyaltyStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{code}/loyalty [get]
func (h *LedgerHandler) LoyaltyStatus(c *gin.Context) {
	view, err := h.q.GetLoyaltyStatus(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithClass(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoyaltyStatusView(view))
}
