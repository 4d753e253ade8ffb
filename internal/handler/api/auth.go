package api

import (
	"net/http"
	"time"

	reqdto "loyalty-ledger/internal/handler/dto/request"
	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/cookie"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Store login
// @Description Login with the store's username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
		case errs.Is(err, commands.ErrStoreInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Store is inactive", nil)
		default:
			httperr.AbortWithClass(c, err)
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, result.Token, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Store logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; dropping the cookie is all the server can do.
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current store
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	store, ok := middleware.GetStoreIdentifier(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no store in context"), "Unauthorized", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"store_identifier": store,
		"store_name":       middleware.GetStoreName(c),
	})
}
