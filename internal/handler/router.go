package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"loyalty-ledger/internal/handler/api"
	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Customer *api.CustomerHandler
	Ledger   *api.LedgerHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	noStore := []gin.HandlerFunc{middleware.NoStore()}

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: noStore},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: noStore},
			})
		}

		public := apiGroup.Group("/public")
		{
			addRoutes(public, []route{
				{Method: http.MethodPost, Path: "/customers", Handler: h.Customer.PublicRegister},
			})
		}

		customers := apiGroup.Group("/customers")
		customers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customers, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Customer.Register},
				{Method: http.MethodGet, Path: "", Handler: h.Customer.Search},
				{Method: http.MethodGet, Path: "/:code", Handler: h.Customer.Get},
				{Method: http.MethodPut, Path: "/:code", Handler: h.Customer.Update},
				{Method: http.MethodGet, Path: "/:code/loyalty", Handler: h.Ledger.LoyaltyStatus},
			})
		}

		purchases := apiGroup.Group("/purchases")
		purchases.Use(authMiddleware.RequireAuth())
		{
			addRoutes(purchases, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Ledger.RegisterPurchase},
			})
		}

		prizes := apiGroup.Group("/prizes")
		prizes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(prizes, []route{
				{Method: http.MethodGet, Path: "/:code", Handler: h.Ledger.LookupPrize},
				{Method: http.MethodPost, Path: "/:code/redeem", Handler: h.Ledger.RedeemPrize},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
