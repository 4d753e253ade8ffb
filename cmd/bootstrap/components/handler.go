package components

import (
	"loyalty-ledger/internal/handler"
	"loyalty-ledger/internal/handler/api"
	"loyalty-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCustomerHandler,
		api.NewLedgerHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, customer *api.CustomerHandler, ledger *api.LedgerHandler) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Customer: customer,
		Ledger:   ledger,
	}
}
