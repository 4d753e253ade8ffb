package bootstrap

import (
	"log/slog"

	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as slog's default, which the
// use cases and background workers log through.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
