package bootstrap

import (
	"time"

	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

// LocationModule fixes the business calendar every ledger date is taken in.
var LocationModule = fx.Module("location",
	fx.Provide(
		NewLocation,
		clock.NewRealClockIn,
	),
)

func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Loyalty.Location()
}
