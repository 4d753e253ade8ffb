package bootstrap

import (
	"loyalty-ledger/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	LocationModule,
	DBModule,
	JWTModule,
	NotifyModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
