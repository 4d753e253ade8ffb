package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"loyalty-ledger/internal/infra/scheduler"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/usecase/commands"

	"github.com/go-co-op/gocron"
	"go.uber.org/fx"
)

const jobLockTTL = 15 * time.Minute

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

// StartScheduler runs the mail campaigns when SCHEDULER_ENABLED is set. With
// SCHEDULER_REDIS_ADDR each job run is guarded by a Redis lock so only one
// instance sends.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, loc *time.Location, campaigns commands.CampaignCommands, logger *slog.Logger) error {
	if !cfg.Scheduler.Enabled {
		logger.Info("scheduler disabled")
		return nil
	}

	var locker gocron.Locker
	var closeRedis func() error
	if addr := cfg.Scheduler.RedisAddr; addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		client, err := scheduler.NewRedisClient(ctx, addr, cfg.Scheduler.RedisPassword, cfg.Scheduler.RedisDB)
		if err != nil {
			return err
		}
		locker = scheduler.NewRedisLocker(client, jobLockTTL)
		closeRedis = client.Close
		logger.Info("scheduler uses redis job lock", "addr", addr)
	}

	s, err := scheduler.New(cfg.Scheduler, loc, campaigns, locker)
	if err != nil {
		if closeRedis != nil {
			_ = closeRedis()
		}
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			if closeRedis != nil {
				return closeRedis()
			}
			return nil
		},
	})
	return nil
}
