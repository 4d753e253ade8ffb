package bootstrap

import (
	"context"
	"log/slog"

	"loyalty-ledger/internal/infra/notify"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		fx.Annotate(
			NewNotifier,
			fx.As(new(shared.Notifier)),
		),
	),
)

// NewNotifier puts the SMTP mailer, or the log notifier when no SMTP host is
// configured, behind the async dispatcher. Queued mail is drained on stop.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*notify.AsyncDispatcher, error) {
	var delivery shared.Notifier = notify.NewLogNotifier()
	if cfg.Mail.Enabled() {
		mailer, err := notify.NewSMTPMailer(cfg.Mail)
		if err != nil {
			return nil, err
		}
		delivery = mailer
		logger.Info("mail delivery via smtp", "host", cfg.Mail.Host, "port", cfg.Mail.Port)
	} else {
		logger.Info("SMTP_HOST not set, notifications are only logged")
	}

	dispatcher := notify.NewAsyncDispatcher(delivery, cfg.Mail.Workers, cfg.Mail.QueueSize, cfg.Mail.RatePerS)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			dispatcher.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return dispatcher.Stop(ctx)
		},
	})

	return dispatcher, nil
}
