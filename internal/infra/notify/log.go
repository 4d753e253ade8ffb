package notify

import (
	"context"
	"log/slog"

	"loyalty-ledger/internal/usecase/shared"
)

// LogNotifier stands in for the mailer when no SMTP host is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, kind shared.NotificationKind, to string, data map[string]any) error {
	slog.InfoContext(ctx, "notification (log only)",
		"kind", string(kind),
		"recipient", to,
		"fields", len(data))
	return nil
}
