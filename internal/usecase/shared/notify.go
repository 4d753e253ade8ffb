package shared

//go:generate mockgen -source=notify.go -destination=../../../tests/mock/shared/notify_mock.go -package=sharedmock

import "context"

type NotificationKind string

const (
	NotifyWelcome    NotificationKind = "welcome"
	NotifyPurchase   NotificationKind = "purchase"
	NotifyRedemption NotificationKind = "redemption"
	NotifyBirthday   NotificationKind = "birthday"
	NotifyInactivity NotificationKind = "inactivity"
)

// Notifier delivers one templated message. Implementations used by the
// ledger must not block the caller on delivery.
type Notifier interface {
	Notify(ctx context.Context, kind NotificationKind, recipient string, data map[string]any) error
}
