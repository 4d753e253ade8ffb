//go:build unit

package notify

import (
	"context"
	"net/smtp"
	"testing"

	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestMailer(t *testing.T) (*SMTPMailer, *[]sentMail) {
	t.Helper()
	var sent []sentMail
	cfg := config.MailConfig{
		Host:      "smtp.example.com",
		Port:      "2525",
		From:      "club@example.com",
		BrandName: "Casa Club",
	}
	m, err := newSMTPMailer(cfg, func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		sent = append(sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
		return nil
	})
	require.NoError(t, err)
	return m, &sent
}

func TestSMTPMailer_RendersEveryKind(t *testing.T) {
	testCases := []struct {
		kind     shared.NotificationKind
		data     map[string]any
		subject  string
		contains []string
	}{
		{
			kind:     shared.NotifyWelcome,
			data:     map[string]any{"Name": "Maria", "Code": "00042"},
			subject:  "Subject: Welcome to the Casa Club loyalty club!",
			contains: []string{"00042", "Hello Maria"},
		},
		{
			kind:     shared.NotifyPurchase,
			data:     map[string]any{"Name": "Maria", "Variant": "generated", "Amount": "49.90", "Points": int64(4990), "PrizeCode": "48213", "PrizeValue": "249.50", "ValidPoints": int64(24950)},
			subject:  "Subject: Your Casa Club loyalty update",
			contains: []string{"48213", "249.50", "You reached a prize"},
		},
		{
			kind:     shared.NotifyPurchase,
			data:     map[string]any{"Name": "Maria", "Variant": "progress", "Amount": "10.00", "Points": int64(1000), "Remaining": int32(3)},
			subject:  "Subject: Your Casa Club loyalty update",
			contains: []string{"Only 3 more purchase(s)"},
		},
		{
			kind:     shared.NotifyRedemption,
			data:     map[string]any{"Name": "Maria", "PrizeCode": "48213", "Value": "12.50"},
			subject:  "Subject: Your prize was redeemed",
			contains: []string{"12.50"},
		},
		{
			kind:    shared.NotifyBirthday,
			data:    map[string]any{"Name": "Ana D'Ávila"},
			subject: "Subject: Happy birthday, Ana D'Ávila!",
		},
		{
			kind:    shared.NotifyInactivity,
			data:    map[string]any{"Name": "Bruno"},
			subject: "Subject: We miss you, Bruno!",
		},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			m, sent := newTestMailer(t)

			require.NoError(t, m.Notify(context.Background(), tc.kind, "maria@example.com", tc.data))

			require.Len(t, *sent, 1)
			mail := (*sent)[0]
			assert.Equal(t, "smtp.example.com:2525", mail.addr)
			assert.Equal(t, "club@example.com", mail.from)
			assert.Equal(t, []string{"maria@example.com"}, mail.to)
			assert.Contains(t, mail.msg, tc.subject+"\r\n")
			assert.Contains(t, mail.msg, "Content-Type: text/html")
			for _, s := range tc.contains {
				assert.Contains(t, mail.msg, s)
			}
		})
	}
}

func TestSMTPMailer_EscapesBody(t *testing.T) {
	m, sent := newTestMailer(t)

	require.NoError(t, m.Notify(context.Background(), shared.NotifyBirthday, "x@example.com", map[string]any{"Name": "<script>"}))

	assert.Contains(t, (*sent)[0].msg, "&lt;script&gt;")
}

func TestSMTPMailer_UnknownKind(t *testing.T) {
	m, sent := newTestMailer(t)

	err := m.Notify(context.Background(), shared.NotificationKind("promo"), "x@example.com", nil)

	assert.True(t, errs.Is(err, ErrUnknownKind))
	assert.Empty(t, *sent)
}
