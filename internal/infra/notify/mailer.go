package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
	texttemplate "text/template"

	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"
)

var ErrUnknownKind = errs.New("unknown notification kind")

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	cfg       config.MailConfig
	templates map[shared.NotificationKind]*mailTemplate
	send      SendFunc
}

func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	return newSMTPMailer(cfg, smtp.SendMail)
}

func newSMTPMailer(cfg config.MailConfig, send SendFunc) (*SMTPMailer, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &SMTPMailer{cfg: cfg, templates: templates, send: send}, nil
}

func (m *SMTPMailer) Notify(ctx context.Context, kind shared.NotificationKind, to string, data map[string]any) error {
	tpl, ok := m.templates[kind]
	if !ok {
		return errs.Wrapf(ErrUnknownKind, "kind %q", kind)
	}

	vars := make(map[string]any, len(data)+1)
	for k, v := range data {
		vars[k] = v
	}
	vars["Brand"] = m.cfg.BrandName

	subject, body, err := tpl.render(vars)
	if err != nil {
		return errs.Wrapf(err, "render %s mail", kind)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	addr := m.cfg.Host + ":" + m.cfg.Port
	if err := m.send(addr, auth, m.cfg.From, []string{to}, m.compose(to, subject, body)); err != nil {
		return errs.Wrapf(err, "send %s mail", kind)
	}
	return nil
}

func (m *SMTPMailer) compose(to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", m.cfg.BrandName, m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

type mailTemplate struct {
	subject *texttemplate.Template
	body    *template.Template
}

func (t *mailTemplate) render(vars map[string]any) (string, string, error) {
	var subject, body bytes.Buffer
	if err := t.subject.Execute(&subject, vars); err != nil {
		return "", "", err
	}
	if err := t.body.Execute(&body, vars); err != nil {
		return "", "", err
	}
	return subject.String(), body.String(), nil
}

func parseTemplates() (map[shared.NotificationKind]*mailTemplate, error) {
	out := make(map[shared.NotificationKind]*mailTemplate, len(mailSources))
	for kind, src := range mailSources {
		subject, err := texttemplate.New(string(kind) + ".subject").Option("missingkey=zero").Parse(src.subject)
		if err != nil {
			return nil, errs.Wrapf(err, "parse %s subject", kind)
		}
		body, err := template.New(string(kind) + ".body").Option("missingkey=zero").Parse(layout(src.body))
		if err != nil {
			return nil, errs.Wrapf(err, "parse %s body", kind)
		}
		out[kind] = &mailTemplate{subject: subject, body: body}
	}
	return out, nil
}
