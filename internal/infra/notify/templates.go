package notify

import "loyalty-ledger/internal/usecase/shared"

type mailSource struct {
	subject string
	body    string
}

var mailSources = map[shared.NotificationKind]mailSource{
	shared.NotifyWelcome: {
		subject: "Welcome to the {{.Brand}} loyalty club!",
		body: `<h2>Hello {{.Name}},</h2>
<p>You are now part of the {{.Brand}} loyalty club.</p>
<p>Your customer code is <strong>{{.Code}}</strong>. Tell it at the counter on every purchase.</p>
<p>Every fifth purchase earns you a prize worth the points you collected in the last 180 days.</p>`,
	},
	shared.NotifyPurchase: {
		subject: "Your {{.Brand}} loyalty update",
		body: `<h2>Hello {{.Name}},</h2>
<p>We registered your purchase of <strong>{{.Amount}}</strong>, worth {{.Points}} points.</p>
{{if eq .Variant "generated"}}<p>You reached a prize! Your code is <strong>{{.PrizeCode}}</strong>, currently worth <strong>{{.PrizeValue}}</strong>.</p>
{{else if eq .Variant "active"}}<p>Your prize <strong>{{.PrizeCode}}</strong> grew and is now worth <strong>{{.PrizeValue}}</strong>.</p>
{{else}}<p>Only {{.Remaining}} more purchase(s) until your next prize.</p>
{{end}}<p>Valid points balance: {{.ValidPoints}}.</p>`,
	},
	shared.NotifyRedemption: {
		subject: "Your prize was redeemed",
		body: `<h2>Hello {{.Name}},</h2>
<p>Prize <strong>{{.PrizeCode}}</strong> worth <strong>{{.Value}}</strong> was redeemed.</p>
<p>A new cycle starts now. Valid points balance: {{.ValidPoints}}.</p>`,
	},
	shared.NotifyBirthday: {
		subject: "Happy birthday, {{.Name}}!",
		body: `<h2>Happy birthday, {{.Name}}!</h2>
<p>Everyone at {{.Brand}} wishes you a wonderful day. Come celebrate with us!</p>`,
	},
	shared.NotifyInactivity: {
		subject: "We miss you, {{.Name}}!",
		body: `<h2>Hello {{.Name}},</h2>
<p>It has been a while since your last visit to {{.Brand}}. Your points are waiting for you.</p>`,
	},
}

func layout(content string) string {
	return `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
` + content + `
<p>See you soon,<br>{{.Brand}}</p>
</div>
</body>
</html>`
}
