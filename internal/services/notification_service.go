package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/divi1127/BackendDeepF/internal/utils"
)

// HTML template for the OTP login email.
const otpEmailHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Your login code</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f8f9fa; margin: 0; padding: 20px; }
  .container { max-width: 500px; margin: auto; background: #ffffff; border: 1px solid #e9ecef; border-radius: 8px; overflow: hidden; }
  .header { background-color: #1d3b8b; color: white; padding: 20px; text-align: center; }
  .header h1 { margin: 0; font-size: 24px; }
  .content { padding: 30px; text-align: center; }
  .code { font-size: 32px; letter-spacing: 8px; font-weight: bold; color: #1d3b8b; }
  .footer { background-color: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #6c757d; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Your one-time login code</h1>
    </div>
    <div class="content">
      <p>Use this code to finish signing in. It expires in 10 minutes.</p>
      <p class="code">%s</p>
    </div>
    <div class="footer">
      © %d DeepForge. All rights reserved.
    </div>
  </div>
</body>
</html>`

// HTML template for the public-facing acknowledgment email.
const ackEmailHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>We received your submission</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f8f9fa; margin: 0; padding: 20px; }
  .container { max-width: 500px; margin: auto; background: #ffffff; border: 1px solid #e9ecef; border-radius: 8px; overflow: hidden; }
  .header { background-color: #1d3b8b; color: white; padding: 20px; text-align: center; }
  .content { padding: 30px; text-align: left; }
  .footer { background-color: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #6c757d; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Thanks, %s!</h1>
    </div>
    <div class="content">
      <p>We've received your %s. A member of our team will be in touch with you shortly.</p>
    </div>
    <div class="footer">
      © %d DeepForge. All rights reserved.
    </div>
  </div>
</body>
</html>`

// HTML template for the internal notification email.
const internalNotificationEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: monospace; line-height: 1.5; }
  .container { border: 1px solid #ccc; padding: 15px; max-width: 600px; }
  h2 { margin-top: 0; }
  ul { list-style: none; padding: 0; }
  li { margin-bottom: 5px; }
</style>
</head>
<body>
  <div class="container">
    <h2>New %s</h2>
    <ul>
%s      <li><strong>Timestamp (UTC):</strong> %s</li>
    </ul>
  </div>
</body>
</html>`

// ------------------------------------------------------------------
// Service
// ------------------------------------------------------------------

/*
NotificationService sends transactional email. Every method is
best-effort: failures are logged and swallowed so request handlers never
block on, or fail because of, the mail transport.
*/
type NotificationService interface {
	SendOTP(toAddr, code string)
	SendAcknowledgment(toName, toAddr, what string)
	SendInternal(kind string, fields map[string]string)
	Enabled() bool
}

type notificationService struct {
	client   *sendgrid.Client
	fromName string
	fromAddr string
	teamAddr string
	disabled bool
}

/*
NewNotificationService builds the process-wide notifier. `service`
selects the provider (only "sendgrid" is implemented), `fromAddr` is the
sender address and `apiKey` the provider credential. Missing credentials
yield a disabled notifier whose sends are logged no-ops.
*/
func NewNotificationService(service, fromAddr, apiKey, teamAddr string) NotificationService {
	if service != "" && !strings.EqualFold(service, "sendgrid") {
		utils.Logger.Warnf("Unsupported EMAIL_SERVICE %q, email notifications disabled", service)
		return &notificationService{disabled: true}
	}
	if fromAddr == "" || apiKey == "" {
		utils.Logger.Warn("Email transport not configured, email notifications disabled")
		return &notificationService{disabled: true}
	}
	return &notificationService{
		client:   sendgrid.NewSendClient(apiKey),
		fromName: "DeepForge",
		fromAddr: fromAddr,
		teamAddr: teamAddr,
	}
}

func (s *notificationService) Enabled() bool { return !s.disabled }

func (s *notificationService) SendOTP(toAddr, code string) {
	subject := "Your DeepForge login code"
	plain := fmt.Sprintf("Your one-time login code is %s. It expires in 10 minutes.", code)
	html := fmt.Sprintf(otpEmailHTML, code, time.Now().Year())
	s.send("", toAddr, subject, plain, html)
}

func (s *notificationService) SendAcknowledgment(toName, toAddr, what string) {
	subject := fmt.Sprintf("We received your %s", what)
	plain := fmt.Sprintf("Hi %s,\n\nWe received your %s and will be in touch soon!\n\n— Team DeepForge", toName, what)
	html := fmt.Sprintf(ackEmailHTML, toName, what, time.Now().Year())
	s.send(toName, toAddr, subject, plain, html)
}

func (s *notificationService) SendInternal(kind string, fields map[string]string) {
	if s.disabled {
		utils.Logger.Warnf("Email disabled, skipping internal %s notification", kind)
		return
	}

	var plain strings.Builder
	var items strings.Builder
	for k, v := range fields {
		fmt.Fprintf(&plain, "%s: %s\n", k, v)
		fmt.Fprintf(&items, "      <li><strong>%s:</strong> %s</li>\n", k, v)
	}
	subject := fmt.Sprintf("[%s] %s", kind, fields["Email"])
	html := fmt.Sprintf(
		internalNotificationEmailHTML,
		kind,
		items.String(),
		time.Now().UTC().Format(time.RFC1123Z),
	)

	from := mail.NewEmail(s.fromName+" Bot", s.fromAddr)
	to := mail.NewEmail("DeepForge Team", s.teamAddr)
	msg := mail.NewSingleEmail(from, subject, to, plain.String(), html)
	if _, err := s.client.Send(msg); err != nil {
		utils.Logger.WithError(err).Errorf("Failed to send internal %s notification", kind)
	}
}

func (s *notificationService) send(toName, toAddr, subject, plain, html string) {
	if s.disabled {
		utils.Logger.Warnf("Email disabled, skipping %q to %s", subject, toAddr)
		return
	}
	if !utils.IsValidEmailSyntax(toAddr) {
		utils.Logger.Warnf("Skipping %q, recipient address %q is not valid", subject, toAddr)
		return
	}
	from := mail.NewEmail(s.fromName, s.fromAddr)
	to := mail.NewEmail(toName, toAddr)
	msg := mail.NewSingleEmail(from, subject, to, plain, html)
	if _, err := s.client.Send(msg); err != nil {
		utils.Logger.WithError(err).Errorf("Failed to send %q to %s", subject, toAddr)
	}
}
