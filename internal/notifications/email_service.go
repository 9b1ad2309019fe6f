package notifications

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"

	"eventbuka/internal/shared/config"
	"eventbuka/pkg/logger"
)

// EmailSender delivers a single notification over SMTP.
type EmailSender interface {
	Send(ctx context.Context, notification *EmailNotification) error
}

type smtpSender struct {
	cfg       config.EmailConfig
	templates map[NotificationType]*template.Template
	log       *logger.Logger
}

func NewSMTPSender(cfg config.EmailConfig, log *logger.Logger) (EmailSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}

	sender := &smtpSender{
		cfg:       cfg,
		templates: make(map[NotificationType]*template.Template),
		log:       log,
	}
	if err := sender.loadTemplates(); err != nil {
		return nil, err
	}
	return sender, nil
}

func (s *smtpSender) Send(ctx context.Context, notification *EmailNotification) error {
	tmpl, ok := s.templates[notification.Type]
	if !ok {
		return fmt.Errorf("no email template for notification type %s", notification.Type)
	}

	var body bytes.Buffer
	data := map[string]interface{}{
		"RecipientName": notification.RecipientName,
	}
	for k, v := range notification.TemplateData {
		data[k] = v
	}
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	message := s.buildMessage(notification.RecipientEmail, notification.Subject, body.String())
	if err := s.sendWithSTARTTLS(notification.RecipientEmail, message); err != nil {
		return err
	}

	s.log.Debug("email sent", "to", notification.RecipientEmail, "type", string(notification.Type))
	return nil
}

func (s *smtpSender) buildMessage(to, subject, htmlBody string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: EventBuka <%s>\r\n", s.cfg.FromEmail)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(htmlBody)
	return buf.Bytes()
}

// sendWithSTARTTLS upgrades a plain connection before authenticating,
// which is what most providers (including Gmail) expect on port 587.
func (s *smtpSender) sendWithSTARTTLS(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Quit()

	tlsConfig := &tls.Config{ServerName: s.cfg.SMTPHost}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if s.cfg.SMTPUsername != "" {
		auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err = client.Mail(s.cfg.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}
	if _, err = w.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return w.Close()
}

func (s *smtpSender) loadTemplates() error {
	sources := map[NotificationType]string{
		NotificationTypeBookingConfirmed: bookingConfirmedTemplate,
		NotificationTypeBookingCancelled: bookingCancelledTemplate,
		NotificationTypeVoteReceipt:      voteReceiptTemplate,
	}

	for notType, src := range sources {
		tmpl, err := template.New(string(notType)).Parse(src)
		if err != nil {
			return fmt.Errorf("failed to parse %s template: %w", notType, err)
		}
		s.templates[notType] = tmpl
	}
	return nil
}

const bookingConfirmedTemplate = `<html><body>
<h2>Booking Confirmed</h2>
<p>Hi {{.RecipientName}},</p>
<p>Your booking <strong>{{.reference}}</strong> is confirmed.</p>
<p>Amount paid: &#8358;{{.total_amount}}</p>
<p>Show this reference at the gate. See you there!</p>
<p>EventBuka</p>
</body></html>`

const bookingCancelledTemplate = `<html><body>
<h2>Booking Cancelled</h2>
<p>Hi {{.RecipientName}},</p>
<p>Your booking <strong>{{.reference}}</strong> has been cancelled.</p>
<p>Refund to wallet: &#8358;{{.refund_amount}}</p>
<p>EventBuka</p>
</body></html>`

const voteReceiptTemplate = `<html><body>
<h2>Vote Recorded</h2>
<p>Hi {{.RecipientName}},</p>
<p>Your vote for <strong>{{.nominee_name}}</strong> in <strong>{{.category_name}}</strong> was recorded.</p>
{{if .amount_paid}}<p>Amount charged: &#8358;{{.amount_paid}}</p>{{end}}
<p>Thank you for voting.</p>
<p>EventBuka</p>
</body></html>`
