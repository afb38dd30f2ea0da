package infra

import (
	"bytes"
	"errors"
	"fmt"
	"net/smtp"
	"time"

	"gestorcash/internal/config"

	"github.com/jordan-wright/email"
)

// ErrMailerDisabled is returned when SMTP_HOST is not configured.
var ErrMailerDisabled = errors.New("mailer: SMTP is not configured")

// Mailer wraps SMTP configuration for sending emails with PDF attachments.
type Mailer struct {
	host     string
	user     string
	password string
	from     string
	addr     string
	breaker  *Breaker
}

func NewMailer(cfg *config.Config) *Mailer {
	from := cfg.MailFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     from,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		breaker:  NewBreaker(3, 30*time.Second),
	}
}

// Enabled reports whether SMTP_HOST is configured.
func (m *Mailer) Enabled() bool { return m != nil && m.host != "" }

// BreakerState exposes the relay breaker for health reporting.
func (m *Mailer) BreakerState() BreakerState { return m.breaker.State() }

// SendPDF mails body with the PDF attached under fileName.
func (m *Mailer) SendPDF(to, subject, body, fileName string, pdf []byte) error {
	if !m.Enabled() {
		return ErrMailerDisabled
	}
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if _, err := e.Attach(bytes.NewReader(pdf), fileName, "application/pdf"); err != nil {
		return fmt.Errorf("mailer: attach PDF: %w", err)
	}

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	return m.breaker.Do(func() error { return e.Send(m.addr, auth) })
}
