package notifications

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"

	"helping-hands/volunteerhub/internal/logging"
)

// Mailer sends a single message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer handles sending emails through SMTP
type SMTPMailer struct {
	from     string
	user     string
	password string
	host     string
	port     string
}

// NewSMTPMailer builds a mailer authenticating with PLAIN auth when a user is set.
func NewSMTPMailer(host, port, user, password, from string) *SMTPMailer {
	return &SMTPMailer{from: from, user: user, password: password, host: host, port: port}
}

// Send sends an HTML email with subject and body
func (s *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if s.host == "" || s.port == "" || s.from == "" {
		return errors.New("missing SMTP configuration")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Compose the email message (with Subject + HTML Body)
	body := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"utf-8\"\r\n"+
			"\r\n%s\r\n",
		s.from, msg.To, msg.Subject, msg.Body,
	))

	var auth smtp.Auth
	if s.user != "" {
		auth = smtp.PlainAuth("", s.user, s.password, s.host)
	}
	if err := smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{msg.To}, body); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

// LogMailer only logs messages; used when no SMTP host is configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	logging.Info("Mail not sent (no SMTP configured)", "kind", msg.Kind, "to", msg.To, "subject", msg.Subject)
	return nil
}
