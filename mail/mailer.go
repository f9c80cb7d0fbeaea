package mail

import (
	"fmt"
	"net/smtp"

	"kc414/config"
	"kc414/logger"
)

// Mailer sends notification emails. Enabled reports whether sending is
// actually configured; callers decide how a disabled mailer maps onto their
// response (bookings treat it as a notification failure, orders skip it).
type Mailer interface {
	Send(to, subject, body string) error
	Enabled() bool
}

// NewFromConfig returns an SMTP mailer when credentials are configured and a
// logging stand-in otherwise.
func NewFromConfig(cfg *config.Config) Mailer {
	if cfg.EmailUser == "" || cfg.EmailPassword == "" {
		return LogMailer{}
	}
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.EmailUser,
		password: cfg.EmailPassword,
		from:     cfg.EmailUser,
	}
}

// LogMailer logs instead of sending. Used when no credentials are configured.
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	logger.Info("email sending disabled, logging instead",
		logger.String("to", to),
		logger.String("subject", subject))
	return nil
}

func (LogMailer) Enabled() bool { return false }

// SMTPMailer sends plain-text mail over SMTP with PLAIN auth.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func (s *SMTPMailer) Enabled() bool { return true }

func (s *SMTPMailer) Send(to, subject, body string) error {
	addr := s.host + ":" + s.port

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	msg := []byte(
		fmt.Sprintf("From: %s\r\n", s.from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n" +
			"\r\n" +
			body + "\r\n",
	)

	return smtp.SendMail(addr, auth, s.from, []string{to}, msg)
}
