package gateway

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
)

// SMTPEmailSender delivers plain-text notifications over SMTP.
type SMTPEmailSender struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPEmailSender(cfg config.Config) *SMTPEmailSender {
	return &SMTPEmailSender{
		host: cfg.SMTP.Host,
		port: cfg.SMTP.Port,
		user: cfg.SMTP.User,
		pass: cfg.SMTP.Pass,
		from: cfg.SMTP.From,
	}
}

func (s *SMTPEmailSender) Configured() bool {
	return s.host != ""
}

func (s *SMTPEmailSender) SendText(to, subject, body string) error {
	if !s.Configured() {
		return errs.New("SMTP is not configured")
	}

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.user, s.pass, s.host)

	e := email.NewEmail()
	e.From = s.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if err := e.Send(addr, auth); err != nil {
		return errs.Wrap(err, "failed to send email")
	}
	return nil
}
