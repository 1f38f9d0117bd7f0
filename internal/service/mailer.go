package service

import (
	"fmt"

	"dental-clinic-api/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional email. Send failures must propagate to the
// caller; nothing in this package swallows them.
type Mailer interface {
	SendPasswordResetCode(toAddress, name, code string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *smtpMailer) SendPasswordResetCode(toAddress, name, code string) error {
	greeting := "Hello"
	if name != "" {
		greeting = "Hello " + name
	}
	body := fmt.Sprintf(
		"%s,\n\nYour password reset code is: %s\nThe code expires in 5 minutes.\n\nIf you did not request a reset, please ignore this email.",
		greeting, code,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toAddress)
	msg.SetHeader("Subject", "Password reset code (expires in 5 minutes)")
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
