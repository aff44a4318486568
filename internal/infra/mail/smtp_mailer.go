// Package mail implements outbound email delivery over SMTP.
package mail

import (
	"context"
	"fmt"

	"rewear/config"
	"rewear/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// smtpMailer sends transactional mail through a configured SMTP relay.
type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp config must be provided")
	}
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	return &smtpMailer{
		dialer: dialer,
		from:   cfg.SMTP.From,
	}, nil
}

// SendOTP delivers a one-time verification code to the recipient.
func (m *smtpMailer) SendOTP(ctx context.Context, to, name, code string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour verification code is %s. It expires in 10 minutes.\n\nIf you did not request this, you can ignore this email.",
		name, code,
	)
	return m.send(ctx, to, "Your verification code", body)
}

// SendWelcome delivers the post-verification welcome email.
func (m *smtpMailer) SendWelcome(ctx context.Context, to, name string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour email has been verified. Welcome aboard - start listing items and earning coins.",
		name,
	)
	return m.send(ctx, to, "Welcome to ReWear", body)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrapf(err, "send mail to %s", to)
	}
	return nil
}
