package service

import "context"

// Mailer abstracts outbound email delivery.
type Mailer interface {
	// SendOTP delivers a one-time code to the recipient.
	SendOTP(ctx context.Context, to, name, code string) error

	// SendWelcome delivers the post-verification welcome email.
	SendWelcome(ctx context.Context, to, name string) error
}
