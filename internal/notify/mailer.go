// Package notify sends account notifications. The directory suppresses
// provider invites, so any welcome message goes out through here.
package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Mailer sends portal notification mail.
type Mailer interface {
	SendWelcome(ctx context.Context, name, email, userID string) error
}

// ResendMailer sends mail through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

var _ Mailer = (*ResendMailer)(nil)

// NewResendMailer creates a mailer with the given API key and sender.
func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey), from: from}
}

// SendWelcome mails new directory users their account id.
func (m *ResendMailer) SendWelcome(ctx context.Context, name, email, userID string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email},
		Subject: "Welcome to the campus portal",
		Html: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your campus portal account <strong>%s</strong> is ready. Sign in with the password you were given.</p>",
			name, userID,
		),
	}
	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("send welcome mail: %w", err)
	}
	return nil
}
