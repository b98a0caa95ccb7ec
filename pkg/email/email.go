package email

import (
	"context"
	"errors"

	"github.com/mailgun/mailgun-go/v4"
)

var (
	ErrEmptyEmail    = errors.New("empty email not allowed")
	ErrNoRecipients  = errors.New("email requires at least one recipient")
	ErrMissingSender = errors.New("email requires a from address")
)

type EmailSvcOpts struct {
	Domain string `json:"domain"`
	ApiKey string `json:"apiKey"`
}

// Email is one outreach message, already rendered. Body is sent as html.
type Email struct {
	Subject string
	Body    string
	From    string
	To      []string
	Cc      []string
}

type EmailService struct {
	client mailgun.MailgunImpl
}

func NewEmailService(ops *EmailSvcOpts) *EmailService {
	return &EmailService{
		client: *mailgun.NewMailgun(ops.Domain, ops.ApiKey),
	}
}

func NewEmail(subject, body, from string, to, cc []string) *Email {
	return &Email{
		Subject: subject,
		Body:    body,
		From:    from,
		To:      to,
		Cc:      cc,
	}
}

func (s *EmailService) Send(ctx context.Context, email *Email) error {
	if email == nil || email.Body == "" {
		return ErrEmptyEmail
	}

	if len(email.To) == 0 {
		return ErrNoRecipients
	}

	if email.From == "" {
		return ErrMissingSender
	}

	m := s.client.NewMessage(email.From, email.Subject, email.Body, email.To...)
	m.SetHtml(email.Body)

	for _, cc := range email.Cc {
		m.AddCC(cc)
	}

	_, _, err := s.client.Send(ctx, m)
	return err
}
