package email_test

import (
	"context"
	"testing"

	"github.com/xEpiqq/hivecrm/pkg/email"
)

func TestSendRejectsEmptyBody(t *testing.T) {
	svc := email.NewEmailService(&email.EmailSvcOpts{Domain: "example.com", ApiKey: "key"})

	e := email.NewEmail("subject", "", "outreach@example.com", []string{"teacher@example.com"}, nil)

	if err := svc.Send(context.Background(), e); err != email.ErrEmptyEmail {
		t.Errorf("expected ErrEmptyEmail, got %v", err)
	}
}

func TestSendRejectsMissingRecipients(t *testing.T) {
	svc := email.NewEmailService(&email.EmailSvcOpts{Domain: "example.com", ApiKey: "key"})

	e := email.NewEmail("subject", "<p>hi</p>", "outreach@example.com", nil, nil)

	if err := svc.Send(context.Background(), e); err != email.ErrNoRecipients {
		t.Errorf("expected ErrNoRecipients, got %v", err)
	}
}

func TestSendRejectsMissingSender(t *testing.T) {
	svc := email.NewEmailService(&email.EmailSvcOpts{Domain: "example.com", ApiKey: "key"})

	e := email.NewEmail("subject", "<p>hi</p>", "", []string{"teacher@example.com"}, nil)

	if err := svc.Send(context.Background(), e); err != email.ErrMissingSender {
		t.Errorf("expected ErrMissingSender, got %v", err)
	}
}
