package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/codes"

	"github.com/xEpiqq/hivecrm/internal/dto"
)

// DigestEvent is the scheduled trigger payload. Recipients are the outreach
// team members who get the morning digest; phones get the whatsapp nudge.
type DigestEvent struct {
	Recipients []string `json:"recipients"`
	Phones     []string `json:"phones"`
}

// handler builds the list of contacts due for follow-up and fans the digest
// out to email and whatsapp.
func handler(ctx context.Context, event DigestEvent) error {
	c, span := tracer.Start(ctx, "digest-start")
	defer span.End()

	dueCtx, dueSpan := tracer.Start(c, "due-contacts")
	due, err := followUpSvc.DueContacts(dueCtx)
	dueSpan.End()

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if len(due) == 0 {
		handlerLogger.Info("no contacts due for follow-up, skipping digest")
		return nil
	}

	handlerLogger.Info("contacts due for follow-up.", slog.Int("count", len(due)))

	var wg sync.WaitGroup
	errChan := make(chan error, len(event.Recipients)+len(event.Phones))

	_, deliverySpan := tracer.Start(c, "delivery-loop")

	for _, to := range event.Recipients {
		if to == "" {
			errChan <- nil
			continue
		}
		wg.Add(1)
		go func(to string) {
			defer wg.Done()

			if err := sendDigestEmail(ctx, due, to); err != nil {
				handlerLogger.Error("email digest failed", slog.String("to", to), slog.String("error", err.Error()))
				errChan <- err
			} else {
				errChan <- nil
			}
		}(to)
	}

	for _, phone := range event.Phones {
		if phone == "" {
			errChan <- nil
			continue
		}
		wg.Add(1)
		go func(phone string) {
			defer wg.Done()

			if err := sendWhatsappDigest(len(due), phone); err != nil {
				handlerLogger.Error("whatsapp digest failed", slog.String("to", phone), slog.String("error", err.Error()))
				errChan <- err
			} else {
				errChan <- nil
			}
		}(phone)
	}

	wg.Wait()
	close(errChan)

	var failed int
	for err := range errChan {
		if err != nil {
			failed++
		}
	}

	if failed > 0 {
		deliverySpan.SetStatus(codes.Error, fmt.Sprintf("%d deliveries failed", failed))
		deliverySpan.End()
		return fmt.Errorf("digest partially failed, %d deliveries errored", failed)
	}
	deliverySpan.End()

	return nil
}

// digestBody renders the due list as a simple html table the team reads over
// coffee.
func digestBody(due []dto.FollowUpContact) string {
	var b strings.Builder

	appUrl := os.Getenv("APP_URL")

	b.WriteString(fmt.Sprintf("<p>%d contacts are due for follow-up today.</p>", len(due)))
	b.WriteString("<table><tr><th>Name</th><th>School</th><th>District</th><th>Last contacted</th></tr>")

	for _, contact := range due {
		b.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			contact.Name, contact.School, contact.SchoolDistrict, contact.LastContactedRelative))
	}

	b.WriteString("</table>")

	if appUrl != "" {
		b.WriteString(fmt.Sprintf(`<p><a href="%s/followup">Open the follow-up list</a></p>`, appUrl))
	}

	return b.String()
}
