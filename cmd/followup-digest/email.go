package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/pkg/email"
)

func sendDigestEmail(ctx context.Context, due []dto.FollowUpContact, to string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*30)
	defer cancel()

	subject := fmt.Sprintf("Follow-up digest - %d contacts due", len(due))
	message := email.NewEmail(subject, digestBody(due), os.Getenv("OUTREACH_FROM_EMAIL"), []string{to}, nil)

	if err := emailSvc.Send(ctx, message); err != nil {
		fmt.Printf("email failed to send error= %s\n", err)
		return err

	} else {
		handlerLogger.Info("Digest email sent", slog.String("to", to))
		return nil
	}
}
