package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/xEpiqq/hivecrm/internal/database"
	"github.com/xEpiqq/hivecrm/internal/service"
	"github.com/xEpiqq/hivecrm/pkg/awssess"
	"github.com/xEpiqq/hivecrm/pkg/credentials"
	"github.com/xEpiqq/hivecrm/pkg/email"
	"github.com/xEpiqq/hivecrm/pkg/sms"
)

func init() {
	// if local load from .env file
	switch os.Getenv("STAGE") {
	case "local":
		err := godotenv.Load(".env")
		if err != nil {
			log.Fatalf("Error loading env vars: %s", err)
		}
	}

	sess := awssess.MustGetSession()

	var ops email.EmailSvcOpts
	secretArn := os.Getenv("MAIL_GUN_SECRET_ID")
	cm := credentials.NewCredentialsManager(sess)

	if err := cm.GetJSONSecret(secretArn, &ops); err != nil {
		handlerLogger.Error("error getting secret", slog.String("arn", secretArn), slog.String("error", err.Error()))
		panic("error initializing handler")
	}

	// email
	emailSvc = email.NewEmailService(&ops)

	// message service
	msgSvc = sms.MustInitMsgSvc(os.Getenv("TWILIO_SERVICE_ID"))

	// follow-up
	contactStore := database.NewContactRepo(sess)
	followUpSvc = service.NewFollowUpSvc(contactStore)
}
