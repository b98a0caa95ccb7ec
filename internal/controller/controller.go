package controller

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"

	"github.com/xEpiqq/hivecrm/internal/database"
	"github.com/xEpiqq/hivecrm/internal/service"
	"github.com/xEpiqq/hivecrm/pkg/awssess"
	"github.com/xEpiqq/hivecrm/pkg/credentials"
	"github.com/xEpiqq/hivecrm/pkg/email"
)

var (
	contactService  *service.ContactService
	followUpService *service.FollowUpService
	districtService *service.DistrictService
	templateService *service.TemplateService
	schoolService   *service.SchoolService
)

func init() {

	if os.Getenv("STAGE") == "local" {

		fmt.Println("init local")
		err := godotenv.Load(".env", "./hivecrm/.env")
		if err != nil {
			log.Fatalf("Error loading env vars: %s", err)
		}
	}

	// aws session
	sess := awssess.MustGetSession()

	// contact + follow-up services share the contact store
	contactStore := database.NewContactRepo(sess)
	contactService = service.NewContactSvc(contactStore)
	followUpService = service.NewFollowUpSvc(contactStore)

	// district service
	districtStore := database.NewDistrictRepo(sess)
	districtService = service.NewDistrictSvc(districtStore)

	// school service
	schoolStore := database.NewSchoolRepo(sess)
	schoolService = service.NewSchoolSvc(schoolStore)

	// template service, needs mailgun credentials to send outreach
	var ops email.EmailSvcOpts
	cm := credentials.NewCredentialsManager(sess)
	secretId := os.Getenv("MAIL_GUN_SECRET_ID")

	if err := cm.GetJSONSecret(secretId, &ops); err != nil {
		templateLogger.Error("error getting mailgun secret", slog.String("secretId", secretId), slog.String("error", err.Error()))
		panic("error initializing controllers")
	}

	emailSvc := email.NewEmailService(&ops)
	templateStore := database.NewTemplateRepo(sess)
	templateService = service.NewTemplateSvc(templateStore, contactStore, emailSvc, os.Getenv("OUTREACH_FROM_EMAIL"))

	contactLogger.Info("Controllers Initialized")

	// initialize tracer
	tracer = otel.Tracer("github.com/xEpiqq/hivecrm/internal/controller")
}
