package credentials_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/joho/godotenv"

	"github.com/xEpiqq/hivecrm/pkg/awssess"
	"github.com/xEpiqq/hivecrm/pkg/credentials"
)

func TestRetrieval(t *testing.T) {
	if os.Getenv("STAGE") == "local" {
		if err := godotenv.Load("../../test.env"); err != nil {
			t.Fatalf("Error loading env vars: %s", err)
		}
	}

	arn := os.Getenv("MAIL_GUN_SECRET_ID")
	if arn == "" {
		t.Skip("MAIL_GUN_SECRET_ID not set, skipping live secretsmanager test")
	}

	cm := credentials.NewCredentialsManager(awssess.MustGetSession())

	var secret map[string]any

	if err := cm.GetJSONSecret(arn, &secret); err != nil {
		t.Fatalf("failed to get secret error='%s'", err)
	}

	fmt.Println(secret)
}
