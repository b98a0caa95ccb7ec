package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/joho/godotenv"
)

func TestAuthorizer(t *testing.T) {
	setupEnv(t)
	token := os.Getenv("TOKEN")
	if token == "" {
		t.Skip("TOKEN not set, skipping live token verification")
	}

	res, err := handler(context.Background(), events.APIGatewayCustomAuthorizerRequestTypeRequest{
		Headers: map[string]string{
			"Authorization": fmt.Sprintf("Bearer %s", token),
		},
	})

	if err != nil {
		t.Fatal(err)
	}

	d, _ := json.MarshalIndent(res, "", " ")
	fmt.Println(string(d))
}

func TestHandlerRejectsMissingHeader(t *testing.T) {
	_, err := handler(context.Background(), events.APIGatewayCustomAuthorizerRequestTypeRequest{})

	if err == nil {
		t.Fatal("expected error for missing Authorization header")
	}
}

func setupEnv(t *testing.T) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	path := path.Join(cwd, "../../test.env")
	if err := godotenv.Load(path); err != nil {
		t.Logf("no test.env: %s", err)
	}
	// globals are set at import time, refresh them after loading the env file
	projectId = os.Getenv("FIREBASE_PROJECT_ID")
}
