package credentials

import (
	"encoding/json"
	"errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

type CredentialsManager struct {
	manager *secretsmanager.SecretsManager
}

var (
	ErrSecretNotFound = errors.New("Secret not found")
)

func NewCredentialsManager(sess *session.Session) *CredentialsManager {
	sm := secretsmanager.New(sess)
	return &CredentialsManager{
		manager: sm,
	}
}

func (cm *CredentialsManager) GetSecret(secretArn string) (*string, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     &secretArn,
		VersionStage: aws.String("AWSCURRENT"),
	}
	out, err := cm.manager.GetSecretValue(input)
	var t *secretsmanager.ResourceNotFoundException
	if errors.As(err, &t) {
		return nil, ErrSecretNotFound
	}
	if err != nil {
		return nil, err
	}
	return out.SecretString, nil
}

// GetJSONSecret fetches the secret and unmarshals its JSON payload into v.
func (cm *CredentialsManager) GetJSONSecret(secretArn string, v any) error {
	s, err := cm.GetSecret(secretArn)

	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(*s), v)
}
