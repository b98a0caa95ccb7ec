package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("Invalid token")
	projectId       = os.Getenv("FIREBASE_PROJECT_ID")
)

// isValid verifies the Google sign-in id token against the firebase JWKS.
//
// See:
// https://firebase.google.com/docs/auth/admin/verify-id-tokens#verify_id_tokens_using_a_third-party_jwt_library
func isValid(t string) (jwt.MapClaims, error) {
	jwksURL := "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

	// Create the keyfunc.Keyfunc.
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{})
	if err != nil {
		log.Fatalf("Failed to create JWK Set from resource at the given URL.\nError: %s", err)
	}

	// payload contained within the token
	claims := jwt.MapClaims{}

	// Parse the JWT.
	token, err := jwt.ParseWithClaims(t, claims, jwks.Keyfunc,
		jwt.WithAudience(projectId),
		jwt.WithIssuer(fmt.Sprintf("https://securetoken.google.com/%s", projectId)),
	)
	if err != nil {
		return nil, fmt.Errorf("could not parse token error='%w'", err)
	}

	// Check if the token is valid.
	if !token.Valid {
		log.Println("token not valid")
		return nil, ErrInvalidToken
	}

	log.Println("The token is valid.")
	return claims, nil
}

func handler(ctx context.Context, event events.APIGatewayCustomAuthorizerRequestTypeRequest) (events.APIGatewayCustomAuthorizerResponse, error) {
	header, ok := event.Headers["Authorization"]

	if !ok || header == "" {
		return events.APIGatewayCustomAuthorizerResponse{}, errors.New("Unauthorized")
	}

	token := strings.TrimPrefix(header, "Bearer ")

	if claims, err := isValid(token); err != nil {
		return events.APIGatewayCustomAuthorizerResponse{}, err
	} else {
		return generatePolicy("user", "Allow", "*", claims), nil
	}
}

func generatePolicy(principalId, effect, resource string, claims jwt.MapClaims) events.APIGatewayCustomAuthorizerResponse {
	authResponse := events.APIGatewayCustomAuthorizerResponse{PrincipalID: principalId}
	if effect != "" && resource != "" {
		authResponse.PolicyDocument = events.APIGatewayCustomAuthorizerPolicy{
			Version: "2012-10-17",
			Statement: []events.IAMPolicyStatement{
				{
					Action:   []string{"execute-api:Invoke"},
					Effect:   effect,
					Resource: []string{resource},
				},
			},
		}
	}

	authResponse.Context = map[string]interface{}{
		"sub":   claims["sub"],
		"email": claims["email"],
	}

	return authResponse
}

func main() {
	lambda.Start(handler)
}
