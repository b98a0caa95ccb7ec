package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"github.com/xEpiqq/hivecrm/internal/dto"
)

// getIdentityFromToken pulls the signed-in user out of the bearer token.
// Signature verification happens at the gateway authorizer; here we only read
// the claims.
func getIdentityFromToken(tokenString string) (dto.Identity, error) {
	claims := jwt.MapClaims{}
	tokenSlice := strings.Split(tokenString, " ")
	if len(tokenSlice) < 2 {
		return dto.Identity{}, fmt.Errorf("Bearer token has incorrect format")
	}
	jwt.ParseWithClaims(tokenSlice[1], claims, func(t *jwt.Token) (interface{}, error) {
		return nil, nil
	})

	uid, ok := claims["sub"].(string)
	if !ok || uid == "" {
		return dto.Identity{}, errors.New("error while getting user id from token")
	}

	identity := dto.Identity{Uid: uid}

	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.DisplayName = name
	}
	if picture, ok := claims["picture"].(string); ok {
		identity.PhotoURL = picture
	}

	return identity, nil
}

func currentUserMiddleWare() gin.HandlerFunc {
	return func(c *gin.Context) {
		routerLogger.Info("Extracting User")

		token, ok := c.Request.Header["Authorization"]

		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			c.Abort()
			return
		}
		identity, err := getIdentityFromToken(token[0])

		if err != nil {
			routerLogger.Error(err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			c.Abort()
			return
		}
		c.Set("identity", identity)

		c.Next()
	}
}
