package middleware

import (
	"strings"

	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

const credentialsKey = "owner_credentials"

// Credentials lifts HTTP Basic credentials (owner id and secret) into the
// echo context. Requests without a Basic header are skipped; handlers decide
// whether credentials are required and the service verifies them.
func Credentials() echo.MiddlewareFunc {
	return echoMiddleware.BasicAuthWithConfig(echoMiddleware.BasicAuthConfig{
		Skipper: func(c echo.Context) bool {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			return !strings.HasPrefix(strings.ToLower(auth), "basic ")
		},
		Validator: func(ownerID, secret string, c echo.Context) (bool, error) {
			if ownerID != "" {
				c.Set(credentialsKey, &domain.Credentials{OwnerID: ownerID, Secret: secret})
			}
			return true, nil
		},
	})
}

func GetCredentials(c echo.Context) (*domain.Credentials, bool) {
	creds, ok := c.Get(credentialsKey).(*domain.Credentials)
	return creds, ok
}
