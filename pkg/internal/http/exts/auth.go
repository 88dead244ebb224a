package exts

import (
	"strconv"
	"strings"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// LinkAccountMiddleware resolves the session token into an account and
// parks it in locals. Requests without a usable token pass through
// anonymously, the per-route guards decide what needs a session.
func LinkAccountMiddleware(c *fiber.Ctx) error {
	token := c.Get(fiber.HeaderAuthorization)
	token = strings.TrimPrefix(token, "Bearer ")
	if len(token) == 0 {
		token = c.Cookies("ds_session")
	}
	if len(token) == 0 {
		return c.Next()
	}

	claims := jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return []byte(viper.GetString("security.jwt_secret")), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})); err != nil {
		return c.Next()
	}

	accountId, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return c.Next()
	}

	account, err := services.GetAccount(uint(accountId))
	if err != nil {
		return c.Next()
	}

	c.Locals("user", account)

	return c.Next()
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "you need to be authenticated to do that")
	}

	return nil
}
