// Package auth provides the bearer-token middleware guarding write endpoints.
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/barangay-is/barangay-is/internal/token"
	"github.com/barangay-is/barangay-is/internal/web/handler"
)

const (
	// ClaimsKey is the fiber.Locals key the decoded claims are stored under.
	ClaimsKey = "AuthClaims"

	// MsgNoToken is returned when the Authorization header is absent.
	MsgNoToken = "No token provided"
	// MsgInvalidToken is returned when the bearer token fails validation.
	MsgInvalidToken = "Invalid or expired token"
)

// New builds a middleware that requires a valid bearer token and stores its
// claims in fiber.Locals under ClaimsKey.
func New(signer *token.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return handler.Message(c, fiber.StatusUnauthorized, MsgNoToken)
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenString == "" || tokenString == header {
			return handler.Message(c, fiber.StatusUnauthorized, MsgInvalidToken)
		}

		claims, err := signer.Parse(tokenString)
		if err != nil {
			return handler.Message(c, fiber.StatusUnauthorized, MsgInvalidToken)
		}

		c.Locals(ClaimsKey, claims)

		return c.Next()
	}
}

// Claims retrieves the decoded claims stored by the middleware, nil when the
// request did not pass through it.
func Claims(c *fiber.Ctx) *token.Claims {
	claims, _ := c.Locals(ClaimsKey).(*token.Claims)

	return claims
}
