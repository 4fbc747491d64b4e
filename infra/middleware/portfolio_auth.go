package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"portfolio_server/pkg/apperr"
)

// AuthConfig configures the authorization gate.
type AuthConfig struct {
	// Secret is the HS256 signing secret shared with the token issuer.
	Secret string
	// APIPrefix is the configured route prefix, e.g. "/api/v1".
	APIPrefix string
}

// signing algorithm is fixed; anything else is rejected before verification
var validMethods = jwt.WithValidMethods([]string{"HS256"})

// JWTAuth verifies the bearer token on every request except the allow-list:
// the token-issuance path, public GET/OPTIONS reads on users, and GET/OPTIONS
// on uploaded assets. Tokens whose payload lacks a tokenPassword claim are
// treated as revoked even when the signature and expiry check out.
func JWTAuth(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isExempt(cfg.APIPrefix, c.Method(), c.Path()) {
			return c.Next()
		}

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return apperr.Unauthorized("No authorization token was found")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return apperr.Unauthorized("Format is Authorization: Bearer [token]")
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.Secret), nil
		}, validMethods)
		if err != nil || !token.Valid {
			return apperr.InvalidToken("invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return apperr.InvalidToken("invalid token")
		}

		// Revocation check: validity is coupled to payload shape, not just the
		// signature. A token without the marker claim is always revoked.
		tokenPassword, _ := claims["tokenPassword"].(string)
		if tokenPassword == "" {
			return apperr.RevokedToken("The token has been revoked")
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}

// isExempt reports whether the request bypasses token verification.
func isExempt(prefix, method, path string) bool {
	if path == prefix+"/users/token" {
		return true
	}
	if path == "/health" {
		return true
	}

	if method != fiber.MethodGet && method != fiber.MethodOptions {
		return false
	}
	if strings.HasPrefix(path, prefix+"/users") {
		return true
	}
	if strings.HasPrefix(path, "/public/uploads") {
		return true
	}
	return false
}
