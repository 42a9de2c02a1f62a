package middleware

import (
	"smartcash/internal/models"
	"smartcash/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const identityKey = "identity"

// AuthMiddleware resolves the request identity from the bearer token and
// stores it in the request locals. Without a token, local mode admits the
// request as guest while remote mode rejects it.
func AuthMiddleware(jwtManager *auth.JWTManager, localMode bool, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("Authorization")
		if token == "" {
			if localMode {
				c.Locals(identityKey, models.Guest())
				return c.Next()
			}
			logger.Warn("Missing authorization token")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization token required",
			})
		}

		// Remove "Bearer " prefix if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Invalid token", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			logger.Warn("Malformed user id in token", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		ident := models.Identity{
			Kind:   models.IdentityUser,
			UserID: userID,
			Email:  claims.Email,
		}
		if claims.IsAdmin {
			ident.Kind = models.IdentityAdmin
		}

		c.Locals(identityKey, ident)
		return c.Next()
	}
}

// RequireAdmin gates the admin endpoints on the capability carried in the
// token. adminLocalEnabled lifts the check on the local demo backend.
func RequireAdmin(adminLocalEnabled bool, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident := GetIdentity(c)
		if ident.Admin() {
			return c.Next()
		}
		if ident.Kind == models.IdentityGuest && adminLocalEnabled {
			return c.Next()
		}

		logger.Warn("Admin access denied", zap.String("email", ident.Email))
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Admin capability required",
		})
	}
}

// GetIdentity reads the identity resolved by AuthMiddleware.
func GetIdentity(c *fiber.Ctx) models.Identity {
	if ident, ok := c.Locals(identityKey).(models.Identity); ok {
		return ident
	}
	return models.Guest()
}
