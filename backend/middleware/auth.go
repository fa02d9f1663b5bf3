package middleware

import (
	"residencia/backend/config"
	"residencia/backend/utils"

	"github.com/gofiber/fiber/v2"
)

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals("user_id", claims.UserID)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}

// roleRank orders roles so a higher role satisfies lower requirements.
var roleRank = map[string]int{
	"user":      1,
	"moderator": 2,
	"admin":     3,
}

// RequireRole gates a route behind a minimum role.
func RequireRole(cfg *config.Config, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		if roleRank[claims.Role] < roleRank[role] {
			return utils.Forbidden(c, "Insufficient permissions")
		}

		return c.Next()
	}
}

func AdminMiddleware(cfg *config.Config) fiber.Handler {
	return RequireRole(cfg, "admin")
}
