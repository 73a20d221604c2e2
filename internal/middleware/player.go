package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// EnsurePlayerID requires a client identity on every game route. The UI
// sends it in the X-Player-ID header; websocket dials fall back to the
// playerId query parameter because browsers cannot set headers there.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("playerID") != nil {
			return c.Next()
		}

		playerID := c.Get("X-Player-ID")
		if playerID == "" {
			playerID = c.Query("playerId")
		}
		if playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Player ID is required. Please ensure client is properly initialized.",
			})
		}

		c.Locals("playerID", playerID)
		return c.Next()
	}
}
