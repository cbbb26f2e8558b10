package portal

import (
	"edcenter/app/config"

	"github.com/gofiber/fiber/v2"
)

// SetupPortalRoutes sets up the public parent portal. No authentication: the
// lookup requires both the student code and the guardian's phone number.
func SetupPortalRoutes(app *fiber.App) {
	api := app.Group("/api/portal")

	api.Get("/progress", func(c *fiber.Ctx) error {
		return GetStudentProgressAPI(c, config.GetDB())
	})
}
