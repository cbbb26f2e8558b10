package schools

import (
	"edcenter/app/config"
	"edcenter/app/models"
	"edcenter/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupSchoolsRoutes sets up the schools routes
func SetupSchoolsRoutes(app *fiber.App) {
	api := app.Group("/api/schools")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetSchoolsAPI(c, config.GetDB())
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetSchoolByIDAPI(c, config.GetDB())
	})
	api.Get("/:id/centers", func(c *fiber.Ctx) error {
		return GetSchoolCentersAPI(c, config.GetDB())
	})

	admin := api.Group("", auth.RoleMiddleware(models.RoleAdmin))
	admin.Post("/", func(c *fiber.Ctx) error {
		return CreateSchoolAPI(c, config.GetDB())
	})
	admin.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateSchoolAPI(c, config.GetDB())
	})
	admin.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteSchoolAPI(c, config.GetDB())
	})
}
