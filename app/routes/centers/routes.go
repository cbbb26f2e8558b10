package centers

import (
	"edcenter/app/config"
	"edcenter/app/models"
	"edcenter/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupCentersRoutes sets up the centers routes
func SetupCentersRoutes(app *fiber.App) {
	api := app.Group("/api/centers")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetCentersAPI(c, config.GetDB())
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetCenterByIDAPI(c, config.GetDB())
	})
	api.Get("/:id/classes", func(c *fiber.Ctx) error {
		return GetCenterClassesAPI(c, config.GetDB())
	})

	admin := api.Group("", auth.RoleMiddleware(models.RoleAdmin, models.RoleCenterAdmin))
	admin.Post("/", func(c *fiber.Ctx) error {
		return CreateCenterAPI(c, config.GetDB())
	})
	admin.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateCenterAPI(c, config.GetDB())
	})
	admin.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteCenterAPI(c, config.GetDB())
	})
}
