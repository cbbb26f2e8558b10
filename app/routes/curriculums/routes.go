package curriculums

import (
	"edcenter/app/config"
	"edcenter/app/models"
	"edcenter/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupCurriculumsRoutes sets up the curriculum catalog routes
func SetupCurriculumsRoutes(app *fiber.App) {
	api := app.Group("/api/curriculums")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetCurriculumsAPI(c, config.GetDB())
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetCurriculumByIDAPI(c, config.GetDB())
	})

	admin := api.Group("", auth.RoleMiddleware(models.RoleAdmin))
	admin.Post("/", func(c *fiber.Ctx) error {
		return CreateCurriculumAPI(c, config.GetDB())
	})
	admin.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateCurriculumAPI(c, config.GetDB())
	})
	admin.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteCurriculumAPI(c, config.GetDB())
	})
}
