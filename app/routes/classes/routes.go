package classes

import (
	"edcenter/app/config"
	"edcenter/app/models"
	"edcenter/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupClassesRoutes sets up the classes routes
func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetClassesAPI(c, config.GetDB())
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetClassByIDAPI(c, config.GetDB())
	})
	api.Get("/:id/students", func(c *fiber.Ctx) error {
		return GetClassStudentsAPI(c, config.GetDB())
	})

	admin := api.Group("", auth.RoleMiddleware(models.RoleAdmin, models.RoleCenterAdmin))
	admin.Post("/", func(c *fiber.Ctx) error {
		return CreateClassAPI(c, config.GetDB())
	})
	admin.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateClassAPI(c, config.GetDB())
	})
	admin.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteClassAPI(c, config.GetDB())
	})
}
