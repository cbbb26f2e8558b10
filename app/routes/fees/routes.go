package fees

import (
	"edcenter/app/config"
	"edcenter/app/models"
	"edcenter/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupFeesRoutes sets up the fee, payment and installment routes
func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	api.Get("/student/:id", func(c *fiber.Ctx) error {
		return GetStudentFeesAPI(c, config.GetDB())
	})
	api.Get("/center/:id/overview", func(c *fiber.Ctx) error {
		return GetCenterFeesOverviewAPI(c, config.GetDB())
	})
	api.Get("/center/:id/stats", func(c *fiber.Ctx) error {
		return GetCenterFeesStatsAPI(c, config.GetDB())
	})
	api.Get("/reminders", func(c *fiber.Ctx) error {
		return GetRemindersAPI(c, config.GetDB())
	})

	staff := api.Group("", auth.RoleMiddleware(models.RoleAdmin, models.RoleCenterAdmin, models.RoleAccountant))
	staff.Post("/discount", func(c *fiber.Ctx) error {
		return ApplyDiscountAPI(c, config.GetDB())
	})
	staff.Post("/payment", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, config.GetDB())
	})
}
