package dashboard

import (
	"database/sql"

	"edcenter/app/config"
	"edcenter/app/database"
	"edcenter/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the admin dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", func(c *fiber.Ctx) error {
		return GetDashboardStatsAPI(c, config.GetDB())
	})
}

func GetDashboardStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
