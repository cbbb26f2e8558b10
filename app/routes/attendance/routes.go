package attendance

import (
	"edcenter/app/config"
	"edcenter/app/models"
	"edcenter/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAttendanceRoutes sets up the attendance marking and history routes
func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Get("/class/:class_id/date/:date", func(c *fiber.Ctx) error {
		return GetClassAttendanceAPI(c, config.GetDB())
	})
	api.Get("/student/:student_id", func(c *fiber.Ctx) error {
		return GetStudentAttendanceAPI(c, config.GetDB())
	})

	markers := api.Group("", auth.RoleMiddleware(models.RoleAdmin, models.RoleCenterAdmin, models.RoleTeacher))
	markers.Post("/", func(c *fiber.Ctx) error {
		return MarkAttendanceAPI(c, config.GetDB())
	})
	markers.Post("/bulk", func(c *fiber.Ctx) error {
		return BulkMarkAttendanceAPI(c, config.GetDB())
	})
}
