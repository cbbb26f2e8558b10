package main

import (
	"log"

	"edcenter/app/config"
	"edcenter/app/database"
	"edcenter/app/routes/attendance"
	"edcenter/app/routes/auth"
	"edcenter/app/routes/centers"
	"edcenter/app/routes/classes"
	"edcenter/app/routes/curriculums"
	"edcenter/app/routes/dashboard"
	"edcenter/app/routes/fees"
	"edcenter/app/routes/portal"
	"edcenter/app/routes/schools"
	"edcenter/app/routes/students"
	"edcenter/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// customErrorHandler renders every error as the standard JSON envelope.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize config and database
	config.Init()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	scheduler := services.StartScheduler(config.GetDB(), config.GetBilling())
	defer scheduler.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup schools routes
	schools.SetupSchoolsRoutes(app)

	// Setup centers routes
	centers.SetupCentersRoutes(app)

	// Setup classes routes
	classes.SetupClassesRoutes(app)

	// Setup curriculums routes
	curriculums.SetupCurriculumsRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app)

	// Setup fees routes
	fees.SetupFeesRoutes(app)

	// Setup public parent portal routes
	portal.SetupPortalRoutes(app)

	// Catch-all 404
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Resource not found")
	})

	port := config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
