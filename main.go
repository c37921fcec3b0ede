package main

import (
	"log"

	"amyza-admin/app/config"
	"amyza-admin/app/database"
	"amyza-admin/app/routes/attendance"
	"amyza-admin/app/routes/auth"
	"amyza-admin/app/routes/batches"
	"amyza-admin/app/routes/dashboard"
	"amyza-admin/app/routes/performance"
	"amyza-admin/app/routes/students"
	"amyza-admin/app/routes/tasks"
	"amyza-admin/app/routes/teachers"
	"amyza-admin/app/routes/team"
	"amyza-admin/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// apiErrorHandler renders every Fiber error as JSON
func apiErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
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
	// Initialize configuration and database
	config.Init()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup batches routes
	batches.SetupBatchesRoutes(app)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app)

	// Setup performance routes
	performance.SetupPerformanceRoutes(app)

	// Setup tasks routes
	tasks.SetupTasksRoutes(app)

	// Setup teachers routes
	teachers.SetupTeachersRoutes(app)

	// Setup team routes
	team.SetupTeamRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Resource not found")
	})

	// Start server
	port := config.AppConfig.Port
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
