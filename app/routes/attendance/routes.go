package attendance

import (
	"amyza-admin/app/permissions"
	"amyza-admin/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.Middleware)

	view := permissions.Require(permissions.CanViewStudents, "Sign in to view attendance")
	api.Get("/batch/:batchId/date/:date", view, GetAttendanceByBatchAndDateAPI)
	api.Get("/batch/:batchId/daily/:date", view, GetDailyStatsAPI)
	api.Get("/batch/:batchId/weekly", view, GetWeeklyStatsAPI)

	mark := permissions.Require(permissions.CanMarkStudentAttendance, "Only admins can mark student attendance")
	api.Post("/", mark, MarkAttendanceAPI)
	api.Post("/bulk", mark, BulkMarkAttendanceAPI)
}
