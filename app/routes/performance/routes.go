package performance

import (
	"amyza-admin/app/permissions"
	"amyza-admin/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupPerformanceRoutes(app *fiber.App) {
	api := app.Group("/api/performance")
	api.Use(auth.Middleware)

	view := permissions.Require(permissions.CanViewStudents, "Sign in to view rankings")
	api.Get("/rankings", view, GetRankingsAPI)
	api.Get("/student/:studentId", view, GetStudentScoreAPI)

	manage := permissions.Require(permissions.CanManagePerformance, "Only admins can manage performance scores")
	api.Post("/scores", manage, UpsertScoreAPI)
	api.Delete("/scores/:studentId", manage, DeleteScoreAPI)
}
