package dashboard

import (
	"amyza-admin/app/permissions"
	"amyza-admin/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.Middleware)

	view := permissions.Require(permissions.CanViewStudents, "Sign in to view the dashboard")
	api.Get("/stats", view, GetDashboardStatsAPI)
}
