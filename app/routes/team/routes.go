package team

import (
	"amyza-admin/app/permissions"
	"amyza-admin/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTeamRoutes(app *fiber.App) {
	api := app.Group("/api/team")
	api.Use(auth.Middleware)

	view := permissions.Require(permissions.CanViewStudents, "Sign in to view the team")
	api.Get("/", view, GetTeamAPI)
	api.Get("/stats", view, GetTeamStatsAPI)

	manage := permissions.Require(permissions.CanManageTeam, "Only a super admin can manage the team")
	api.Post("/", manage, CreateAdminAPI)
	api.Patch("/:id/role", manage, UpdateAdminRoleAPI)
	api.Delete("/:id", manage, DeactivateAdminAPI)
}
