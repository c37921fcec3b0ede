package tasks

import (
	"amyza-admin/app/permissions"
	"amyza-admin/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTasksRoutes(app *fiber.App) {
	api := app.Group("/api/tasks")
	api.Use(auth.Middleware)

	// Viewers have no task access at all
	access := permissions.Require(permissions.CanAccessTasks, "Viewers cannot access tasks")
	api.Get("/", access, GetTasksAPI)
	api.Get("/stats", access, GetTaskStatsAPI)
	api.Get("/:id", access, GetTaskByIDAPI)

	manage := permissions.Require(permissions.CanManageTasks, "Viewers cannot manage tasks")
	api.Post("/", manage, CreateTaskAPI)
	api.Put("/:id", manage, UpdateTaskAPI)
	api.Patch("/:id/status", manage, UpdateTaskStatusAPI)
	api.Delete("/:id", manage, DeleteTaskAPI)
}
