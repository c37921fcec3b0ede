package batches

import (
	"amyza-admin/app/permissions"
	"amyza-admin/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupBatchesRoutes(app *fiber.App) {
	api := app.Group("/api/batches")
	api.Use(auth.Middleware)

	view := permissions.Require(permissions.CanViewStudents, "Sign in to view batches")
	api.Get("/", view, GetBatchesAPI)
	api.Get("/:id", view, GetBatchByIDAPI)

	manage := permissions.Require(permissions.CanManageBatches, "Only admins can manage batches")
	api.Post("/", manage, CreateBatchAPI)
	api.Put("/:id", manage, UpdateBatchAPI)
	api.Delete("/:id", manage, DeleteBatchAPI)
}
