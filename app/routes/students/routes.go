package students

import (
	"amyza-admin/app/permissions"
	"amyza-admin/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.Middleware)

	// Any authenticated role may view
	api.Get("/", permissions.Require(permissions.CanViewStudents, "Sign in to view students"), GetStudentsAPI)
	api.Get("/:id", permissions.Require(permissions.CanViewStudents, "Sign in to view students"), GetStudentByIDAPI)
	api.Get("/:id/attendance", permissions.Require(permissions.CanViewStudents, "Sign in to view students"), GetStudentAttendanceAPI)

	// Mutations are gated at the point of invocation
	manage := permissions.Require(permissions.CanManageStudents, "Only admins can manage students")
	api.Post("/", manage, CreateStudentAPI)
	api.Put("/:id", manage, UpdateStudentAPI)
	api.Delete("/:id", manage, DeleteStudentAPI)
}
