package teachers

import (
	"amyza-admin/app/permissions"
	"amyza-admin/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTeachersRoutes(app *fiber.App) {
	api := app.Group("/api/teachers")
	api.Use(auth.Middleware)

	// Teacher attendance is viewable by any authenticated role
	viewAttendance := permissions.Require(permissions.CanViewTeacherAttendance, "Sign in to view teacher attendance")
	api.Get("/attendance/:date", viewAttendance, GetTeacherAttendanceByDateAPI)
	api.Get("/:id/attendance", viewAttendance, GetTeacherAttendanceRangeAPI)

	view := permissions.Require(permissions.CanViewStudents, "Sign in to view teachers")
	api.Get("/", view, GetTeachersAPI)
	api.Get("/:id", view, GetTeacherByIDAPI)

	// Managing teachers and marking their attendance is super admin only
	manage := permissions.Require(permissions.CanManageTeachers, "Only a super admin can manage teachers")
	api.Post("/", manage, CreateTeacherAPI)
	api.Put("/:id", manage, UpdateTeacherAPI)
	api.Delete("/:id", manage, DeleteTeacherAPI)

	mark := permissions.Require(permissions.CanMarkTeacherAttendance, "Only a super admin can mark teacher attendance")
	api.Post("/attendance", mark, MarkTeacherAttendanceAPI)
}
