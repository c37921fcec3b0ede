package permissions

import (
	"github.com/gofiber/fiber/v2"
)

// RoleLocalsKey is where the auth middleware stores the resolved Role.
const RoleLocalsKey = "role"

// Decision is the result of an authorization check. It is always a definite
// allow or deny; denial carries a user-facing reason, never an error.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// Check wraps a predicate result with the denial reason shown to the user.
func Check(allowed bool, reason string) Decision {
	if allowed {
		return Decision{Allowed: true}
	}
	return Decision{Allowed: false, Reason: reason}
}

// Evaluate runs a predicate against a role and produces a Decision.
func Evaluate(pred func(Role) bool, r Role, reason string) Decision {
	return Check(pred(r), reason)
}

// RoleFromCtx returns the role the auth middleware resolved for this request.
// A request that never went through the middleware resolves to RoleNone.
func RoleFromCtx(c *fiber.Ctx) Role {
	if r, ok := c.Locals(RoleLocalsKey).(Role); ok {
		return r
	}
	return RoleNone
}

// Require returns middleware that denies the request unless the predicate
// passes for the caller's role. The check runs at the point of invocation, so
// a handler behind it is unreachable on denial regardless of what the UI
// rendered or hid.
func Require(pred func(Role) bool, reason string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := Evaluate(pred, RoleFromCtx(c), reason)
		if !decision.Allowed {
			return c.Status(403).JSON(fiber.Map{
				"error":   decision.Reason,
				"allowed": false,
			})
		}
		return c.Next()
	}
}

// Matrix returns every permission decision for a role, keyed by action name.
// The UI uses this to disable controls up front; the Require middleware stays
// the authority on each call.
func Matrix(r Role) map[string]Decision {
	return map[string]Decision{
		"manage_students":         Evaluate(CanManageStudents, r, "Only admins can manage students"),
		"mark_student_attendance": Evaluate(CanMarkStudentAttendance, r, "Only admins can mark student attendance"),
		"manage_batches":          Evaluate(CanManageBatches, r, "Only admins can manage batches"),
		"manage_performance":      Evaluate(CanManagePerformance, r, "Only admins can manage performance scores"),
		"manage_teachers":         Evaluate(CanManageTeachers, r, "Only a super admin can manage teachers"),
		"mark_teacher_attendance": Evaluate(CanMarkTeacherAttendance, r, "Only a super admin can mark teacher attendance"),
		"manage_team":             Evaluate(CanManageTeam, r, "Only a super admin can manage the team"),
		"view_students":           Evaluate(CanViewStudents, r, "Sign in to view students"),
		"view_teacher_attendance": Evaluate(CanViewTeacherAttendance, r, "Sign in to view teacher attendance"),
		"access_tasks":            Evaluate(CanAccessTasks, r, "Viewers cannot access tasks"),
		"manage_tasks":            Evaluate(CanManageTasks, r, "Viewers cannot manage tasks"),
	}
}
