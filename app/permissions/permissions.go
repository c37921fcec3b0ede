package permissions

// Role is the console-wide authorization tag carried on every admin account.
// Exactly three tags are valid; anything else (including an absent role on an
// unauthenticated request) maps to RoleNone and holds no permissions.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleViewer     Role = "viewer"
	RoleNone       Role = ""
)

// ParseRole maps a raw role tag to a Role. Unrecognized or empty tags resolve
// to RoleNone rather than an error so that a missing or garbled role simply
// carries no permissions.
func ParseRole(tag string) Role {
	switch Role(tag) {
	case RoleSuperAdmin, RoleAdmin, RoleViewer:
		return Role(tag)
	default:
		return RoleNone
	}
}

// Authenticated reports whether the role belongs to a logged-in account.
func (r Role) Authenticated() bool {
	return r == RoleSuperAdmin || r == RoleAdmin || r == RoleViewer
}

func isStaff(r Role) bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// CanManageStudents allows creating, editing and deleting students.
func CanManageStudents(r Role) bool { return isStaff(r) }

// CanMarkStudentAttendance allows recording student attendance.
func CanMarkStudentAttendance(r Role) bool { return isStaff(r) }

// CanManageBatches allows creating and editing batches.
func CanManageBatches(r Role) bool { return isStaff(r) }

// CanManagePerformance allows recording and editing performance sub-scores.
func CanManagePerformance(r Role) bool { return isStaff(r) }

// CanManageTeachers allows managing teacher records. Super admin only.
func CanManageTeachers(r Role) bool { return r == RoleSuperAdmin }

// CanMarkTeacherAttendance allows recording teacher attendance. Super admin only.
func CanMarkTeacherAttendance(r Role) bool { return r == RoleSuperAdmin }

// CanManageTeam allows creating admin accounts and changing roles. Super admin only.
func CanManageTeam(r Role) bool { return r == RoleSuperAdmin }

// CanViewStudents allows viewing student lists and profiles.
func CanViewStudents(r Role) bool { return r.Authenticated() }

// CanViewTeacherAttendance allows viewing teacher attendance records.
func CanViewTeacherAttendance(r Role) bool { return r.Authenticated() }

// CanAccessTasks allows viewing the task board.
func CanAccessTasks(r Role) bool { return isStaff(r) }

// CanManageTasks allows creating, editing and completing tasks.
func CanManageTasks(r Role) bool { return isStaff(r) }

// IsViewerOnly reports whether the role is exactly viewer.
func IsViewerOnly(r Role) bool { return r == RoleViewer }
