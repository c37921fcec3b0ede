package permissions

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		tag  string
		want Role
	}{
		{"super_admin", RoleSuperAdmin},
		{"admin", RoleAdmin},
		{"viewer", RoleViewer},
		{"", RoleNone},
		{"root", RoleNone},
		{"Admin", RoleNone},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.tag); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestPermissionMatrix(t *testing.T) {
	type row struct {
		name string
		pred func(Role) bool
		// expected result per role
		superAdmin, admin, viewer, none bool
	}
	rows := []row{
		{"CanManageStudents", CanManageStudents, true, true, false, false},
		{"CanMarkStudentAttendance", CanMarkStudentAttendance, true, true, false, false},
		{"CanManageBatches", CanManageBatches, true, true, false, false},
		{"CanManagePerformance", CanManagePerformance, true, true, false, false},
		{"CanManageTeachers", CanManageTeachers, true, false, false, false},
		{"CanMarkTeacherAttendance", CanMarkTeacherAttendance, true, false, false, false},
		{"CanManageTeam", CanManageTeam, true, false, false, false},
		{"CanViewStudents", CanViewStudents, true, true, true, false},
		{"CanViewTeacherAttendance", CanViewTeacherAttendance, true, true, true, false},
		{"CanAccessTasks", CanAccessTasks, true, true, false, false},
		{"CanManageTasks", CanManageTasks, true, true, false, false},
	}

	for _, r := range rows {
		t.Run(r.name, func(t *testing.T) {
			if got := r.pred(RoleSuperAdmin); got != r.superAdmin {
				t.Errorf("%s(super_admin) = %v, want %v", r.name, got, r.superAdmin)
			}
			if got := r.pred(RoleAdmin); got != r.admin {
				t.Errorf("%s(admin) = %v, want %v", r.name, got, r.admin)
			}
			if got := r.pred(RoleViewer); got != r.viewer {
				t.Errorf("%s(viewer) = %v, want %v", r.name, got, r.viewer)
			}
			if got := r.pred(RoleNone); got != r.none {
				t.Errorf("%s(none) = %v, want %v", r.name, got, r.none)
			}
		})
	}
}

func TestIsViewerOnly(t *testing.T) {
	if !IsViewerOnly(RoleViewer) {
		t.Error("IsViewerOnly(viewer) = false, want true")
	}
	for _, r := range []Role{RoleSuperAdmin, RoleAdmin, RoleNone} {
		if IsViewerOnly(r) {
			t.Errorf("IsViewerOnly(%q) = true, want false", r)
		}
	}
}

func TestCheck(t *testing.T) {
	d := Check(true, "nope")
	if !d.Allowed || d.Reason != "" {
		t.Errorf("Check(true) = %+v, want allowed with no reason", d)
	}
	d = Check(false, "Only admins can manage students")
	if d.Allowed || d.Reason != "Only admins can manage students" {
		t.Errorf("Check(false) = %+v, want denial with reason", d)
	}
}

func TestMatrixCoversEveryActionDeterministically(t *testing.T) {
	for _, r := range []Role{RoleSuperAdmin, RoleAdmin, RoleViewer, RoleNone} {
		first := Matrix(r)
		second := Matrix(r)
		if len(first) == 0 {
			t.Fatalf("Matrix(%q) is empty", r)
		}
		for action, d := range first {
			if second[action] != d {
				t.Errorf("Matrix(%q)[%q] not deterministic", r, action)
			}
			if r == RoleNone && d.Allowed {
				t.Errorf("Matrix(none)[%q] allowed, want denied", action)
			}
			if !d.Allowed && d.Reason == "" {
				t.Errorf("Matrix(%q)[%q] denied without a reason", r, action)
			}
		}
	}
}
