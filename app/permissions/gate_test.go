package permissions

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// gateApp builds a tiny app with the Require middleware in front of a handler
// that records whether it ran.
func gateApp(role Role, pred func(Role) bool, invoked *bool) *fiber.App {
	app := fiber.New()
	app.Post("/action",
		func(c *fiber.Ctx) error {
			if role != RoleNone {
				c.Locals(RoleLocalsKey, role)
			}
			return c.Next()
		},
		Require(pred, "Only admins can manage students"),
		func(c *fiber.Ctx) error {
			*invoked = true
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

func TestRequireBlocksHandler(t *testing.T) {
	tests := []struct {
		name       string
		role       Role
		wantStatus int
		wantRun    bool
	}{
		{"admin passes", RoleAdmin, 200, true},
		{"super admin passes", RoleSuperAdmin, 200, true},
		{"viewer denied", RoleViewer, 403, false},
		{"no role denied", RoleNone, 403, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoked := false
			app := gateApp(tt.role, CanManageStudents, &invoked)

			resp, err := app.Test(httptest.NewRequest("POST", "/action", nil))
			if err != nil {
				t.Fatalf("app.Test() failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			// Denial must make the handler unreachable, not just hidden
			if invoked != tt.wantRun {
				t.Errorf("handler invoked = %v, want %v", invoked, tt.wantRun)
			}
		})
	}
}

func TestRoleFromCtxDefaultsToNone(t *testing.T) {
	app := fiber.New()
	var got Role
	app.Get("/", func(c *fiber.Ctx) error {
		got = RoleFromCtx(c)
		return c.SendStatus(204)
	})
	if _, err := app.Test(httptest.NewRequest("GET", "/", nil)); err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	if got != RoleNone {
		t.Errorf("RoleFromCtx() = %q, want RoleNone", got)
	}
}
