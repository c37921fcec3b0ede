package auth

import (
	"strings"

	"amyza-admin/app/models"
	"amyza-admin/app/permissions"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(Middleware)
	auth.Post("/change-password", ChangePasswordAPI)

	me := app.Group("/api/me", Middleware)
	me.Get("/", MeAPI)
	me.Get("/permissions", PermissionsAPI)
}

// Middleware validates the JWT and stores the admin identity and resolved
// role in the request context. Every permission check downstream reads the
// role from here; nothing consults ambient state.
func Middleware(c *fiber.Ctx) error {
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	admin := &models.AdminProfile{
		ID:        claims.AdminID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      claims.Role,
		IsActive:  true,
	}

	c.Locals("admin", admin)
	c.Locals("admin_id", admin.ID)
	c.Locals(permissions.RoleLocalsKey, permissions.ParseRole(claims.Role))

	return c.Next()
}

// CurrentAdmin returns the authenticated admin stored by Middleware.
func CurrentAdmin(c *fiber.Ctx) *models.AdminProfile {
	if admin, ok := c.Locals("admin").(*models.AdminProfile); ok {
		return admin
	}
	return nil
}
