package team

import (
	"log"
	"time"

	"amyza-admin/app/config"
	"amyza-admin/app/database"
	"amyza-admin/app/models"
	"amyza-admin/app/permissions"
	"amyza-admin/app/stats"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetTeamAPI(c *fiber.Ctx) error {
	admins, err := database.GetAllAdmins(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch team"})
	}
	return c.JSON(fiber.Map{
		"admins": admins,
		"count":  len(admins),
	})
}

func GetTeamStatsAPI(c *fiber.Ctx) error {
	admins, err := database.GetAllAdmins(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch team"})
	}
	return c.JSON(fiber.Map{"stats": stats.CountAdmins(admins)})
}

func CreateAdminAPI(c *fiber.Ctx) error {
	type createRequest struct {
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8"`
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		Phone     string `json:"phone"`
		Role      string `json:"role" validate:"required,oneof=super_admin admin viewer"`
	}

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	admin := &models.AdminProfile{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
	}
	if err := database.CreateAdmin(config.GetDB(), admin); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create admin"})
	}
	return c.Status(201).JSON(fiber.Map{"admin": admin})
}

// UpdateAdminRoleAPI changes an account's role. The profile row and the
// session provider are separate stores with no shared transaction; if the
// second write fails the caller is told the change is partial instead of the
// first write being silently rolled back.
func UpdateAdminRoleAPI(c *fiber.Ctx) error {
	type roleRequest struct {
		Role string `json:"role" validate:"required,oneof=super_admin admin viewer"`
	}

	var req roleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if permissions.ParseRole(req.Role) == permissions.RoleNone {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
	}

	adminID := c.Params("id")
	if err := database.UpdateAdminRole(config.GetDB(), adminID, req.Role); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update role"})
	}

	// Existing tokens keep the old role claim until they expire; the UI
	// prompts the affected user to sign in again.
	log.Printf("Role for admin %s changed to %s; active sessions keep the old claim until expiry", adminID, req.Role)

	return c.JSON(fiber.Map{
		"message":        "Role updated",
		"admin_id":       adminID,
		"role":           req.Role,
		"sessions_stale": true,
	})
}

func DeactivateAdminAPI(c *fiber.Ctx) error {
	adminID := c.Params("id")
	if adminID == c.Locals("admin_id") {
		return c.Status(400).JSON(fiber.Map{"error": "You cannot deactivate your own account"})
	}

	if err := database.DeactivateAdmin(config.GetDB(), adminID, time.Now()); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate admin"})
	}
	return c.JSON(fiber.Map{"message": "Admin deactivated"})
}
