package teachers

import (
	"database/sql"
	"time"

	"amyza-admin/app/config"
	"amyza-admin/app/database"
	"amyza-admin/app/models"
	"amyza-admin/app/stats"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.GetAllTeachers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}
	return c.JSON(fiber.Map{
		"teachers": teachers,
		"count":    len(teachers),
	})
}

func GetTeacherByIDAPI(c *fiber.Ctx) error {
	teacher, err := database.GetTeacherByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher"})
	}
	return c.JSON(fiber.Map{"teacher": teacher})
}

type teacherRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	IsActive  *bool  `json:"is_active"`
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	teacher := &models.Teacher{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		IsActive:  true,
	}
	if err := database.CreateTeacher(config.GetDB(), teacher); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create teacher"})
	}
	return c.Status(201).JSON(fiber.Map{"teacher": teacher})
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	teacher, err := database.GetTeacherByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher"})
	}

	teacher.FirstName = req.FirstName
	teacher.LastName = req.LastName
	teacher.Email = req.Email
	teacher.Phone = req.Phone
	teacher.Subject = req.Subject
	if req.IsActive != nil {
		teacher.IsActive = *req.IsActive
	}

	if err := database.UpdateTeacher(config.GetDB(), teacher); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update teacher"})
	}
	return c.JSON(fiber.Map{"teacher": teacher})
}

func DeleteTeacherAPI(c *fiber.Ctx) error {
	if err := database.DeleteTeacher(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete teacher"})
	}
	return c.JSON(fiber.Map{"message": "Teacher deleted"})
}

func MarkTeacherAttendanceAPI(c *fiber.Ctx) error {
	type markRequest struct {
		TeacherID string `json:"teacher_id" validate:"required,uuid"`
		Date      string `json:"date" validate:"required"`
		Status    string `json:"status" validate:"required,oneof=present absent late excused"`
		Remarks   string `json:"remarks"`
	}

	var req markRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	record := &models.TeacherAttendance{
		TeacherID: req.TeacherID,
		Date:      date,
		Status:    models.AttendanceStatus(req.Status),
		Remarks:   req.Remarks,
	}
	if err := database.CreateOrUpdateTeacherAttendance(config.GetDB(), record); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save teacher attendance"})
	}
	return c.JSON(fiber.Map{
		"message":    "Teacher attendance saved",
		"attendance": record,
	})
}

func GetTeacherAttendanceByDateAPI(c *fiber.Ctx) error {
	date, err := time.ParseInLocation("2006-01-02", c.Params("date"), time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	records, err := database.GetTeacherAttendanceByDate(config.GetDB(), date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher attendance"})
	}
	return c.JSON(fiber.Map{
		"date":       c.Params("date"),
		"attendance": records,
		"count":      len(records),
	})
}

// GetTeacherAttendanceRangeAPI returns one teacher's records for the current
// week along with the attended-day count.
func GetTeacherAttendanceRangeAPI(c *fiber.Ctx) error {
	teacherID := c.Params("id")
	today := time.Now()
	weekStart := stats.WeekStart(today)

	records, err := database.GetTeacherAttendanceRange(config.GetDB(), teacherID, weekStart, today)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher attendance"})
	}

	attended := 0
	for _, r := range records {
		if r.Status.Attended() {
			attended++
		}
	}
	return c.JSON(fiber.Map{
		"teacher_id": teacherID,
		"week_start": weekStart.Format("2006-01-02"),
		"attendance": records,
		"attended":   attended,
		"total":      len(records),
	})
}
