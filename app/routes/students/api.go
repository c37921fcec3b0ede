package students

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

func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search:    c.Query("search"),
		BatchID:   c.Query("batch_id"),
		Status:    c.Query("status"),
		SortBy:    c.Query("sort_by", "student_code"),
		SortOrder: c.Query("sort_order", "asc"),
		Limit:     c.QueryInt("limit", 0),
		Offset:    c.QueryInt("offset", 0),
	}

	students, total, err := database.GetStudentsWithFilters(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students":    students,
		"count":       len(students),
		"total_count": total,
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(fiber.Map{"student": student})
}

// GetStudentAttendanceAPI returns a student's records plus their weekly
// average and week-over-week trend.
func GetStudentAttendanceAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")
	today := time.Now()
	weekStart := stats.WeekStart(today)
	prevWeekStart := weekStart.AddDate(0, 0, -7)

	records, err := database.GetAttendanceByStudent(config.GetDB(), studentID, prevWeekStart, today)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	thisWeek := stats.PeriodAverage(records, weekStart, today)
	lastWeek := stats.PeriodAverage(records, prevWeekStart, weekStart.AddDate(0, 0, -1))

	return c.JSON(fiber.Map{
		"records":      records,
		"weekly_rate":  stats.RoundPercent(thisWeek),
		"weekly_trend": stats.Compare(float64(stats.RoundPercent(thisWeek)), float64(stats.RoundPercent(lastWeek))),
	})
}

type studentRequest struct {
	StudentCode string `json:"student_code" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	BatchID     string `json:"batch_id" validate:"required,uuid"`
	IsActive    *bool  `json:"is_active"`
	EnrolledAt  string `json:"enrolled_at"`
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := &models.Student{
		StudentCode: req.StudentCode,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		BatchID:     req.BatchID,
		IsActive:    true,
	}
	if req.EnrolledAt != "" {
		enrolledAt, err := time.ParseInLocation("2006-01-02", req.EnrolledAt, time.Local)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid enrolled_at date. Use YYYY-MM-DD"})
		}
		student.EnrolledAt = enrolledAt
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}
	return c.Status(201).JSON(fiber.Map{"student": student})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email
	student.Phone = req.Phone
	student.BatchID = req.BatchID
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(fiber.Map{"student": student})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudent(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}
