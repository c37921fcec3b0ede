package attendance

import (
	"time"

	"amyza-admin/app/config"
	"amyza-admin/app/database"
	"amyza-admin/app/models"
	"amyza-admin/app/routes/auth"
	"amyza-admin/app/stats"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type attendanceRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	BatchID   string `json:"batch_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=present absent late excused"`
}

func (req attendanceRequest) toRecord(markedBy string) (*models.AttendanceRecord, error) {
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return nil, err
	}
	return &models.AttendanceRecord{
		StudentID: req.StudentID,
		BatchID:   req.BatchID,
		Date:      date,
		Status:    models.AttendanceStatus(req.Status),
		MarkedBy:  &markedBy,
	}, nil
}

func MarkAttendanceAPI(c *fiber.Ctx) error {
	var req attendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	record, err := req.toRecord(auth.CurrentAdmin(c).ID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	if err := database.CreateOrUpdateAttendance(config.GetDB(), record); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance record"})
	}
	return c.JSON(fiber.Map{
		"message":    "Attendance record saved",
		"attendance": record,
	})
}

// BulkMarkAttendanceAPI marks a whole batch in one call. Rows are committed
// independently; a partial failure is reported per student rather than rolled
// back, since there is no transaction spanning the rows.
func BulkMarkAttendanceAPI(c *fiber.Ctx) error {
	type bulkRequest struct {
		Records []attendanceRequest `json:"records" validate:"required,min=1,dive"`
	}

	var req bulkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	markedBy := auth.CurrentAdmin(c).ID
	saved := 0
	failures := fiber.Map{}
	for _, item := range req.Records {
		record, err := item.toRecord(markedBy)
		if err != nil {
			failures[item.StudentID] = "invalid date"
			continue
		}
		if err := database.CreateOrUpdateAttendance(config.GetDB(), record); err != nil {
			failures[item.StudentID] = "failed to save"
			continue
		}
		saved++
	}

	status := 200
	if len(failures) > 0 {
		status = 207
	}
	return c.Status(status).JSON(fiber.Map{
		"saved":    saved,
		"failed":   len(failures),
		"failures": failures,
	})
}

func GetAttendanceByBatchAndDateAPI(c *fiber.Ctx) error {
	batchID := c.Params("batchId")
	date, err := time.ParseInLocation("2006-01-02", c.Params("date"), time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	records, err := database.GetAttendanceByBatchAndDate(config.GetDB(), batchID, date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
		"date":       c.Params("date"),
		"batch_id":   batchID,
	})
}

// GetDailyStatsAPI returns the day snapshot: rounded percentage plus the
// attended, late, absent and excused counts.
func GetDailyStatsAPI(c *fiber.Ctx) error {
	batchID := c.Params("batchId")
	date, err := time.ParseInLocation("2006-01-02", c.Params("date"), time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	records, err := database.GetAttendanceByBatchAndDate(config.GetDB(), batchID, date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	return c.JSON(fiber.Map{
		"date":     c.Params("date"),
		"batch_id": batchID,
		"stats":    stats.DaySnapshot(records, date),
	})
}

// GetWeeklyStatsAPI returns this week's average rate and the trend against
// last week.
func GetWeeklyStatsAPI(c *fiber.Ctx) error {
	batchID := c.Params("batchId")
	today := time.Now()
	weekStart := stats.WeekStart(today)
	prevWeekStart := weekStart.AddDate(0, 0, -7)

	records, err := database.GetAttendanceByDateRange(config.GetDB(), batchID, prevWeekStart, today)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	thisWeek := stats.RoundPercent(stats.PeriodAverage(records, weekStart, today))
	lastWeek := stats.RoundPercent(stats.PeriodAverage(records, prevWeekStart, weekStart.AddDate(0, 0, -1)))

	return c.JSON(fiber.Map{
		"batch_id":          batchID,
		"week_start":        weekStart.Format("2006-01-02"),
		"weekly_average":    thisWeek,
		"last_week_average": lastWeek,
		"trend":             stats.Compare(float64(thisWeek), float64(lastWeek)),
	})
}
