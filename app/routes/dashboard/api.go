package dashboard

import (
	"log"
	"time"

	"amyza-admin/app/config"
	"amyza-admin/app/database"
	"amyza-admin/app/models"
	"amyza-admin/app/stats"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStatsAPI assembles the console landing page: entity totals,
// today's attendance snapshot, the weekly average with its week-over-week
// trend, the current top performer and the task board summary. Aggregation
// failures degrade to zero values; only the fetches themselves surface as
// errors.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	today := time.Now()
	weekStart := stats.WeekStart(today)
	prevWeekStart := weekStart.AddDate(0, 0, -7)

	totalStudents, err := database.CountActiveStudents(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student count"})
	}
	totalTeachers, err := database.CountActiveTeachers(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher count"})
	}
	activeBatches, err := database.CountBatchesByStatus(db, models.BatchActive)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch batch count"})
	}

	records, err := database.GetAttendanceByDateRange(db, "", prevWeekStart, today)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	todaySnapshot := stats.DaySnapshot(records, today)
	thisWeek := stats.RoundPercent(stats.PeriodAverage(records, weekStart, today))
	lastWeek := stats.RoundPercent(stats.PeriodAverage(records, prevWeekStart, weekStart.AddDate(0, 0, -1)))

	tasks, err := database.GetTasksWithFilters(db, database.TaskFilters{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tasks"})
	}

	response := fiber.Map{
		"total_students":    totalStudents,
		"total_teachers":    totalTeachers,
		"active_batches":    activeBatches,
		"today":             todaySnapshot,
		"weekly_average":    thisWeek,
		"last_week_average": lastWeek,
		"weekly_trend":      stats.Compare(float64(thisWeek), float64(lastWeek)),
		"tasks":             stats.CountTasks(tasks),
	}

	// Top performer across the whole program
	scores, err := database.GetPerformanceScores(db, "")
	if err == nil {
		students := make([]*models.Student, 0, len(scores))
		for _, s := range scores {
			if s.Student != nil {
				students = append(students, s.Student)
			}
		}
		ranked := stats.RankStudents(students, scores, stats.DefaultWeights(), stats.TieBreakInsertion)
		if top, ok := stats.TopPerformer(ranked); ok {
			response["top_performer"] = models.StudentRanking{
				StudentID:    top.Student.ID,
				StudentCode:  top.Student.StudentCode,
				Name:         top.Student.FullName(),
				OverallScore: top.OverallScore,
				Rank:         top.Rank,
			}
		}
	} else {
		log.Printf("Dashboard: failed to fetch performance scores: %v", err)
	}

	activities, err := database.GetRecentActivities(db, 10)
	if err != nil {
		log.Printf("Dashboard: failed to fetch recent activities: %v", err)
	} else {
		response["recent_activities"] = activities
	}

	return c.JSON(response)
}
