package performance

import (
	"database/sql"
	"strconv"

	"amyza-admin/app/config"
	"amyza-admin/app/database"
	"amyza-admin/app/models"
	"amyza-admin/app/stats"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseWeights reads an optional custom weighting from query parameters.
// Anything missing or malformed falls back to equal thirds.
func parseWeights(c *fiber.Ctx) stats.Weights {
	parse := func(key string) float64 {
		v, err := strconv.ParseFloat(c.Query(key), 64)
		if err != nil || v < 0 {
			return 0
		}
		return v
	}
	w := stats.Weights{
		Technical:     parse("w_technical"),
		Communication: parse("w_communication"),
		Attendance:    parse("w_attendance"),
	}
	if w.Technical+w.Communication+w.Attendance <= 0 {
		return stats.DefaultWeights()
	}
	return w
}

func parseTieBreak(c *fiber.Ctx) stats.TieBreak {
	switch c.Query("tie_break") {
	case "student_code":
		return stats.TieBreakStudentCode
	case "name":
		return stats.TieBreakName
	default:
		return stats.TieBreakInsertion
	}
}

// GetRankingsAPI derives overall scores and ranks for the requested batch (or
// the whole program). Scores and ranks are computed fresh from the stored
// sub-scores on every call.
func GetRankingsAPI(c *fiber.Ctx) error {
	batchID := c.Query("batch_id")
	db := config.GetDB()

	scores, err := database.GetPerformanceScores(db, batchID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch performance scores"})
	}

	var students []*models.Student
	if batchID != "" {
		students, err = database.GetActiveStudentsByBatch(db, batchID)
	} else {
		students, _, err = database.GetStudentsWithFilters(db, database.StudentFilters{Status: "active"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	ranked := stats.RankStudents(students, scores, parseWeights(c), parseTieBreak(c))

	rankings := make([]models.StudentRanking, 0, len(ranked))
	for _, r := range ranked {
		rankings = append(rankings, models.StudentRanking{
			StudentID:    r.Student.ID,
			StudentCode:  r.Student.StudentCode,
			Name:         r.Student.FullName(),
			OverallScore: r.OverallScore,
			Rank:         r.Rank,
		})
	}

	response := fiber.Map{
		"rankings": rankings,
		"count":    len(rankings),
	}
	if top, ok := stats.TopPerformer(ranked); ok {
		response["top_performer"] = models.StudentRanking{
			StudentID:    top.Student.ID,
			StudentCode:  top.Student.StudentCode,
			Name:         top.Student.FullName(),
			OverallScore: top.OverallScore,
			Rank:         top.Rank,
		}
	}
	return c.JSON(response)
}

func GetStudentScoreAPI(c *fiber.Ctx) error {
	score, err := database.GetPerformanceScoreByStudent(config.GetDB(), c.Params("studentId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch score"})
	}
	if score == nil {
		return c.Status(404).JSON(fiber.Map{"error": "No score recorded for student"})
	}

	overall := stats.OverallScore(score.TechnicalScore, score.CommunicationScore, score.AttendancePercentage, stats.DefaultWeights())
	return c.JSON(fiber.Map{
		"score":         score,
		"overall_score": overall,
	})
}

func UpsertScoreAPI(c *fiber.Ctx) error {
	type scoreRequest struct {
		StudentID            string  `json:"student_id" validate:"required,uuid"`
		TechnicalScore       float64 `json:"technical_score" validate:"min=0,max=10"`
		CommunicationScore   float64 `json:"communication_score" validate:"min=0,max=10"`
		AttendancePercentage float64 `json:"attendance_percentage" validate:"min=0,max=100"`
	}

	var req scoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := database.GetStudentByID(config.GetDB(), req.StudentID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	score := &models.PerformanceScore{
		StudentID:            req.StudentID,
		TechnicalScore:       req.TechnicalScore,
		CommunicationScore:   req.CommunicationScore,
		AttendancePercentage: req.AttendancePercentage,
	}
	if err := database.UpsertPerformanceScore(config.GetDB(), score); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save score"})
	}
	return c.JSON(fiber.Map{"score": score})
}

func DeleteScoreAPI(c *fiber.Ctx) error {
	if err := database.DeletePerformanceScore(config.GetDB(), c.Params("studentId")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete score"})
	}
	return c.JSON(fiber.Map{"message": "Score deleted"})
}
