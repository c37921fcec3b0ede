package database

import (
	"database/sql"

	"amyza-admin/app/models"
)

// UpsertPerformanceScore records or corrects a student's sub-scores for the
// current scoring period. Only raw sub-scores are stored; the overall score
// and rank are derived on read and never persisted.
func UpsertPerformanceScore(db *sql.DB, score *models.PerformanceScore) error {
	query := `INSERT INTO performance_scores (id, student_id, technical_score, communication_score, attendance_percentage, created_at, updated_at)
			  VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW(), NOW())
			  ON CONFLICT (student_id)
			  DO UPDATE SET technical_score = EXCLUDED.technical_score,
			                communication_score = EXCLUDED.communication_score,
			                attendance_percentage = EXCLUDED.attendance_percentage,
			                updated_at = NOW()
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		score.StudentID, score.TechnicalScore, score.CommunicationScore, score.AttendancePercentage,
	).Scan(&score.ID, &score.CreatedAt, &score.UpdatedAt)
}

// GetPerformanceScores returns the recorded sub-scores, optionally limited to
// one batch, with student details attached for ranking display.
func GetPerformanceScores(db *sql.DB, batchID string) ([]*models.PerformanceScore, error) {
	query := `SELECT p.id, p.student_id, p.technical_score, p.communication_score, p.attendance_percentage,
			  p.created_at, p.updated_at, s.student_code, s.first_name, s.last_name, s.batch_id
			  FROM performance_scores p
			  JOIN students s ON p.student_id = s.id
			  WHERE p.deleted_at IS NULL AND s.deleted_at IS NULL`
	var args []interface{}
	if batchID != "" {
		args = append(args, batchID)
		query += ` AND s.batch_id = $1`
	}
	query += ` ORDER BY s.student_code ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []*models.PerformanceScore
	for rows.Next() {
		score := &models.PerformanceScore{Student: &models.Student{}}
		if err := rows.Scan(
			&score.ID, &score.StudentID, &score.TechnicalScore, &score.CommunicationScore,
			&score.AttendancePercentage, &score.CreatedAt, &score.UpdatedAt,
			&score.Student.StudentCode, &score.Student.FirstName, &score.Student.LastName,
			&score.Student.BatchID,
		); err != nil {
			return nil, err
		}
		score.Student.ID = score.StudentID
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

func GetPerformanceScoreByStudent(db *sql.DB, studentID string) (*models.PerformanceScore, error) {
	score := &models.PerformanceScore{}
	query := `SELECT id, student_id, technical_score, communication_score, attendance_percentage, created_at, updated_at
			  FROM performance_scores WHERE student_id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, studentID).Scan(
		&score.ID, &score.StudentID, &score.TechnicalScore, &score.CommunicationScore,
		&score.AttendancePercentage, &score.CreatedAt, &score.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return score, nil
}

func DeletePerformanceScore(db *sql.DB, studentID string) error {
	query := `UPDATE performance_scores SET deleted_at = NOW(), updated_at = NOW()
			  WHERE student_id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, studentID)
	return err
}
