package database

import (
	"database/sql"
	"time"

	"amyza-admin/app/models"
)

// CreateOrUpdateAttendance saves a student's attendance record. One record
// exists per (student, date); marking again corrects the status in place, so
// student, batch and date never change after the first write.
func CreateOrUpdateAttendance(db *sql.DB, record *models.AttendanceRecord) error {
	query := `INSERT INTO attendance_records (id, student_id, batch_id, date, status, marked_by, created_at, updated_at)
			  VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, NOW(), NOW())
			  ON CONFLICT (student_id, date)
			  DO UPDATE SET status = EXCLUDED.status, marked_by = EXCLUDED.marked_by, updated_at = NOW()
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		record.StudentID, record.BatchID, record.Date, record.Status, record.MarkedBy,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
}

func scanAttendanceRows(rows *sql.Rows) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord
	for rows.Next() {
		record := &models.AttendanceRecord{}
		var firstName, lastName, studentCode sql.NullString
		if err := rows.Scan(
			&record.ID, &record.StudentID, &record.BatchID, &record.Date,
			&record.Status, &record.MarkedBy, &record.CreatedAt, &record.UpdatedAt,
			&studentCode, &firstName, &lastName,
		); err != nil {
			return nil, err
		}
		if studentCode.Valid {
			record.Student = &models.Student{
				ID:          record.StudentID,
				StudentCode: studentCode.String,
				FirstName:   firstName.String,
				LastName:    lastName.String,
			}
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

const attendanceSelect = `SELECT a.id, a.student_id, a.batch_id, a.date, a.status, a.marked_by,
		a.created_at, a.updated_at, s.student_code, s.first_name, s.last_name
		FROM attendance_records a
		JOIN students s ON a.student_id = s.id`

func GetAttendanceByBatchAndDate(db *sql.DB, batchID string, date time.Time) ([]*models.AttendanceRecord, error) {
	query := attendanceSelect + ` WHERE a.batch_id = $1 AND a.date = $2 ORDER BY s.student_code ASC`

	rows, err := db.Query(query, batchID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAttendanceRows(rows)
}

// GetAttendanceByDateRange returns records for [start, end] inclusive,
// optionally restricted to one batch.
func GetAttendanceByDateRange(db *sql.DB, batchID string, start, end time.Time) ([]*models.AttendanceRecord, error) {
	query := attendanceSelect + ` WHERE a.date >= $1 AND a.date <= $2`
	args := []interface{}{start, end}

	if batchID != "" {
		args = append(args, batchID)
		query += ` AND a.batch_id = $3`
	}
	query += ` ORDER BY a.date ASC, s.student_code ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAttendanceRows(rows)
}

func GetAttendanceByStudent(db *sql.DB, studentID string, start, end time.Time) ([]*models.AttendanceRecord, error) {
	query := attendanceSelect + ` WHERE a.student_id = $1 AND a.date >= $2 AND a.date <= $3 ORDER BY a.date ASC`

	rows, err := db.Query(query, studentID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAttendanceRows(rows)
}

// GetUnmarkedActiveStudents returns active students in active batches who
// have no attendance record for the given date. Used by the end-of-day job
// that fills in absences.
func GetUnmarkedActiveStudents(db *sql.DB, date time.Time) ([]*models.Student, error) {
	query := `SELECT s.id, s.student_code, s.first_name, s.last_name, s.batch_id
			  FROM students s
			  JOIN batches b ON s.batch_id = b.id AND b.status = 'active' AND b.deleted_at IS NULL
			  WHERE s.is_active = true AND s.deleted_at IS NULL
			  AND NOT EXISTS (
				  SELECT 1 FROM attendance_records a
				  WHERE a.student_id = s.id AND a.date = $1
			  )
			  ORDER BY s.student_code ASC`

	rows, err := db.Query(query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(
			&student.ID, &student.StudentCode, &student.FirstName, &student.LastName, &student.BatchID,
		); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}
