package database

import (
	"database/sql"
	"time"

	"amyza-admin/app/models"
)

func GetAllTeachers(db *sql.DB) ([]*models.Teacher, error) {
	query := `SELECT id, first_name, last_name, email, phone, subject, is_active, created_at, updated_at
			  FROM teachers WHERE deleted_at IS NULL ORDER BY first_name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher := &models.Teacher{}
		if err := rows.Scan(
			&teacher.ID, &teacher.FirstName, &teacher.LastName, &teacher.Email,
			&teacher.Phone, &teacher.Subject, &teacher.IsActive,
			&teacher.CreatedAt, &teacher.UpdatedAt,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}
	return teachers, rows.Err()
}

func GetTeacherByID(db *sql.DB, teacherID string) (*models.Teacher, error) {
	teacher := &models.Teacher{}
	query := `SELECT id, first_name, last_name, email, phone, subject, is_active, created_at, updated_at
			  FROM teachers WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, teacherID).Scan(
		&teacher.ID, &teacher.FirstName, &teacher.LastName, &teacher.Email,
		&teacher.Phone, &teacher.Subject, &teacher.IsActive,
		&teacher.CreatedAt, &teacher.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return teacher, nil
}

func CreateTeacher(db *sql.DB, teacher *models.Teacher) error {
	query := `INSERT INTO teachers (id, first_name, last_name, email, phone, subject, is_active, created_at, updated_at)
			  VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		teacher.FirstName, teacher.LastName, teacher.Email, teacher.Phone, teacher.Subject,
	).Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt)
}

func UpdateTeacher(db *sql.DB, teacher *models.Teacher) error {
	query := `UPDATE teachers
			  SET first_name = $1, last_name = $2, email = $3, phone = $4, subject = $5, is_active = $6, updated_at = NOW()
			  WHERE id = $7 AND deleted_at IS NULL`

	result, err := db.Exec(query,
		teacher.FirstName, teacher.LastName, teacher.Email, teacher.Phone,
		teacher.Subject, teacher.IsActive, teacher.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteTeacher(db *sql.DB, teacherID string) error {
	query := `UPDATE teachers SET deleted_at = NOW(), is_active = false, updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, teacherID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func CountActiveTeachers(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM teachers WHERE is_active = true AND deleted_at IS NULL").Scan(&count)
	return count, err
}

// CreateOrUpdateTeacherAttendance saves a teacher's attendance record.
func CreateOrUpdateTeacherAttendance(db *sql.DB, attendance *models.TeacherAttendance) error {
	query := `INSERT INTO teacher_attendance (id, teacher_id, date, status, remarks, created_at, updated_at)
			  VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW(), NOW())
			  ON CONFLICT (teacher_id, date)
			  DO UPDATE SET status = EXCLUDED.status, remarks = EXCLUDED.remarks, updated_at = NOW()
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		attendance.TeacherID, attendance.Date, attendance.Status, attendance.Remarks,
	).Scan(&attendance.ID, &attendance.CreatedAt, &attendance.UpdatedAt)
}

// GetTeacherAttendanceByDate retrieves all teacher attendance records for a date.
func GetTeacherAttendanceByDate(db *sql.DB, date time.Time) ([]*models.TeacherAttendance, error) {
	query := `SELECT ta.id, ta.teacher_id, ta.date, ta.status, ta.remarks, ta.created_at, ta.updated_at,
			  t.first_name, t.last_name
			  FROM teacher_attendance ta
			  JOIN teachers t ON ta.teacher_id = t.id
			  WHERE ta.date = $1
			  ORDER BY t.first_name ASC`

	rows, err := db.Query(query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.TeacherAttendance
	for rows.Next() {
		record := &models.TeacherAttendance{}
		var firstName, lastName string
		if err := rows.Scan(
			&record.ID, &record.TeacherID, &record.Date, &record.Status, &record.Remarks,
			&record.CreatedAt, &record.UpdatedAt, &firstName, &lastName,
		); err != nil {
			return nil, err
		}
		record.Teacher = &models.Teacher{ID: record.TeacherID, FirstName: firstName, LastName: lastName}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetTeacherAttendanceRange retrieves one teacher's records for [start, end].
func GetTeacherAttendanceRange(db *sql.DB, teacherID string, start, end time.Time) ([]*models.TeacherAttendance, error) {
	query := `SELECT id, teacher_id, date, status, remarks, created_at, updated_at
			  FROM teacher_attendance
			  WHERE teacher_id = $1 AND date >= $2 AND date <= $3
			  ORDER BY date ASC`

	rows, err := db.Query(query, teacherID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.TeacherAttendance
	for rows.Next() {
		record := &models.TeacherAttendance{}
		if err := rows.Scan(
			&record.ID, &record.TeacherID, &record.Date, &record.Status, &record.Remarks,
			&record.CreatedAt, &record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
