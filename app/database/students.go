package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"amyza-admin/app/models"
)

// StudentFilters represents filtering options for students
type StudentFilters struct {
	Search    string
	BatchID   string
	Status    string // "active" | "inactive" | ""
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

func GetStudentsWithFilters(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	var conditions []string
	var args []interface{}

	conditions = append(conditions, "s.deleted_at IS NULL")

	if filters.Search != "" {
		args = append(args, "%"+strings.ToLower(filters.Search)+"%")
		idx := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(s.first_name) LIKE $%d OR LOWER(s.last_name) LIKE $%d OR LOWER(s.student_code) LIKE $%d)", idx, idx, idx))
	}
	if filters.BatchID != "" {
		args = append(args, filters.BatchID)
		conditions = append(conditions, fmt.Sprintf("s.batch_id = $%d", len(args)))
	}
	switch filters.Status {
	case "active":
		conditions = append(conditions, "s.is_active = true")
	case "inactive":
		conditions = append(conditions, "s.is_active = false")
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := "SELECT COUNT(*) FROM students s " + where
	var total int
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	sortBy := "s.student_code"
	switch filters.SortBy {
	case "name":
		sortBy = "s.first_name"
	case "enrolled_at":
		sortBy = "s.enrolled_at"
	}
	sortOrder := "ASC"
	if strings.EqualFold(filters.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	query := `SELECT s.id, s.student_code, s.first_name, s.last_name, s.email, s.phone,
			  s.batch_id, s.is_active, s.enrolled_at, s.created_at, s.updated_at,
			  b.id, b.code, b.status, b.current_module
			  FROM students s
			  LEFT JOIN batches b ON s.batch_id = b.id ` + where +
		fmt.Sprintf(" ORDER BY %s %s", sortBy, sortOrder)

	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filters.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		var batchID, batchCode, batchStatus sql.NullString
		var currentModule sql.NullInt64
		if err := rows.Scan(
			&student.ID, &student.StudentCode, &student.FirstName, &student.LastName,
			&student.Email, &student.Phone, &student.BatchID, &student.IsActive,
			&student.EnrolledAt, &student.CreatedAt, &student.UpdatedAt,
			&batchID, &batchCode, &batchStatus, &currentModule,
		); err != nil {
			return nil, 0, err
		}
		if batchID.Valid {
			student.Batch = &models.Batch{
				ID:            batchID.String,
				Code:          batchCode.String,
				Status:        models.BatchStatus(batchStatus.String),
				CurrentModule: int(currentModule.Int64),
			}
		}
		students = append(students, student)
	}
	return students, total, rows.Err()
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT id, student_code, first_name, last_name, email, phone, batch_id,
			  is_active, enrolled_at, created_at, updated_at
			  FROM students WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, studentID).Scan(
		&student.ID, &student.StudentCode, &student.FirstName, &student.LastName,
		&student.Email, &student.Phone, &student.BatchID, &student.IsActive,
		&student.EnrolledAt, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

func GetActiveStudentsByBatch(db *sql.DB, batchID string) ([]*models.Student, error) {
	query := `SELECT id, student_code, first_name, last_name, email, phone, batch_id,
			  is_active, enrolled_at, created_at, updated_at
			  FROM students
			  WHERE batch_id = $1 AND is_active = true AND deleted_at IS NULL
			  ORDER BY student_code ASC`

	rows, err := db.Query(query, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(
			&student.ID, &student.StudentCode, &student.FirstName, &student.LastName,
			&student.Email, &student.Phone, &student.BatchID, &student.IsActive,
			&student.EnrolledAt, &student.CreatedAt, &student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (id, student_code, first_name, last_name, email, phone, batch_id, is_active, enrolled_at, created_at, updated_at)
			  VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, true, $7, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	enrolledAt := student.EnrolledAt
	if enrolledAt.IsZero() {
		enrolledAt = time.Now()
	}

	return db.QueryRow(query,
		student.StudentCode, student.FirstName, student.LastName,
		student.Email, student.Phone, student.BatchID, enrolledAt,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET first_name = $1, last_name = $2, email = $3, phone = $4,
			      batch_id = $5, is_active = $6, updated_at = NOW()
			  WHERE id = $7 AND deleted_at IS NULL`

	result, err := db.Exec(query,
		student.FirstName, student.LastName, student.Email, student.Phone,
		student.BatchID, student.IsActive, student.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteStudent(db *sql.DB, studentID string) error {
	query := `UPDATE students SET deleted_at = NOW(), is_active = false, updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, studentID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func CountActiveStudents(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM students WHERE is_active = true AND deleted_at IS NULL").Scan(&count)
	return count, err
}
