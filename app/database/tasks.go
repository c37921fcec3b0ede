package database

import (
	"database/sql"
	"fmt"
	"strings"

	"amyza-admin/app/models"
)

// TaskFilters represents filtering options for the task board
type TaskFilters struct {
	Status     string
	AssigneeID string
	Search     string
}

func GetTasksWithFilters(db *sql.DB, filters TaskFilters) ([]*models.Task, error) {
	var conditions []string
	var args []interface{}

	conditions = append(conditions, "t.deleted_at IS NULL")

	if filters.Status != "" {
		args = append(args, filters.Status)
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", len(args)))
	}
	if filters.AssigneeID != "" {
		args = append(args, filters.AssigneeID)
		conditions = append(conditions, fmt.Sprintf("t.assignee_id = $%d", len(args)))
	}
	if filters.Search != "" {
		args = append(args, "%"+strings.ToLower(filters.Search)+"%")
		conditions = append(conditions, fmt.Sprintf("LOWER(t.title) LIKE $%d", len(args)))
	}

	query := `SELECT t.id, t.title, t.description, t.status, t.assignee_id, t.created_by,
			  t.deadline, t.deadline_locked, t.completed_at, t.created_at, t.updated_at,
			  a.first_name, a.last_name
			  FROM tasks t
			  LEFT JOIN admins a ON t.assignee_id = a.id
			  WHERE ` + strings.Join(conditions, " AND ") + `
			  ORDER BY t.deadline ASC NULLS LAST, t.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{}
		var firstName, lastName sql.NullString
		if err := rows.Scan(
			&task.ID, &task.Title, &task.Description, &task.Status, &task.AssigneeID,
			&task.CreatedBy, &task.Deadline, &task.DeadlineLocked, &task.CompletedAt,
			&task.CreatedAt, &task.UpdatedAt, &firstName, &lastName,
		); err != nil {
			return nil, err
		}
		if task.AssigneeID != nil && firstName.Valid {
			task.Assignee = &models.AdminProfile{
				ID:        *task.AssigneeID,
				FirstName: firstName.String,
				LastName:  lastName.String,
			}
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func GetTaskByID(db *sql.DB, taskID string) (*models.Task, error) {
	task := &models.Task{}
	query := `SELECT id, title, description, status, assignee_id, created_by, deadline,
			  deadline_locked, completed_at, created_at, updated_at
			  FROM tasks WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, taskID).Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.AssigneeID,
		&task.CreatedBy, &task.Deadline, &task.DeadlineLocked, &task.CompletedAt,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func CreateTask(db *sql.DB, task *models.Task) error {
	query := `INSERT INTO tasks (id, title, description, status, assignee_id, created_by, deadline, deadline_locked, completed_at, created_at, updated_at)
			  VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		task.Title, task.Description, task.Status, task.AssigneeID, task.CreatedBy,
		task.Deadline, task.DeadlineLocked, task.CompletedAt,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
}

func UpdateTask(db *sql.DB, task *models.Task) error {
	query := `UPDATE tasks
			  SET title = $1, description = $2, status = $3, assignee_id = $4,
			      deadline = $5, deadline_locked = $6, completed_at = $7, updated_at = NOW()
			  WHERE id = $8 AND deleted_at IS NULL`

	result, err := db.Exec(query,
		task.Title, task.Description, task.Status, task.AssigneeID,
		task.Deadline, task.DeadlineLocked, task.CompletedAt, task.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteTask(db *sql.DB, taskID string) error {
	query := `UPDATE tasks SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, taskID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
