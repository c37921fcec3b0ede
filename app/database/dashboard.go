package database

import (
	"database/sql"
	"fmt"

	"amyza-admin/app/models"
)

// GetRecentActivities builds the dashboard feed from the latest attendance
// markings and task changes.
func GetRecentActivities(db *sql.DB, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT 'attendance', s.first_name || ' ' || s.last_name, a.status::text, a.updated_at
			  FROM attendance_records a
			  JOIN students s ON a.student_id = s.id
			  UNION ALL
			  SELECT 'task', t.title, t.status::text, t.updated_at
			  FROM tasks t
			  WHERE t.deleted_at IS NULL
			  ORDER BY 4 DESC
			  LIMIT $1`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var kind, subject, status string
		var activity models.Activity
		if err := rows.Scan(&kind, &subject, &status, &activity.RawTime); err != nil {
			return nil, err
		}
		activity.Type = kind
		switch kind {
		case "attendance":
			activity.Title = "Attendance marked"
			activity.Description = fmt.Sprintf("%s - %s", subject, status)
			activity.Icon = "check"
			activity.Color = "green"
		case "task":
			activity.Title = "Task updated"
			activity.Description = fmt.Sprintf("%s - %s", subject, status)
			activity.Icon = "clipboard-list"
			activity.Color = "purple"
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}
