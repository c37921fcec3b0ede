package stats

import (
	"amyza-admin/app/models"
	"amyza-admin/app/permissions"
)

// TaskStats partitions a task collection by status. The buckets always sum to
// Total; an unknown status still counts toward Total via Other.
type TaskStats struct {
	Total      int `json:"total"`
	NotStarted int `json:"not_started"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Other      int `json:"other,omitempty"`
}

// CountTasks reduces a task collection to per-status counts. An empty or nil
// input yields all-zero stats.
func CountTasks(tasks []*models.Task) TaskStats {
	stats := TaskStats{}
	for _, t := range tasks {
		if t == nil {
			continue
		}
		stats.Total++
		switch t.Status {
		case models.TaskNotStarted:
			stats.NotStarted++
		case models.TaskInProgress:
			stats.InProgress++
		case models.TaskCompleted:
			stats.Completed++
		default:
			stats.Other++
		}
	}
	return stats
}

// AdminStats partitions console accounts by role. Buckets always sum to Total.
type AdminStats struct {
	Total       int `json:"total"`
	SuperAdmins int `json:"super_admins"`
	Admins      int `json:"admins"`
	Viewers     int `json:"viewers"`
	Other       int `json:"other,omitempty"`
}

// CountAdmins reduces an admin collection to per-role counts.
func CountAdmins(profiles []*models.AdminProfile) AdminStats {
	stats := AdminStats{}
	for _, p := range profiles {
		if p == nil {
			continue
		}
		stats.Total++
		switch permissions.ParseRole(p.Role) {
		case permissions.RoleSuperAdmin:
			stats.SuperAdmins++
		case permissions.RoleAdmin:
			stats.Admins++
		case permissions.RoleViewer:
			stats.Viewers++
		default:
			stats.Other++
		}
	}
	return stats
}
