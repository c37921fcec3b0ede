package stats

import (
	"testing"

	"amyza-admin/app/models"
)

func task(status models.TaskStatus) *models.Task {
	return &models.Task{Title: "t", Status: status, CreatedBy: "admin-1"}
}

func TestCountTasks(t *testing.T) {
	tasks := []*models.Task{
		task(models.TaskNotStarted),
		task(models.TaskNotStarted),
		task(models.TaskInProgress),
		task(models.TaskCompleted),
	}

	stats := CountTasks(tasks)
	want := TaskStats{Total: 4, NotStarted: 2, InProgress: 1, Completed: 1}
	if stats != want {
		t.Errorf("CountTasks() = %+v, want %+v", stats, want)
	}
}

func TestCountTasksEdges(t *testing.T) {
	if stats := CountTasks(nil); stats != (TaskStats{}) {
		t.Errorf("CountTasks(nil) = %+v, want all zeros", stats)
	}

	// Unknown statuses still sum to total.
	tasks := []*models.Task{
		task(models.TaskCompleted),
		task(models.TaskStatus("ARCHIVED")),
		nil,
	}
	stats := CountTasks(tasks)
	if stats.Total != 2 {
		t.Errorf("Total = %d, want 2", stats.Total)
	}
	if got := stats.NotStarted + stats.InProgress + stats.Completed + stats.Other; got != stats.Total {
		t.Errorf("buckets sum to %d, want Total %d", got, stats.Total)
	}
}

func TestCountAdmins(t *testing.T) {
	profiles := []*models.AdminProfile{
		{Role: "super_admin"},
		{Role: "admin"},
		{Role: "admin"},
		{Role: "viewer"},
		{Role: "intern"}, // unrecognized tag
	}

	stats := CountAdmins(profiles)
	want := AdminStats{Total: 5, SuperAdmins: 1, Admins: 2, Viewers: 1, Other: 1}
	if stats != want {
		t.Errorf("CountAdmins() = %+v, want %+v", stats, want)
	}

	if stats := CountAdmins(nil); stats != (AdminStats{}) {
		t.Errorf("CountAdmins(nil) = %+v, want all zeros", stats)
	}
}
