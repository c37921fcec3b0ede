package models

import (
	"testing"
	"time"
)

func TestApplyStatus(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	later := now.Add(2 * time.Hour)

	tests := []struct {
		name          string
		initial       TaskStatus
		initialDone   *time.Time
		apply         TaskStatus
		wantCompleted bool
	}{
		{
			name:          "completing sets completed_at",
			initial:       TaskInProgress,
			apply:         TaskCompleted,
			wantCompleted: true,
		},
		{
			name:          "reopening clears completed_at",
			initial:       TaskCompleted,
			initialDone:   &now,
			apply:         TaskInProgress,
			wantCompleted: false,
		},
		{
			name:          "not started stays unset",
			initial:       TaskNotStarted,
			apply:         TaskInProgress,
			wantCompleted: false,
		},
		{
			name:          "re-completing keeps original timestamp",
			initial:       TaskCompleted,
			initialDone:   &now,
			apply:         TaskCompleted,
			wantCompleted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{Status: tt.initial, CompletedAt: tt.initialDone}
			task.ApplyStatus(tt.apply, later)

			if task.Status != tt.apply {
				t.Errorf("ApplyStatus() status = %v, want %v", task.Status, tt.apply)
			}
			if (task.CompletedAt != nil) != tt.wantCompleted {
				t.Errorf("ApplyStatus() completed_at set = %v, want %v", task.CompletedAt != nil, tt.wantCompleted)
			}
			// A task already completed must not get a fresh timestamp
			if tt.initial == TaskCompleted && tt.apply == TaskCompleted && !task.CompletedAt.Equal(now) {
				t.Errorf("ApplyStatus() overwrote completed_at on no-op transition")
			}
		})
	}
}

func TestAttendanceStatusAttended(t *testing.T) {
	tests := []struct {
		status AttendanceStatus
		want   bool
	}{
		{Present, true},
		{Late, true},
		{Absent, false},
		{Excused, false},
	}
	for _, tt := range tests {
		if got := tt.status.Attended(); got != tt.want {
			t.Errorf("%s.Attended() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestDayLabel(t *testing.T) {
	rec := &AttendanceRecord{Date: time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)} // a Monday
	if got := rec.DayLabel(); got != "monday" {
		t.Errorf("DayLabel() = %q, want %q", got, "monday")
	}
}
