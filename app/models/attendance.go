package models

import (
	"strings"
	"time"
)

// AttendanceRecord represents a student's attendance for one class session.
// Exactly one record exists per (student, date) pair; the stored status is the
// canonical status for that day. Date, student and batch are immutable once
// written; only the status may be corrected.
type AttendanceRecord struct {
	ID        string           `json:"id" validate:"required,uuid"`
	StudentID string           `json:"student_id" validate:"required,uuid"`
	BatchID   string           `json:"batch_id" validate:"required,uuid"`
	Date      time.Time        `json:"date" validate:"required"`
	Status    AttendanceStatus `json:"status" validate:"required,oneof=present absent late excused"`
	MarkedBy  *string          `json:"marked_by,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Student   *Student         `json:"student,omitempty"`
}

// DayLabel returns the lowercase weekday label for the record's date.
// The label is derived from the date, never stored independently.
func (a *AttendanceRecord) DayLabel() string {
	return strings.ToLower(a.Date.Weekday().String())
}

// TeacherAttendance represents a teacher's attendance record for a date.
type TeacherAttendance struct {
	ID        string           `json:"id"`
	TeacherID string           `json:"teacher_id" validate:"required,uuid"`
	Date      time.Time        `json:"date" validate:"required"`
	Status    AttendanceStatus `json:"status" validate:"required,oneof=present absent late excused"`
	Remarks   string           `json:"remarks,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Teacher   *Teacher         `json:"teacher,omitempty"`
}
