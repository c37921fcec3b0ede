package models

import "time"

// PerformanceScore holds the recorded sub-scores for a student in the current
// scoring period. The overall score and rank are always derived from these
// values on demand; they are never persisted.
type PerformanceScore struct {
	ID                   string     `json:"id" validate:"required,uuid"`
	StudentID            string     `json:"student_id" validate:"required,uuid"`
	TechnicalScore       float64    `json:"technical_score" validate:"min=0,max=10"`
	CommunicationScore   float64    `json:"communication_score" validate:"min=0,max=10"`
	AttendancePercentage float64    `json:"attendance_percentage" validate:"min=0,max=100"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	DeletedAt            *time.Time `json:"deleted_at,omitempty"`
	Student              *Student   `json:"student,omitempty"`
}
