package models

import "time"

// Student represents an enrolled trainee. Students belong to exactly one batch.
type Student struct {
	ID          string     `json:"id" validate:"required,uuid"`
	StudentCode string     `json:"student_code" validate:"required"`
	FirstName   string     `json:"first_name" validate:"required"`
	LastName    string     `json:"last_name" validate:"required"`
	Email       string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string     `json:"phone,omitempty"`
	BatchID     string     `json:"batch_id" validate:"required,uuid"`
	IsActive    bool       `json:"is_active"`
	EnrolledAt  time.Time  `json:"enrolled_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	Batch       *Batch     `json:"batch,omitempty"`
}

// FullName returns the display name used in tables and rankings.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
