package models

import "time"

// TotalModules is the number of modules in the training program.
const TotalModules = 3

// Batch represents a cohort of students moving through the program together.
type Batch struct {
	ID            string      `json:"id" validate:"required,uuid"`
	Code          string      `json:"code" validate:"required"`
	Status        BatchStatus `json:"status" validate:"required,oneof=upcoming active completed"`
	CurrentModule int         `json:"current_module" validate:"min=1,max=3"`
	StartDate     time.Time   `json:"start_date"`
	EndDate       *time.Time  `json:"end_date,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	DeletedAt     *time.Time  `json:"deleted_at,omitempty"`
	StudentCount  int         `json:"student_count,omitempty"`
}
