package models

import "time"

// Teacher represents a program instructor. Teachers are managed separately
// from admin accounts and do not log into the console.
type Teacher struct {
	ID        string     `json:"id" validate:"required,uuid"`
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name" validate:"required"`
	Email     string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string     `json:"phone,omitempty"`
	Subject   string     `json:"subject,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// FullName returns the teacher's display name.
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
