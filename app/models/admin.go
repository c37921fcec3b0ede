package models

import "time"

// AdminProfile represents a console account. The role tag is the sole
// authorization input; it is one of super_admin, admin or viewer and never
// changes as a side effect of a read.
type AdminProfile struct {
	ID        string     `json:"id" validate:"required,uuid"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"-" validate:"required,min=8"`
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name" validate:"required"`
	Phone     string     `json:"phone,omitempty"`
	Role      string     `json:"role" validate:"required,oneof=super_admin admin viewer"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// FullName returns the admin's display name.
func (a *AdminProfile) FullName() string {
	return a.FirstName + " " + a.LastName
}
