package models

import "time"

// Task represents an internal staff task tracked on the console.
type Task struct {
	ID             string        `json:"id" validate:"required,uuid"`
	Title          string        `json:"title" validate:"required"`
	Description    string        `json:"description,omitempty"`
	Status         TaskStatus    `json:"status" validate:"required,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
	AssigneeID     *string       `json:"assignee_id,omitempty" validate:"omitempty,uuid"`
	CreatedBy      string        `json:"created_by" validate:"required,uuid"`
	Deadline       *time.Time    `json:"deadline,omitempty"`
	DeadlineLocked bool          `json:"deadline_locked"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	DeletedAt      *time.Time    `json:"deleted_at,omitempty"`
	Assignee       *AdminProfile `json:"assignee,omitempty"`
	Creator        *AdminProfile `json:"creator,omitempty"`
}

// ApplyStatus moves the task to the given status and keeps completed_at
// consistent with it: the timestamp is set exactly when the task transitions
// into COMPLETED and cleared whenever it leaves that state. completed_at is
// never settable on its own.
func (t *Task) ApplyStatus(status TaskStatus, now time.Time) {
	if status == TaskCompleted {
		if t.Status != TaskCompleted {
			t.CompletedAt = &now
		}
	} else {
		t.CompletedAt = nil
	}
	t.Status = status
}
