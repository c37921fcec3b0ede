package models

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Excused AttendanceStatus = "excused"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case Present, Absent, Late, Excused:
		return true
	default:
		return false
	}
}

// Attended reports whether the status counts toward the attendance rate.
// Late arrivals still attended the session.
func (s AttendanceStatus) Attended() bool {
	return s == Present || s == Late
}

// BatchStatus defines the lifecycle states of a batch (cohort).
type BatchStatus string

const (
	BatchUpcoming  BatchStatus = "upcoming"
	BatchActive    BatchStatus = "active"
	BatchCompleted BatchStatus = "completed"
)

// Valid returns true when the status is a supported value.
func (s BatchStatus) Valid() bool {
	switch s {
	case BatchUpcoming, BatchActive, BatchCompleted:
		return true
	default:
		return false
	}
}

// TaskStatus defines the possible status values for internal tasks.
type TaskStatus string

const (
	TaskNotStarted TaskStatus = "NOT_STARTED"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
)

// Valid returns true when the status is a supported value.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskNotStarted, TaskInProgress, TaskCompleted:
		return true
	default:
		return false
	}
}
