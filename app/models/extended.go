package models

import "time"

// Activity represents an entry in the dashboard recent-activity feed.
type Activity struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	RawTime     time.Time `json:"timestamp"`
}

// StudentRanking extends a student with display fields for the ranking table.
type StudentRanking struct {
	StudentID    string  `json:"student_id"`
	StudentCode  string  `json:"student_code"`
	Name         string  `json:"name"`
	BatchCode    string  `json:"batch_code,omitempty"`
	OverallScore float64 `json:"overall_score"`
	Rank         int     `json:"rank"`
}
