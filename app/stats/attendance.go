package stats

import (
	"math"
	"time"

	"amyza-admin/app/models"
)

// Snapshot holds the display-ready attendance figures for a single day.
// Present is the attended headcount, so a late arrival counts there as well
// as in Late. Percentage is rounded only here at the display boundary so
// rounding error never compounds through averages.
type Snapshot struct {
	Percentage int `json:"percentage"`
	Present    int `json:"present"`
	Late       int `json:"late"`
	Absent     int `json:"absent"`
	Excused    int `json:"excused"`
	Total      int `json:"total"`
}

// dayKey normalizes a timestamp to its own calendar day, as UTC midnight so
// keys compare equal across locations. The date is read in the value's
// location rather than converted: a DATE column scans as midnight UTC while
// request dates parse as midnight local, and converting either one across
// zones would shift it onto the neighboring day.
func dayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// usable filters out malformed rows: a record with no valid status or a zero
// date carries no information and is skipped rather than failing the whole
// computation.
func usable(r *models.AttendanceRecord) bool {
	return r != nil && !r.Date.IsZero() && r.Status.Valid()
}

// DailyRate returns the attendance rate for one calendar day as a fraction in
// [0,1]: (present + late) / total. A day with no records rates 0.
func DailyRate(records []*models.AttendanceRecord, date time.Time) float64 {
	day := dayKey(date)
	attended, total := 0, 0
	for _, r := range records {
		if !usable(r) || !dayKey(r.Date).Equal(day) {
			continue
		}
		total++
		if r.Status.Attended() {
			attended++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(attended) / float64(total)
}

// PeriodAverage returns the unweighted mean of per-day rates for all days in
// [start, end] that have at least one record. Each day contributes equally
// regardless of headcount: the average measures consistency across days, not
// pooled attendance. Returns 0 when no day in the period has records.
func PeriodAverage(records []*models.AttendanceRecord, start, end time.Time) float64 {
	from, to := dayKey(start), dayKey(end)

	attended := make(map[time.Time]int)
	totals := make(map[time.Time]int)
	for _, r := range records {
		if !usable(r) {
			continue
		}
		day := dayKey(r.Date)
		if day.Before(from) || day.After(to) {
			continue
		}
		totals[day]++
		if r.Status.Attended() {
			attended[day]++
		}
	}
	if len(totals) == 0 {
		return 0
	}

	sum := 0.0
	for day, total := range totals {
		sum += float64(attended[day]) / float64(total)
	}
	return sum / float64(len(totals))
}

// WeekStart returns the most recent day whose weekday index is 0 (Sunday),
// as a normalized day key. A Sunday is its own week start.
func WeekStart(t time.Time) time.Time {
	day := dayKey(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeeklyAverage is the period average from the start of the current week
// through today, inclusive.
func WeeklyAverage(records []*models.AttendanceRecord, today time.Time) float64 {
	return PeriodAverage(records, WeekStart(today), today)
}

// DaySnapshot returns the counts and rounded percentage for one calendar day.
func DaySnapshot(records []*models.AttendanceRecord, date time.Time) Snapshot {
	day := dayKey(date)
	snap := Snapshot{}
	for _, r := range records {
		if !usable(r) || !dayKey(r.Date).Equal(day) {
			continue
		}
		snap.Total++
		switch r.Status {
		case models.Present:
			snap.Present++
		case models.Late:
			snap.Present++
			snap.Late++
		case models.Absent:
			snap.Absent++
		case models.Excused:
			snap.Excused++
		}
	}
	if snap.Total > 0 {
		snap.Percentage = RoundPercent(float64(snap.Present) / float64(snap.Total))
	}
	return snap
}

// RoundPercent converts a rate in [0,1] to the nearest whole percent.
func RoundPercent(rate float64) int {
	return int(math.Round(rate * 100))
}
