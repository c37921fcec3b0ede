package stats

import (
	"testing"
	"time"

	"amyza-admin/app/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func rec(studentID string, date time.Time, status models.AttendanceStatus) *models.AttendanceRecord {
	return &models.AttendanceRecord{
		ID:        studentID + date.Format("2006-01-02"),
		StudentID: studentID,
		BatchID:   "batch-1",
		Date:      date,
		Status:    status,
	}
}

func TestDailyRate(t *testing.T) {
	today := day(2026, 3, 16)

	tests := []struct {
		name    string
		records []*models.AttendanceRecord
		date    time.Time
		want    float64
	}{
		{
			name: "present and late both count as attended",
			records: []*models.AttendanceRecord{
				rec("s1", today, models.Present),
				rec("s2", today, models.Present),
				rec("s3", today, models.Late),
				rec("s4", today, models.Absent),
			},
			date: today,
			want: 0.75,
		},
		{
			name:    "no records yields zero, not NaN",
			records: nil,
			date:    today,
			want:    0,
		},
		{
			name: "other days are ignored",
			records: []*models.AttendanceRecord{
				rec("s1", today.AddDate(0, 0, -1), models.Present),
			},
			date: today,
			want: 0,
		},
		{
			name: "excused does not count as attended",
			records: []*models.AttendanceRecord{
				rec("s1", today, models.Excused),
				rec("s2", today, models.Present),
			},
			date: today,
			want: 0.5,
		},
		{
			name: "malformed record is skipped",
			records: []*models.AttendanceRecord{
				rec("s1", today, models.Present),
				rec("s2", today, models.AttendanceStatus("unknown")),
			},
			date: today,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailyRate(tt.records, tt.date)
			if got != tt.want {
				t.Errorf("DailyRate() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("DailyRate() = %v outside [0,1]", got)
			}
		})
	}
}

func TestDailyRateUTCStoredDates(t *testing.T) {
	// DATE columns scan as midnight UTC while request dates parse as midnight
	// local. Both must land in the same day bucket even on a server whose
	// local zone is west of UTC.
	restore := time.Local
	defer func() { time.Local = restore }()
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	time.Local = ny

	stored := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	queried := time.Date(2026, 3, 16, 0, 0, 0, 0, ny)

	records := []*models.AttendanceRecord{rec("s1", stored, models.Present)}
	if got := DailyRate(records, queried); got != 1.0 {
		t.Errorf("DailyRate() = %v, want 1.0 (UTC row must match local query day)", got)
	}

	snap := DaySnapshot(records, queried)
	if snap.Total != 1 || snap.Present != 1 {
		t.Errorf("DaySnapshot() = %+v, want the UTC-dated row counted", snap)
	}

	if got := PeriodAverage(records, queried, queried); got != 1.0 {
		t.Errorf("PeriodAverage() = %v, want 1.0", got)
	}
}

func TestPeriodAverageIsUnweighted(t *testing.T) {
	// Day one: 1 of 1 present. Day two: 100 of 100 present but one absent
	// would drag a pooled ratio; instead check the equal-days policy with an
	// asymmetric roster.
	d1 := day(2026, 3, 16)
	d2 := day(2026, 3, 17)

	records := []*models.AttendanceRecord{rec("s1", d1, models.Present)}
	for i := 0; i < 100; i++ {
		records = append(records, rec("big", d2, models.Present))
	}

	got := PeriodAverage(records, d1, d2)
	if got != 1.0 {
		t.Errorf("PeriodAverage() = %v, want 1.0 (equal-days mean, not pooled)", got)
	}

	// Now make the small day 0% and the big day 100%: pooled would be ~0.99,
	// the unweighted mean must be 0.5.
	records[0] = rec("s1", d1, models.Absent)
	got = PeriodAverage(records, d1, d2)
	if got != 0.5 {
		t.Errorf("PeriodAverage() = %v, want 0.5", got)
	}
}

func TestPeriodAverageEdges(t *testing.T) {
	d1 := day(2026, 3, 16)

	if got := PeriodAverage(nil, d1, d1.AddDate(0, 0, 6)); got != 0 {
		t.Errorf("PeriodAverage(empty) = %v, want 0", got)
	}

	// Records outside the period are excluded.
	records := []*models.AttendanceRecord{
		rec("s1", d1.AddDate(0, 0, -1), models.Present),
		rec("s1", d1, models.Absent),
	}
	if got := PeriodAverage(records, d1, d1); got != 0 {
		t.Errorf("PeriodAverage() = %v, want 0 (only in-period day counts)", got)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday rolls back to sunday", day(2026, 3, 16), "2026-03-15"},
		{"sunday is its own week start", day(2026, 3, 15), "2026-03-15"},
		{"saturday rolls back six days", day(2026, 3, 21), "2026-03-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.in)
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Weekday() != time.Sunday {
				t.Errorf("WeekStart(%v) falls on %v, want Sunday", tt.in, got.Weekday())
			}
		})
	}
}

func TestDaySnapshot(t *testing.T) {
	today := day(2026, 3, 16)
	records := []*models.AttendanceRecord{
		rec("s1", today, models.Present),
		rec("s2", today, models.Present),
		rec("s3", today, models.Late),
		rec("s4", today, models.Absent),
	}

	snap := DaySnapshot(records, today)
	if snap.Percentage != 75 {
		t.Errorf("Percentage = %d, want 75", snap.Percentage)
	}
	// The reported present count is the attended headcount: the late arrival
	// counts in Present as well as in Late.
	if snap.Present != 3 || snap.Late != 1 || snap.Absent != 1 || snap.Excused != 0 {
		t.Errorf("counts = %+v, want present=3 late=1 absent=1 excused=0", snap)
	}
	if snap.Total != 4 {
		t.Errorf("Total = %d, want 4", snap.Total)
	}

	empty := DaySnapshot(nil, today)
	if empty != (Snapshot{}) {
		t.Errorf("DaySnapshot(empty) = %+v, want zero snapshot", empty)
	}
}

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		rate float64
		want int
	}{
		{0, 0},
		{1, 100},
		{0.75, 75},
		{0.005, 1},
		{2.0 / 3.0, 67},
	}
	for _, tt := range tests {
		if got := RoundPercent(tt.rate); got != tt.want {
			t.Errorf("RoundPercent(%v) = %d, want %d", tt.rate, got, tt.want)
		}
	}
}

func TestWeeklyAverage(t *testing.T) {
	// Week of Sunday 2026-03-15. Records before the week start are ignored.
	sun := day(2026, 3, 15)
	mon := day(2026, 3, 16)
	prevFri := day(2026, 3, 13)

	records := []*models.AttendanceRecord{
		rec("s1", prevFri, models.Absent), // last week, excluded
		rec("s1", sun, models.Present),
		rec("s1", mon, models.Absent),
		rec("s2", mon, models.Present),
	}

	got := WeeklyAverage(records, mon)
	if got != 0.75 {
		t.Errorf("WeeklyAverage() = %v, want 0.75 (mean of 1.0 and 0.5)", got)
	}
}
