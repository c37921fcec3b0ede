package services

import (
	"testing"
	"time"

	"amyza-admin/app/models"
)

func TestAbsenceRecords(t *testing.T) {
	date := time.Date(2026, 3, 16, 21, 0, 0, 0, time.Local)
	students := []*models.Student{
		{ID: "s1", BatchID: "b1"},
		nil,
		{ID: "s2", BatchID: "b2"},
	}

	records := absenceRecords(students, date)
	if len(records) != 2 {
		t.Fatalf("absenceRecords() returned %d records, want 2", len(records))
	}
	for i, r := range records {
		if r.Status != models.Absent {
			t.Errorf("record %d status = %q, want %q", i, r.Status, models.Absent)
		}
		if !r.Date.Equal(date) {
			t.Errorf("record %d date = %v, want %v", i, r.Date, date)
		}
	}
	if records[0].StudentID != "s1" || records[0].BatchID != "b1" {
		t.Errorf("record 0 = %s/%s, want s1/b1", records[0].StudentID, records[0].BatchID)
	}
	if records[1].StudentID != "s2" || records[1].BatchID != "b2" {
		t.Errorf("record 1 = %s/%s, want s2/b2", records[1].StudentID, records[1].BatchID)
	}
}

func TestAbsenceRecordsEmpty(t *testing.T) {
	if got := absenceRecords(nil, time.Now()); len(got) != 0 {
		t.Errorf("absenceRecords(nil) returned %d records, want 0", len(got))
	}
}
