package services

import (
	"database/sql"
	"log"
	"time"

	"amyza-admin/app/database"
	"amyza-admin/app/models"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 9:00 PM (21:00)
			if now.Hour() == 21 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [21:00]...")

				if err := FillUnmarkedAttendance(db, now); err != nil {
					log.Printf("Error filling unmarked attendance: %v", err)
				}
			}
		}
	}()
}

// FillUnmarkedAttendance records an absence for every active student whose
// attendance was never marked for the given day, so weekly averages do not
// silently skip forgotten days.
func FillUnmarkedAttendance(db *sql.DB, date time.Time) error {
	students, err := database.GetUnmarkedActiveStudents(db, date)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		return nil
	}

	filled := 0
	for _, record := range absenceRecords(students, date) {
		if err := database.CreateOrUpdateAttendance(db, record); err != nil {
			log.Printf("Failed to mark student %s absent: %v", record.StudentID, err)
			continue
		}
		filled++
	}

	log.Printf("Marked %d unmarked students absent for %s", filled, date.Format("2006-01-02"))
	return nil
}

// absenceRecords builds the absent rows for students with no attendance
// record on the given day. The upsert keyed on (student_id, date) keeps a
// re-run from duplicating rows.
func absenceRecords(students []*models.Student, date time.Time) []*models.AttendanceRecord {
	records := make([]*models.AttendanceRecord, 0, len(students))
	for _, student := range students {
		if student == nil {
			continue
		}
		records = append(records, &models.AttendanceRecord{
			StudentID: student.ID,
			BatchID:   student.BatchID,
			Date:      date,
			Status:    models.Absent,
		})
	}
	return records
}
