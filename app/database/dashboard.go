package database

import (
	"database/sql"

	"edcenter/app/models"
)

// GetDashboardStats returns statistics for the admin dashboard.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE is_active = true AND deleted_at IS NULL`).Scan(&stats.TotalStudents)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM centers WHERE is_active = true AND deleted_at IS NULL`).Scan(&stats.TotalCenters)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM classes WHERE is_active = true AND deleted_at IS NULL`).Scan(&stats.TotalClasses)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM curriculums WHERE is_active = true AND deleted_at IS NULL`).Scan(&stats.TotalCurriculums)
	if err != nil {
		return nil, err
	}

	// Collected vs. pending across every enrollment, derived from the ledger.
	err = db.QueryRow(`
		SELECT
			COALESCE(SUM(p.paid), 0),
			COALESCE(SUM(e.total_fees - p.paid), 0),
			COUNT(CASE WHEN p.paid >= e.total_fees THEN 1 END),
			COUNT(CASE WHEN p.paid < e.total_fees THEN 1 END)
		FROM curriculum_enrollments e
		LEFT JOIN LATERAL (
			SELECT COALESCE(SUM(amount), 0) as paid
			FROM payment_transactions pt
			WHERE pt.enrollment_id = e.id
		) p ON true
	`).Scan(&stats.TotalCollected, &stats.TotalPending, &stats.StudentsFullyPaid, &stats.StudentsWithDues)
	if err != nil {
		return nil, err
	}

	// Today's attendance rate across all marked students.
	var present, marked int
	err = db.QueryRow(`
		SELECT
			COUNT(CASE WHEN status = 'present' THEN 1 END),
			COUNT(*)
		FROM attendance
		WHERE date = CURRENT_DATE
	`).Scan(&present, &marked)
	if err != nil {
		return nil, err
	}
	if marked > 0 {
		stats.TodayAttendance = float64(present) / float64(marked) * 100
	}

	reminders, err := CountPendingReminders(db)
	if err != nil {
		return nil, err
	}
	stats.PendingReminders = reminders

	return stats, nil
}
