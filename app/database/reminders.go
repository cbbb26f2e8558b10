package database

import (
	"database/sql"

	"edcenter/app/models"
)

// CreateInstallmentReminder inserts a reminder unless one already exists for
// the enrollment+installment pair. Returns true when a row was created.
func CreateInstallmentReminder(db *sql.DB, reminder *models.InstallmentReminder) (bool, error) {
	query := `INSERT INTO installment_reminders (enrollment_id, installment_number, present_count, amount_pending)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (enrollment_id, installment_number) DO NOTHING
			  RETURNING id, created_at`

	err := db.QueryRow(query, reminder.EnrollmentID, reminder.InstallmentNumber,
		reminder.PresentCount, reminder.AmountPending).Scan(&reminder.ID, &reminder.CreatedAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetPendingReminders lists reminders newest first, with student and
// curriculum names attached for staff follow-up.
func GetPendingReminders(db *sql.DB, limit, offset int) ([]*models.InstallmentReminder, error) {
	query := `SELECT r.id, r.enrollment_id, r.installment_number, r.present_count, r.amount_pending,
			  r.created_at,
			  s.first_name || ' ' || s.last_name as student_name, s.student_code, cu.name as curriculum_name
			  FROM installment_reminders r
			  JOIN curriculum_enrollments e ON r.enrollment_id = e.id
			  JOIN students s ON e.student_id = s.id
			  JOIN curriculums cu ON e.curriculum_id = cu.id
			  ORDER BY r.created_at DESC
			  LIMIT $1 OFFSET $2`

	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []*models.InstallmentReminder
	for rows.Next() {
		r := &models.InstallmentReminder{}
		err := rows.Scan(&r.ID, &r.EnrollmentID, &r.InstallmentNumber, &r.PresentCount,
			&r.AmountPending, &r.CreatedAt, &r.StudentName, &r.StudentCode, &r.CurriculumName)
		if err != nil {
			continue
		}
		reminders = append(reminders, r)
	}
	return reminders, nil
}

// CountPendingReminders returns the number of reminder rows.
func CountPendingReminders(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM installment_reminders`).Scan(&count)
	return count, err
}
