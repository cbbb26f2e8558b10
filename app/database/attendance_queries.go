package database

import (
	"database/sql"
	"time"

	"edcenter/app/models"
)

// CreateOrUpdateAttendance upserts the attendance record for a student+date.
// Attendance is one row per student per date; re-marking replaces the status.
func CreateOrUpdateAttendance(db *sql.DB, attendance *models.Attendance) error {
	query := `INSERT INTO attendance (student_id, class_id, date, status, marked_by)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (student_id, date)
			  DO UPDATE SET status = EXCLUDED.status, class_id = EXCLUDED.class_id,
							marked_by = EXCLUDED.marked_by, updated_at = NOW()
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, attendance.StudentID, attendance.ClassID, attendance.Date,
		string(attendance.Status), attendance.MarkedBy).Scan(
		&attendance.ID, &attendance.CreatedAt, &attendance.UpdatedAt)
}

func GetAttendanceByClassAndDate(db *sql.DB, classID string, date time.Time) ([]*models.Attendance, error) {
	query := `SELECT a.id, a.student_id, a.class_id, a.date, a.status, a.marked_by,
			  a.created_at, a.updated_at,
			  s.first_name, s.last_name, s.student_code
			  FROM attendance a
			  JOIN students s ON a.student_id = s.id
			  WHERE a.class_id = $1 AND a.date = $2 AND s.deleted_at IS NULL
			  ORDER BY s.first_name, s.last_name`

	rows, err := db.Query(query, classID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{Student: &models.Student{}}
		var status string
		err := rows.Scan(&a.ID, &a.StudentID, &a.ClassID, &a.Date, &status, &a.MarkedBy,
			&a.CreatedAt, &a.UpdatedAt,
			&a.Student.FirstName, &a.Student.LastName, &a.Student.StudentCode)
		if err != nil {
			continue
		}
		a.Status = models.AttendanceStatus(status)
		a.Student.ID = a.StudentID
		records = append(records, a)
	}
	return records, nil
}

func GetAttendanceByStudent(db *sql.DB, studentID string, limit, offset int) ([]*models.Attendance, error) {
	query := `SELECT id, student_id, class_id, date, status, marked_by, created_at, updated_at
			  FROM attendance
			  WHERE student_id = $1
			  ORDER BY date DESC
			  LIMIT $2 OFFSET $3`

	rows, err := db.Query(query, studentID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{}
		var status string
		err := rows.Scan(&a.ID, &a.StudentID, &a.ClassID, &a.Date, &status, &a.MarkedBy,
			&a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			continue
		}
		a.Status = models.AttendanceStatus(status)
		records = append(records, a)
	}
	return records, nil
}

// CountPresentSince counts a student's "present" records strictly after the
// given date. The installment engine feeds it the last installment boundary.
func CountPresentSince(db *sql.DB, studentID string, since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM attendance
			  WHERE student_id = $1 AND status = 'present' AND date > $2`
	err := db.QueryRow(query, studentID, since).Scan(&count)
	return count, err
}

// GetAttendanceSummary returns per-status counts for a student.
func GetAttendanceSummary(db *sql.DB, studentID string) (map[string]int, error) {
	query := `SELECT status, COUNT(*) FROM attendance
			  WHERE student_id = $1
			  GROUP BY status`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			continue
		}
		summary[status] = count
	}
	return summary, nil
}
