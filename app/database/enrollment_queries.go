package database

import (
	"database/sql"
	"fmt"

	"edcenter/app/models"
)

const enrollmentColumns = `id, student_id, curriculum_id, original_fees, discount_percentage,
	discount_reason, discount_amount, total_fees, payment_plan, total_installments,
	installment_amount, class_format, locked_at_first_payment, created_at, updated_at`

func scanEnrollment(row interface{ Scan(...interface{}) error }) (*models.CurriculumEnrollment, error) {
	e := &models.CurriculumEnrollment{}
	var plan, format string
	err := row.Scan(&e.ID, &e.StudentID, &e.CurriculumID, &e.OriginalFees, &e.DiscountPercentage,
		&e.DiscountReason, &e.DiscountAmount, &e.TotalFees, &plan, &e.TotalInstallments,
		&e.InstallmentAmount, &format, &e.LockedAtFirstPayment, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.PaymentPlan = models.PaymentPlan(plan)
	e.ClassFormat = models.ClassFormat(format)
	return e, nil
}

// GetEnrollment returns the billing enrollment for a student+curriculum pair.
func GetEnrollment(db *sql.DB, studentID, curriculumID string) (*models.CurriculumEnrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM curriculum_enrollments
			  WHERE student_id = $1 AND curriculum_id = $2`
	return scanEnrollment(db.QueryRow(query, studentID, curriculumID))
}

func GetEnrollmentByID(db *sql.DB, enrollmentID string) (*models.CurriculumEnrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM curriculum_enrollments WHERE id = $1`
	return scanEnrollment(db.QueryRow(query, enrollmentID))
}

// SaveEnrollment inserts the enrollment, or replaces its billing terms while
// it is still unlocked. The WHERE guard makes the immutability rule hold even
// if two requests race: once locked_at_first_payment is set no update matches.
func SaveEnrollment(db *sql.DB, e *models.CurriculumEnrollment) error {
	query := `INSERT INTO curriculum_enrollments
			  (student_id, curriculum_id, original_fees, discount_percentage, discount_reason,
			   discount_amount, total_fees, payment_plan, total_installments, installment_amount, class_format)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  ON CONFLICT (student_id, curriculum_id) DO UPDATE SET
				  original_fees = EXCLUDED.original_fees,
				  discount_percentage = EXCLUDED.discount_percentage,
				  discount_reason = EXCLUDED.discount_reason,
				  discount_amount = EXCLUDED.discount_amount,
				  total_fees = EXCLUDED.total_fees,
				  payment_plan = EXCLUDED.payment_plan,
				  total_installments = EXCLUDED.total_installments,
				  installment_amount = EXCLUDED.installment_amount,
				  class_format = EXCLUDED.class_format,
				  updated_at = NOW()
			  WHERE curriculum_enrollments.locked_at_first_payment = false
			  RETURNING id, locked_at_first_payment, created_at, updated_at`

	err := db.QueryRow(query, e.StudentID, e.CurriculumID, e.OriginalFees, e.DiscountPercentage,
		e.DiscountReason, e.DiscountAmount, e.TotalFees, string(e.PaymentPlan),
		e.TotalInstallments, e.InstallmentAmount, string(e.ClassFormat)).Scan(
		&e.ID, &e.LockedAtFirstPayment, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		// The upsert matched a locked row, so nothing was written.
		return models.ErrEnrollmentLocked
	}
	if err != nil {
		return fmt.Errorf("failed to save enrollment: %v", err)
	}
	return nil
}

// GetEnrollmentsByCenter returns every enrollment of the center's active
// students, with names attached for overview rendering.
func GetEnrollmentsByCenter(db *sql.DB, centerID string) ([]*models.CurriculumEnrollment, error) {
	query := `SELECT e.id, e.student_id, e.curriculum_id, e.original_fees, e.discount_percentage,
			  e.discount_reason, e.discount_amount, e.total_fees, e.payment_plan, e.total_installments,
			  e.installment_amount, e.class_format, e.locked_at_first_payment, e.created_at, e.updated_at,
			  s.first_name, s.last_name, s.student_code, cu.name as curriculum_name
			  FROM curriculum_enrollments e
			  JOIN students s ON e.student_id = s.id
			  JOIN curriculums cu ON e.curriculum_id = cu.id
			  WHERE s.center_id = $1 AND s.is_active = true AND s.deleted_at IS NULL
			  ORDER BY s.first_name, s.last_name`

	rows, err := db.Query(query, centerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.CurriculumEnrollment
	for rows.Next() {
		e := &models.CurriculumEnrollment{
			Student:    &models.Student{},
			Curriculum: &models.Curriculum{},
		}
		var plan, format string
		err := rows.Scan(&e.ID, &e.StudentID, &e.CurriculumID, &e.OriginalFees, &e.DiscountPercentage,
			&e.DiscountReason, &e.DiscountAmount, &e.TotalFees, &plan, &e.TotalInstallments,
			&e.InstallmentAmount, &format, &e.LockedAtFirstPayment, &e.CreatedAt, &e.UpdatedAt,
			&e.Student.FirstName, &e.Student.LastName, &e.Student.StudentCode, &e.Curriculum.Name)
		if err != nil {
			continue
		}
		e.PaymentPlan = models.PaymentPlan(plan)
		e.ClassFormat = models.ClassFormat(format)
		e.Student.ID = e.StudentID
		e.Curriculum.ID = e.CurriculumID
		enrollments = append(enrollments, e)
	}
	return enrollments, nil
}

// GetAllEnrollments returns every enrollment with an outstanding balance
// candidate; used by the nightly reminder job.
func GetAllEnrollments(db *sql.DB) ([]*models.CurriculumEnrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM curriculum_enrollments ORDER BY created_at`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.CurriculumEnrollment
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			continue
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, nil
}
