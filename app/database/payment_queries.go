package database

import (
	"database/sql"
	"fmt"

	"edcenter/app/models"
)

// RecordPayment appends a transaction to the payment ledger. The pending
// balance check and the insert run inside one database transaction with the
// enrollment row locked, so two concurrent payments for the same enrollment
// cannot jointly exceed the pending balance.
func RecordPayment(db *sql.DB, payment *models.PaymentTransaction) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Lock the enrollment row for the duration of the transaction.
	var totalFees int64
	var locked bool
	err = tx.QueryRow(`SELECT total_fees, locked_at_first_payment
					   FROM curriculum_enrollments
					   WHERE id = $1
					   FOR UPDATE`, payment.EnrollmentID).Scan(&totalFees, &locked)
	if err != nil {
		if err == sql.ErrNoRows {
			return sql.ErrNoRows
		}
		return fmt.Errorf("failed to lock enrollment: %v", err)
	}

	// 2. Recompute the pending balance from the ledger.
	var amountPaid int64
	err = tx.QueryRow(`SELECT COALESCE(SUM(amount), 0)
					   FROM payment_transactions
					   WHERE enrollment_id = $1`, payment.EnrollmentID).Scan(&amountPaid)
	if err != nil {
		return fmt.Errorf("failed to sum payments: %v", err)
	}

	pending := totalFees - amountPaid
	if payment.Amount > pending {
		return &models.ExceedsPendingError{Pending: pending}
	}

	// 3. Append the transaction.
	query := `INSERT INTO payment_transactions
			  (enrollment_id, student_id, curriculum_id, amount, payment_method, payment_date,
			   transaction_reference, remarks, recorded_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at`
	err = tx.QueryRow(query, payment.EnrollmentID, payment.StudentID, payment.CurriculumID,
		payment.Amount, string(payment.PaymentMethod), payment.PaymentDate,
		payment.TransactionReference, payment.Remarks, payment.RecordedBy).Scan(
		&payment.ID, &payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %v", err)
	}

	// 4. The first payment freezes the discount/payment-plan election.
	if !locked {
		_, err = tx.Exec(`UPDATE curriculum_enrollments
						  SET locked_at_first_payment = true, updated_at = NOW()
						  WHERE id = $1`, payment.EnrollmentID)
		if err != nil {
			return fmt.Errorf("failed to lock enrollment terms: %v", err)
		}
	}

	return tx.Commit()
}

// SumPayments returns the total amount paid against an enrollment.
func SumPayments(db *sql.DB, enrollmentID string) (int64, error) {
	var total int64
	err := db.QueryRow(`SELECT COALESCE(SUM(amount), 0)
						FROM payment_transactions
						WHERE enrollment_id = $1`, enrollmentID).Scan(&total)
	return total, err
}

// GetTransactions returns an enrollment's payment history, oldest first so
// installment boundaries can be derived by walking the ledger in order.
func GetTransactions(db *sql.DB, enrollmentID string) ([]*models.PaymentTransaction, error) {
	query := `SELECT id, enrollment_id, student_id, curriculum_id, amount, payment_method,
			  payment_date, transaction_reference, remarks, recorded_by, created_at
			  FROM payment_transactions
			  WHERE enrollment_id = $1
			  ORDER BY payment_date, created_at`

	rows, err := db.Query(query, enrollmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.PaymentTransaction
	for rows.Next() {
		p := &models.PaymentTransaction{}
		var method string
		err := rows.Scan(&p.ID, &p.EnrollmentID, &p.StudentID, &p.CurriculumID, &p.Amount,
			&method, &p.PaymentDate, &p.TransactionReference, &p.Remarks, &p.RecordedBy, &p.CreatedAt)
		if err != nil {
			continue
		}
		p.PaymentMethod = models.PaymentMethod(method)
		transactions = append(transactions, p)
	}
	return transactions, nil
}

// SumPaymentsByEnrollments returns amount paid per enrollment id in one query;
// used by the center overview to avoid a query per student.
func SumPaymentsByEnrollments(db *sql.DB, centerID string) (map[string]int64, error) {
	query := `SELECT pt.enrollment_id, COALESCE(SUM(pt.amount), 0)
			  FROM payment_transactions pt
			  JOIN students s ON pt.student_id = s.id
			  WHERE s.center_id = $1
			  GROUP BY pt.enrollment_id`

	rows, err := db.Query(query, centerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := map[string]int64{}
	for rows.Next() {
		var enrollmentID string
		var total int64
		if err := rows.Scan(&enrollmentID, &total); err != nil {
			continue
		}
		totals[enrollmentID] = total
	}
	return totals, nil
}
