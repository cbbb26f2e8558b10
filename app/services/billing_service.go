package services

import (
	"database/sql"

	"edcenter/app/config"
	"edcenter/app/database"
	"edcenter/app/models"
)

// TermsFromEnrollment rebuilds the fixed billing terms stored on an enrollment.
func TermsFromEnrollment(e *models.CurriculumEnrollment) *BillingTerms {
	return &BillingTerms{
		OriginalFees:       e.OriginalFees,
		DiscountPercentage: e.DiscountPercentage,
		DiscountAmount:     e.DiscountAmount,
		TotalFees:          e.TotalFees,
		PaymentPlan:        e.PaymentPlan,
		TotalInstallments:  e.TotalInstallments,
		InstallmentAmount:  e.InstallmentAmount,
		ClassFormat:        e.ClassFormat,
	}
}

// StudentBilling bundles everything the fee endpoints report for one
// enrollment: the derived snapshot, the advisory due flag and the inputs that
// produced it.
type StudentBilling struct {
	Enrollment       *models.CurriculumEnrollment `json:"enrollment"`
	Snapshot         BillingSnapshot              `json:"snapshot"`
	InstallmentDue   bool                         `json:"is_installment_due"`
	PresentCount     int                          `json:"present_since_boundary"`
	ClassesThreshold int                          `json:"classes_per_installment"`
}

// LoadStudentBilling recomputes an enrollment's full billing state from the
// payment ledger and the attendance ledger.
func LoadStudentBilling(db *sql.DB, billing config.BillingConfig, enrollment *models.CurriculumEnrollment) (*StudentBilling, []*models.PaymentTransaction, error) {
	transactions, err := database.GetTransactions(db, enrollment.ID)
	if err != nil {
		return nil, nil, err
	}

	terms := TermsFromEnrollment(enrollment)
	var amountPaid int64
	for _, tx := range transactions {
		amountPaid += tx.Amount
	}
	snap := BuildSnapshot(terms, amountPaid)

	overrideWeekday, overrideWeekend := 0, 0
	if curriculum, err := database.GetCurriculumByID(db, enrollment.CurriculumID); err == nil {
		overrideWeekday = curriculum.ClassesPerInstallmentWeekday
		overrideWeekend = curriculum.ClassesPerInstallmentWeekend
	}
	threshold := InstallmentThreshold(enrollment.ClassFormat,
		billing.ClassesPerInstallmentWeekday, billing.ClassesPerInstallmentWeekend,
		overrideWeekday, overrideWeekend)

	boundary := InstallmentBoundary(terms, enrollment.CreatedAt, transactions)
	presentCount, err := database.CountPresentSince(db, enrollment.StudentID, boundary)
	if err != nil {
		return nil, nil, err
	}

	return &StudentBilling{
		Enrollment:       enrollment,
		Snapshot:         snap,
		InstallmentDue:   IsInstallmentDue(snap, presentCount, threshold),
		PresentCount:     presentCount,
		ClassesThreshold: threshold,
	}, transactions, nil
}
