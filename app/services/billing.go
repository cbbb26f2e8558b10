package services

import (
	"fmt"
	"math"
	"time"

	"edcenter/app/models"
)

// BillingTerms are the fixed attributes of an enrollment's payment schedule,
// computed once from the curriculum price, discount election and payment plan.
type BillingTerms struct {
	OriginalFees       int64
	DiscountPercentage float64
	DiscountAmount     int64
	TotalFees          int64
	PaymentPlan        models.PaymentPlan
	TotalInstallments  int
	InstallmentAmount  int64
	ClassFormat        models.ClassFormat
}

// QuoteEnrollment turns a curriculum's list price, a discount percentage and a
// payment plan into a billing schedule. Discount amounts round to the nearest
// whole currency unit; installment amounts use ceiling division so that
// n × installment covers the total and the last installment absorbs the
// remainder (it is never larger than the others).
func QuoteEnrollment(fees int64, discountPercentage float64, plan models.PaymentPlan, durationMonths, defaultInstallments int) (*BillingTerms, error) {
	if fees < 0 {
		return nil, fmt.Errorf("curriculum fees must not be negative")
	}
	if discountPercentage < 0 || discountPercentage > 100 {
		return nil, fmt.Errorf("discount percentage must be between 0 and 100")
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("payment plan must be %q or %q", models.FullPlan, models.InstallmentPlan)
	}

	discountAmount := int64(math.Round(float64(fees) * discountPercentage / 100))
	totalFees := fees - discountAmount

	terms := &BillingTerms{
		OriginalFees:       fees,
		DiscountPercentage: discountPercentage,
		DiscountAmount:     discountAmount,
		TotalFees:          totalFees,
		PaymentPlan:        plan,
	}

	if plan == models.FullPlan {
		terms.TotalInstallments = 1
		terms.InstallmentAmount = totalFees
		return terms, nil
	}

	installments := durationMonths
	if installments <= 0 {
		installments = defaultInstallments
	}
	if installments <= 0 {
		installments = 1
	}
	terms.TotalInstallments = installments
	terms.InstallmentAmount = ceilDiv(totalFees, int64(installments))
	return terms, nil
}

func ceilDiv(a, b int64) int64 {
	if b == 0 {
		return a
	}
	return (a + b - 1) / b
}

// BillingSnapshot is the derived view of an enrollment's payment progress.
// Everything here is recomputed from the transaction ledger; nothing is a
// stored balance.
type BillingSnapshot struct {
	TotalFees         int64                `json:"total_fees"`
	AmountPaid        int64                `json:"amount_paid"`
	AmountPending     int64                `json:"amount_pending"`
	PaymentStatus     models.PaymentStatus `json:"payment_status"`
	TotalInstallments int                  `json:"total_installments"`
	InstallmentAmount int64                `json:"installment_amount"`

	// InstallmentNumber is the number of fully paid installments, which is
	// also the zero-based index of the installment currently being collected.
	InstallmentNumber          int   `json:"installment_number"`
	CurrentInstallmentPaid     int64 `json:"current_installment_paid"`
	CurrentInstallmentPending  int64 `json:"current_installment_pending"`
	CurrentInstallmentComplete bool  `json:"is_current_installment_complete"`
}

// BuildSnapshot derives payment progress from the sum of ledger amounts.
func BuildSnapshot(terms *BillingTerms, amountPaid int64) BillingSnapshot {
	snap := BillingSnapshot{
		TotalFees:         terms.TotalFees,
		AmountPaid:        amountPaid,
		AmountPending:     terms.TotalFees - amountPaid,
		TotalInstallments: terms.TotalInstallments,
		InstallmentAmount: terms.InstallmentAmount,
	}

	switch {
	case snap.AmountPending <= 0:
		snap.PaymentStatus = models.Paid
	case amountPaid > 0:
		snap.PaymentStatus = models.Partial
	default:
		snap.PaymentStatus = models.Unpaid
	}

	installmentNumber := 0
	if terms.InstallmentAmount > 0 {
		installmentNumber = int(amountPaid / terms.InstallmentAmount)
	}
	if max := terms.TotalInstallments - 1; installmentNumber > max {
		installmentNumber = max
	}
	if installmentNumber < 0 {
		installmentNumber = 0
	}
	snap.InstallmentNumber = installmentNumber

	snap.CurrentInstallmentPaid = amountPaid - int64(installmentNumber)*terms.InstallmentAmount
	snap.CurrentInstallmentPending = terms.InstallmentAmount - snap.CurrentInstallmentPaid
	snap.CurrentInstallmentComplete = snap.CurrentInstallmentPending <= 0

	return snap
}

// InstallmentThreshold picks the present-class count that makes the next
// installment collectable. Curriculum-level overrides win over the configured
// defaults; the weekend threshold is smaller because weekend classes meet
// roughly half as often.
func InstallmentThreshold(format models.ClassFormat, weekday, weekend int, overrideWeekday, overrideWeekend int) int {
	if format == models.WeekendFormat {
		if overrideWeekend > 0 {
			return overrideWeekend
		}
		return weekend
	}
	if overrideWeekday > 0 {
		return overrideWeekday
	}
	return weekday
}

// InstallmentBoundary returns the date after which present classes count
// toward the next installment: the payment date of the transaction whose
// cumulative total first covered the last complete installment. When no
// installment is complete yet the boundary is the day before the enrollment
// was created, so every present class since enrollment counts.
func InstallmentBoundary(terms *BillingTerms, enrolledAt time.Time, transactions []*models.PaymentTransaction) time.Time {
	start := enrolledAt.AddDate(0, 0, -1)

	if terms.InstallmentAmount <= 0 {
		return start
	}

	var amountPaid int64
	for _, tx := range transactions {
		amountPaid += tx.Amount
	}

	completed := int(amountPaid / terms.InstallmentAmount)
	if max := terms.TotalInstallments; completed > max {
		completed = max
	}
	if completed == 0 {
		return start
	}

	covered := int64(completed) * terms.InstallmentAmount
	var cumulative int64
	for _, tx := range transactions {
		cumulative += tx.Amount
		if cumulative >= covered {
			return tx.PaymentDate
		}
	}
	return start
}

// IsInstallmentDue reports whether enough present classes have accrued since
// the last installment boundary to prompt collection of the current
// installment. Advisory only; attendance is never blocked by payment state.
func IsInstallmentDue(snap BillingSnapshot, presentSinceBoundary, threshold int) bool {
	if snap.PaymentStatus == models.Paid {
		return false
	}
	if snap.CurrentInstallmentComplete {
		return false
	}
	return presentSinceBoundary >= threshold
}
