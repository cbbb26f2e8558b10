package services

import (
	"testing"
	"time"

	"edcenter/app/models"
)

func TestQuoteEnrollmentInstallmentPlan(t *testing.T) {
	tests := []struct {
		name               string
		fees               int64
		discount           float64
		durationMonths     int
		wantDiscountAmount int64
		wantTotalFees      int64
		wantInstallments   int
		wantInstallment    int64
	}{
		{
			name:               "ten percent over ten months",
			fees:               10000,
			discount:           10,
			durationMonths:     10,
			wantDiscountAmount: 1000,
			wantTotalFees:      9000,
			wantInstallments:   10,
			wantInstallment:    900,
		},
		{
			name:               "no discount",
			fees:               12000,
			discount:           0,
			durationMonths:     12,
			wantDiscountAmount: 0,
			wantTotalFees:      12000,
			wantInstallments:   12,
			wantInstallment:    1000,
		},
		{
			name:               "full discount",
			fees:               8000,
			discount:           100,
			durationMonths:     8,
			wantDiscountAmount: 8000,
			wantTotalFees:      0,
			wantInstallments:   8,
			wantInstallment:    0,
		},
		{
			name:               "indivisible total rounds up",
			fees:               1000,
			discount:           0,
			durationMonths:     3,
			wantDiscountAmount: 0,
			wantTotalFees:      1000,
			wantInstallments:   3,
			wantInstallment:    334,
		},
		{
			name:               "fractional discount rounds half up",
			fees:               999,
			discount:           5,
			durationMonths:     1,
			wantDiscountAmount: 50, // 49.95 rounds to 50
			wantTotalFees:      949,
			wantInstallments:   1,
			wantInstallment:    949,
		},
		{
			name:               "missing duration falls back to default",
			fees:               2400,
			discount:           0,
			durationMonths:     0,
			wantDiscountAmount: 0,
			wantTotalFees:      2400,
			wantInstallments:   12,
			wantInstallment:    200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms, err := QuoteEnrollment(tt.fees, tt.discount, models.InstallmentPlan, tt.durationMonths, 12)
			if err != nil {
				t.Fatalf("QuoteEnrollment() error = %v", err)
			}
			if terms.DiscountAmount != tt.wantDiscountAmount {
				t.Errorf("DiscountAmount = %d, want %d", terms.DiscountAmount, tt.wantDiscountAmount)
			}
			if terms.TotalFees != tt.wantTotalFees {
				t.Errorf("TotalFees = %d, want %d", terms.TotalFees, tt.wantTotalFees)
			}
			if terms.TotalInstallments != tt.wantInstallments {
				t.Errorf("TotalInstallments = %d, want %d", terms.TotalInstallments, tt.wantInstallments)
			}
			if terms.InstallmentAmount != tt.wantInstallment {
				t.Errorf("InstallmentAmount = %d, want %d", terms.InstallmentAmount, tt.wantInstallment)
			}

			// n installments must always cover the total, and n-1 must not.
			n := int64(terms.TotalInstallments)
			if n*terms.InstallmentAmount < terms.TotalFees {
				t.Errorf("%d installments of %d do not cover total %d", n, terms.InstallmentAmount, terms.TotalFees)
			}
			if terms.TotalFees > 0 && (n-1)*terms.InstallmentAmount >= terms.TotalFees {
				t.Errorf("%d installments of %d already cover total %d", n-1, terms.InstallmentAmount, terms.TotalFees)
			}
		})
	}
}

func TestQuoteEnrollmentFullPlan(t *testing.T) {
	terms, err := QuoteEnrollment(5000, 0, models.FullPlan, 10, 12)
	if err != nil {
		t.Fatalf("QuoteEnrollment() error = %v", err)
	}
	if terms.TotalInstallments != 1 {
		t.Errorf("TotalInstallments = %d, want 1", terms.TotalInstallments)
	}
	if terms.InstallmentAmount != 5000 {
		t.Errorf("InstallmentAmount = %d, want 5000", terms.InstallmentAmount)
	}
	if terms.TotalFees != 5000 {
		t.Errorf("TotalFees = %d, want 5000", terms.TotalFees)
	}
}

func TestQuoteEnrollmentRejectsInvalidInput(t *testing.T) {
	if _, err := QuoteEnrollment(-1, 0, models.FullPlan, 0, 12); err == nil {
		t.Error("negative fees accepted")
	}
	if _, err := QuoteEnrollment(1000, -5, models.FullPlan, 0, 12); err == nil {
		t.Error("negative discount accepted")
	}
	if _, err := QuoteEnrollment(1000, 101, models.FullPlan, 0, 12); err == nil {
		t.Error("discount over 100 accepted")
	}
	if _, err := QuoteEnrollment(1000, 0, models.PaymentPlan("monthly"), 0, 12); err == nil {
		t.Error("unknown payment plan accepted")
	}
}

func installmentTerms(totalFees int64, installments int) *BillingTerms {
	return &BillingTerms{
		TotalFees:         totalFees,
		PaymentPlan:       models.InstallmentPlan,
		TotalInstallments: installments,
		InstallmentAmount: ceilDiv(totalFees, int64(installments)),
	}
}

func TestBuildSnapshot(t *testing.T) {
	terms := installmentTerms(9000, 10) // installments of 900

	tests := []struct {
		name            string
		amountPaid      int64
		wantStatus      models.PaymentStatus
		wantNumber      int
		wantCurrentPaid int64
		wantComplete    bool
	}{
		{"nothing paid", 0, models.Unpaid, 0, 0, false},
		{"mid first installment", 500, models.Partial, 0, 500, false},
		{"exactly one installment", 900, models.Partial, 1, 0, false},
		{"into the third installment", 2000, models.Partial, 2, 200, false},
		{"fully paid", 9000, models.Paid, 9, 900, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := BuildSnapshot(terms, tt.amountPaid)
			if snap.PaymentStatus != tt.wantStatus {
				t.Errorf("PaymentStatus = %s, want %s", snap.PaymentStatus, tt.wantStatus)
			}
			if snap.InstallmentNumber != tt.wantNumber {
				t.Errorf("InstallmentNumber = %d, want %d", snap.InstallmentNumber, tt.wantNumber)
			}
			if snap.CurrentInstallmentPaid != tt.wantCurrentPaid {
				t.Errorf("CurrentInstallmentPaid = %d, want %d", snap.CurrentInstallmentPaid, tt.wantCurrentPaid)
			}
			if snap.CurrentInstallmentComplete != tt.wantComplete {
				t.Errorf("CurrentInstallmentComplete = %v, want %v", snap.CurrentInstallmentComplete, tt.wantComplete)
			}
			if snap.AmountPending != terms.TotalFees-tt.amountPaid {
				t.Errorf("AmountPending = %d, want %d", snap.AmountPending, terms.TotalFees-tt.amountPaid)
			}
		})
	}
}

func TestBuildSnapshotStatusMonotonic(t *testing.T) {
	terms := installmentTerms(9000, 10)

	rank := map[models.PaymentStatus]int{models.Unpaid: 0, models.Partial: 1, models.Paid: 2}
	prev := models.Unpaid
	for paid := int64(0); paid <= terms.TotalFees; paid += 300 {
		snap := BuildSnapshot(terms, paid)
		if rank[snap.PaymentStatus] < rank[prev] {
			t.Fatalf("status regressed from %s to %s at paid=%d", prev, snap.PaymentStatus, paid)
		}
		prev = snap.PaymentStatus
	}
}

func TestBuildSnapshotClampsInstallmentNumber(t *testing.T) {
	terms := installmentTerms(9000, 10)

	// Full payment lands exactly on n x amount, which would index past the
	// last installment without the clamp.
	snap := BuildSnapshot(terms, 9000)
	if snap.InstallmentNumber != 9 {
		t.Errorf("InstallmentNumber = %d, want 9", snap.InstallmentNumber)
	}
	if !snap.CurrentInstallmentComplete {
		t.Error("final installment should read complete at full payment")
	}
}

func TestInstallmentThreshold(t *testing.T) {
	tests := []struct {
		name            string
		format          models.ClassFormat
		overrideWeekday int
		overrideWeekend int
		want            int
	}{
		{"weekday default", models.WeekdayFormat, 0, 0, 8},
		{"weekend default", models.WeekendFormat, 0, 0, 4},
		{"weekday override", models.WeekdayFormat, 6, 0, 6},
		{"weekend override", models.WeekendFormat, 0, 3, 3},
		{"override for other format ignored", models.WeekdayFormat, 0, 3, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InstallmentThreshold(tt.format, 8, 4, tt.overrideWeekday, tt.overrideWeekend)
			if got != tt.want {
				t.Errorf("InstallmentThreshold() = %d, want %d", got, tt.want)
			}
		})
	}
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(dateStr string, amount int64) *models.PaymentTransaction {
	return &models.PaymentTransaction{Amount: amount, PaymentDate: date(dateStr)}
}

func TestInstallmentBoundary(t *testing.T) {
	terms := installmentTerms(9000, 10) // installments of 900
	enrolledAt := date("2026-01-10")
	dayBefore := date("2026-01-09")

	tests := []struct {
		name         string
		transactions []*models.PaymentTransaction
		want         time.Time
	}{
		{
			name:         "no payments yet",
			transactions: nil,
			want:         dayBefore,
		},
		{
			name:         "partial first installment",
			transactions: []*models.PaymentTransaction{tx("2026-01-15", 500)},
			want:         dayBefore,
		},
		{
			name:         "first installment complete",
			transactions: []*models.PaymentTransaction{tx("2026-01-15", 900)},
			want:         date("2026-01-15"),
		},
		{
			name: "installment completed across two payments",
			transactions: []*models.PaymentTransaction{
				tx("2026-01-15", 500),
				tx("2026-02-01", 400),
			},
			want: date("2026-02-01"),
		},
		{
			name: "second installment started but not complete",
			transactions: []*models.PaymentTransaction{
				tx("2026-01-15", 900),
				tx("2026-02-10", 300),
			},
			want: date("2026-01-15"),
		},
		{
			name: "two installments complete",
			transactions: []*models.PaymentTransaction{
				tx("2026-01-15", 900),
				tx("2026-02-10", 900),
			},
			want: date("2026-02-10"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InstallmentBoundary(terms, enrolledAt, tt.transactions)
			if !got.Equal(tt.want) {
				t.Errorf("InstallmentBoundary() = %s, want %s",
					got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestIsInstallmentDue(t *testing.T) {
	terms := installmentTerms(9000, 10)

	tests := []struct {
		name         string
		amountPaid   int64
		presentCount int
		threshold    int
		want         bool
	}{
		{"threshold reached, installment open", 900, 8, 8, true},
		{"threshold not reached", 900, 7, 8, false},
		{"weekend threshold reached", 900, 4, 4, true},
		{"exact multiple rolls to the next installment", 1800, 8, 8, true},
		{"fully paid never due", 9000, 50, 8, false},
		{"nothing paid and threshold reached", 0, 8, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := BuildSnapshot(terms, tt.amountPaid)
			got := IsInstallmentDue(snap, tt.presentCount, tt.threshold)
			if got != tt.want {
				t.Errorf("IsInstallmentDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A completed installment moves the boundary forward, so presence accrued
// before the completing payment stops counting toward the next one.
func TestBoundaryResetsAfterInstallmentCompletes(t *testing.T) {
	terms := installmentTerms(9000, 10)
	enrolledAt := date("2026-01-10")

	before := InstallmentBoundary(terms, enrolledAt, nil)
	after := InstallmentBoundary(terms, enrolledAt, []*models.PaymentTransaction{tx("2026-03-01", 900)})

	if !after.After(before) {
		t.Errorf("boundary did not advance: before=%s after=%s",
			before.Format("2006-01-02"), after.Format("2006-01-02"))
	}
}

func TestTermsFromEnrollmentRoundTrip(t *testing.T) {
	e := &models.CurriculumEnrollment{
		OriginalFees:       10000,
		DiscountPercentage: 10,
		DiscountAmount:     1000,
		TotalFees:          9000,
		PaymentPlan:        models.InstallmentPlan,
		TotalInstallments:  10,
		InstallmentAmount:  900,
		ClassFormat:        models.WeekendFormat,
	}

	terms := TermsFromEnrollment(e)
	if terms.TotalFees != e.TotalFees || terms.InstallmentAmount != e.InstallmentAmount {
		t.Errorf("terms do not match enrollment: %+v", terms)
	}
	if terms.ClassFormat != models.WeekendFormat {
		t.Errorf("ClassFormat = %s, want %s", terms.ClassFormat, models.WeekendFormat)
	}
}
