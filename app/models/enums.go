package models

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Excused AttendanceStatus = "excused"
)

// IsValid reports whether the status is one of the known attendance values.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case Present, Absent, Late, Excused:
		return true
	}
	return false
}

// ClassFormat defines whether a class meets on weekdays or weekends.
// Billing copies the format from the student's class at enrollment time
// because it sizes the attendance threshold for installment collection.
type ClassFormat string

const (
	WeekdayFormat ClassFormat = "weekday"
	WeekendFormat ClassFormat = "weekend"
)

// IsValid reports whether the format is a known class format.
func (f ClassFormat) IsValid() bool {
	return f == WeekdayFormat || f == WeekendFormat
}

// PaymentPlan defines how a student pays a curriculum's fees.
type PaymentPlan string

const (
	FullPlan        PaymentPlan = "full"
	InstallmentPlan PaymentPlan = "installment"
)

// IsValid reports whether the plan is a known payment plan.
func (p PaymentPlan) IsValid() bool {
	return p == FullPlan || p == InstallmentPlan
}

// PaymentStatus is derived from the ratio of amount paid to total fees.
type PaymentStatus string

const (
	Unpaid  PaymentStatus = "unpaid"
	Partial PaymentStatus = "partial"
	Paid    PaymentStatus = "paid"
)

// PaymentMethod defines the accepted payment channels.
type PaymentMethod string

const (
	Cash         PaymentMethod = "cash"
	Card         PaymentMethod = "card"
	UPI          PaymentMethod = "upi"
	BankTransfer PaymentMethod = "bank_transfer"
	Cheque       PaymentMethod = "cheque"
	OtherMethod  PaymentMethod = "other"
)

// IsValid reports whether the method is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case Cash, Card, UPI, BankTransfer, Cheque, OtherMethod:
		return true
	}
	return false
}

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// IsValid reports whether the gender is a known value.
func (g Gender) IsValid() bool {
	return g == Male || g == Female || g == Other
}
