package models

import "time"

// PaymentTransaction is one entry in the append-only payment ledger. Rows are
// never updated or deleted; every derived balance is recomputed from the sum
// of a student's transactions.
type PaymentTransaction struct {
	ID                   string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	EnrollmentID         string        `json:"enrollment_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID            string        `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CurriculumID         string        `json:"curriculum_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount               int64         `json:"amount" gorm:"not null" validate:"required,gte=1"`
	PaymentMethod        PaymentMethod `json:"payment_method" gorm:"not null;type:varchar(20)" validate:"required"`
	PaymentDate          time.Time     `json:"payment_date" gorm:"not null;index;type:date" validate:"required"`
	TransactionReference *string       `json:"transaction_reference,omitempty"`
	Remarks              *string       `json:"remarks,omitempty"`
	RecordedBy           string        `json:"recorded_by" gorm:"not null;type:uuid" validate:"required,uuid"`
	CreatedAt            time.Time     `json:"created_at" gorm:"autoCreateTime"`
}

// InstallmentReminder is created by the nightly job when a student has accrued
// enough present classes for the next installment to be collectable. One row
// per enrollment+installment; staff clear reminders as they follow up.
type InstallmentReminder struct {
	ID                string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EnrollmentID      string    `json:"enrollment_id" gorm:"not null;index;type:uuid"`
	InstallmentNumber int       `json:"installment_number" gorm:"not null"`
	PresentCount      int       `json:"present_count" gorm:"not null"`
	AmountPending     int64     `json:"amount_pending" gorm:"not null"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`

	StudentName    string `json:"student_name,omitempty" gorm:"-"`
	StudentCode    string `json:"student_code,omitempty" gorm:"-"`
	CurriculumName string `json:"curriculum_name,omitempty" gorm:"-"`
}
