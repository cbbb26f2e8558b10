package models

import "time"

// CurriculumEnrollment pairs a student with a curriculum for billing. The
// discount election and payment plan are fixed at the student's first payment:
// once LockedAtFirstPayment is set the row is immutable apart from timestamps.
type CurriculumEnrollment struct {
	ID           string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID    string `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CurriculumID string `json:"curriculum_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`

	// Billing terms, fixed when the enrollment is created. OriginalFees is a
	// copy of the curriculum's list price at election time so later catalog
	// edits cannot drift the schedule.
	OriginalFees       int64       `json:"original_fees" gorm:"not null" validate:"gte=0"`
	DiscountPercentage float64     `json:"discount_percentage" gorm:"not null;default:0" validate:"gte=0,lte=100"`
	DiscountReason     *string     `json:"discount_reason,omitempty"`
	DiscountAmount     int64       `json:"discount_amount" gorm:"not null;default:0"`
	TotalFees          int64       `json:"total_fees" gorm:"not null"`
	PaymentPlan        PaymentPlan `json:"payment_plan" gorm:"not null;type:varchar(15)" validate:"required,oneof=full installment"`
	TotalInstallments  int         `json:"total_installments" gorm:"not null;default:1"`
	InstallmentAmount  int64       `json:"installment_amount" gorm:"not null"`
	ClassFormat        ClassFormat `json:"class_format" gorm:"not null;type:varchar(10)" validate:"required,oneof=weekday weekend"`

	LockedAtFirstPayment bool      `json:"locked_at_first_payment" gorm:"not null;default:false"`
	CreatedAt            time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt            time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Student    *Student    `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Curriculum *Curriculum `json:"curriculum,omitempty" gorm:"foreignKey:CurriculumID;references:ID"`
}
