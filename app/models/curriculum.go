package models

import "time"

// Curriculum is a priced course of study. Fees are whole currency units and
// serve as the billing basis for enrolled students; DurationMonths sizes the
// installment count for students on the installment plan.
type Curriculum struct {
	ID             string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name           string  `json:"name" gorm:"not null" validate:"required"`
	Description    *string `json:"description,omitempty"`
	Fees           int64   `json:"fees" gorm:"not null" validate:"gte=0"`
	DurationMonths int     `json:"duration_months" gorm:"not null;default:0" validate:"gte=0"`

	// Optional per-curriculum overrides for the attendance thresholds that
	// mark an installment as due. Zero means "use the configured default".
	ClassesPerInstallmentWeekday int `json:"classes_per_installment_weekday" gorm:"default:0"`
	ClassesPerInstallmentWeekend int `json:"classes_per_installment_weekend" gorm:"default:0"`

	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	EnrolledCount int `json:"enrolled_count" gorm:"-"`
}
