package models

import "time"

// Center represents an after-school training center belonging to a school
// organization. Students, classes and fee collection are scoped to a center.
type Center struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SchoolID  string     `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name      string     `json:"name" gorm:"not null" validate:"required"`
	Code      string     `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	Address   *string    `json:"address,omitempty"`
	Phone     *string    `json:"phone,omitempty" gorm:"type:varchar(20)"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	School       *School `json:"school,omitempty" gorm:"foreignKey:SchoolID;references:ID"`
	SchoolName   string  `json:"school_name,omitempty" gorm:"-"`
	StudentCount int     `json:"student_count" gorm:"-"`
}
