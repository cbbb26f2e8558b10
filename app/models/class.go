package models

import "time"

type Class struct {
	ID           string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	CenterID     string      `json:"center_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name         string      `json:"name" gorm:"not null" validate:"required"`
	Code         string      `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	Format       ClassFormat `json:"format" gorm:"not null;type:varchar(10)" validate:"required,oneof=weekday weekend"`
	TeacherID    *string     `json:"teacher_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsActive     bool        `json:"is_active" gorm:"default:true"`
	StudentCount int         `json:"student_count" gorm:"-"`
	CreatedAt    time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time  `json:"deleted_at,omitempty" gorm:"index"`

	Center  *Center `json:"center,omitempty" gorm:"foreignKey:CenterID;references:ID"`
	Teacher *User   `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
}
