package models

import "time"

// Role represents a user role (e.g., admin, center_admin, accountant)
type Role struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Users     []*User    `json:"users,omitempty" gorm:"many2many:user_roles;"`
}

// Role names seeded by migrations. admin manages everything; center_admin and
// accountant may record payments and apply discounts; teacher marks attendance.
const (
	RoleAdmin       = "admin"
	RoleCenterAdmin = "center_admin"
	RoleAccountant  = "accountant"
	RoleTeacher     = "teacher"
)
