package models

import "time"

type Student struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentCode  string     `json:"student_code" gorm:"uniqueIndex;not null" validate:"required"`
	CenterID     string     `json:"center_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassID      *string    `json:"class_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	CurriculumID *string    `json:"curriculum_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	FirstName    string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName     string     `json:"last_name" gorm:"not null" validate:"required"`
	Gender       Gender     `json:"gender" gorm:"type:varchar(10)" validate:"omitempty,oneof=male female other"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty" gorm:"type:date"`

	// Guardian contact details drive the public parent portal lookup.
	GuardianName  string  `json:"guardian_name" gorm:"not null" validate:"required"`
	GuardianPhone string  `json:"guardian_phone" gorm:"not null;type:varchar(20)" validate:"required"`
	GuardianEmail *string `json:"guardian_email,omitempty" validate:"omitempty,email"`
	Address       *string `json:"address,omitempty"`

	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Center     *Center     `json:"center,omitempty" gorm:"foreignKey:CenterID;references:ID"`
	Class      *Class      `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	Curriculum *Curriculum `json:"curriculum,omitempty" gorm:"foreignKey:CurriculumID;references:ID"`

	ClassName      string `json:"class_name,omitempty" gorm:"-"`
	CenterName     string `json:"center_name,omitempty" gorm:"-"`
	CurriculumName string `json:"curriculum_name,omitempty" gorm:"-"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
