package models

// Faculty represents a faculty member, keyed by email
type Faculty struct {
	BaseModel
	Email              string  `json:"email" gorm:"primaryKey;size:100" validate:"required,email,max=100"`
	FullName           string  `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	JobTitle           string  `json:"job_title" gorm:"size:100" validate:"max=100"`
	Phone              string  `json:"phone" gorm:"size:30" validate:"max=30"`
	SenateDivisionCode string  `json:"senate_division_code" gorm:"size:10;not null;index" validate:"required,max=10"`
	DepartmentCode     *string `json:"department_code,omitempty" gorm:"size:10;index" validate:"omitempty,max=10"`

	// Relationships
	SenateDivision *SenateDivision `json:"senate_division,omitempty" gorm:"foreignKey:SenateDivisionCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Department     *Department     `json:"department,omitempty" gorm:"foreignKey:DepartmentCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName returns the table name for Faculty
func (Faculty) TableName() string {
	return "faculty"
}
