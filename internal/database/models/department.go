package models

// Department represents an academic department faculty may belong to
type Department struct {
	BaseModel
	Code string `json:"code" gorm:"primaryKey;size:10" validate:"required,min=1,max=10"`
	Name string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
