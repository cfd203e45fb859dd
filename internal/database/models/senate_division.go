package models

// SenateDivision partitions faculty into disjoint pools for committee quotas
type SenateDivision struct {
	BaseModel
	Code string `json:"code" gorm:"primaryKey;size:10" validate:"required,min=1,max=10"`
	Name string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
}

// TableName returns the table name for SenateDivision
func (SenateDivision) TableName() string {
	return "senate_divisions"
}
