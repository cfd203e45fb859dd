package models

// Committee represents a committee with a fixed number of seats
type Committee struct {
	BaseModel
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"type:text"`
	TotalSlots  int    `json:"total_slots" gorm:"not null;default:0;check:chk_committees_total_slots,total_slots >= 0" validate:"min=0"`

	// Relationships
	SlotRequirements []CommitteeSlotRequirement `json:"slot_requirements,omitempty" gorm:"foreignKey:CommitteeID;constraint:OnDelete:CASCADE"`
	Assignments      []CommitteeAssignment      `json:"assignments,omitempty" gorm:"foreignKey:CommitteeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Committee
func (Committee) TableName() string {
	return "committees"
}
