package models

// CommitteeSlotRequirement reserves a minimum number of seats on a committee
// for faculty of one senate division
type CommitteeSlotRequirement struct {
	BaseModel
	CommitteeID        uint   `json:"committee_id" gorm:"primaryKey;autoIncrement:false"`
	SenateDivisionCode string `json:"senate_division_code" gorm:"primaryKey;size:10"`
	SlotRequirements   int    `json:"slot_requirements" gorm:"not null;default:0;check:chk_slot_requirements_non_negative,slot_requirements >= 0" validate:"min=0"`

	// Relationships
	SenateDivision *SenateDivision `json:"senate_division,omitempty" gorm:"foreignKey:SenateDivisionCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the table name for CommitteeSlotRequirement
func (CommitteeSlotRequirement) TableName() string {
	return "committee_slot_requirements"
}
