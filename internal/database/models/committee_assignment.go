package models

import (
	"time"
)

// CommitteeAssignment records one faculty member occupying one seat on one committee
type CommitteeAssignment struct {
	BaseModel
	FacultyEmail string    `json:"faculty_email" gorm:"primaryKey;size:100"`
	CommitteeID  uint      `json:"committee_id" gorm:"primaryKey;autoIncrement:false;index"`
	StartDate    time.Time `json:"start_date" gorm:"type:date;not null"`
	EndDate      time.Time `json:"end_date" gorm:"type:date;not null;check:chk_assignment_dates,end_date >= start_date"`

	// Relationships
	Faculty *Faculty `json:"faculty,omitempty" gorm:"foreignKey:FacultyEmail;references:Email;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the table name for CommitteeAssignment
func (CommitteeAssignment) TableName() string {
	return "committee_assignments"
}

// DivisionFill is the number of assignments on a committee held by faculty of one senate division
type DivisionFill struct {
	SenateDivisionCode string `json:"senate_division_code"`
	Filled             int    `json:"filled"`
}
