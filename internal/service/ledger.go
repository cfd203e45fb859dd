package service

import (
	"fmt"

	"committee-tracker-backend/internal/allocation"
	"committee-tracker-backend/internal/database/models"
	"committee-tracker-backend/internal/repository"
)

// loadRequirements reads a committee's requirement rows as allocation requirements
func loadRequirements(tx repository.StoreInterface, committeeID uint) ([]allocation.Requirement, error) {
	rows, err := tx.SlotRequirements().GetByCommittee(committeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get slot requirements: %w", err)
	}
	requirements := make([]allocation.Requirement, len(rows))
	for i, row := range rows {
		requirements[i] = allocation.Requirement{
			DivisionCode: row.SenateDivisionCode,
			Minimum:      row.SlotRequirements,
		}
	}
	return requirements, nil
}

// loadLedger recomputes the slot ledger of a committee from the rows visible to tx
func loadLedger(tx repository.StoreInterface, committee *models.Committee) (*allocation.Ledger, error) {
	requirements, err := loadRequirements(tx, committee.ID)
	if err != nil {
		return nil, err
	}

	fills, err := tx.Assignments().CountFilledByDivision(committee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count committee assignments: %w", err)
	}
	filled := make(map[string]int, len(fills))
	for _, f := range fills {
		filled[f.SenateDivisionCode] = f.Filled
	}

	return allocation.BuildLedger(committee.ID, committee.TotalSlots, requirements, filled), nil
}
