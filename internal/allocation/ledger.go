// Package allocation holds the committee slot rules: the per-division slot
// ledger, the admission decision for a new assignment, and the capacity
// consistency check for edits to capacity or requirements.
//
// Everything here is pure. Callers load the rows inside a transaction and
// hand them in, so every decision reflects a single snapshot.
package allocation

import (
	"sort"
)

// Requirement is a declared minimum number of seats reserved for one senate division
type Requirement struct {
	DivisionCode string
	Minimum      int
}

// DivisionSlots is one ledger row. Minimum and Remaining are nil for
// divisions that hold seats without a declared requirement.
type DivisionSlots struct {
	DivisionCode string `json:"senate_division_code"`
	Minimum      *int   `json:"slot_requirements"`
	Filled       int    `json:"filled"`
	Remaining    *int   `json:"remaining"`
}

// Constrained reports whether the division has an explicit requirement row
func (d DivisionSlots) Constrained() bool {
	return d.Minimum != nil
}

// Ledger is the derived view of filled and remaining seats for one committee
type Ledger struct {
	CommitteeID    uint            `json:"committee_id"`
	TotalSlots     int             `json:"total_slots"`
	TotalFilled    int             `json:"total_filled"`
	TotalRemaining int             `json:"total_remaining"`
	Divisions      []DivisionSlots `json:"divisions"`
}

// BuildLedger derives the ledger for a committee from its requirement rows
// and the number of assignments held per division.
//
// Divisions with a requirement row appear with their minimum. Divisions with
// assignments but no requirement row appear unconstrained. Divisions with
// neither do not appear. Rows are ordered by division code.
func BuildLedger(committeeID uint, totalSlots int, requirements []Requirement, filled map[string]int) *Ledger {
	ledger := &Ledger{
		CommitteeID: committeeID,
		TotalSlots:  totalSlots,
		Divisions:   make([]DivisionSlots, 0, len(requirements)+len(filled)),
	}

	required := make(map[string]struct{}, len(requirements))
	for _, req := range requirements {
		required[req.DivisionCode] = struct{}{}
		minimum := req.Minimum
		count := filled[req.DivisionCode]
		remaining := minimum - count
		ledger.Divisions = append(ledger.Divisions, DivisionSlots{
			DivisionCode: req.DivisionCode,
			Minimum:      &minimum,
			Filled:       count,
			Remaining:    &remaining,
		})
	}

	for code, count := range filled {
		if _, ok := required[code]; ok || count <= 0 {
			continue
		}
		ledger.Divisions = append(ledger.Divisions, DivisionSlots{
			DivisionCode: code,
			Filled:       count,
		})
	}

	sort.Slice(ledger.Divisions, func(i, j int) bool {
		return ledger.Divisions[i].DivisionCode < ledger.Divisions[j].DivisionCode
	})

	for _, d := range ledger.Divisions {
		ledger.TotalFilled += d.Filled
	}
	ledger.TotalRemaining = ledger.TotalSlots - ledger.TotalFilled

	return ledger
}

// Division returns the ledger row for a division, if present
func (l *Ledger) Division(code string) (DivisionSlots, bool) {
	for _, d := range l.Divisions {
		if d.DivisionCode == code {
			return d, true
		}
	}
	return DivisionSlots{}, false
}

// WithCandidate returns a copy of the ledger with one more seat held by the
// given division, as it would read once the candidate row is written.
func (l *Ledger) WithCandidate(divisionCode string) *Ledger {
	requirements := make([]Requirement, 0, len(l.Divisions))
	filled := make(map[string]int, len(l.Divisions)+1)
	for _, d := range l.Divisions {
		if d.Minimum != nil {
			requirements = append(requirements, Requirement{DivisionCode: d.DivisionCode, Minimum: *d.Minimum})
		}
		filled[d.DivisionCode] = d.Filled
	}
	filled[divisionCode]++
	return BuildLedger(l.CommitteeID, l.TotalSlots, requirements, filled)
}
