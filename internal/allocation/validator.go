package allocation

// Reason names the rule that decided an admission
type Reason string

const (
	// Admitted
	ReasonDivisionQuota   Reason = "division_quota"
	ReasonUnconstrained   Reason = "unconstrained_division"
	ReasonNoUnmetReserves Reason = "no_unmet_reserves"
	ReasonSurplusAbsorbed Reason = "surplus_absorbed"

	// Rejected
	ReasonNoSlotsRemaining  Reason = "no_slots_remaining"
	ReasonUnmetRequirements Reason = "unmet_requirements"
)

// Decision is the outcome of evaluating one candidate assignment.
// The slot figures are read with the candidate already counted.
type Decision struct {
	Admitted              bool   `json:"admitted"`
	Reason                Reason `json:"reason"`
	CommitteeSlotsLeft    int    `json:"committee_slots_left"`
	DivisionSlotsLeft     *int   `json:"division_slots_left,omitempty"`
	OtherDivisionsSurplus int    `json:"other_divisions_surplus"`
}

// Evaluate decides whether one more faculty member of divisionCode may take a
// seat on the committee described by ledger.
//
// The rule is greedy and order-sensitive. A division with quota room is always
// admitted while the committee has a seat. A division past its quota may
// borrow only seats that no other division's unmet reservation still needs.
func Evaluate(ledger *Ledger, divisionCode string) Decision {
	projected := ledger.WithCandidate(divisionCode)

	decision := Decision{CommitteeSlotsLeft: projected.TotalRemaining}

	if decision.CommitteeSlotsLeft < 0 {
		decision.Reason = ReasonNoSlotsRemaining
		return decision
	}

	own, ok := projected.Division(divisionCode)
	if !ok || !own.Constrained() {
		decision.Admitted = true
		decision.Reason = ReasonUnconstrained
		return decision
	}

	left := *own.Remaining
	decision.DivisionSlotsLeft = &left
	if left >= 0 {
		decision.Admitted = true
		decision.Reason = ReasonDivisionQuota
		return decision
	}

	decision.OtherDivisionsSurplus = unmetReserves(projected, divisionCode)
	switch {
	case decision.OtherDivisionsSurplus <= 0:
		decision.Admitted = true
		decision.Reason = ReasonNoUnmetReserves
	case decision.OtherDivisionsSurplus <= decision.CommitteeSlotsLeft:
		decision.Admitted = true
		decision.Reason = ReasonSurplusAbsorbed
	default:
		decision.Reason = ReasonUnmetRequirements
	}
	return decision
}

// unmetReserves sums the positive remaining reservations of every
// constrained division other than exclude
func unmetReserves(ledger *Ledger, exclude string) int {
	total := 0
	for _, d := range ledger.Divisions {
		if d.DivisionCode == exclude || !d.Constrained() {
			continue
		}
		if *d.Remaining > 0 {
			total += *d.Remaining
		}
	}
	return total
}
