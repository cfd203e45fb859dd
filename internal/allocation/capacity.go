package allocation

// CapacityCheck is the result of comparing declared requirements to capacity
type CapacityCheck struct {
	Required  int
	Available int
}

// OK reports whether the requirements fit within capacity
func (c CapacityCheck) OK() bool {
	return c.Required <= c.Available
}

// CheckCapacity sums the requirements for one committee and compares the sum
// to its total slots. Call it with the state as it will be after the write.
func CheckCapacity(totalSlots int, requirements []Requirement) CapacityCheck {
	required := 0
	for _, req := range requirements {
		required += req.Minimum
	}
	return CapacityCheck{Required: required, Available: totalSlots}
}

// ApplyRequirement returns requirements with the row for edit.DivisionCode
// replaced by edit, or appended when no such row exists.
func ApplyRequirement(requirements []Requirement, edit Requirement) []Requirement {
	out := make([]Requirement, 0, len(requirements)+1)
	replaced := false
	for _, req := range requirements {
		if req.DivisionCode == edit.DivisionCode {
			out = append(out, edit)
			replaced = true
			continue
		}
		out = append(out, req)
	}
	if !replaced {
		out = append(out, edit)
	}
	return out
}
