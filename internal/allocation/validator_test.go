package allocation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// committee replays a sequence of proposals against the rules, admitting
// the ones Evaluate accepts
type committee struct {
	total        int
	requirements []Requirement
	filled       map[string]int
}

func newCommittee(total int, requirements ...Requirement) *committee {
	return &committee{total: total, requirements: requirements, filled: map[string]int{}}
}

func (c *committee) ledger() *Ledger {
	return BuildLedger(1, c.total, c.requirements, c.filled)
}

func (c *committee) propose(division string) Decision {
	decision := Evaluate(c.ledger(), division)
	if decision.Admitted {
		c.filled[division]++
	}
	return decision
}

func TestEvaluateScenarios(t *testing.T) {
	t.Run("single reserved slot admits one AO then rejects the next", func(t *testing.T) {
		c := newCommittee(1, Requirement{DivisionCode: "AO", Minimum: 1})

		first := c.propose("AO")
		assert.True(t, first.Admitted)
		assert.Equal(t, ReasonDivisionQuota, first.Reason)

		second := c.propose("AO")
		assert.False(t, second.Admitted)
		assert.Equal(t, ReasonNoSlotsRemaining, second.Reason)
		assert.Equal(t, 1, c.ledger().TotalFilled)
	})

	t.Run("non-reserved division fills general capacity once AO quota is met", func(t *testing.T) {
		c := newCommittee(2, Requirement{DivisionCode: "AO", Minimum: 1})

		assert.True(t, c.propose("AO").Admitted)

		second := c.propose("SC")
		assert.True(t, second.Admitted)
		assert.Equal(t, ReasonUnconstrained, second.Reason)
		assert.Equal(t, 0, second.CommitteeSlotsLeft)
	})

	t.Run("division without a requirement row is admitted while a seat is free", func(t *testing.T) {
		c := newCommittee(1, Requirement{DivisionCode: "AO", Minimum: 1})

		first := c.propose("SC")
		assert.True(t, first.Admitted)
		assert.Equal(t, ReasonUnconstrained, first.Reason)
		assert.Nil(t, first.DivisionSlotsLeft)

		ao, _ := c.ledger().Division("AO")
		assert.Equal(t, 1, *ao.Remaining)

		assert.False(t, c.propose("SC").Admitted)
		assert.False(t, c.propose("GS").Admitted)
		rejected := c.propose("AO")
		assert.False(t, rejected.Admitted)
		assert.Equal(t, ReasonNoSlotsRemaining, rejected.Reason)
	})

	t.Run("exhausted quota may not take a seat another division still needs", func(t *testing.T) {
		c := newCommittee(2,
			Requirement{DivisionCode: "AO", Minimum: 1},
			Requirement{DivisionCode: "SC", Minimum: 1},
		)

		assert.True(t, c.propose("SC").Admitted)

		rejected := c.propose("SC")
		assert.False(t, rejected.Admitted)
		assert.Equal(t, ReasonUnmetRequirements, rejected.Reason)
		assert.Equal(t, 1, rejected.OtherDivisionsSurplus)
		assert.Equal(t, 0, rejected.CommitteeSlotsLeft)
		require.NotNil(t, rejected.DivisionSlotsLeft)
		assert.Equal(t, -1, *rejected.DivisionSlotsLeft)

		assert.True(t, c.propose("AO").Admitted)
	})

	t.Run("exhausted quota may borrow seats no reservation needs", func(t *testing.T) {
		c := newCommittee(3,
			Requirement{DivisionCode: "AO", Minimum: 1},
			Requirement{DivisionCode: "SC", Minimum: 1},
		)

		assert.True(t, c.propose("SC").Admitted)

		borrowed := c.propose("SC")
		assert.True(t, borrowed.Admitted)
		assert.Equal(t, ReasonSurplusAbsorbed, borrowed.Reason)
		assert.Equal(t, 1, borrowed.OtherDivisionsSurplus)
		assert.Equal(t, 1, borrowed.CommitteeSlotsLeft)

		assert.False(t, c.propose("SC").Admitted)
		assert.True(t, c.propose("AO").Admitted)
	})

	t.Run("exhausted quota with every other reservation met uses general capacity", func(t *testing.T) {
		c := newCommittee(4, Requirement{DivisionCode: "AO", Minimum: 1})

		assert.True(t, c.propose("AO").Admitted)

		decision := c.propose("AO")
		assert.True(t, decision.Admitted)
		assert.Equal(t, ReasonNoUnmetReserves, decision.Reason)
		assert.Equal(t, 0, decision.OtherDivisionsSurplus)
	})

	t.Run("zero requirement row behaves as an exhausted quota", func(t *testing.T) {
		c := newCommittee(2,
			Requirement{DivisionCode: "AO", Minimum: 0},
			Requirement{DivisionCode: "SC", Minimum: 2},
		)

		decision := c.propose("AO")
		assert.False(t, decision.Admitted)
		assert.Equal(t, ReasonUnmetRequirements, decision.Reason)
	})

	t.Run("committee with zero capacity admits nobody", func(t *testing.T) {
		c := newCommittee(0)
		decision := c.propose("AO")
		assert.False(t, decision.Admitted)
		assert.Equal(t, ReasonNoSlotsRemaining, decision.Reason)
		assert.Equal(t, -1, decision.CommitteeSlotsLeft)
	})
}

func TestEvaluateOverCapacityCommitteeRejectsEverything(t *testing.T) {
	// capacity was lowered below the seats already held
	ledger := BuildLedger(1, 1, []Requirement{{DivisionCode: "AO", Minimum: 1}}, map[string]int{"SC": 2})
	require.Less(t, ledger.TotalRemaining, 0)

	for _, division := range []string{"AO", "SC", "GS"} {
		decision := Evaluate(ledger, division)
		assert.False(t, decision.Admitted, division)
		assert.Equal(t, ReasonNoSlotsRemaining, decision.Reason, division)
	}
}

func TestEvaluateDoesNotMutateLedger(t *testing.T) {
	ledger := BuildLedger(1, 3, []Requirement{{DivisionCode: "AO", Minimum: 1}}, map[string]int{"AO": 1})
	before := BuildLedger(1, 3, []Requirement{{DivisionCode: "AO", Minimum: 1}}, map[string]int{"AO": 1})

	Evaluate(ledger, "AO")
	Evaluate(ledger, "SC")

	assert.Equal(t, before, ledger)
}

func TestEvaluateUnconstrainedDivisionMayConsumeReservedSeats(t *testing.T) {
	c := newCommittee(3, Requirement{DivisionCode: "AO", Minimum: 2})

	for i := 0; i < 2; i++ {
		decision := c.propose("SC")
		require.True(t, decision.Admitted, "SC proposal %d", i+1)
		assert.Equal(t, ReasonUnconstrained, decision.Reason)
		assert.Nil(t, decision.DivisionSlotsLeft)
	}

	ledger := c.ledger()
	ao, ok := ledger.Division("AO")
	require.True(t, ok)
	assert.Equal(t, 2, *ao.Remaining)
	assert.Equal(t, 1, ledger.TotalRemaining)
	assert.Greater(t, unmetReserves(ledger, "SC"), ledger.TotalRemaining)
}

func TestEvaluateRandomSequencesHoldInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(20240901))
	divisions := []string{"AO", "SC", "GS", "EN", "XX"}

	for round := 0; round < 500; round++ {
		total := rng.Intn(7)
		var requirements []Requirement
		budget := total
		for _, code := range divisions[:4] {
			if budget == 0 || rng.Intn(2) == 0 {
				continue
			}
			minimum := rng.Intn(budget + 1)
			budget -= minimum
			requirements = append(requirements, Requirement{DivisionCode: code, Minimum: minimum})
		}
		require.True(t, CheckCapacity(total, requirements).OK())

		c := newCommittee(total, requirements...)
		for step := 0; step < 25; step++ {
			division := divisions[rng.Intn(len(divisions))]
			before := c.ledger()
			decision := c.propose(division)
			after := c.ledger()

			assert.LessOrEqual(t, after.TotalFilled, total, "capacity exceeded in round %d", round)

			if before.TotalRemaining <= 0 {
				assert.False(t, decision.Admitted, "full committee admitted %s in round %d", division, round)
			}

			if decision.Admitted && decision.DivisionSlotsLeft != nil && *decision.DivisionSlotsLeft < 0 {
				assert.LessOrEqual(t, unmetReserves(after, division), after.TotalRemaining,
					"borrowing starved another division in round %d", round)
			}
		}
	}
}
