package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanByID(t *testing.T) {
	for _, id := range []string{"1", "2", "3"} {
		plan, ok := PlanByID(id)
		assert.True(t, ok, "plan %s should be in the catalog", id)
		assert.NotEmpty(t, plan.PriceID)
		assert.NotEmpty(t, plan.Name)
	}

	_, ok := PlanByID("4")
	assert.False(t, ok)
	_, ok = PlanByID("")
	assert.False(t, ok)
}

func TestPlanName_FallsBackToRawID(t *testing.T) {
	assert.Equal(t, "Pro (2 accounts)", PlanName("2"))
	assert.Equal(t, "legacy-plan", PlanName("legacy-plan"))
}
