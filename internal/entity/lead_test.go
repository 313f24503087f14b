package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLead(t *testing.T) {
	lead, err := NewLead("  Asha  ", " asha@example.com ", []Phone{{Number: "5551234567", Type: "both"}})

	assert.NoError(t, err)
	assert.Equal(t, "Asha", lead.Name)
	assert.Equal(t, "asha@example.com", lead.Email)
	assert.Equal(t, StatusActive, lead.Status)
	assert.Equal(t, RelationshipLead, lead.Relationship)
	assert.Equal(t, 0, lead.AFCStep)
	assert.NotNil(t, lead.Insights)

	_, err = NewLead("   ", "", nil)
	assert.Error(t, err)
}

func TestLeadClosed(t *testing.T) {
	lead := &Lead{Status: StatusActive}
	assert.False(t, lead.Closed())

	for _, status := range []string{StatusEnrolled, StatusWithdrawn, StatusArchived} {
		lead.Status = status
		assert.True(t, lead.Closed(), status)
	}

	for _, status := range []string{StatusCooling, StatusDormant} {
		lead.Status = status
		assert.False(t, lead.Closed(), status)
	}
}
