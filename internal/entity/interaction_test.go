package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInteractionValidate(t *testing.T) {
	t.Run("Quick log", func(t *testing.T) {
		in := NewInteraction("lead-1")
		in.QuickLogType = QuickLogFollowup
		assert.NoError(t, in.Validate())
	})

	t.Run("Unknown quick log type", func(t *testing.T) {
		in := NewInteraction("lead-1")
		in.QuickLogType = "Ghosted"
		assert.Error(t, in.Validate())
	})

	t.Run("Feedback", func(t *testing.T) {
		in := NewInteraction("lead-1")
		in.Feedback = &Feedback{Perception: PerceptionNegative, Objections: []string{"price"}}
		assert.NoError(t, in.Validate())

		in.Feedback.Perception = "Meh"
		assert.Error(t, in.Validate())
	})

	t.Run("Later requires follow-up date", func(t *testing.T) {
		in := NewInteraction("lead-1")
		in.Outcome = OutcomeLater
		assert.Error(t, in.Validate())

		date := time.Now().AddDate(0, 0, 7)
		in.FollowUpDate = &date
		assert.NoError(t, in.Validate())
	})

	t.Run("Event Scheduled requires date", func(t *testing.T) {
		in := NewInteraction("lead-1")
		in.Outcome = OutcomeEventScheduled
		assert.Error(t, in.Validate())

		in.EventDetails = &EventDetails{Type: "Demo"}
		assert.Error(t, in.Validate())

		in.EventDetails.DateTime = time.Now().AddDate(0, 0, 2)
		assert.NoError(t, in.Validate())
	})

	t.Run("Exactly one shape", func(t *testing.T) {
		in := NewInteraction("lead-1")
		assert.Error(t, in.Validate(), "empty interaction")

		in.QuickLogType = QuickLogFollowup
		in.Outcome = OutcomeInfo
		assert.Error(t, in.Validate(), "two shapes at once")
	})

	t.Run("Lead required", func(t *testing.T) {
		in := NewInteraction("")
		in.QuickLogType = QuickLogFollowup
		assert.Error(t, in.Validate())
	})
}
