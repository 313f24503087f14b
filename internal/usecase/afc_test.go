package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAFCSchedule(t *testing.T) {
	assert.Equal(t, 1, AFCSchedule[1])
	assert.Equal(t, 3, AFCSchedule[2])
	assert.Equal(t, 5, AFCSchedule[3])
	assert.Equal(t, 7, AFCSchedule[4])
	assert.Equal(t, 15, AFCSchedule[5])

	_, exists := AFCSchedule[6]
	assert.False(t, exists, "the cycle ends after step 5")
}

func TestFollowupDueDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	due := FollowupDueDate(now, 1)
	assert.Equal(t, now.AddDate(0, 0, 1), due)

	due = FollowupDueDate(now, 5)
	assert.Equal(t, now.AddDate(0, 0, 15), due)
}

func TestFollowupDescription(t *testing.T) {
	assert.Equal(t, "Day 1 Follow-up", FollowupDescription(1))
	assert.Equal(t, "Day 3 Follow-up", FollowupDescription(2))
}

func TestIsFollowupTask(t *testing.T) {
	assert.True(t, IsFollowupTask("Day 1 Follow-up"))
	assert.True(t, IsFollowupTask("Scheduled Follow-up"))
	assert.False(t, IsFollowupTask("Send course brochure"))
}

func TestIsEventTask(t *testing.T) {
	assert.True(t, IsEventTask("Confirm attendance for Demo"))
	assert.True(t, IsEventTask("Remind about Demo"))
	assert.False(t, IsEventTask("Day 1 Follow-up"))
}
