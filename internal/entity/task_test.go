package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	due := time.Now().AddDate(0, 0, 1)

	task, err := NewTask("lead-1", "Asha", "Day 1 Follow-up", NatureInteractive, &due)
	assert.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.False(t, task.Completed)

	_, err = NewTask("lead-1", "Asha", "", NatureInteractive, nil)
	assert.Error(t, err, "description required")

	_, err = NewTask("lead-1", "Asha", "x", "Urgent", nil)
	assert.Error(t, err, "nature must be a known value")
}

func TestTaskOverdue(t *testing.T) {
	now := time.Now()
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	task := &Task{DueDate: &past}
	assert.True(t, task.Overdue(now))

	task.Completed = true
	assert.False(t, task.Overdue(now), "completed tasks are never overdue")

	task = &Task{DueDate: &future}
	assert.False(t, task.Overdue(now))

	task = &Task{}
	assert.False(t, task.Overdue(now), "no due date means never overdue")
}
