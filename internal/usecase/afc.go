package usecase

import (
	"fmt"
	"strings"
	"time"
)

// AFCSchedule maps a follow-up step to the day offset the attempt is
// due on: 1st on day 1, 2nd on day 3, 3rd on day 5, 4th on day 7 and
// the 5th (final) on day 15.
var AFCSchedule = map[int]int{
	1: 1,
	2: 3,
	3: 5,
	4: 7,
	5: 15,
}

// AFCMaxStep is the last scheduled attempt; past it the cycle ends.
const AFCMaxStep = 5

// FollowupDescription names the interactive task for a given step,
// e.g. "Day 3 Follow-up".
func FollowupDescription(step int) string {
	return fmt.Sprintf("Day %d Follow-up", AFCSchedule[step])
}

// FollowupDueDate returns when the follow-up for a step is due,
// counted from now.
func FollowupDueDate(now time.Time, step int) time.Time {
	return now.AddDate(0, 0, AFCSchedule[step])
}

// IsFollowupTask matches the tasks the AFC itself schedules, so resets
// and closures can clear them without touching user to-dos.
func IsFollowupTask(description string) bool {
	return strings.Contains(description, "Follow-up")
}

// IsEventTask matches confirmation/reminder tasks created for a
// scheduled event.
func IsEventTask(description string) bool {
	return strings.HasPrefix(description, "Confirm attendance for ") ||
		strings.HasPrefix(description, "Remind about ")
}
