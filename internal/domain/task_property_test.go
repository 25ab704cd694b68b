package domain

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

// TestIsOverdueProperty checks the overdue predicate over arbitrary
// combinations of status and due date offset: a task is overdue exactly
// when it has a due date in the past and is not completed.
func TestIsOverdueProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		status := TaskStatus(rapid.SampledFrom([]string{
			"pending", "in_progress", "completed",
		}).Draw(rt, "status"))

		hasDueDate := rapid.Bool().Draw(rt, "has_due_date")

		task := Task{
			Title:    "property task",
			Status:   status,
			Priority: TaskPriorityMedium,
			UserID:   1,
		}

		pastDue := false
		if hasDueDate {
			// Offset of zero hours is excluded so the comparison with
			// the current time is unambiguous.
			hoursOffset := rapid.IntRange(-168, 168).Filter(func(h int) bool {
				return h != 0
			}).Draw(rt, "hours_offset")
			due := time.Now().Add(time.Duration(hoursOffset) * time.Hour)
			task.DueDate = &due
			pastDue = hoursOffset < 0
		}

		want := hasDueDate && pastDue && status != TaskStatusCompleted
		if got := task.IsOverdue(); got != want {
			rt.Fatalf("IsOverdue = %v, want %v (status=%s, hasDueDate=%v, pastDue=%v)",
				got, want, status, hasDueDate, pastDue)
		}
	})
}

// TestStatusRoundTripProperty checks that every valid status and
// priority string parses back to itself and everything else is rejected.
func TestStatusRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.StringMatching(`[a-z_]{0,15}`).Draw(rt, "candidate")

		status, err := ParseTaskStatus(s)
		switch s {
		case "pending", "in_progress", "completed":
			if err != nil || string(status) != s {
				rt.Fatalf("ParseTaskStatus(%q) = (%q, %v), want round trip", s, status, err)
			}
		default:
			if err == nil {
				rt.Fatalf("ParseTaskStatus(%q) accepted an invalid status", s)
			}
		}

		priority, err := ParseTaskPriority(s)
		switch s {
		case "low", "medium", "high":
			if err != nil || string(priority) != s {
				rt.Fatalf("ParseTaskPriority(%q) = (%q, %v), want round trip", s, priority, err)
			}
		default:
			if err == nil {
				rt.Fatalf("ParseTaskPriority(%q) accepted an invalid priority", s)
			}
		}
	})
}
