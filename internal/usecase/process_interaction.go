package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

// ProcessInteractionUseCase is the brain of the pipeline. Every logged
// interaction flows through here (via the queue worker) and moves the
// lead's Automated Follow-up Cycle:
//
//   - feedback logs mark engagement and reset the cycle
//   - outcome logs pause the cycle and schedule concrete tasks
//   - Enrolled/Withdrawn quick logs close the lead
//   - Unresponsive quick logs advance the cycle toward Cooling/Dormant
//   - anything else counts as engagement and resets the cycle
type ProcessInteractionUseCase struct {
	Leads LeadRepositoryInterface
	Tasks TaskRepositoryInterface

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewProcessInteractionUseCase(leads LeadRepositoryInterface, tasks TaskRepositoryInterface) *ProcessInteractionUseCase {
	return &ProcessInteractionUseCase{
		Leads: leads,
		Tasks: tasks,
		Now:   time.Now,
	}
}

func (uc *ProcessInteractionUseCase) Execute(ctx context.Context, in *entity.Interaction) error {
	lead, err := uc.Leads.FindByID(ctx, in.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			// The lead was deleted while the message was in flight.
			log.Printf("lead %s not found, dropping interaction %s", in.LeadID, in.ID)
			return nil
		}
		return err
	}

	if err := uc.Leads.TouchLastInteraction(ctx, lead.ID, in.CreatedAt); err != nil {
		return err
	}

	if in.Feedback != nil {
		if err := uc.markEngaged(ctx, lead); err != nil {
			return err
		}
		return uc.resetAFC(ctx, lead)
	}

	if in.Outcome != "" {
		if err := uc.markEngaged(ctx, lead); err != nil {
			return err
		}
		return uc.processOutcome(ctx, lead, in)
	}

	// Quick-log and standard engagement path.
	if _, err := uc.Tasks.CompleteOpenInteractive(ctx, lead.ID); err != nil {
		return err
	}

	// Unresponsive means the lead did NOT engage; everything else does.
	if in.QuickLogType != entity.QuickLogUnresponsive {
		if err := uc.markEngaged(ctx, lead); err != nil {
			return err
		}
	}

	switch in.QuickLogType {
	case entity.QuickLogEnrolled, entity.QuickLogWithdrawn:
		status := entity.StatusEnrolled
		if in.QuickLogType == entity.QuickLogWithdrawn {
			status = entity.StatusWithdrawn
		}
		if err := uc.Leads.SetStatus(ctx, lead.ID, status, 0); err != nil {
			return err
		}
		// The lead left the pipeline; clear its scheduled follow-ups.
		if _, err := uc.Tasks.DeletePendingFollowups(ctx, lead.ID); err != nil {
			return err
		}
		log.Printf("lead %s closed as %s, AFC ended", lead.ID, status)
		return nil

	case entity.QuickLogUnresponsive:
		return uc.advanceAFC(ctx, lead)
	}

	// Followup, Unchanged or any other responsive log.
	return uc.resetAFC(ctx, lead)
}

func (uc *ProcessInteractionUseCase) processOutcome(ctx context.Context, lead *entity.Lead, in *entity.Interaction) error {
	now := uc.Now()

	switch in.Outcome {
	case entity.OutcomeInfo:
		notes := in.Notes
		if notes == "" {
			notes = "Provide requested information."
		}
		due := now.AddDate(0, 0, 1)
		if err := uc.createTask(ctx, lead, notes, entity.NatureProcedural, &due); err != nil {
			return err
		}
		return uc.Leads.SetAFCStep(ctx, lead.ID, 0) // pause AFC

	case entity.OutcomeLater:
		if in.FollowUpDate == nil {
			return nil
		}
		if err := uc.createTask(ctx, lead, "Scheduled Follow-up", entity.NatureInteractive, in.FollowUpDate); err != nil {
			return err
		}
		return uc.Leads.SetAFCStep(ctx, lead.ID, 0) // pause AFC

	case entity.OutcomeEventScheduled:
		ev := in.EventDetails
		if ev == nil {
			return nil
		}

		// A reschedule replaces the old event's tasks.
		if ev.RescheduledFrom != nil {
			if _, err := uc.Tasks.DeleteEventTasks(ctx, lead.ID, ev.Type); err != nil {
				return err
			}
		}

		if _, err := uc.Tasks.CompleteOpenInteractive(ctx, lead.ID); err != nil {
			return err
		}

		eventType := ev.Type
		if eventType == "" {
			eventType = "Event"
		}

		// Confirmation on the morning of the event day.
		confirmDue := time.Date(ev.DateTime.Year(), ev.DateTime.Month(), ev.DateTime.Day(), 6, 0, 0, 0, ev.DateTime.Location())
		if err := uc.createTask(ctx, lead, fmt.Sprintf("Confirm attendance for %s", eventType), entity.NatureProcedural, &confirmDue); err != nil {
			return err
		}

		// Reminder the day before, when the event is 3+ days out.
		if ev.DateTime.Sub(now) >= 3*24*time.Hour {
			reminderDue := ev.DateTime.AddDate(0, 0, -1)
			if err := uc.createTask(ctx, lead, fmt.Sprintf("Remind about %s", eventType), entity.NatureProcedural, &reminderDue); err != nil {
				return err
			}
		}
		return nil
	}

	return nil
}

// advanceAFC moves the cycle one step forward; once the final step is
// exhausted the lead goes Cooling (if it engaged at some point) or
// Dormant.
func (uc *ProcessInteractionUseCase) advanceAFC(ctx context.Context, lead *entity.Lead) error {
	next := lead.AFCStep + 1

	if _, scheduled := AFCSchedule[next]; scheduled {
		if err := uc.Leads.SetAFCStep(ctx, lead.ID, next); err != nil {
			return err
		}
		due := FollowupDueDate(uc.Now(), next)
		return uc.createTask(ctx, lead, FollowupDescription(next), entity.NatureInteractive, &due)
	}

	status := entity.StatusDormant
	if lead.HasEngaged {
		status = entity.StatusCooling
	}
	if err := uc.Leads.SetStatus(ctx, lead.ID, status, 0); err != nil {
		return err
	}
	log.Printf("AFC cycle complete for lead %s, status set to %s", lead.ID, status)
	return nil
}

// resetAFC starts the cycle over for an engaged lead: step 1 and a
// fresh day-1 follow-up, with stale follow-up tasks cleared first.
func (uc *ProcessInteractionUseCase) resetAFC(ctx context.Context, lead *entity.Lead) error {
	if _, err := uc.Tasks.DeletePendingFollowups(ctx, lead.ID); err != nil {
		return err
	}
	if err := uc.Leads.SetAFCStep(ctx, lead.ID, 1); err != nil {
		return err
	}
	due := FollowupDueDate(uc.Now(), 1)
	return uc.createTask(ctx, lead, FollowupDescription(1), entity.NatureInteractive, &due)
}

func (uc *ProcessInteractionUseCase) markEngaged(ctx context.Context, lead *entity.Lead) error {
	if lead.HasEngaged {
		return nil
	}
	if err := uc.Leads.MarkEngaged(ctx, lead.ID); err != nil {
		return err
	}
	lead.HasEngaged = true
	return nil
}

func (uc *ProcessInteractionUseCase) createTask(ctx context.Context, lead *entity.Lead, description, nature string, due *time.Time) error {
	task, err := entity.NewTask(lead.ID, lead.Name, description, nature, due)
	if err != nil {
		return err
	}
	return uc.Tasks.Create(ctx, task)
}
