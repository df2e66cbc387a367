package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/thien06012001/backend/internal/domain/entities"
)

// RunReminderSweep scans every event whose start_time is still strictly in
// the future and emits reminder notifications where the calendar-day
// offset to now matches one of the event's configured thresholds.
//
// Events are processed concurrently, one task per event; a failing event
// is logged and collected but never aborts the rest of the fleet. The
// sweep carries no dedup state: running it twice on the same calendar day
// emits the notifications twice.
func (s *EventService) RunReminderSweep(ctx context.Context, now time.Time) (int, error) {
	events, err := s.eventRepo.FindFutureEvents(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to load future events: %w", err)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		total   int
		swept   []error
	)

	for _, ev := range events {
		wg.Add(1)
		go func(ev *entities.Event) {
			defer wg.Done()

			emitted, err := s.remindEvent(ctx, ev, now)

			mu.Lock()
			defer mu.Unlock()
			total += emitted
			if err != nil {
				swept = append(swept, fmt.Errorf("event %s: %w", ev.ID, err))
				s.logger.Error("reminder fan-out failed",
					zap.String("event_id", ev.ID.String()),
					zap.Error(err),
				)
			}
		}(ev)
	}
	wg.Wait()

	s.logger.Info("reminder sweep finished",
		zap.Int("events_scanned", len(events)),
		zap.Int("notifications_emitted", total),
		zap.Int("failed_events", len(swept)),
	)

	return total, errors.Join(swept...)
}

// remindEvent evaluates both reminder thresholds for a single event. The
// two checks are independent: both, one, or neither may fire on a sweep.
func (s *EventService) remindEvent(ctx context.Context, ev *entities.Event, now time.Time) (int, error) {
	days := ev.DaysUntilStart(now)
	emitted := 0

	if days == ev.ParticipantReminder {
		n, err := s.remindParticipants(ctx, ev, days)
		if err != nil {
			return emitted, err
		}
		emitted += n
	}

	if days == ev.InvitationReminder {
		n, err := s.remindPendingInvitees(ctx, ev, days)
		if err != nil {
			return emitted, err
		}
		emitted += n
	}

	return emitted, nil
}

func (s *EventService) remindParticipants(ctx context.Context, ev *entities.Event, days int) (int, error) {
	participants, err := s.participantRepo.FindByEventID(ctx, ev.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to load participants: %w", err)
	}

	notifications := make([]*entities.Notification, 0, len(participants))
	for _, p := range participants {
		eventID := ev.ID
		notifications = append(notifications, &entities.Notification{
			UserID:      p.UserID,
			EventID:     &eventID,
			Title:       entities.NotificationTitleEventReminder,
			Description: fmt.Sprintf("%s starts in %d day(s)", ev.Name, days),
		})
	}
	if len(notifications) == 0 {
		return 0, nil
	}
	if err := s.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		return 0, fmt.Errorf("failed to insert participant reminders: %w", err)
	}
	return len(notifications), nil
}

func (s *EventService) remindPendingInvitees(ctx context.Context, ev *entities.Event, days int) (int, error) {
	invitations, err := s.invitationRepo.FindPendingByEventID(ctx, ev.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending invitations: %w", err)
	}

	notifications := make([]*entities.Notification, 0, len(invitations))
	for _, inv := range invitations {
		eventID := ev.ID
		notifications = append(notifications, &entities.Notification{
			UserID:      inv.UserID,
			EventID:     &eventID,
			Title:       entities.NotificationTitlePendingInvitation,
			Description: fmt.Sprintf("You have a pending invitation to %s, starting in %d day(s)", ev.Name, days),
		})
	}
	if len(notifications) == 0 {
		return 0, nil
	}
	if err := s.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		return 0, fmt.Errorf("failed to insert invitation reminders: %w", err)
	}
	return len(notifications), nil
}
