// Package notify is the reminder-scheduling collaborator. The engine never
// depends on it; callers schedule a reminder when a task is created and
// cancel it with the id stored on the task when the task is completed,
// edited or deleted.
package notify

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Scheduler schedules a reminder ahead of a task deadline. Schedule returns
// an opaque schedule id, or "" when nothing was scheduled (deadline too
// close, reminders disabled).
type Scheduler interface {
	Schedule(ctx context.Context, taskID int64, text string, deadline time.Time, difficulty string) (string, error)
	Cancel(ctx context.Context, scheduleID string) error
}

// ReminderLead is how far ahead of the deadline a reminder fires.
const ReminderLead = 24 * time.Hour

// Noop satisfies Scheduler without scheduling anything.
type Noop struct{}

func (Noop) Schedule(context.Context, int64, string, time.Time, string) (string, error) {
	return "", nil
}

func (Noop) Cancel(context.Context, string) error { return nil }

// LogScheduler records schedule and cancel calls on a logger. It stands in
// for a platform push service during local use.
type LogScheduler struct {
	Logger *log.Logger
}

func (s *LogScheduler) Schedule(_ context.Context, taskID int64, text string, deadline time.Time, difficulty string) (string, error) {
	at := deadline.Add(-ReminderLead)
	if !time.Now().Before(at) {
		return "", nil
	}
	id := fmt.Sprintf("reminder-%d-%d", taskID, deadline.Unix())
	if s.Logger != nil {
		s.Logger.Printf("scheduled %s at %s for %q (%s)", id, at.Format(time.RFC3339), text, difficulty)
	}
	return id, nil
}

func (s *LogScheduler) Cancel(_ context.Context, scheduleID string) error {
	if scheduleID != "" && s.Logger != nil {
		s.Logger.Printf("cancelled %s", scheduleID)
	}
	return nil
}
