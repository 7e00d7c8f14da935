package engine

import (
	"context"
	"time"

	"github.com/i2bric/TaskHero/internal/storage"
)

type TaskInput struct {
	Text           string
	Difficulty     Difficulty
	Deadline       time.Time
	NotificationID *string
}

func (in TaskInput) validate() (TaskInput, error) {
	text, err := normalizeText(in.Text)
	if err != nil {
		return in, err
	}
	in.Text = text
	if !in.Difficulty.IsValid() {
		return in, ValidationError{Field: "difficulty", Reason: "must be easy, medium or hard"}
	}
	if in.Deadline.IsZero() {
		return in, ValidationError{Field: "deadline", Reason: "is required"}
	}
	return in, nil
}

// CreateTask validates and persists a new active task.
func (s *Service) CreateTask(ctx context.Context, in TaskInput) (*storage.Task, error) {
	in, err := in.validate()
	if err != nil {
		return nil, err
	}

	id, err := s.tasks.Insert(ctx, storage.TaskInsert{
		Text:           in.Text,
		Difficulty:     string(in.Difficulty),
		Deadline:       in.Deadline.UTC(),
		NotificationID: in.NotificationID,
	})
	if err != nil {
		return nil, err
	}
	return s.tasks.Get(ctx, id)
}

// UpdateTask edits an active task's text, difficulty and deadline. It returns
// the previous notification schedule id so the caller can cancel it.
func (s *Service) UpdateTask(ctx context.Context, id int64, in TaskInput) (oldNotificationID *string, err error) {
	in, err = in.validate()
	if err != nil {
		return nil, err
	}

	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NotFoundError{TaskID: id}
	}

	if err := s.tasks.Update(ctx, id, in.Text, string(in.Difficulty), in.Deadline.UTC(), in.NotificationID); err != nil {
		return nil, err
	}
	return t.NotificationID, nil
}

// DeleteTask removes an active task without any reward or history entry. It
// returns the task's notification schedule id so the caller can cancel it.
func (s *Service) DeleteTask(ctx context.Context, id int64) (notificationID *string, err error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NotFoundError{TaskID: id}
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return nil, err
	}
	return t.NotificationID, nil
}
