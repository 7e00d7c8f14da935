package engine

import (
	"context"
	"database/sql"

	"github.com/i2bric/TaskHero/internal/storage"
)

// ProfileView is the profile record plus its derived threshold and title.
type ProfileView struct {
	Level             int       `json:"level"`
	Experience        int       `json:"experience"`
	ExperienceToNext  int       `json:"experienceToNextLevel"`
	TotalCompleted    int       `json:"totalTasksCompleted"`
	CurrentStreak     int       `json:"currentStreak"`
	LongestStreak     int       `json:"longestStreak"`
	LastCompletedDate *string   `json:"lastCompletedDate,omitempty"`
	Title             TitleTier `json:"title"`
}

// Profile returns the current progression state, creating the default level-1
// record on first access.
func (s *Service) Profile(ctx context.Context) (*ProfileView, error) {
	p, err := s.profile.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	return &ProfileView{
		Level:             p.Level,
		Experience:        p.Experience,
		ExperienceToNext:  ThresholdForLevel(p.Level),
		TotalCompleted:    p.TotalCompleted,
		CurrentStreak:     p.CurrentStreak,
		LongestStreak:     p.LongestStreak,
		LastCompletedDate: p.LastCompletedDate,
		Title:             TitleForLevel(p.Level),
	}, nil
}

// ResetProfile unconditionally returns the profile to level 1 with zeroed
// counters. Tasks and history are untouched.
func (s *Service) ResetProfile(ctx context.Context) error {
	return s.profile.Reset(ctx)
}

type ResetResult struct {
	DeletedTasks    int      `json:"deletedTodos"`
	DeletedHistory  int      `json:"deletedHistory"`
	NotificationIDs []string `json:"notificationIds,omitempty"`
}

// ResetAll deletes every task and history entry and resets the profile, all
// in one transaction. It reports what was deleted for user-facing
// confirmation and returns the cancelled tasks' notification schedule ids.
func (s *Service) ResetAll(ctx context.Context) (*ResetResult, error) {
	var res *ResetResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		tasks := s.tasks.WithTx(tx)
		profiles := s.profile.WithTx(tx)
		histories := s.history.WithTx(tx)

		active, err := tasks.ListActive(ctx)
		if err != nil {
			return err
		}
		var notifIDs []string
		for _, t := range active {
			if t.NotificationID != nil && *t.NotificationID != "" {
				notifIDs = append(notifIDs, *t.NotificationID)
			}
		}

		deletedTasks, err := tasks.DeleteAll(ctx)
		if err != nil {
			return err
		}
		deletedHistory, err := histories.DeleteAll(ctx)
		if err != nil {
			return err
		}
		if err := profiles.Reset(ctx); err != nil {
			return err
		}

		res = &ResetResult{
			DeletedTasks:    deletedTasks,
			DeletedHistory:  deletedHistory,
			NotificationIDs: notifIDs,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
