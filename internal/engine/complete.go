package engine

import (
	"context"
	"database/sql"

	"github.com/i2bric/TaskHero/internal/storage"
)

type CompleteResult struct {
	TaskID         int64     `json:"taskId"`
	ExpEarned      int       `json:"expEarned"`
	LevelBefore    int       `json:"levelBefore"`
	NewLevel       int       `json:"newLevel"`
	LeveledUp      bool      `json:"leveledUp"`
	LevelsGained   int       `json:"levelsGained"`
	WasOverdue     bool      `json:"wasOverdue"`
	CurrentStreak  int       `json:"currentStreak"`
	LongestStreak  int       `json:"longestStreak"`
	Title          TitleTier `json:"title"`
	NotificationID *string   `json:"notificationId,omitempty"`
}

// CompleteTask settles a task: its card is deleted from the active set, a
// history entry is written, and the profile gains XP, levels, streak and
// completion count. Everything runs in one SQL transaction, so a failure in
// any step leaves the task completable and the profile untouched. A second
// completion of the same id fails with NotFoundError because the card no
// longer exists.
func (s *Service) CompleteTask(ctx context.Context, id int64) (*CompleteResult, error) {
	now := s.now().UTC()

	var res *CompleteResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		tasks := s.tasks.WithTx(tx)
		profiles := s.profile.WithTx(tx)
		histories := s.history.WithTx(tx)

		t, err := tasks.Get(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return NotFoundError{TaskID: id}
		}

		difficulty := parseStoredDifficulty(t.Difficulty)
		expEarned := RewardXP(difficulty)
		wasOverdue := now.After(t.Deadline)

		if _, err := histories.Insert(ctx, storage.HistoryInsert{
			TaskText:    t.Text,
			Difficulty:  string(difficulty),
			ExpEarned:   expEarned,
			Deadline:    t.Deadline,
			CompletedAt: now,
			WasOverdue:  wasOverdue,
		}); err != nil {
			return err
		}
		if err := tasks.Delete(ctx, id); err != nil {
			return err
		}

		p, err := profiles.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		levelBefore := p.Level
		award := AwardExperience(p, expEarned)
		UpdateStreak(p, now)
		p.TotalCompleted++
		if err := profiles.Update(ctx, p); err != nil {
			return err
		}

		res = &CompleteResult{
			TaskID:         id,
			ExpEarned:      expEarned,
			LevelBefore:    levelBefore,
			NewLevel:       award.FinalLevel,
			LeveledUp:      award.LeveledUp,
			LevelsGained:   award.LevelsGained,
			WasOverdue:     wasOverdue,
			CurrentStreak:  p.CurrentStreak,
			LongestStreak:  p.LongestStreak,
			Title:          TitleForLevel(award.FinalLevel),
			NotificationID: t.NotificationID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
