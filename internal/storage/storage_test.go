package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*TaskRepo, *ProfileRepo, *HistoryRepo) {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewTaskRepo(db), NewProfileRepo(db), NewHistoryRepo(db)
}

func TestTaskRoundTrip(t *testing.T) {
	tasks, _, _ := newTestDB(t)
	ctx := context.Background()

	notifID := "reminder-1"
	deadline := time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)
	id, err := tasks.Insert(ctx, TaskInsert{
		Text:           "Write the report",
		Difficulty:     "medium",
		Deadline:       deadline,
		NotificationID: &notifID,
	})
	require.NoError(t, err)

	got, err := tasks.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Write the report", got.Text)
	assert.Equal(t, "medium", got.Difficulty)
	assert.True(t, got.Deadline.Equal(deadline))
	require.NotNil(t, got.NotificationID)
	assert.Equal(t, notifID, *got.NotificationID)
}

func TestTaskGetMissingReturnsNil(t *testing.T) {
	tasks, _, _ := newTestDB(t)

	got, err := tasks.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListActiveOrderedByDeadline(t *testing.T) {
	tasks, _, _ := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	_, err := tasks.Insert(ctx, TaskInsert{Text: "c", Difficulty: "easy", Deadline: base.Add(48 * time.Hour)})
	require.NoError(t, err)
	_, err = tasks.Insert(ctx, TaskInsert{Text: "a", Difficulty: "easy", Deadline: base})
	require.NoError(t, err)
	_, err = tasks.Insert(ctx, TaskInsert{Text: "b", Difficulty: "easy", Deadline: base.Add(24 * time.Hour)})
	require.NoError(t, err)

	list, err := tasks.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{list[0].Text, list[1].Text, list[2].Text})
}

func TestProfileLazyDefaults(t *testing.T) {
	_, profiles, _ := newTestDB(t)
	ctx := context.Background()

	p, err := profiles.GetOrCreateMain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.Experience)
	assert.Equal(t, 0, p.TotalCompleted)
	assert.Equal(t, 0, p.CurrentStreak)
	assert.Nil(t, p.LastCompletedDate)
}

func TestProfileReset(t *testing.T) {
	_, profiles, _ := newTestDB(t)
	ctx := context.Background()

	p, err := profiles.GetOrCreateMain(ctx)
	require.NoError(t, err)
	date := "2026-08-30"
	p.Level = 7
	p.Experience = 42
	p.TotalCompleted = 19
	p.CurrentStreak = 4
	p.LongestStreak = 9
	p.LastCompletedDate = &date
	require.NoError(t, profiles.Update(ctx, p))

	require.NoError(t, profiles.Reset(ctx))

	fresh, err := profiles.Get(ctx, MainProfileKey)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Level)
	assert.Equal(t, 0, fresh.Experience)
	assert.Equal(t, 0, fresh.TotalCompleted)
	assert.Equal(t, 0, fresh.LongestStreak)
	assert.Nil(t, fresh.LastCompletedDate)
}

func TestHistoryStatsEmpty(t *testing.T) {
	_, _, history := newTestDB(t)

	stats, err := history.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalCompleted)
	assert.Equal(t, 0, stats.TotalExpEarned)
}

func TestHistoryRecentOrderAndLimit(t *testing.T) {
	_, _, history := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := history.Insert(ctx, HistoryInsert{
			TaskText:    "entry",
			Difficulty:  "easy",
			ExpEarned:   30,
			Deadline:    base.Add(time.Hour),
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	recent, err := history.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.True(t, recent[0].CompletedAt.After(recent[1].CompletedAt))
	assert.True(t, recent[1].CompletedAt.After(recent[2].CompletedAt))
}
