package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type HistoryRepo struct {
	db querier
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// WithTx returns a copy of the repo bound to the given transaction.
func (r *HistoryRepo) WithTx(tx *sql.Tx) *HistoryRepo {
	return &HistoryRepo{db: tx}
}

type HistoryInsert struct {
	TaskText    string
	Difficulty  string
	ExpEarned   int
	Deadline    time.Time
	CompletedAt time.Time
	WasOverdue  bool
}

func (r *HistoryRepo) Insert(ctx context.Context, in HistoryInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO history (task_text, difficulty, exp_earned, deadline, completed_at, was_overdue)
		VALUES (?, ?, ?, ?, ?, ?)
	`, in.TaskText, in.Difficulty, in.ExpEarned, in.Deadline, in.CompletedAt, boolToInt(in.WasOverdue))
	if err != nil {
		return 0, fmt.Errorf("history insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("history last insert id: %w", err)
	}
	return id, nil
}

// ListRecent returns up to limit entries, most recent completion first.
func (r *HistoryRepo) ListRecent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_text, difficulty, exp_earned, deadline, completed_at, was_overdue
		FROM history
		ORDER BY completed_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("history list: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var (
			e       HistoryEntry
			overdue int
		)
		if err := rows.Scan(&e.ID, &e.TaskText, &e.Difficulty, &e.ExpEarned, &e.Deadline, &e.CompletedAt, &overdue); err != nil {
			return nil, fmt.Errorf("history scan: %w", err)
		}
		e.WasOverdue = overdue != 0
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history list rows: %w", err)
	}
	return out, nil
}

func (r *HistoryRepo) Stats(ctx context.Context) (*HistoryStats, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(exp_earned), 0),
			COALESCE(SUM(was_overdue), 0),
			COALESCE(SUM(CASE WHEN difficulty = 'easy' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN difficulty = 'medium' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN difficulty = 'hard' THEN 1 ELSE 0 END), 0)
		FROM history
	`)

	var s HistoryStats
	if err := row.Scan(&s.TotalCompleted, &s.TotalExpEarned, &s.OverdueCompleted, &s.EasyCount, &s.MediumCount, &s.HardCount); err != nil {
		return nil, fmt.Errorf("history stats: %w", err)
	}
	return &s, nil
}

// DeleteAll removes every history entry and returns how many were deleted.
func (r *HistoryRepo) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, fmt.Errorf("history delete all: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("history delete all rows affected: %w", err)
	}
	return int(n), nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
