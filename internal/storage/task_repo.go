package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type TaskRepo struct {
	db querier
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// WithTx returns a copy of the repo bound to the given transaction.
func (r *TaskRepo) WithTx(tx *sql.Tx) *TaskRepo {
	return &TaskRepo{db: tx}
}

type TaskInsert struct {
	Text           string
	Difficulty     string
	Deadline       time.Time
	NotificationID *string
}

func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (text, difficulty, deadline, notification_id)
		VALUES (?, ?, ?, ?)
	`, in.Text, in.Difficulty, in.Deadline, in.NotificationID)
	if err != nil {
		return 0, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	return id, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, text, difficulty, deadline, created_at, notification_id
		FROM tasks
		WHERE id = ?
	`, id)
	return scanTask(row)
}

// ListActive returns all active tasks sorted by ascending deadline
// (soonest first).
func (r *TaskRepo) ListActive(ctx context.Context) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, text, difficulty, deadline, created_at, notification_id
		FROM tasks
		ORDER BY deadline ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

func (r *TaskRepo) Update(ctx context.Context, id int64, text, difficulty string, deadline time.Time, notificationID *string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET text = ?, difficulty = ?, deadline = ?, notification_id = ?
		WHERE id = ?
	`, text, difficulty, deadline, notificationID, id)
	if err != nil {
		return fmt.Errorf("task update: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	return nil
}

// CountOverdue returns the number of active tasks whose deadline has passed.
func (r *TaskRepo) CountOverdue(ctx context.Context, now time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE deadline < ?`, now)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("task overdue count: %w", err)
	}
	return n, nil
}

// DeleteAll removes every active task and returns how many were deleted.
func (r *TaskRepo) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks`)
	if err != nil {
		return 0, fmt.Errorf("task delete all: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("task delete all rows affected: %w", err)
	}
	return int(n), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*Task, error) {
	var (
		id             int64
		text           string
		difficulty     string
		deadline       time.Time
		createdAt      time.Time
		notificationID sql.NullString
	)

	if err := row.Scan(&id, &text, &difficulty, &deadline, &createdAt, &notificationID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}

	var notifID *string
	if notificationID.Valid {
		v := notificationID.String
		notifID = &v
	}

	return &Task{
		ID:             id,
		Text:           text,
		Difficulty:     difficulty,
		Deadline:       deadline,
		CreatedAt:      createdAt,
		NotificationID: notifID,
	}, nil
}
