package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// MainProfileKey identifies the single per-user profile row.
const MainProfileKey = "hero"

type ProfileRepo struct {
	db querier
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// WithTx returns a copy of the repo bound to the given transaction.
func (r *ProfileRepo) WithTx(tx *sql.Tx) *ProfileRepo {
	return &ProfileRepo{db: tx}
}

func (r *ProfileRepo) Get(ctx context.Context, key string) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, level, experience, total_completed, current_streak, longest_streak, last_completed_date
		FROM profile
		WHERE key = ?
	`, key)

	var (
		p        Profile
		lastDate sql.NullString
	)
	if err := row.Scan(&p.Key, &p.Level, &p.Experience, &p.TotalCompleted, &p.CurrentStreak, &p.LongestStreak, &lastDate); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}
	if lastDate.Valid {
		v := lastDate.String
		p.LastCompletedDate = &v
	}
	return &p, nil
}

// GetOrCreateMain lazily creates the profile with level 1 and zeroed counters
// on first access.
func (r *ProfileRepo) GetOrCreateMain(ctx context.Context) (*Profile, error) {
	p, err := r.Get(ctx, MainProfileKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO profile (key) VALUES (?)`, MainProfileKey); err != nil {
		return nil, fmt.Errorf("profile insert: %w", err)
	}
	return r.Get(ctx, MainProfileKey)
}

func (r *ProfileRepo) Update(ctx context.Context, p *Profile) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profile
		SET level = ?, experience = ?, total_completed = ?, current_streak = ?, longest_streak = ?, last_completed_date = ?
		WHERE key = ?
	`, p.Level, p.Experience, p.TotalCompleted, p.CurrentStreak, p.LongestStreak, p.LastCompletedDate, p.Key)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	return nil
}

// Reset replaces the profile wholesale with a fresh level-1 record.
func (r *ProfileRepo) Reset(ctx context.Context) error {
	if _, err := r.GetOrCreateMain(ctx); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		UPDATE profile
		SET level = 1, experience = 0, total_completed = 0, current_streak = 0, longest_streak = 0, last_completed_date = NULL
		WHERE key = ?
	`, MainProfileKey)
	if err != nil {
		return fmt.Errorf("profile reset: %w", err)
	}
	return nil
}
