package engine

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/i2bric/TaskHero/internal/storage"
)

type Service struct {
	db      *sql.DB
	tasks   *storage.TaskRepo
	profile *storage.ProfileRepo
	history *storage.HistoryRepo
	now     func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:      db,
		tasks:   storage.NewTaskRepo(db),
		profile: storage.NewProfileRepo(db),
		history: storage.NewHistoryRepo(db),
		now:     time.Now,
	}
}

func (s *Service) TaskRepo() *storage.TaskRepo       { return s.tasks }
func (s *Service) ProfileRepo() *storage.ProfileRepo { return s.profile }
func (s *Service) HistoryRepo() *storage.HistoryRepo { return s.history }

// WithClock overrides the service time source. Tests use this to drive the
// calendar-date streak rule across days.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func normalizeText(text string) (string, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", ValidationError{Field: "text", Reason: "must not be empty"}
	}
	return t, nil
}

// Tasks returns all active tasks sorted by ascending deadline.
func (s *Service) Tasks(ctx context.Context) ([]storage.Task, error) {
	return s.tasks.ListActive(ctx)
}

// OverdueCount returns how many active tasks are past their deadline.
func (s *Service) OverdueCount(ctx context.Context) (int, error) {
	return s.tasks.CountOverdue(ctx, s.now().UTC())
}
