package engine

import (
	"context"

	"github.com/i2bric/TaskHero/internal/storage"
)

// HistoryPageSize caps how many entries the history view returns.
const HistoryPageSize = 50

// History returns the most recent completions, newest first.
func (s *Service) History(ctx context.Context) ([]storage.HistoryEntry, error) {
	return s.history.ListRecent(ctx, HistoryPageSize)
}

// HistoryStats returns aggregate completion statistics.
func (s *Service) HistoryStats(ctx context.Context) (*storage.HistoryStats, error) {
	return s.history.Stats(ctx)
}
