package summary

import (
	"context"
	"time"

	"stocktally/pkg/logger"
)

// Service provides the summary rebuild batch job. Every invocation re-scans
// the full ledger; there is no incremental path.
type Service struct {
	repo Repository
}

// NewService creates a new summary service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Rebuild recomputes the summary from scratch and returns the number of rows
// inserted. The caller decides whether the table is cleared first.
func (s *Service) Rebuild(ctx context.Context, clear bool) (int, error) {
	started := time.Now()

	inserted, err := s.repo.Rebuild(ctx, clear, started.Format(time.RFC3339))
	if err != nil {
		return 0, err
	}

	logger.Info(ctx, "summary rebuilt",
		"rows", inserted,
		"cleared", clear,
		"elapsed_ms", time.Since(started).Milliseconds(),
	)
	return inserted, nil
}

// List retrieves the current summary rows.
func (s *Service) List(ctx context.Context) ([]Row, error) {
	return s.repo.List(ctx)
}
