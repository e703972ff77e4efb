package reports

import (
	"context"
	"fmt"
)

// Service provides report generation operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CountsByLocation returns the full ledger projection for export.
func (s *Service) CountsByLocation(ctx context.Context) ([]CountsRow, error) {
	rows, err := s.repo.CountsByLocation(ctx)
	if err != nil {
		return nil, fmt.Errorf("counts by location report: %w", err)
	}
	return rows, nil
}

// Differences returns summary rows ordered by absolute difference.
func (s *Service) Differences(ctx context.Context) ([]DifferenceRow, error) {
	rows, err := s.repo.Differences(ctx)
	if err != nil {
		return nil, fmt.Errorf("differences report: %w", err)
	}
	return rows, nil
}

// Uncounted returns catalog items that were never counted.
func (s *Service) Uncounted(ctx context.Context) ([]UncountedRow, error) {
	rows, err := s.repo.Uncounted(ctx)
	if err != nil {
		return nil, fmt.Errorf("uncounted items report: %w", err)
	}
	return rows, nil
}

// Remarks returns ledger rows carrying remarks, for verification.
func (s *Service) Remarks(ctx context.Context) ([]RemarkRow, error) {
	rows, err := s.repo.Remarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("remarks report: %w", err)
	}
	return rows, nil
}
