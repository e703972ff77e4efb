package item

import (
	"context"
	"strings"

	"stocktally/internal/core/apperror"
	"stocktally/pkg/logger"
)

// Service provides business logic for the item catalog.
type Service struct {
	repo Repository
}

// NewService creates a new item catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ResolveCode resolves a typed code to a catalog row. Exact match wins;
// when it misses and the code carries leading zeros, the zero-stripped
// variant is tried. No other normalization beyond a single trim is applied.
func (s *Service) ResolveCode(ctx context.Context, code string) (*Item, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperror.NewValidation("item code is required").
			WithDetail("field", "code")
	}

	found, err := s.repo.GetByCode(ctx, code)
	if err == nil {
		return found, nil
	}
	if !apperror.IsNotFound(err) {
		return nil, err
	}

	if alt := StripZeros(code); alt != "" && alt != code {
		found, err = s.repo.GetByCode(ctx, alt)
		if err == nil {
			return found, nil
		}
		if !apperror.IsNotFound(err) {
			return nil, err
		}
	}

	return nil, apperror.NewItemNotFound(code)
}

// List retrieves items matching the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Item, error) {
	return s.repo.List(ctx, filter)
}

// ReplaceCatalog replaces the whole catalog. Items absent from the new set
// disappear; counts referencing them keep their dangling codes.
func (s *Service) ReplaceCatalog(ctx context.Context, items []Item) (int, error) {
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return 0, err
		}
	}

	if err := s.repo.ReplaceAll(ctx, items); err != nil {
		return 0, err
	}

	logger.Info(ctx, "catalog replaced", "items", len(items))
	return len(items), nil
}

// CorrectInventory updates the authoritative quantity for one code,
// resolving the code the same way count entry does.
func (s *Service) CorrectInventory(ctx context.Context, code string, quantity int) error {
	resolved, err := s.ResolveCode(ctx, code)
	if err != nil {
		return err
	}
	return s.repo.UpdateCurrentInventory(ctx, resolved.Code, quantity)
}
