package location

import (
	"context"
	"strconv"
	"strings"

	"stocktally/internal/core/apperror"
)

// Service provides business logic for the location hierarchy, including the
// fuzzy resolution used by bulk count import. Strategy order matters: a
// numeric value is taken as an id before any text matching, because
// numeric-looking descriptions would otherwise be ambiguous.
type Service struct {
	repo Repository
}

// NewService creates a new location service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Deposits lists all deposits ordered by description.
func (s *Service) Deposits(ctx context.Context) ([]Deposit, error) {
	return s.repo.Deposits(ctx)
}

// Racks lists racks, optionally scoped to one deposit.
func (s *Service) Racks(ctx context.Context, depositID *int64) ([]Rack, error) {
	return s.repo.Racks(ctx, depositID)
}

// GetDeposit retrieves a deposit by id.
func (s *Service) GetDeposit(ctx context.Context, id int64) (*Deposit, error) {
	return s.repo.DepositByID(ctx, id)
}

// GetRack retrieves a rack by id.
func (s *Service) GetRack(ctx context.Context, id int64) (*Rack, error) {
	return s.repo.RackByID(ctx, id)
}

// ResolveDeposit resolves a free-form value to a deposit:
// numeric id, then exact case-insensitive description, then substring match.
func (s *Service) ResolveDeposit(ctx context.Context, value string) (*Deposit, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, apperror.NewNotFound("deposit", value)
	}

	if id, err := strconv.ParseInt(value, 10, 64); err == nil {
		if dep, err := s.repo.DepositByID(ctx, id); err == nil {
			return dep, nil
		} else if !apperror.IsNotFound(err) {
			return nil, err
		}
	}

	if dep, err := s.repo.DepositByDescription(ctx, value); err == nil {
		return dep, nil
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	if dep, err := s.repo.DepositByDescriptionLike(ctx, value); err == nil {
		return dep, nil
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	return nil, apperror.NewNotFound("deposit", value)
}

// ResolveRack resolves a free-form value to a rack. Strategies, first hit
// wins: numeric id, exact description within the deposit, exact description
// anywhere, prefix match within the deposit, substring match anywhere.
func (s *Service) ResolveRack(ctx context.Context, value string, depositID *int64) (*Rack, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, apperror.NewNotFound("rack", value)
	}

	if id, err := strconv.ParseInt(value, 10, 64); err == nil {
		if rack, err := s.repo.RackByID(ctx, id); err == nil {
			return rack, nil
		} else if !apperror.IsNotFound(err) {
			return nil, err
		}
	}

	if depositID != nil {
		if rack, err := s.repo.RackByDescription(ctx, value, depositID); err == nil {
			return rack, nil
		} else if !apperror.IsNotFound(err) {
			return nil, err
		}
	}

	if rack, err := s.repo.RackByDescription(ctx, value, nil); err == nil {
		return rack, nil
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	if depositID != nil {
		if rack, err := s.repo.RackByDescriptionPrefix(ctx, value, *depositID); err == nil {
			return rack, nil
		} else if !apperror.IsNotFound(err) {
			return nil, err
		}
	}

	if rack, err := s.repo.RackByDescriptionLike(ctx, value); err == nil {
		return rack, nil
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	return nil, apperror.NewNotFound("rack", value)
}
