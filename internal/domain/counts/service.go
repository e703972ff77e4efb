package counts

import (
	"context"
	"strings"
	"time"

	"stocktally/internal/core/apperror"
	"stocktally/internal/domain/catalogs/item"
	"stocktally/internal/domain/catalogs/location"
	"stocktally/pkg/logger"
)

// Service provides the reconciliation engine over the count ledger.
type Service struct {
	repo      Repository
	items     *item.Service
	locations *location.Service
}

// NewService creates a new count service.
func NewService(repo Repository, items *item.Service, locations *location.Service) *Service {
	return &Service{
		repo:      repo,
		items:     items,
		locations: locations,
	}
}

// SubmitInput carries one count entry.
type SubmitInput struct {
	CounterName string
	Code        string
	DepositID   int64
	RackID      int64
	Quantities
	CountDate time.Time
	Remarks   string

	// AllowDuplicate skips the duplicate guard. Bulk import sets it so
	// intentional re-counts go through; the interactive path never does.
	AllowDuplicate bool
}

// Lookup is the result of resolving a code for the entry form: the catalog
// row plus whether a ledger entry already exists for the code.
type Lookup struct {
	Item          *item.Item `json:"item"`
	HasExisting   bool       `json:"hasExisting"`
	ResolvedExact bool       `json:"resolvedExact"`
}

// Resolve looks up a typed code for the entry form and reports whether a
// count already exists, so the form can warn before anything is entered.
func (s *Service) Resolve(ctx context.Context, code string) (*Lookup, error) {
	code = strings.TrimSpace(code)

	resolved, err := s.items.ResolveCode(ctx, code)
	if err != nil {
		return nil, err
	}

	existing, err := s.HasExistingCount(ctx, code)
	if err != nil {
		return nil, err
	}

	return &Lookup{
		Item:          resolved,
		HasExisting:   existing,
		ResolvedExact: resolved.Code == code,
	}, nil
}

// HasExistingCount checks the ledger for the exact code and, when the code
// carries leading zeros, for the zero-stripped variant as well.
func (s *Service) HasExistingCount(ctx context.Context, code string) (bool, error) {
	exists, err := s.repo.ExistsForCode(ctx, code)
	if err != nil || exists {
		return exists, err
	}

	if alt := item.StripZeros(code); alt != "" && alt != code {
		return s.repo.ExistsForCode(ctx, alt)
	}
	return false, nil
}

// Submit validates, resolves, computes and persists one count row.
// The insert is a single short-lived statement; there are no cascading
// updates to the catalog.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Count, error) {
	in.Code = strings.TrimSpace(in.Code)
	if in.CounterName == "" || in.Code == "" {
		return nil, apperror.NewValidation("counter name and item code are required")
	}
	if err := in.Quantities.Validate(); err != nil {
		return nil, err
	}
	if in.DepositID <= 0 || in.RackID <= 0 {
		return nil, apperror.NewMissingLocation()
	}

	resolved, err := s.items.ResolveCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}

	if !in.AllowDuplicate {
		existing, err := s.HasExistingCount(ctx, in.Code)
		if err != nil {
			return nil, err
		}
		if existing {
			return nil, apperror.NewDuplicateCount(in.Code)
		}
	}

	deposit, err := s.locations.GetDeposit(ctx, in.DepositID)
	if err != nil {
		return nil, err
	}
	rack, err := s.locations.GetRack(ctx, in.RackID)
	if err != nil {
		return nil, err
	}

	countDate := in.CountDate
	if countDate.IsZero() {
		countDate = time.Now()
	}

	count := &Count{
		CounterName: in.CounterName,
		CodeItem:    resolved.Code,
		DepositID:   deposit.ID,
		RackID:      rack.ID,
		Location:    location.Label(deposit, rack),
		CountDate:   countDate.Format("2006-01-02"),
		Remarks:     in.Remarks,
	}
	count.apply(in.Quantities, resolved.CurrentInventory)

	id, err := s.repo.Insert(ctx, count)
	if err != nil {
		return nil, err
	}
	count.ID = id

	logger.Info(ctx, "count recorded",
		"id", id,
		"code", count.CodeItem,
		"counter", count.CounterName,
		"total", count.Total,
		"difference", count.Difference,
	)

	return count, nil
}

// ImportRow persists one bulk-imported count. Duplicates are allowed so
// intentional re-counts go through. An unknown code is kept as typed with a
// zero inventory snapshot; the row still satisfies the derived-field
// invariants.
func (s *Service) ImportRow(ctx context.Context, in SubmitInput) (*Count, error) {
	in.Code = strings.TrimSpace(in.Code)
	if in.Code == "" {
		return nil, apperror.NewValidation("item code is required").
			WithDetail("field", "code")
	}
	if err := in.Quantities.Validate(); err != nil {
		return nil, err
	}
	if in.DepositID <= 0 || in.RackID <= 0 {
		return nil, apperror.NewMissingLocation()
	}

	code := in.Code
	inventory := 0
	if resolved, err := s.items.ResolveCode(ctx, in.Code); err == nil {
		code = resolved.Code
		inventory = resolved.CurrentInventory
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	deposit, err := s.locations.GetDeposit(ctx, in.DepositID)
	if err != nil {
		return nil, err
	}
	rack, err := s.locations.GetRack(ctx, in.RackID)
	if err != nil {
		return nil, err
	}

	countDate := in.CountDate
	if countDate.IsZero() {
		countDate = time.Now()
	}

	count := &Count{
		CounterName: in.CounterName,
		CodeItem:    code,
		DepositID:   deposit.ID,
		RackID:      rack.ID,
		Location:    location.Label(deposit, rack),
		CountDate:   countDate.Format("2006-01-02"),
		Remarks:     in.Remarks,
	}
	count.apply(in.Quantities, inventory)

	rowID, err := s.repo.Insert(ctx, count)
	if err != nil {
		return nil, err
	}
	count.ID = rowID
	return count, nil
}

// UpdateInput carries an edit of an existing ledger row.
type UpdateInput struct {
	Quantities
	CounterName *string
	Remarks     *string
	CountDate   *time.Time
}

// Update rewrites the entered quantities of a row and recomputes the derived
// fields against the row's stored inventory snapshot, not the live catalog.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*Count, error) {
	if err := in.Quantities.Validate(); err != nil {
		return nil, err
	}

	count, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count.apply(in.Quantities, count.CurrentInventory)
	if in.CounterName != nil {
		count.CounterName = *in.CounterName
	}
	if in.Remarks != nil {
		count.Remarks = *in.Remarks
	}
	if in.CountDate != nil {
		count.CountDate = in.CountDate.Format("2006-01-02")
	}

	if err := s.repo.Update(ctx, count); err != nil {
		return nil, err
	}
	return count, nil
}

// Get retrieves a ledger row.
func (s *Service) Get(ctx context.Context, id int64) (*Count, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a ledger row.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// List retrieves ledger rows in insertion order.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Count, error) {
	return s.repo.List(ctx, filter)
}
