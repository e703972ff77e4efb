package summary

import "context"

// Repository defines the interface for summary persistence.
type Repository interface {
	// Rebuild re-aggregates the count ledger into the summary table.
	// When clear is false, the insert is additive and can duplicate rows
	// from prior runs; that is accepted behavior, not a merge.
	Rebuild(ctx context.Context, clear bool, updatedDate string) (int, error)

	// List retrieves summary rows ordered by code.
	List(ctx context.Context) ([]Row, error)
}
