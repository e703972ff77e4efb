package reports

import "context"

// Repository defines read-only report queries.
type Repository interface {
	// CountsByLocation returns all ledger rows with descriptions, ordered by
	// deposit, rack, date, counter, code.
	CountsByLocation(ctx context.Context) ([]CountsRow, error)

	// Differences returns summary rows ordered by ABS(difference) DESC.
	Differences(ctx context.Context) ([]DifferenceRow, error)

	// Uncounted returns catalog items with no ledger entry, ordered by code.
	Uncounted(ctx context.Context) ([]UncountedRow, error)

	// Remarks returns ledger rows with a non-empty remark, ordered by
	// counter, deposit, rack, id.
	Remarks(ctx context.Context) ([]RemarkRow, error)
}
