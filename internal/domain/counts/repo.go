package counts

import "context"

// ListFilter narrows count ledger listings.
type ListFilter struct {
	CodeItem    string
	CounterName string
	DepositID   *int64
	RackID      *int64

	Limit  int
	Offset int
}

// Repository defines the interface for count ledger persistence.
type Repository interface {
	// Insert persists one new row and returns its id.
	Insert(ctx context.Context, count *Count) (int64, error)

	// GetByID retrieves a row by id.
	GetByID(ctx context.Context, id int64) (*Count, error)

	// Update rewrites a row in place.
	Update(ctx context.Context, count *Count) error

	// Delete removes a row.
	Delete(ctx context.Context, id int64) error

	// List retrieves rows in insertion order (id ascending).
	List(ctx context.Context, filter ListFilter) ([]Count, error)

	// ExistsForCode reports whether any ledger row carries the exact code.
	ExistsForCode(ctx context.Context, code string) (bool, error)
}
