package item

import "context"

// ListFilter narrows item listings.
type ListFilter struct {
	// Search matches against code and description (substring).
	Search string

	Limit  int
	Offset int
}

// Repository defines the interface for item catalog persistence.
type Repository interface {
	// GetByCode retrieves an item by its exact code.
	GetByCode(ctx context.Context, code string) (*Item, error)

	// List retrieves items matching the filter, ordered by code.
	List(ctx context.Context, filter ListFilter) ([]Item, error)

	// ReplaceAll replaces the whole catalog with the given items.
	// Existing count rows keep their code references even when the referenced
	// item disappears.
	ReplaceAll(ctx context.Context, items []Item) error

	// UpdateCurrentInventory sets the authoritative quantity for one code.
	UpdateCurrentInventory(ctx context.Context, code string, quantity int) error
}
