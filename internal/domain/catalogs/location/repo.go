package location

import "context"

// Repository defines the interface for deposit/rack persistence.
// The description lookups are case-insensitive; Like lookups match substrings
// and Prefix lookups match leading text, both taking the first row found.
type Repository interface {
	Deposits(ctx context.Context) ([]Deposit, error)
	Racks(ctx context.Context, depositID *int64) ([]Rack, error)

	DepositByID(ctx context.Context, id int64) (*Deposit, error)
	DepositByDescription(ctx context.Context, description string) (*Deposit, error)
	DepositByDescriptionLike(ctx context.Context, description string) (*Deposit, error)

	RackByID(ctx context.Context, id int64) (*Rack, error)
	RackByDescription(ctx context.Context, description string, depositID *int64) (*Rack, error)
	RackByDescriptionPrefix(ctx context.Context, description string, depositID int64) (*Rack, error)
	RackByDescriptionLike(ctx context.Context, description string) (*Rack, error)
}
