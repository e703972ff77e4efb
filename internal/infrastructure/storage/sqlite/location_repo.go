package sqlite

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"stocktally/internal/core/apperror"
	"stocktally/internal/domain/catalogs/location"
)

// LocationRepo implements location.Repository on SQLite.
type LocationRepo struct {
	db *DB
}

var _ location.Repository = (*LocationRepo)(nil)

func NewLocationRepo(db *DB) *LocationRepo {
	return &LocationRepo{db: db}
}

func (r *LocationRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (r *LocationRepo) Deposits(ctx context.Context) ([]location.Deposit, error) {
	deposits := []location.Deposit{}
	err := sqlscan.Select(ctx, r.db, &deposits,
		`SELECT deposit_id, deposit_description FROM deposits ORDER BY deposit_id`)
	if err != nil {
		return nil, fmt.Errorf("list deposits: %w", err)
	}
	return deposits, nil
}

func (r *LocationRepo) Racks(ctx context.Context, depositID *int64) ([]location.Rack, error) {
	q := r.Builder().
		Select("rack_id", "rack_description", "deposit_id").
		From("racks").
		OrderBy("rack_id")
	if depositID != nil {
		q = q.Where(squirrel.Eq{"deposit_id": *depositID})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list racks: %w", err)
	}

	racks := []location.Rack{}
	if err := sqlscan.Select(ctx, r.db, &racks, query, args...); err != nil {
		return nil, fmt.Errorf("list racks: %w", err)
	}
	return racks, nil
}

func (r *LocationRepo) DepositByID(ctx context.Context, id int64) (*location.Deposit, error) {
	var d location.Deposit
	err := sqlscan.Get(ctx, r.db, &d,
		`SELECT deposit_id, deposit_description FROM deposits WHERE deposit_id = ?`, id)
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("deposit", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("get deposit %d: %w", id, err)
	}
	return &d, nil
}

func (r *LocationRepo) DepositByDescription(ctx context.Context, description string) (*location.Deposit, error) {
	var d location.Deposit
	err := sqlscan.Get(ctx, r.db, &d,
		`SELECT deposit_id, deposit_description FROM deposits
		 WHERE deposit_description = ? COLLATE NOCASE LIMIT 1`, description)
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("deposit", description)
		}
		return nil, fmt.Errorf("get deposit %q: %w", description, err)
	}
	return &d, nil
}

func (r *LocationRepo) DepositByDescriptionLike(ctx context.Context, description string) (*location.Deposit, error) {
	var d location.Deposit
	err := sqlscan.Get(ctx, r.db, &d,
		`SELECT deposit_id, deposit_description FROM deposits
		 WHERE deposit_description LIKE ? LIMIT 1`, "%"+description+"%")
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("deposit", description)
		}
		return nil, fmt.Errorf("match deposit %q: %w", description, err)
	}
	return &d, nil
}

func (r *LocationRepo) RackByID(ctx context.Context, id int64) (*location.Rack, error) {
	var rk location.Rack
	err := sqlscan.Get(ctx, r.db, &rk,
		`SELECT rack_id, rack_description, deposit_id FROM racks WHERE rack_id = ?`, id)
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("rack", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("get rack %d: %w", id, err)
	}
	return &rk, nil
}

func (r *LocationRepo) RackByDescription(ctx context.Context, description string, depositID *int64) (*location.Rack, error) {
	query := `SELECT rack_id, rack_description, deposit_id FROM racks
		 WHERE rack_description = ? COLLATE NOCASE`
	args := []any{description}
	if depositID != nil {
		query += ` AND deposit_id = ?`
		args = append(args, *depositID)
	}
	query += ` LIMIT 1`

	var rk location.Rack
	if err := sqlscan.Get(ctx, r.db, &rk, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("rack", description)
		}
		return nil, fmt.Errorf("get rack %q: %w", description, err)
	}
	return &rk, nil
}

func (r *LocationRepo) RackByDescriptionPrefix(ctx context.Context, description string, depositID int64) (*location.Rack, error) {
	var rk location.Rack
	err := sqlscan.Get(ctx, r.db, &rk,
		`SELECT rack_id, rack_description, deposit_id FROM racks
		 WHERE rack_description LIKE ? AND deposit_id = ? LIMIT 1`,
		description+"%", depositID)
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("rack", description)
		}
		return nil, fmt.Errorf("match rack prefix %q: %w", description, err)
	}
	return &rk, nil
}

func (r *LocationRepo) RackByDescriptionLike(ctx context.Context, description string) (*location.Rack, error) {
	var rk location.Rack
	err := sqlscan.Get(ctx, r.db, &rk,
		`SELECT rack_id, rack_description, deposit_id FROM racks
		 WHERE rack_description LIKE ? LIMIT 1`, "%"+description+"%")
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("rack", description)
		}
		return nil, fmt.Errorf("match rack %q: %w", description, err)
	}
	return &rk, nil
}

// CreateDeposit and CreateRack back the seeding tool; the HTTP surface only
// reads locations.
func (r *LocationRepo) CreateDeposit(ctx context.Context, description string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO deposits (deposit_description) VALUES (?)`, description)
	if err != nil {
		return 0, fmt.Errorf("create deposit %q: %w", description, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create deposit %q: %w", description, err)
	}
	return id, nil
}

func (r *LocationRepo) CreateRack(ctx context.Context, description string, depositID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO racks (rack_description, deposit_id) VALUES (?, ?)`, description, depositID)
	if err != nil {
		return 0, fmt.Errorf("create rack %q: %w", description, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create rack %q: %w", description, err)
	}
	return id, nil
}
