package sqlite

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"stocktally/internal/core/apperror"
	"stocktally/internal/domain/counts"
)

var countColumns = []string{
	"id", "counter_name", "code_item", "deposit_id", "rack_id", "location",
	"boxqty", "boxunitqty", "boxunittotal", "magazijn", "winkel", "total",
	"current_inventory", "difference", "count_date", "remarks",
}

// CountRepo implements counts.Repository on SQLite.
type CountRepo struct {
	db *DB
}

var _ counts.Repository = (*CountRepo)(nil)

func NewCountRepo(db *DB) *CountRepo {
	return &CountRepo{db: db}
}

func (r *CountRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (r *CountRepo) Insert(ctx context.Context, c *counts.Count) (int64, error) {
	query, args, err := r.Builder().
		Insert("inventory_count").
		Columns(countColumns[1:]...).
		Values(
			c.CounterName, c.CodeItem, c.DepositID, c.RackID, c.Location,
			c.BoxQty, c.BoxUnitQty, c.BoxUnitTotal, c.Magazijn, c.Winkel, c.Total,
			c.CurrentInventory, c.Difference, c.CountDate, c.Remarks,
		).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert count: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert count: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert count: %w", err)
	}
	return id, nil
}

func (r *CountRepo) GetByID(ctx context.Context, id int64) (*counts.Count, error) {
	query, args, err := r.Builder().
		Select(countColumns...).
		From("inventory_count").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select count: %w", err)
	}

	var c counts.Count
	if err := sqlscan.Get(ctx, r.db, &c, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("count", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("get count %d: %w", id, err)
	}
	return &c, nil
}

func (r *CountRepo) Update(ctx context.Context, c *counts.Count) error {
	query, args, err := r.Builder().
		Update("inventory_count").
		SetMap(map[string]any{
			"counter_name":      c.CounterName,
			"code_item":         c.CodeItem,
			"deposit_id":        c.DepositID,
			"rack_id":           c.RackID,
			"location":          c.Location,
			"boxqty":            c.BoxQty,
			"boxunitqty":        c.BoxUnitQty,
			"boxunittotal":      c.BoxUnitTotal,
			"magazijn":          c.Magazijn,
			"winkel":            c.Winkel,
			"total":             c.Total,
			"current_inventory": c.CurrentInventory,
			"difference":        c.Difference,
			"count_date":        c.CountDate,
			"remarks":           c.Remarks,
		}).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update count: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update count %d: %w", c.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update count %d: %w", c.ID, err)
	}
	if affected == 0 {
		return apperror.NewNotFound("count", fmt.Sprintf("%d", c.ID))
	}
	return nil
}

func (r *CountRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_count WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete count %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete count %d: %w", id, err)
	}
	if affected == 0 {
		return apperror.NewNotFound("count", fmt.Sprintf("%d", id))
	}
	return nil
}

func (r *CountRepo) List(ctx context.Context, filter counts.ListFilter) ([]counts.Count, error) {
	q := r.Builder().
		Select(countColumns...).
		From("inventory_count").
		OrderBy("id")

	if filter.CodeItem != "" {
		q = q.Where(squirrel.Eq{"code_item": filter.CodeItem})
	}
	if filter.CounterName != "" {
		q = q.Where(squirrel.Eq{"counter_name": filter.CounterName})
	}
	if filter.DepositID != nil {
		q = q.Where(squirrel.Eq{"deposit_id": *filter.DepositID})
	}
	if filter.RackID != nil {
		q = q.Where(squirrel.Eq{"rack_id": *filter.RackID})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list counts: %w", err)
	}

	rows := []counts.Count{}
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list counts: %w", err)
	}
	return rows, nil
}

func (r *CountRepo) ExistsForCode(ctx context.Context, code string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM inventory_count WHERE code_item = ?`, code).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check count exists %q: %w", code, err)
	}
	return n > 0, nil
}
