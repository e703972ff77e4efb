package sqlite

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"stocktally/internal/core/apperror"
	"stocktally/internal/domain/catalogs/item"
)

// ItemRepo implements item.Repository on SQLite.
type ItemRepo struct {
	db *DB
}

var _ item.Repository = (*ItemRepo)(nil)

func NewItemRepo(db *DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// Builder returns a squirrel builder with SQLite placeholder format.
func (r *ItemRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (r *ItemRepo) GetByCode(ctx context.Context, code string) (*item.Item, error) {
	query, args, err := r.Builder().
		Select("code_item", "description_item", "current_inventory").
		From("items").
		Where(squirrel.Eq{"code_item": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select item: %w", err)
	}

	var it item.Item
	if err := sqlscan.Get(ctx, r.db, &it, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewItemNotFound(code)
		}
		return nil, fmt.Errorf("get item %q: %w", code, err)
	}
	return &it, nil
}

func (r *ItemRepo) List(ctx context.Context, filter item.ListFilter) ([]item.Item, error) {
	q := r.Builder().
		Select("code_item", "description_item", "current_inventory").
		From("items").
		OrderBy("code_item")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.Like{"code_item": pattern},
			squirrel.Like{"description_item": pattern},
		})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items: %w", err)
	}

	items := []item.Item{}
	if err := sqlscan.Select(ctx, r.db, &items, query, args...); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// ReplaceAll drops and recreates the items table inside one transaction, the
// same wipe-and-reload the catalog import performs on every run.
func (r *ItemRepo) ReplaceAll(ctx context.Context, items []item.Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace catalog: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS items`); err != nil {
		return fmt.Errorf("drop items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `CREATE TABLE items (
		code_item TEXT PRIMARY KEY,
		description_item TEXT NOT NULL DEFAULT '',
		current_inventory INTEGER NOT NULL DEFAULT 0
	)`); err != nil {
		return fmt.Errorf("recreate items: %w", err)
	}

	// Chunked to stay under the SQLite bound-variable limit.
	const chunkSize = 200
	for start := 0; start < len(items); start += chunkSize {
		end := start + chunkSize
		if end > len(items) {
			end = len(items)
		}
		q := r.Builder().
			Insert("items").
			Columns("code_item", "description_item", "current_inventory")
		for _, it := range items[start:end] {
			q = q.Values(it.Code, it.Description, it.CurrentInventory)
		}
		query, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build insert items: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert items: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace catalog: %w", err)
	}
	return nil
}

func (r *ItemRepo) UpdateCurrentInventory(ctx context.Context, code string, quantity int) error {
	query, args, err := r.Builder().
		Update("items").
		Set("current_inventory", quantity).
		Where(squirrel.Eq{"code_item": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update inventory: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update inventory %q: %w", code, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update inventory %q: %w", code, err)
	}
	if affected == 0 {
		return apperror.NewItemNotFound(code)
	}
	return nil
}
