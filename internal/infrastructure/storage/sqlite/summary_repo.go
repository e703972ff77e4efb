package sqlite

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"

	"stocktally/internal/domain/summary"
)

// SummaryRepo implements summary.Repository on SQLite.
type SummaryRepo struct {
	db *DB
}

var _ summary.Repository = (*SummaryRepo)(nil)

func NewSummaryRepo(db *DB) *SummaryRepo {
	return &SummaryRepo{db: db}
}

// rebuildSQL aggregates the ledger per code. The current_inventory is the MAX
// over the ledger's stored snapshots, not the live catalog value: the summary
// reconciles against what counters saw. Sales and purchasing adjust the
// counted total before the difference is taken, and the difference sign here
// is catalog-minus-counted, the inverse of the per-row ledger sign.
const rebuildSQL = `
INSERT INTO inventory_count_res (
	code_item, description_item,
	boxqty, boxunitqty, boxunittotal, magazijn, winkel, total,
	current_inventory, sales_qty, purchasing_qty, total_calc, difference,
	updated_date
)
SELECT
	ic.code_item,
	MAX(COALESCE(i.description_item, '')) AS description_item,
	SUM(ic.boxqty) AS boxqty,
	SUM(ic.boxunitqty) AS boxunitqty,
	SUM(ic.boxunittotal) AS boxunittotal,
	SUM(ic.magazijn) AS magazijn,
	SUM(ic.winkel) AS winkel,
	SUM(ic.total) AS total,
	MAX(ic.current_inventory) AS current_inventory,
	COALESCE((SELECT SUM(s.sales_qty) FROM sales s WHERE s.code_item = ic.code_item), 0) AS sales_qty,
	COALESCE((SELECT SUM(p.purchasing_qty) FROM purchasing p WHERE p.code_item = ic.code_item), 0) AS purchasing_qty,
	SUM(ic.total)
		+ COALESCE((SELECT SUM(p.purchasing_qty) FROM purchasing p WHERE p.code_item = ic.code_item), 0)
		- COALESCE((SELECT SUM(s.sales_qty) FROM sales s WHERE s.code_item = ic.code_item), 0) AS total_calc,
	MAX(ic.current_inventory)
		- (SUM(ic.total)
			+ COALESCE((SELECT SUM(p.purchasing_qty) FROM purchasing p WHERE p.code_item = ic.code_item), 0)
			- COALESCE((SELECT SUM(s.sales_qty) FROM sales s WHERE s.code_item = ic.code_item), 0)) AS difference,
	? AS updated_date
FROM inventory_count ic
LEFT JOIN items i ON i.code_item = ic.code_item
GROUP BY ic.code_item
ORDER BY ic.code_item`

func (r *SummaryRepo) Rebuild(ctx context.Context, clear bool, updatedDate string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin rebuild summary: %w", err)
	}
	defer tx.Rollback()

	if clear {
		if _, err := tx.ExecContext(ctx, `DELETE FROM inventory_count_res`); err != nil {
			return 0, fmt.Errorf("clear summary: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, rebuildSQL, updatedDate)
	if err != nil {
		return 0, fmt.Errorf("aggregate summary: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("aggregate summary: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit rebuild summary: %w", err)
	}
	return int(inserted), nil
}

func (r *SummaryRepo) List(ctx context.Context) ([]summary.Row, error) {
	rows := []summary.Row{}
	err := sqlscan.Select(ctx, r.db, &rows, `
		SELECT id, code_item, description_item,
			boxqty, boxunitqty, boxunittotal, magazijn, winkel, total,
			current_inventory, sales_qty, purchasing_qty, total_calc, difference,
			updated_date
		FROM inventory_count_res
		ORDER BY code_item, id`)
	if err != nil {
		return nil, fmt.Errorf("list summary: %w", err)
	}
	return rows, nil
}
