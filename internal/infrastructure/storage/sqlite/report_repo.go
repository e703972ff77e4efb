package sqlite

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"

	"stocktally/internal/domain/reports"
)

// ReportRepo implements reports.Repository on SQLite.
type ReportRepo struct {
	db *DB
}

var _ reports.Repository = (*ReportRepo)(nil)

func NewReportRepo(db *DB) *ReportRepo {
	return &ReportRepo{db: db}
}

func (r *ReportRepo) CountsByLocation(ctx context.Context) ([]reports.CountsRow, error) {
	rows := []reports.CountsRow{}
	err := sqlscan.Select(ctx, r.db, &rows, `
		SELECT
			ic.id, ic.counter_name, ic.code_item,
			COALESCE(i.description_item, '') AS description_item,
			ic.boxqty, ic.boxunitqty, ic.boxunittotal, ic.magazijn, ic.winkel,
			ic.total, ic.current_inventory, ic.difference,
			d.deposit_description AS deposit_name,
			rk.rack_description AS rack_name,
			ic.location, ic.count_date
		FROM inventory_count ic
		JOIN deposits d ON d.deposit_id = ic.deposit_id
		JOIN racks rk ON rk.rack_id = ic.rack_id
		LEFT JOIN items i ON i.code_item = ic.code_item
		ORDER BY d.deposit_description, rk.rack_description,
			ic.count_date, ic.counter_name, ic.code_item`)
	if err != nil {
		return nil, fmt.Errorf("query counts by location: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) Differences(ctx context.Context) ([]reports.DifferenceRow, error) {
	rows := []reports.DifferenceRow{}
	err := sqlscan.Select(ctx, r.db, &rows, `
		SELECT code_item, description_item, total, sales_qty, purchasing_qty,
			total_calc, current_inventory, difference
		FROM inventory_count_res
		ORDER BY ABS(difference) DESC, code_item`)
	if err != nil {
		return nil, fmt.Errorf("query differences: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) Uncounted(ctx context.Context) ([]reports.UncountedRow, error) {
	rows := []reports.UncountedRow{}
	err := sqlscan.Select(ctx, r.db, &rows, `
		SELECT i.code_item, i.description_item, i.current_inventory
		FROM items i
		WHERE NOT EXISTS (
			SELECT 1 FROM inventory_count ic WHERE ic.code_item = i.code_item
		)
		ORDER BY i.code_item`)
	if err != nil {
		return nil, fmt.Errorf("query uncounted: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) Remarks(ctx context.Context) ([]reports.RemarkRow, error) {
	rows := []reports.RemarkRow{}
	err := sqlscan.Select(ctx, r.db, &rows, `
		SELECT
			ic.counter_name,
			d.deposit_description AS deposit_name,
			rk.rack_description AS rack_name,
			ic.location, ic.code_item,
			COALESCE(i.description_item, '') AS description_item,
			ic.boxqty, ic.boxunitqty, ic.boxunittotal, ic.magazijn,
			ic.total, ic.id, ic.remarks
		FROM inventory_count ic
		JOIN deposits d ON d.deposit_id = ic.deposit_id
		JOIN racks rk ON rk.rack_id = ic.rack_id
		LEFT JOIN items i ON i.code_item = ic.code_item
		WHERE TRIM(ic.remarks) <> ''
		ORDER BY ic.counter_name, d.deposit_description, rk.rack_description, ic.id`)
	if err != nil {
		return nil, fmt.Errorf("query remarks: %w", err)
	}
	return rows, nil
}
