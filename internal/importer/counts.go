package importer

import (
	"context"
	"fmt"
	"io"
	"time"

	"stocktally/internal/domain/catalogs/location"
	"stocktally/internal/domain/counts"
	"stocktally/pkg/logger"
)

// countDateLayouts are tried in order; dates are parsed day-first, matching
// the files the counters produce.
var countDateLayouts = []string{"02-01-2006", "02/01/2006", "2006-01-02"}

// ParseCountDate parses a day-first date, defaulting to today on failure.
func ParseCountDate(value string) time.Time {
	for _, layout := range countDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Now()
}

// CountImporter loads bulk count CSVs, resolving deposits and racks from
// ids or free-text descriptions. Duplicate counts are allowed on this path.
type CountImporter struct {
	counts    *counts.Service
	locations *location.Service
}

// NewCountImporter creates a count importer.
func NewCountImporter(countService *counts.Service, locationService *location.Service) *CountImporter {
	return &CountImporter{counts: countService, locations: locationService}
}

// Result summarizes one import batch.
type Result struct {
	Inserted int          `json:"inserted"`
	Failures []RowFailure `json:"failures"`
}

// Import reads the CSV and inserts one ledger row per resolvable record.
// Row-level failures (unresolved deposit/rack, insert errors) are collected
// and the batch continues.
func (ci *CountImporter) Import(ctx context.Context, r io.Reader) (*Result, error) {
	h, records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if !h.has(codeAliases) {
		return nil, fmt.Errorf("count csv is missing a code column (one of code_item, number, code, codigo)")
	}

	result := &Result{}
	for i, record := range records {
		line := i + 2

		code, _ := h.get(record, codeAliases)
		if code == "" {
			result.Failures = append(result.Failures, RowFailure{Line: line, Record: record, Reason: "missing code"})
			continue
		}

		depositValue, _ := h.get(record, depositAliases)
		deposit, err := ci.locations.ResolveDeposit(ctx, depositValue)
		if err != nil {
			result.Failures = append(result.Failures, RowFailure{
				Line: line, Record: record,
				Reason: fmt.Sprintf("deposit %q not resolved", depositValue),
			})
			continue
		}

		rackValue, _ := h.get(record, rackAliases)
		rack, err := ci.locations.ResolveRack(ctx, rackValue, &deposit.ID)
		if err != nil {
			result.Failures = append(result.Failures, RowFailure{
				Line: line, Record: record,
				Reason: fmt.Sprintf("rack %q not resolved", rackValue),
			})
			continue
		}

		in := counts.SubmitInput{
			CounterName: h.column(record, "counter_name"),
			Code:        code,
			DepositID:   deposit.ID,
			RackID:      rack.ID,
			Quantities: counts.Quantities{
				BoxQty:     coerceInt(h.column(record, "boxqty")),
				BoxUnitQty: coerceInt(h.column(record, "boxunitqty")),
				Magazijn:   coerceInt(h.column(record, "magazijn")),
				Winkel:     coerceInt(h.column(record, "winkel")),
			},
			CountDate: ParseCountDate(h.column(record, "count_date")),
			Remarks:   h.column(record, "remarks"),
		}

		if _, err := ci.counts.ImportRow(ctx, in); err != nil {
			result.Failures = append(result.Failures, RowFailure{Line: line, Record: record, Reason: err.Error()})
			continue
		}
		result.Inserted++
	}

	logger.Info(ctx, "count import finished",
		"inserted", result.Inserted,
		"failed", len(result.Failures),
	)
	return result, nil
}
