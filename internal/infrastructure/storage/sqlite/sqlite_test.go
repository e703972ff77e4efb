package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocktally/internal/core/apperror"
	"stocktally/internal/domain/catalogs/item"
	"stocktally/internal/domain/counts"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// seedLocations creates one deposit with two racks and a second deposit with
// one rack, returning the ids in creation order.
func seedLocations(t *testing.T, db *DB) (depositIDs, rackIDs []int64) {
	t.Helper()
	ctx := context.Background()
	repo := NewLocationRepo(db)

	main, err := repo.CreateDeposit(ctx, "Main Warehouse")
	require.NoError(t, err)
	store, err := repo.CreateDeposit(ctx, "Store")
	require.NoError(t, err)

	a1, err := repo.CreateRack(ctx, "A1", main)
	require.NoError(t, err)
	b2, err := repo.CreateRack(ctx, "B2", main)
	require.NoError(t, err)
	front, err := repo.CreateRack(ctx, "Front", store)
	require.NoError(t, err)

	return []int64{main, store}, []int64{a1, b2, front}
}

func TestMigrateIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// Open already migrated; a second run must be a no-op.
	require.NoError(t, db.Migrate(ctx))

	var version int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT MAX(version) FROM schema_migrations`).Scan(&version))
	assert.Equal(t, 3, version)

	for _, table := range []string{
		"items", "deposits", "racks", "inventory_count",
		"inventory_count_res", "sales", "purchasing",
	} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "table %s", table)
	}
}

func TestItemRepo(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewItemRepo(db)

	require.NoError(t, repo.ReplaceAll(ctx, []item.Item{
		{Code: "0123", Description: "Widget", CurrentInventory: 50},
		{Code: "45", Description: "Gadget", CurrentInventory: 7},
	}))

	it, err := repo.GetByCode(ctx, "0123")
	require.NoError(t, err)
	assert.Equal(t, "Widget", it.Description)
	assert.Equal(t, 50, it.CurrentInventory)

	_, err = repo.GetByCode(ctx, "999")
	assert.True(t, apperror.IsNotFound(err))

	require.NoError(t, repo.UpdateCurrentInventory(ctx, "45", 12))
	it, err = repo.GetByCode(ctx, "45")
	require.NoError(t, err)
	assert.Equal(t, 12, it.CurrentInventory)

	err = repo.UpdateCurrentInventory(ctx, "999", 1)
	assert.True(t, apperror.IsNotFound(err))

	// Replace wipes the previous catalog entirely.
	require.NoError(t, repo.ReplaceAll(ctx, []item.Item{
		{Code: "7", Description: "Bolt"},
	}))
	_, err = repo.GetByCode(ctx, "0123")
	assert.True(t, apperror.IsNotFound(err))

	items, err := repo.List(ctx, item.ListFilter{Search: "bol"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "7", items[0].Code)
}

func TestLocationRepoLookups(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewLocationRepo(db)
	depositIDs, rackIDs := seedLocations(t, db)

	d, err := repo.DepositByDescription(ctx, "main warehouse")
	require.NoError(t, err)
	assert.Equal(t, depositIDs[0], d.ID)

	d, err = repo.DepositByDescriptionLike(ctx, "Ware")
	require.NoError(t, err)
	assert.Equal(t, depositIDs[0], d.ID)

	_, err = repo.DepositByDescription(ctx, "nowhere")
	assert.True(t, apperror.IsNotFound(err))

	r, err := repo.RackByDescription(ctx, "a1", &depositIDs[0])
	require.NoError(t, err)
	assert.Equal(t, rackIDs[0], r.ID)

	// Scoping filters out racks from other deposits.
	_, err = repo.RackByDescription(ctx, "Front", &depositIDs[0])
	assert.True(t, apperror.IsNotFound(err))

	r, err = repo.RackByDescriptionPrefix(ctx, "B", depositIDs[0])
	require.NoError(t, err)
	assert.Equal(t, rackIDs[1], r.ID)

	r, err = repo.RackByDescriptionLike(ctx, "ront")
	require.NoError(t, err)
	assert.Equal(t, rackIDs[2], r.ID)

	racks, err := repo.Racks(ctx, &depositIDs[0])
	require.NoError(t, err)
	assert.Len(t, racks, 2)

	racks, err = repo.Racks(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, racks, 3)
}

func TestCountRepoCRUD(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewCountRepo(db)
	depositIDs, rackIDs := seedLocations(t, db)

	row := &counts.Count{
		CounterName:      "jan",
		CodeItem:         "0123",
		DepositID:        depositIDs[0],
		RackID:           rackIDs[0],
		Location:         "Main Warehouse - A1",
		BoxQty:           2,
		BoxUnitQty:       10,
		BoxUnitTotal:     20,
		Magazijn:         3,
		Winkel:           1,
		Total:            24,
		CurrentInventory: 50,
		Difference:       -26,
		CountDate:        "2025-03-14",
		Remarks:          "damaged box",
	}

	id, err := repo.Insert(ctx, row)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "jan", got.CounterName)
	assert.Equal(t, 24, got.Total)
	assert.Equal(t, -26, got.Difference)
	assert.Equal(t, "damaged box", got.Remarks)

	got.Total = 30
	got.Difference = -20
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Total)

	exists, err := repo.ExistsForCode(ctx, "0123")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsForCode(ctx, "999")
	require.NoError(t, err)
	assert.False(t, exists)

	rows, err := repo.List(ctx, counts.ListFilter{CodeItem: "0123"})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.GetByID(ctx, id)
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, apperror.IsNotFound(repo.Delete(ctx, id)))
}

func TestSummaryRebuild(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	countRepo := NewCountRepo(db)
	summaryRepo := NewSummaryRepo(db)
	depositIDs, rackIDs := seedLocations(t, db)

	require.NoError(t, NewItemRepo(db).ReplaceAll(ctx, []item.Item{
		{Code: "0123", Description: "Widget", CurrentInventory: 50},
	}))

	// Two counts of the same code at different locations.
	for _, c := range []counts.Count{
		{CodeItem: "0123", DepositID: depositIDs[0], RackID: rackIDs[0], BoxQty: 2, BoxUnitQty: 10, BoxUnitTotal: 20, Magazijn: 3, Winkel: 1, Total: 24, CurrentInventory: 50, Difference: -26, CountDate: "2025-03-14"},
		{CodeItem: "0123", DepositID: depositIDs[1], RackID: rackIDs[2], Magazijn: 6, Total: 6, CurrentInventory: 50, Difference: -44, CountDate: "2025-03-15"},
	} {
		c := c
		_, err := countRepo.Insert(ctx, &c)
		require.NoError(t, err)
	}

	_, err := db.ExecContext(ctx, `INSERT INTO sales (code_item, sales_qty) VALUES ('0123', 4)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO purchasing (code_item, purchasing_qty) VALUES ('0123', 10)`)
	require.NoError(t, err)

	inserted, err := summaryRepo.Rebuild(ctx, true, "2025-03-16")
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	rows, err := summaryRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "0123", row.CodeItem)
	assert.Equal(t, "Widget", row.DescriptionItem)
	assert.Equal(t, 30, row.Total)
	assert.Equal(t, 50, row.CurrentInventory)
	assert.Equal(t, 4, row.SalesQty)
	assert.Equal(t, 10, row.PurchasingQty)
	// total_calc = 30 + 10 - 4
	assert.Equal(t, 36, row.TotalCalc)
	// difference = 50 - 36, catalog-minus-counted on the summary side
	assert.Equal(t, 14, row.Difference)
	assert.Equal(t, "2025-03-16", row.UpdatedDate)

	// Clearing rebuild is idempotent.
	_, err = summaryRepo.Rebuild(ctx, true, "2025-03-17")
	require.NoError(t, err)
	rows, err = summaryRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// Additive rebuild duplicates rows; that is the recorded behavior.
	_, err = summaryRepo.Rebuild(ctx, false, "2025-03-18")
	require.NoError(t, err)
	rows, err = summaryRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestReportRepo(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	countRepo := NewCountRepo(db)
	reportRepo := NewReportRepo(db)
	depositIDs, rackIDs := seedLocations(t, db)

	require.NoError(t, NewItemRepo(db).ReplaceAll(ctx, []item.Item{
		{Code: "0123", Description: "Widget", CurrentInventory: 50},
		{Code: "45", Description: "Gadget", CurrentInventory: 7},
		{Code: "7", Description: "Bolt", CurrentInventory: 3},
	}))

	for _, c := range []counts.Count{
		{CounterName: "jan", CodeItem: "45", DepositID: depositIDs[1], RackID: rackIDs[2], Total: 7, CurrentInventory: 7, CountDate: "2025-03-14"},
		{CounterName: "ann", CodeItem: "0123", DepositID: depositIDs[0], RackID: rackIDs[0], Total: 24, CurrentInventory: 50, Difference: -26, CountDate: "2025-03-14", Remarks: "damaged box"},
	} {
		c := c
		_, err := countRepo.Insert(ctx, &c)
		require.NoError(t, err)
	}

	countRows, err := reportRepo.CountsByLocation(ctx)
	require.NoError(t, err)
	require.Len(t, countRows, 2)
	// Ordered by deposit description: Main Warehouse before Store.
	assert.Equal(t, "Main Warehouse", countRows[0].DepositName)
	assert.Equal(t, "Widget", countRows[0].DescriptionItem)
	assert.Equal(t, "Store", countRows[1].DepositName)

	uncounted, err := reportRepo.Uncounted(ctx)
	require.NoError(t, err)
	require.Len(t, uncounted, 1)
	assert.Equal(t, "7", uncounted[0].CodeItem)

	remarks, err := reportRepo.Remarks(ctx)
	require.NoError(t, err)
	require.Len(t, remarks, 1)
	assert.Equal(t, "damaged box", remarks[0].Remarks)
	assert.Equal(t, "ann", remarks[0].CounterName)

	summaryRepo := NewSummaryRepo(db)
	_, err = summaryRepo.Rebuild(ctx, true, "2025-03-16")
	require.NoError(t, err)

	diffs, err := reportRepo.Differences(ctx)
	require.NoError(t, err)
	require.Len(t, diffs, 2)
	// Largest absolute difference first.
	assert.Equal(t, "0123", diffs[0].CodeItem)
	assert.Equal(t, 26, diffs[0].Difference)
	assert.Equal(t, "45", diffs[1].CodeItem)
	assert.Equal(t, 0, diffs[1].Difference)
}
