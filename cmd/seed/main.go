// Package main provides a CLI tool for seeding the database with locations
// and, optionally, a demo catalog.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"stocktally/internal/config"
	"stocktally/internal/domain/catalogs/item"
	"stocktally/internal/importer"
	"stocktally/internal/infrastructure/storage/sqlite"
	"stocktally/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	cfg := config.Load()

	db, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to open database", "path", cfg.DBPath, "error", err)
	}
	defer db.Close()

	log.Infow("database ready", "path", cfg.DBPath)

	locationRepo := sqlite.NewLocationRepo(db)

	if err := seedLocations(ctx, locationRepo, log); err != nil {
		log.Fatalw("failed to seed locations", "error", err)
	}

	if path := os.Getenv("SEED_CATALOG_CSV"); path != "" {
		if err := seedCatalog(ctx, db, path, log); err != nil {
			log.Fatalw("failed to seed catalog", "path", path, "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

// seedLocations reads SEED_LOCATIONS_CSV (deposit,rack per line) or falls
// back to a minimal default layout. Existing locations are left alone.
func seedLocations(ctx context.Context, repo *sqlite.LocationRepo, log *logger.Logger) error {
	existing, err := repo.Deposits(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Infow("locations already present, skipping", "deposits", len(existing))
		return nil
	}

	layout := defaultLayout()
	if path := os.Getenv("SEED_LOCATIONS_CSV"); path != "" {
		layout, err = readLayout(path)
		if err != nil {
			return err
		}
	}

	racks := 0
	for _, dep := range layout {
		depositID, err := repo.CreateDeposit(ctx, dep.name)
		if err != nil {
			return err
		}
		for _, rack := range dep.racks {
			if _, err := repo.CreateRack(ctx, rack, depositID); err != nil {
				return err
			}
			racks++
		}
	}

	log.Infow("locations seeded", "deposits", len(layout), "racks", racks)
	return nil
}

type depositLayout struct {
	name  string
	racks []string
}

func defaultLayout() []depositLayout {
	return []depositLayout{
		{name: "Magazijn", racks: []string{"A1", "A2", "B1", "B2"}},
		{name: "Winkel", racks: []string{"Front", "Back"}},
	}
}

// readLayout parses a two-column CSV of deposit,rack pairs, preserving the
// order deposits first appear in.
func readLayout(path string) ([]depositLayout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}

	var layout []depositLayout
	index := map[string]int{}
	for _, record := range records {
		if len(record) < 2 || record[0] == "" || record[1] == "" {
			continue
		}
		i, ok := index[record[0]]
		if !ok {
			i = len(layout)
			index[record[0]] = i
			layout = append(layout, depositLayout{name: record[0]})
		}
		layout[i].racks = append(layout[i].racks, record[1])
	}
	return layout, nil
}

// seedCatalog replaces the item catalog from a CSV file, the same
// wipe-and-reload the import endpoint performs.
func seedCatalog(ctx context.Context, db *sqlite.DB, path string, log *logger.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	items, err := importer.ParseCatalog(f)
	if err != nil {
		return err
	}

	itemService := item.NewService(sqlite.NewItemRepo(db))
	imported, err := itemService.ReplaceCatalog(ctx, items)
	if err != nil {
		return err
	}

	log.Infow("catalog seeded", "items", imported)
	return nil
}
