// Command seed loads the world reference dataset into the SQLite database.
// The dataset is a single JSON document with regions, subregions, countries,
// states and cities arrays; rows are inserted in dependency order and the
// full-text indexes are populated by the schema triggers.
//
// Seeding is idempotent: existing ids are skipped.
package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/mmynk/tripcraft/internal/storage/sqlite"
	"github.com/mmynk/tripcraft/pkg/logging"
)

type dataset struct {
	Regions    []regionRow    `json:"regions"`
	SubRegions []subRegionRow `json:"subregions"`
	Countries  []countryRow   `json:"countries"`
	States     []stateRow     `json:"states"`
	Cities     []cityRow      `json:"cities"`
}

type regionRow struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Translations json.RawMessage `json:"translations"`
}

type subRegionRow struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	RegionID     int64           `json:"region_id"`
	Translations json.RawMessage `json:"translations"`
}

type countryRow struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	ISO3         string          `json:"iso3"`
	ISO2         string          `json:"iso2"`
	Capital      string          `json:"capital"`
	Latitude     *float64        `json:"latitude"`
	Longitude    *float64        `json:"longitude"`
	Emoji        string          `json:"emoji"`
	RegionID     int64           `json:"region_id"`
	SubRegionID  int64           `json:"subregion_id"`
	Translations json.RawMessage `json:"translations"`
}

type stateRow struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	CountryID int64    `json:"country_id"`
}

type cityRow struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	StateID   int64    `json:"state_id"`
	CountryID int64    `json:"country_id"`
}

func main() {
	_ = godotenv.Load()
	logging.Setup()

	dbPath := flag.String("db", envOr("DB_PATH", "./data/tripcraft.db"), "path to the SQLite database")
	dataPath := flag.String("data", "./data/world.json", "path to the world dataset JSON")
	flag.Parse()

	store, err := sqlite.New(*dbPath, 1, 0)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := seed(store.DB(), *dataPath); err != nil {
		slog.Error("Seed failed", "error", err)
		os.Exit(1)
	}
}

func seed(db *sql.DB, dataPath string) error {
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	var data dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse dataset: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, r := range data.Regions {
		_, err := tx.Exec(
			"INSERT OR IGNORE INTO regions (id, name, translations) VALUES (?, ?, ?)",
			r.ID, r.Name, translations(r.Translations),
		)
		if err != nil {
			return fmt.Errorf("failed to insert region %d: %w", r.ID, err)
		}
	}

	for _, sr := range data.SubRegions {
		_, err := tx.Exec(
			"INSERT OR IGNORE INTO subregions (id, name, region_id, translations) VALUES (?, ?, ?, ?)",
			sr.ID, sr.Name, sr.RegionID, translations(sr.Translations),
		)
		if err != nil {
			return fmt.Errorf("failed to insert subregion %d: %w", sr.ID, err)
		}
	}

	for _, c := range data.Countries {
		_, err := tx.Exec(
			`INSERT OR IGNORE INTO countries
			 (id, name, iso3, iso2, capital, latitude, longitude, emoji, region_id, subregion_id, translations)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.ISO3, c.ISO2, c.Capital, c.Latitude, c.Longitude, c.Emoji,
			c.RegionID, c.SubRegionID, translations(c.Translations),
		)
		if err != nil {
			return fmt.Errorf("failed to insert country %d: %w", c.ID, err)
		}
	}

	for _, st := range data.States {
		_, err := tx.Exec(
			"INSERT OR IGNORE INTO states (id, name, latitude, longitude, country_id) VALUES (?, ?, ?, ?, ?)",
			st.ID, st.Name, st.Latitude, st.Longitude, st.CountryID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert state %d: %w", st.ID, err)
		}
	}

	for _, c := range data.Cities {
		_, err := tx.Exec(
			"INSERT OR IGNORE INTO cities (id, name, latitude, longitude, state_id, country_id) VALUES (?, ?, ?, ?, ?, ?)",
			c.ID, c.Name, c.Latitude, c.Longitude, c.StateID, c.CountryID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert city %d: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	slog.Info("World data seeded",
		"regions", len(data.Regions),
		"subregions", len(data.SubRegions),
		"countries", len(data.Countries),
		"states", len(data.States),
		"cities", len(data.Cities),
	)
	return nil
}

func translations(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	return string(raw)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
