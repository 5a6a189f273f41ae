package dataset

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// The database is produced by the upstream prep pipeline and holds four
// tables: metadata (stations), weights (journeys), populations, and
// polygons (land outline points keyed by a layer name).

// Open opens the dataset database read-only with a single connection.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)")
	if err != nil {
		return nil, fmt.Errorf("open dataset db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping dataset db: %w", err)
	}
	return db, nil
}

// Load reads all four tables and assembles the dataset. Any failure is
// fatal to startup; there is nothing to retry.
func Load(ctx context.Context, db *sql.DB, landName string) (*Dataset, error) {
	stations, err := loadStations(ctx, db)
	if err != nil {
		return nil, err
	}
	journeys, err := loadJourneys(ctx, db)
	if err != nil {
		return nil, err
	}
	population, err := loadPopulation(ctx, db)
	if err != nil {
		return nil, err
	}
	land, err := loadLand(ctx, db, landName)
	if err != nil {
		return nil, err
	}
	return New(stations, journeys, population, land)
}

func loadStations(ctx context.Context, db *sql.DB) ([]Station, error) {
	rows, err := db.QueryContext(ctx, `SELECT name, code, latitude, longitude FROM metadata`)
	if err != nil {
		return nil, fmt.Errorf("query stations: %w", err)
	}
	defer rows.Close()

	var out []Station
	for rows.Next() {
		var s Station
		if err := rows.Scan(&s.Name, &s.Code, &s.Latitude, &s.Longitude); err != nil {
			return nil, fmt.Errorf("scan station: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read stations: %w", err)
	}
	return out, nil
}

func loadJourneys(ctx context.Context, db *sql.DB) ([]Journey, error) {
	rows, err := db.QueryContext(ctx, `SELECT source, destination, count FROM weights`)
	if err != nil {
		return nil, fmt.Errorf("query journeys: %w", err)
	}
	defer rows.Close()

	var out []Journey
	for rows.Next() {
		var j Journey
		if err := rows.Scan(&j.Source, &j.Destination, &j.Count); err != nil {
			return nil, fmt.Errorf("scan journey: %w", err)
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read journeys: %w", err)
	}
	return out, nil
}

func loadPopulation(ctx context.Context, db *sql.DB) ([]PopulationCell, error) {
	rows, err := db.QueryContext(ctx, `SELECT geohash, count, latitude, longitude FROM populations`)
	if err != nil {
		return nil, fmt.Errorf("query populations: %w", err)
	}
	defer rows.Close()

	var out []PopulationCell
	for rows.Next() {
		var p PopulationCell
		if err := rows.Scan(&p.Geohash, &p.Count, &p.Latitude, &p.Longitude); err != nil {
			return nil, fmt.Errorf("scan population cell: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read populations: %w", err)
	}
	return out, nil
}

func loadLand(ctx context.Context, db *sql.DB, name string) ([][2]float64, error) {
	rows, err := db.QueryContext(ctx, `SELECT longitude, latitude FROM polygons WHERE name = ? ORDER BY rowid`, name)
	if err != nil {
		return nil, fmt.Errorf("query land outline: %w", err)
	}
	defer rows.Close()

	var out [][2]float64
	for rows.Next() {
		var lon, lat float64
		if err := rows.Scan(&lon, &lat); err != nil {
			return nil, fmt.Errorf("scan land point: %w", err)
		}
		out = append(out, [2]float64{lon, lat})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read land outline: %w", err)
	}
	return out, nil
}
