package database

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ffremont/astackbackend/logging"
	"github.com/ffremont/astackbackend/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// InitDB opens the deep-sky catalog database and creates its tables.
func InitDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// enable write-ahead Logging for better concurrency
	_, err = db.Exec("PRAGMA journal_mode=WAL;")
	if err != nil {
		logging.Warn().Err(err).Msg("failed to set WAL mode")
	}

	sqlStmt := `
	CREATE TABLE IF NOT EXISTS constellations (
		abbreviation TEXT PRIMARY KEY,
		label TEXT NOT NULL
	);
	`
	_, err = db.Exec(sqlStmt)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create constellations table: %w", err)
	}

	logging.Info().Str("dsn", dataSourceName).Msg("catalog database initialized")
	return db, nil
}

// GetConstellationByAbr looks a constellation up by its abbreviation.
// It returns sql.ErrNoRows when the catalog has no entry.
func GetConstellationByAbr(ctx context.Context, db *sql.DB, abbreviation string) (models.Constellation, error) {
	var c models.Constellation

	queryBuilder := psql.Select("abbreviation", "label").
		From("constellations").
		Where(sq.Eq{"abbreviation": abbreviation}).
		Limit(1)

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return models.Constellation{}, fmt.Errorf("failed to build SQL query for GetConstellationByAbr: %w", err)
	}

	err = db.QueryRowContext(ctx, sqlStr, args...).Scan(&c.Abbreviation, &c.Label)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Constellation{}, sql.ErrNoRows
		}
		return models.Constellation{}, fmt.Errorf("failed to query constellation %s: %w", abbreviation, err)
	}
	return c, nil
}

// UpsertConstellation inserts or replaces the label of a constellation
func UpsertConstellation(ctx context.Context, db *sql.DB, c models.Constellation) error {
	queryBuilder := psql.Insert("constellations").
		Columns("abbreviation", "label").
		Values(c.Abbreviation, c.Label).
		Suffix("ON CONFLICT(abbreviation) DO UPDATE SET label = excluded.label")

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build SQL query for UpsertConstellation: %w", err)
	}

	if _, err = db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to upsert constellation %s: %w", c.Abbreviation, err)
	}
	return nil
}

// SeedConstellations inserts the IAU constellations missing from the table.
// Existing labels are left untouched. Returns the number of rows inserted.
func SeedConstellations(ctx context.Context, db *sql.DB) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin catalog seed transaction: %w", err)
	}
	defer tx.Rollback()

	var inserted int64
	for _, c := range DefaultConstellations {
		sqlStr, args, err := psql.Insert("constellations").
			Columns("abbreviation", "label").
			Values(c.Abbreviation, c.Label).
			Suffix("ON CONFLICT(abbreviation) DO NOTHING").
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("failed to build SQL query for SeedConstellations: %w", err)
		}

		res, err := tx.ExecContext(ctx, sqlStr, args...)
		if err != nil {
			return 0, fmt.Errorf("failed to seed constellation %s: %w", c.Abbreviation, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += n
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit catalog seed: %w", err)
	}
	return inserted, nil
}
