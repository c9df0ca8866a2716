// Package store handles SQLite persistence of lookup history.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/fwew/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout has fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for lookup history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS lookups (
			id INTEGER PRIMARY KEY,
			at TEXT NOT NULL,
			query TEXT NOT NULL,
			direction TEXT NOT NULL,
			lang TEXT NOT NULL,
			results INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_lookups_at ON lookups(at);`,
		`CREATE INDEX IF NOT EXISTS idx_lookups_query ON lookups(query, direction);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertLookups stores a batch of lookups in one transaction.
func (s *Store) InsertLookups(ctx context.Context, records []model.LookupRecord) (err error) {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO lookups (at, query, direction, lang, results) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for _, rec := range records {
		if _, err = stmt.ExecContext(ctx,
			rec.At.UTC().Format(timeLayout),
			rec.Query,
			string(rec.Direction),
			rec.Lang,
			rec.Results,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListLookups returns the most recent lookups, oldest first. last <= 0 returns all.
func (s *Store) ListLookups(ctx context.Context, last int) ([]model.LookupRecord, error) {
	limit := last
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT at, query, direction, lang, results FROM (
			SELECT id, at, query, direction, lang, results FROM lookups
			ORDER BY at DESC, id DESC
			LIMIT ?
		) ORDER BY at ASC, id ASC`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.LookupRecord
	for rows.Next() {
		var rec model.LookupRecord
		var at, direction string
		if err := rows.Scan(&at, &rec.Query, &direction, &rec.Lang, &rec.Results); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, at)
		if err != nil {
			return nil, err
		}
		rec.At = parsed
		rec.Direction = model.Direction(direction)
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Clear deletes all stored lookups.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM lookups`)
	return err
}
