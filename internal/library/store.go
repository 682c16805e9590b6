// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library keeps every publication the sync helper has fetched in a
// SQLite database. The site data file is regenerated from each sync; the
// library accumulates records across syncs and backends and answers
// offline queries.
//
// See docs/ARCHITECTURE § Publication Library.
package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/homepage/pkg/types"
)

// Store manages the publication library database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the library at path, creating the parent
// directory and the schema when missing.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating library directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS publications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title_key TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			authors TEXT NOT NULL,
			year TEXT NOT NULL,
			journal TEXT NOT NULL,
			link TEXT NOT NULL,
			source TEXT NOT NULL,
			external_id TEXT NOT NULL,
			synced_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_publications_year ON publications(year)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// UpsertSummary holds counts from one Upsert call.
type UpsertSummary struct {
	Inserted  int
	Updated   int
	Unchanged int
}

// Total returns the number of records processed.
func (s UpsertSummary) Total() int {
	return s.Inserted + s.Updated + s.Unchanged
}

// TitleKey returns the deduplication key for a title: lowercased, with
// punctuation removed and whitespace collapsed. Records from different
// backends with the same title share one row.
func TitleKey(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func rowKey(p types.SyncedPublication) string {
	if k := TitleKey(p.Title); k != "" {
		return k
	}
	return "id:" + p.Source + ":" + p.ExternalID
}

// Upsert inserts new records and updates changed ones in a single
// transaction. Either every record is stored or none is.
func (s *Store) Upsert(ctx context.Context, pubs []types.SyncedPublication, syncedAt time.Time) (UpsertSummary, error) {
	return s.UpsertThen(ctx, pubs, syncedAt, nil)
}

// UpsertThen is Upsert with a step run after the rows are staged and before
// the transaction commits. An error from then rolls the transaction back
// and is returned unwrapped.
func (s *Store) UpsertThen(ctx context.Context, pubs []types.SyncedPublication, syncedAt time.Time, then func() error) (UpsertSummary, error) {
	var sum UpsertSummary

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return sum, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stamp := syncedAt.UTC().Format(time.RFC3339)
	for _, p := range pubs {
		key := rowKey(p)

		var cur types.SyncedPublication
		var year string
		err := tx.QueryRowContext(ctx,
			`SELECT title, authors, year, journal, link, source, external_id
			FROM publications WHERE title_key = ?`, key,
		).Scan(&cur.Title, &cur.Authors, &year, &cur.Journal, &cur.Link, &cur.Source, &cur.ExternalID)
		cur.Year = types.Year(year)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO publications
				(title_key, title, authors, year, journal, link, source, external_id, synced_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				key, p.Title, p.Authors, string(p.Year), p.Journal, p.Link, p.Source, p.ExternalID, stamp,
			); err != nil {
				return UpsertSummary{}, fmt.Errorf("inserting %q: %w", p.Title, err)
			}
			sum.Inserted++
		case err != nil:
			return UpsertSummary{}, fmt.Errorf("looking up %q: %w", p.Title, err)
		case cur == p:
			sum.Unchanged++
		default:
			if _, err := tx.ExecContext(ctx,
				`UPDATE publications SET title = ?, authors = ?, year = ?, journal = ?,
				link = ?, source = ?, external_id = ?, synced_at = ?
				WHERE title_key = ?`,
				p.Title, p.Authors, string(p.Year), p.Journal, p.Link, p.Source, p.ExternalID, stamp, key,
			); err != nil {
				return UpsertSummary{}, fmt.Errorf("updating %q: %w", p.Title, err)
			}
			sum.Updated++
		}
	}

	if then != nil {
		if err := then(); err != nil {
			return UpsertSummary{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return UpsertSummary{}, fmt.Errorf("committing transaction: %w", err)
	}
	return sum, nil
}
