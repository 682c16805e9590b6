// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/homepage/pkg/types"
)

// QueryOptions filters library listings. The zero value lists everything.
type QueryOptions struct {
	// Year keeps records from one year (e.g. "2024").
	Year string

	// Query keeps records whose title, authors, or journal contain the
	// text, ignoring case.
	Query string

	// Source keeps records from one backend.
	Source string

	// Limit caps the result count. Zero means no cap.
	Limit int
}

// List returns matching records, newest year first. Records with an
// unknown year come last; ties keep insertion order.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.SyncedPublication, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT title, authors, year, journal, link, source, external_id
		FROM publications WHERE 1=1`)

	if opts.Year != "" {
		qb.WriteString(` AND year = ?`)
		args = append(args, opts.Year)
	}
	if opts.Source != "" {
		qb.WriteString(` AND source = ?`)
		args = append(args, opts.Source)
	}
	if q := strings.TrimSpace(opts.Query); q != "" {
		like := "%" + escapeLike(strings.ToLower(q)) + "%"
		qb.WriteString(` AND (lower(title) LIKE ? ESCAPE '\' OR lower(authors) LIKE ? ESCAPE '\' OR lower(journal) LIKE ? ESCAPE '\')`)
		args = append(args, like, like, like)
	}

	qb.WriteString(` ORDER BY CASE WHEN year GLOB '[0-9][0-9][0-9][0-9]' THEN 0 ELSE 1 END, year DESC, id`)
	if opts.Limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying library: %w", err)
	}
	defer rows.Close()

	var out []types.SyncedPublication
	for rows.Next() {
		var p types.SyncedPublication
		var year string
		if err := rows.Scan(&p.Title, &p.Authors, &year, &p.Journal, &p.Link, &p.Source, &p.ExternalID); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		p.Year = types.Year(year)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return out, nil
}

// Count returns the number of records in the library.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM publications`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting publications: %w", err)
	}
	return n, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
