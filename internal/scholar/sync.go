// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/homepage/internal/library"
	"github.com/pdiddy/homepage/internal/output"
	"github.com/pdiddy/homepage/pkg/types"
)

// Archive stores synced records beyond the current data file.
// *library.Store implements it.
type Archive interface {
	// UpsertThen stages pubs, runs then, and commits only if then succeeds.
	UpsertThen(ctx context.Context, pubs []types.SyncedPublication, syncedAt time.Time, then func() error) (library.UpsertSummary, error)
}

// Result reports one sync run.
type Result struct {
	Backend      string
	AuthorID     string
	Publications []types.SyncedPublication
	Library      library.UpsertSummary
	DataFile     string
}

// Sync fetches the author's works from backend, writes them to the data
// file sorted newest first, and records them in archive when it is not
// nil. Every fetch completes before anything is written, so a missing
// author id or a service failure leaves both files untouched. The library
// transaction commits only after the data file is in place.
func Sync(ctx context.Context, cfg types.SyncConfig, backend Backend, archive Archive, now time.Time, w io.Writer) (Result, error) {
	res := Result{Backend: backend.Name(), DataFile: cfg.DataFile}

	site, err := ReadSiteConfig(cfg.SiteConfig)
	if err != nil {
		return res, err
	}
	res.AuthorID, err = site.AuthorID(backend.Name())
	if err != nil {
		return res, err
	}

	fmt.Fprintf(w, "Fetching publications for %s from %s...\n", res.AuthorID, backend.Name())
	works, err := backend.Works(ctx, res.AuthorID, cfg)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrServiceFailure, err)
	}

	pubs := make([]types.SyncedPublication, 0, len(works))
	for _, wk := range works {
		pubs = append(pubs, Publication(wk, backend.Name(), cfg.HighlightNames))
	}
	SortByYear(pubs)
	res.Publications = pubs
	fmt.Fprintf(w, "Found %d publications\n", len(pubs))

	data, err := library.MarshalYAML(pubs)
	if err != nil {
		return res, err
	}

	var writeErr error
	write := func() error {
		if err := output.Write(cfg.DataFile, data); err != nil {
			writeErr = fmt.Errorf("writing data file: %w", err)
			return writeErr
		}
		return nil
	}

	if archive == nil {
		if err := write(); err != nil {
			return res, err
		}
	} else {
		sum, err := archive.UpsertThen(ctx, pubs, now, write)
		if writeErr != nil {
			return res, writeErr
		}
		if err != nil {
			return res, fmt.Errorf("updating publication library: %w", err)
		}
		res.Library = sum
		fmt.Fprintf(w, "Library: %d new, %d updated, %d unchanged\n", sum.Inserted, sum.Updated, sum.Unchanged)
	}
	fmt.Fprintf(w, "Successfully wrote %d publications to %s\n", len(pubs), cfg.DataFile)
	return res, nil
}
