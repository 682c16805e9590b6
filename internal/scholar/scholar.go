// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar fetches the site owner's publication list from a public
// academic index and turns it into the records of the site data file. It
// is independent of the homepage scraping pipelines.
//
// See docs/ARCHITECTURE § Publication Sync.
package scholar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/homepage/internal/httputil"
	"github.com/pdiddy/homepage/pkg/types"
)

// Sentinel errors. Either one aborts a sync before anything is written.
var (
	// ErrMissingAuthorID means the site configuration has no author
	// identifier for the selected backend.
	ErrMissingAuthorID = errors.New("author identifier not configured")

	// ErrServiceFailure wraps any failure talking to the index service.
	ErrServiceFailure = errors.New("publication service failed")
)

// Work is one publication as reported by an index, before formatting.
type Work struct {
	ID      string
	Title   string
	Authors []string
	Year    int
	Venue   string
	Volume  string
	Issue   string
	Pages   string
	Link    string
}

// Backend lists the works of one author. Each index (OpenAlex, Semantic
// Scholar) implements this interface per the Strategy pattern.
type Backend interface {
	Name() string
	Works(ctx context.Context, authorID string, cfg types.SyncConfig) ([]Work, error)
}

// Secret keys read by the backends.
const (
	SecretOpenAlexEmail  = "openalex-email"
	SecretSemanticAPIKey = "semantic-scholar-api-key"
)

// Published request rates: OpenAlex allows 10 per second, Semantic Scholar
// one per second for keyed clients.
var (
	openAlexRate = rate.Limit(10)
	semanticRate = rate.Every(time.Second)
)

// maxPages bounds pagination so a misbehaving service cannot loop forever.
const maxPages = 50

// NewBackend returns the backend named by cfg.Backend. Rate-limit
// backoffs are reported to log.
func NewBackend(cfg types.SyncConfig, secrets map[string]string, log io.Writer) (Backend, error) {
	retrier := httputil.Retrier{
		Client:     httputil.NewClient(cfg.HTTPConfig),
		MaxRetries: cfg.MaxRetries,
		Log:        log,
	}
	switch cfg.Backend {
	case types.BackendOpenAlex, "":
		retrier.Limiter = rate.NewLimiter(openAlexRate, 1)
		return &OpenAlexBackend{HTTP: retrier, Email: secrets[SecretOpenAlexEmail]}, nil
	case types.BackendSemanticScholar:
		retrier.Limiter = rate.NewLimiter(semanticRate, 1)
		return &SemanticScholarBackend{HTTP: retrier, APIKey: secrets[SecretSemanticAPIKey]}, nil
	default:
		return nil, fmt.Errorf("unknown sync backend %q: use %s or %s",
			cfg.Backend, types.BackendOpenAlex, types.BackendSemanticScholar)
	}
}
