// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/homepage/internal/httputil"
	"github.com/pdiddy/homepage/pkg/types"
)

// semanticAuthorBase is the Semantic Scholar author endpoint. Declared as
// a var so tests can substitute an httptest server.
var semanticAuthorBase = "https://api.semanticscholar.org/graph/v1/author"

const (
	semanticFields = "title,year,venue,url,authors,journal,externalIds"
	semanticLimit  = 100
)

// SemanticScholarBackend lists an author's papers from Semantic Scholar
// using offset paging.
type SemanticScholarBackend struct {
	HTTP   httputil.Retrier
	APIKey string
}

// Name returns the backend identifier.
func (b *SemanticScholarBackend) Name() string { return types.BackendSemanticScholar }

// Works fetches every paper attributed to authorID.
func (b *SemanticScholarBackend) Works(ctx context.Context, authorID string, cfg types.SyncConfig) ([]Work, error) {
	id := strings.TrimSpace(authorID)
	if id == "" {
		return nil, fmt.Errorf("empty Semantic Scholar author id")
	}

	var works []Work
	offset := 0
	for page := 0; page < maxPages; page++ {
		params := url.Values{
			"fields": {semanticFields},
			"limit":  {fmt.Sprintf("%d", semanticLimit)},
			"offset": {fmt.Sprintf("%d", offset)},
		}
		reqURL := semanticAuthorBase + "/" + url.PathEscape(id) + "/papers?" + params.Encode()

		sr, err := b.fetch(ctx, reqURL, cfg)
		if err != nil {
			return nil, err
		}
		for _, p := range sr.Data {
			works = append(works, p.toWork())
		}
		if sr.Next == nil || len(sr.Data) == 0 {
			break
		}
		offset = *sr.Next
	}
	return works, nil
}

func (b *SemanticScholarBackend) fetch(ctx context.Context, reqURL string, cfg types.SyncConfig) (semanticResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return semanticResponse{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	if b.APIKey != "" {
		req.Header.Set("x-api-key", b.APIKey)
	}

	resp, err := b.HTTP.Do(ctx, req)
	if err != nil {
		return semanticResponse{}, fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return semanticResponse{}, fmt.Errorf("Semantic Scholar API returned HTTP %d", resp.StatusCode)
	}

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return semanticResponse{}, fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}
	return sr, nil
}

func (p semanticPaper) toWork() Work {
	out := Work{
		ID:    p.PaperID,
		Title: p.Title,
		Venue: p.Venue,
		Link:  p.URL,
	}
	if p.Year != nil {
		out.Year = *p.Year
	}
	for _, a := range p.Authors {
		if a.Name != "" {
			out.Authors = append(out.Authors, a.Name)
		}
	}
	if j := p.Journal; j != nil {
		if j.Name != "" {
			out.Venue = j.Name
		}
		out.Volume = strings.TrimSpace(j.Volume)
		out.Pages = strings.TrimSpace(j.Pages)
	}
	if p.ExternalIDs.DOI != "" {
		out.Link = "https://doi.org/" + p.ExternalIDs.DOI
	}
	return out
}

// Semantic Scholar API JSON structures.
type semanticResponse struct {
	Offset int             `json:"offset"`
	Next   *int            `json:"next"`
	Data   []semanticPaper `json:"data"`
}

type semanticPaper struct {
	PaperID     string              `json:"paperId"`
	Title       string              `json:"title"`
	Year        *int                `json:"year"`
	Venue       string              `json:"venue"`
	URL         string              `json:"url"`
	Authors     []semanticAuthor    `json:"authors"`
	Journal     *semanticJournal    `json:"journal"`
	ExternalIDs semanticExternalIDs `json:"externalIds"`
}

type semanticAuthor struct {
	AuthorID string `json:"authorId"`
	Name     string `json:"name"`
}

type semanticJournal struct {
	Name   string `json:"name"`
	Volume string `json:"volume"`
	Pages  string `json:"pages"`
}

type semanticExternalIDs struct {
	DOI   string `json:"DOI"`
	ArXiv string `json:"ArXiv"`
}
