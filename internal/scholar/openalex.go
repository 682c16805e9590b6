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

// openAlexWorksBase is the OpenAlex Works endpoint. Declared as a var so
// tests can substitute an httptest server.
var openAlexWorksBase = "https://api.openalex.org/works"

const (
	openAlexSelect  = "id,doi,title,publication_year,authorships,primary_location,biblio"
	openAlexPerPage = 200
)

// OpenAlexBackend lists an author's works from OpenAlex using cursor paging.
type OpenAlexBackend struct {
	HTTP httputil.Retrier
	// Email is sent as mailto parameter for polite pool access.
	Email string
}

// Name returns the backend identifier.
func (b *OpenAlexBackend) Name() string { return types.BackendOpenAlex }

// Works fetches every work attributed to authorID. The identifier may be
// bare ("A5023888391") or a full OpenAlex URL.
func (b *OpenAlexBackend) Works(ctx context.Context, authorID string, cfg types.SyncConfig) ([]Work, error) {
	id := strings.TrimPrefix(strings.TrimSpace(authorID), "https://openalex.org/")
	if id == "" {
		return nil, fmt.Errorf("empty OpenAlex author id")
	}

	var works []Work
	cursor := "*"
	for page := 0; cursor != "" && page < maxPages; page++ {
		params := url.Values{
			"filter":   {"author.id:" + id},
			"select":   {openAlexSelect},
			"per_page": {fmt.Sprintf("%d", openAlexPerPage)},
			"cursor":   {cursor},
		}
		if b.Email != "" {
			params.Set("mailto", b.Email)
		}

		resp, err := b.fetch(ctx, openAlexWorksBase+"?"+params.Encode(), cfg)
		if err != nil {
			return nil, err
		}
		for _, w := range resp.Results {
			works = append(works, w.toWork())
		}
		if len(resp.Results) == 0 {
			break
		}
		cursor = resp.Meta.NextCursor
	}
	return works, nil
}

func (b *OpenAlexBackend) fetch(ctx context.Context, reqURL string, cfg types.SyncConfig) (openAlexResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return openAlexResponse{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := b.HTTP.Do(ctx, req)
	if err != nil {
		return openAlexResponse{}, fmt.Errorf("OpenAlex API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return openAlexResponse{}, fmt.Errorf("OpenAlex API returned HTTP %d", resp.StatusCode)
	}

	var oar openAlexResponse
	if err := json.NewDecoder(resp.Body).Decode(&oar); err != nil {
		return openAlexResponse{}, fmt.Errorf("parsing OpenAlex response: %w", err)
	}
	return oar, nil
}

func (w openAlexWork) toWork() Work {
	out := Work{
		ID:    w.ID,
		Title: w.Title,
		Year:  w.PublicationYear,
		Pages: joinPages(w.Biblio.FirstPage, w.Biblio.LastPage),
	}
	if w.Biblio.Volume != nil {
		out.Volume = *w.Biblio.Volume
	}
	if w.Biblio.Issue != nil {
		out.Issue = *w.Biblio.Issue
	}
	for _, a := range w.Authorships {
		if a.Author.DisplayName != "" {
			out.Authors = append(out.Authors, a.Author.DisplayName)
		}
	}
	if loc := w.PrimaryLocation; loc != nil {
		if loc.Source != nil {
			out.Venue = loc.Source.DisplayName
		}
		out.Link = loc.LandingPageURL
	}
	if w.DOI != "" {
		out.Link = w.DOI
	}
	if out.Link == "" {
		out.Link = w.ID
	}
	return out
}

// joinPages renders a page range from OpenAlex's first and last page.
func joinPages(first, last *string) string {
	var f, l string
	if first != nil {
		f = *first
	}
	if last != nil {
		l = *last
	}
	switch {
	case f == "":
		return l
	case l == "" || l == f:
		return f
	default:
		return f + "-" + l
	}
}

// OpenAlex API JSON structures.
type openAlexResponse struct {
	Meta    openAlexMeta   `json:"meta"`
	Results []openAlexWork `json:"results"`
}

type openAlexMeta struct {
	Count      int    `json:"count"`
	NextCursor string `json:"next_cursor"`
}

type openAlexWork struct {
	ID              string               `json:"id"`
	DOI             string               `json:"doi"`
	Title           string               `json:"title"`
	PublicationYear int                  `json:"publication_year"`
	Authorships     []openAlexAuthorship `json:"authorships"`
	PrimaryLocation *openAlexLocation    `json:"primary_location"`
	Biblio          openAlexBiblio       `json:"biblio"`
}

type openAlexAuthorship struct {
	Author openAlexAuthor `json:"author"`
}

type openAlexAuthor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type openAlexLocation struct {
	LandingPageURL string          `json:"landing_page_url"`
	Source         *openAlexSource `json:"source"`
}

type openAlexSource struct {
	DisplayName string `json:"display_name"`
}

type openAlexBiblio struct {
	Volume    *string `json:"volume"`
	Issue     *string `json:"issue"`
	FirstPage *string `json:"first_page"`
	LastPage  *string `json:"last_page"`
}
