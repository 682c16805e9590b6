// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/homepage/pkg/types"
)

// SiteConfig holds the keys the sync reads from the Jekyll site
// configuration (_config.yml). Other keys are ignored.
type SiteConfig struct {
	OpenAlexAuthorID        string `yaml:"openalex_author_id"`
	SemanticScholarAuthorID string `yaml:"semantic_scholar_author_id"`

	// GoogleScholarID is recognised only to give a helpful error: Google
	// Scholar has no public API.
	GoogleScholarID string `yaml:"google_scholar_id"`
}

// ReadSiteConfig parses the site configuration at path.
func ReadSiteConfig(path string) (SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("reading site config: %w", err)
	}
	var sc SiteConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return SiteConfig{}, fmt.Errorf("parsing site config %s: %w", path, err)
	}
	return sc, nil
}

// AuthorID returns the author identifier for the named backend.
func (sc SiteConfig) AuthorID(backend string) (string, error) {
	var key, id string
	switch backend {
	case types.BackendOpenAlex:
		key, id = "openalex_author_id", sc.OpenAlexAuthorID
	case types.BackendSemanticScholar:
		key, id = "semantic_scholar_author_id", sc.SemanticScholarAuthorID
	default:
		return "", fmt.Errorf("%w: unknown backend %q", ErrMissingAuthorID, backend)
	}

	id = strings.TrimSpace(id)
	if id != "" {
		return id, nil
	}
	if sc.GoogleScholarID != "" {
		return "", fmt.Errorf("%w: set %s (google_scholar_id cannot be queried)", ErrMissingAuthorID, key)
	}
	return "", fmt.Errorf("%w: set %s", ErrMissingAuthorID, key)
}
