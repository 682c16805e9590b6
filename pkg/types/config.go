// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "homepage/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// Strategy selects how the extractor reads the homepage.
type Strategy string

const (
	// StrategyDOM parses the document into a tree and walks section locators.
	StrategyDOM Strategy = "dom"

	// StrategyPattern applies regular expressions to the raw markup.
	StrategyPattern Strategy = "pattern"
)

// Landmarks are the fixed strings and identifiers used to find sections.
type Landmarks struct {
	// Education is the label text that opens the education paragraph.
	Education string `json:"education" yaml:"education" mapstructure:"education"`

	// Appointments is the label text that opens the appointments paragraph.
	Appointments string `json:"appointments" yaml:"appointments" mapstructure:"appointments"`

	// PublicationsList is the id attribute of the publication <ul>.
	PublicationsList string `json:"publications_list" yaml:"publications_list" mapstructure:"publications_list"`

	// Awards is the heading text that precedes the awards list.
	Awards string `json:"awards" yaml:"awards" mapstructure:"awards"`

	// TitleKeyword identifies the <h4> holding the job title.
	TitleKeyword string `json:"title_keyword" yaml:"title_keyword" mapstructure:"title_keyword"`
}

// Skill is one labelled line of the README technical skills list.
type Skill struct {
	Label string `json:"label" yaml:"label" mapstructure:"label"`
	Value string `json:"value" yaml:"value" mapstructure:"value"`
}

// ReadmeConfig holds the README limits and the boilerplate prose that is
// not derived from the homepage.
type ReadmeConfig struct {
	// MaxPublications caps the Recent Publications list (0 = no cap).
	MaxPublications int `json:"max_publications" yaml:"max_publications" mapstructure:"max_publications"`

	// MaxAwards caps the Awards & Grants list (0 = no cap).
	MaxAwards int `json:"max_awards" yaml:"max_awards" mapstructure:"max_awards"`

	About             string   `json:"about" yaml:"about" mapstructure:"about"`
	ResearchIntro     string   `json:"research_intro" yaml:"research_intro" mapstructure:"research_intro"`
	ResearchInterests []string `json:"research_interests" yaml:"research_interests" mapstructure:"research_interests"`
	Skills            []Skill  `json:"skills" yaml:"skills" mapstructure:"skills"`
	Features          []string `json:"features" yaml:"features" mapstructure:"features"`
	Stack             []string `json:"stack" yaml:"stack" mapstructure:"stack"`

	// RepositoryURL is printed in the local development instructions when set.
	RepositoryURL string `json:"repository_url" yaml:"repository_url" mapstructure:"repository_url"`
}

// Sync backends.
const (
	BackendOpenAlex        = "openalex"
	BackendSemanticScholar = "semantic_scholar"
)

// SyncConfig holds settings for the external publication sync helper.
type SyncConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// SiteConfig is the Jekyll site configuration holding the author id.
	SiteConfig string `json:"site_config" yaml:"site_config" mapstructure:"site_config"`

	// Backend selects the index: openalex or semantic_scholar.
	Backend string `json:"backend" yaml:"backend" mapstructure:"backend"`

	// DataFile is the YAML list written for the site (e.g. "_data/publications.yml").
	DataFile string `json:"data_file" yaml:"data_file" mapstructure:"data_file"`

	// Database is the SQLite library that accumulates synced records.
	Database string `json:"database" yaml:"database" mapstructure:"database"`

	// HighlightNames are author spellings wrapped in ** in the data file.
	HighlightNames []string `json:"highlight_names" yaml:"highlight_names" mapstructure:"highlight_names"`

	// MaxRetries bounds retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// Config is the full configuration passed into the pipelines. Fixed file
// paths and fallback strings live here rather than in code.
type Config struct {
	// Source is the homepage HTML (default "index.html").
	Source string `json:"source" yaml:"source" mapstructure:"source"`

	// CVOutput is the generated CV page (default "cv.html").
	CVOutput string `json:"cv_output" yaml:"cv_output" mapstructure:"cv_output"`

	// ReadmeOutput is the generated README (default "README.md").
	ReadmeOutput string `json:"readme_output" yaml:"readme_output" mapstructure:"readme_output"`

	// Strategy selects the extractor: dom or pattern.
	Strategy Strategy `json:"strategy" yaml:"strategy" mapstructure:"strategy"`

	// Stamp pins the generation date (YYYY-MM-DD). Empty means today.
	Stamp string `json:"stamp" yaml:"stamp" mapstructure:"stamp"`

	Landmarks    Landmarks    `json:"landmarks" yaml:"landmarks" mapstructure:"landmarks"`
	Fallbacks    ContactInfo  `json:"fallbacks" yaml:"fallbacks" mapstructure:"fallbacks"`
	KnownRecords KnownRecords `json:"known_records" yaml:"known_records" mapstructure:"known_records"`
	Readme       ReadmeConfig `json:"readme" yaml:"readme" mapstructure:"readme"`
	Sync         SyncConfig   `json:"sync" yaml:"sync" mapstructure:"sync"`
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Source:       "index.html",
		CVOutput:     "cv.html",
		ReadmeOutput: "README.md",
		Strategy:     StrategyDOM,
		Landmarks: Landmarks{
			Education:        "Education:",
			Appointments:     "Appointments:",
			PublicationsList: "publications-list",
			Awards:           "Grants & Awards",
			TitleKeyword:     "Research Associate",
		},
		KnownRecords: KnownRecords{Strict: true},
		Readme: ReadmeConfig{
			MaxPublications: 4,
			MaxAwards:       6,
		},
		Sync: SyncConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   60 * time.Second,
				UserAgent: "homepage/0.1",
			},
			SiteConfig: "_config.yml",
			Backend:    BackendOpenAlex,
			DataFile:   "_data/publications.yml",
			Database:   "_data/publications.db",
			MaxRetries: 5,
		},
	}
}
