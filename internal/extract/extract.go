// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns the homepage markup into structured profile records.
// Two strategies exist: PatternExtractor matches regular expressions against
// the raw text, DOMExtractor walks a parsed document with section locators.
// Missing fields degrade to sentinel values; nothing here rejects a record.
//
// See docs/ARCHITECTURE § Extractor.
package extract

import (
	"fmt"
	"strings"

	"github.com/pdiddy/homepage/pkg/types"
)

// Extractor produces a Profile from one homepage document. Each strategy
// implements this interface per the Strategy pattern.
type Extractor interface {
	Name() string
	Extract(doc string) (Result, error)
}

// Result holds the extracted profile and the notes collected on the way.
type Result struct {
	Profile     types.Profile
	Diagnostics Diagnostics
}

// Diagnostics records landmarks that were not found and items that no
// known-record rule recognised. They are informational, never errors.
type Diagnostics []string

// Add appends a formatted note.
func (d *Diagnostics) Add(format string, args ...any) {
	*d = append(*d, fmt.Sprintf(format, args...))
}

// New returns the extractor selected by cfg.Strategy.
func New(cfg types.Config) (Extractor, error) {
	switch cfg.Strategy {
	case types.StrategyDOM, "":
		return NewDOMExtractor(cfg), nil
	case types.StrategyPattern:
		return NewPatternExtractor(cfg), nil
	default:
		return nil, fmt.Errorf("unknown extraction strategy %q: use dom or pattern", cfg.Strategy)
	}
}

// classifyLinks picks the Google Scholar, GitHub and LinkedIn URLs from
// hrefs. A later link of the same kind replaces an earlier one.
func classifyLinks(hrefs []string) types.Links {
	var l types.Links
	for _, h := range hrefs {
		switch {
		case strings.Contains(h, "scholar.google.com"):
			l.Scholar = h
		case strings.Contains(h, "github.com"):
			l.GitHub = h
		case strings.Contains(h, "linkedin.com"):
			l.LinkedIn = h
		}
	}
	return l
}
