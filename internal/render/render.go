// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns an extracted Profile into the two generated
// documents: the styled CV page and the repository README. Rendering is
// pure and total: any Profile, including the zero value, renders to a
// well-formed document, and the same Profile and Options always produce
// the same bytes.
//
// See docs/ARCHITECTURE § Renderer.
package render

import (
	"embed"
	"strings"
	"time"

	"github.com/pdiddy/homepage/pkg/types"
)

//go:embed templates/*
var templates embed.FS

// Options carries everything the renderers need beyond the Profile.
type Options struct {
	// Now is the generation time printed in footers. The zero value
	// omits the date.
	Now time.Time

	// Readme holds the README boilerplate and list limits.
	Readme types.ReadmeConfig
}

// sentinels are the placeholder values the extractor substitutes for
// missing fields. Renderers print them as empty strings.
var sentinels = map[string]bool{
	types.Unknown:             true,
	types.UnknownTitle:        true,
	types.UnknownJournal:      true,
	types.UnknownAuthors:      true,
	types.UnknownAward:        true,
	types.UnknownOrganization: true,
}

// known returns s, or "" when s is a sentinel.
func known(s string) string {
	if sentinels[s] {
		return ""
	}
	return s
}

// yearOf returns the year for display, or "" for the Unknown sentinel.
func yearOf(y types.Year) string {
	return known(string(y))
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// limit returns at most n items of s; n <= 0 means no limit.
func limit[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
