// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/homepage/pkg/types"
)

func TestPublication(t *testing.T) {
	w := Work{
		ID:      "W1",
		Title:   "  Mapping Urban Heat ",
		Authors: []string{"Ada Lovelace", "Charles Babbage"},
		Year:    2024,
		Venue:   "Transactions in GIS",
		Volume:  "29",
		Issue:   "2",
		Pages:   "e70019",
		Link:    "https://doi.org/10.1/heat",
	}
	got := Publication(w, types.BackendOpenAlex, []string{"ada lovelace"})
	assert.Equal(t, types.SyncedPublication{
		Title:      "Mapping Urban Heat",
		Authors:    "**Ada Lovelace**, Charles Babbage",
		Year:       "2024",
		Journal:    "Transactions in GIS, 29(2), e70019",
		Link:       "https://doi.org/10.1/heat",
		Source:     types.BackendOpenAlex,
		ExternalID: "W1",
	}, got)
}

func TestPublication_Placeholders(t *testing.T) {
	got := Publication(Work{ID: "W9"}, types.BackendSemanticScholar, nil)
	assert.Equal(t, "Untitled", got.Title)
	assert.Equal(t, types.Unknown, got.Authors)
	assert.Equal(t, types.UnknownYear, got.Year)
	assert.Equal(t, "Preprint", got.Journal)
}

func TestHighlightAuthors(t *testing.T) {
	tests := []struct {
		name      string
		authors   []string
		highlight []string
		want      string
	}{
		{"no highlight", []string{"A", "B"}, nil, "A, B"},
		{"case-insensitive", []string{"ada lovelace", "B"}, []string{"Ada Lovelace"}, "**ada lovelace**, B"},
		{"several spellings", []string{"A. Lovelace", "Ada Lovelace"}, []string{"A. Lovelace", "Ada Lovelace"}, "**A. Lovelace**, **Ada Lovelace**"},
		{"partial names do not match", []string{"Ada Lovelace-King"}, []string{"Ada Lovelace"}, "Ada Lovelace-King"},
		{"blank authors dropped", []string{" ", "A"}, nil, "A"},
		{"empty", nil, []string{"A"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HighlightAuthors(tt.authors, tt.highlight))
		})
	}
}

func TestFormatVenue(t *testing.T) {
	tests := []struct {
		name                        string
		venue, volume, issue, pages string
		want                        string
	}{
		{"full", "J", "29", "2", "1-10", "J, 29(2), 1-10"},
		{"venue only", "J", "", "", "", "J"},
		{"issue without volume", "J", "", "2", "5", "J, 5"},
		{"volume without issue", "J", "12", "", "", "J, 12"},
		{"no venue", "", "", "", "", "Preprint"},
		{"no venue with pages", "", "3", "", "7", "Preprint, 3, 7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatVenue(tt.venue, tt.volume, tt.issue, tt.pages))
		})
	}
}

func TestSortByYear(t *testing.T) {
	pubs := []types.SyncedPublication{
		{Title: "a", Year: "2020"},
		{Title: "b", Year: types.UnknownYear},
		{Title: "c", Year: "2024"},
		{Title: "d", Year: "2020"},
		{Title: "e", Year: "2022"},
	}
	SortByYear(pubs)

	var titles []string
	for _, p := range pubs {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"c", "e", "a", "d", "b"}, titles)
}
