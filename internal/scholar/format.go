// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/homepage/pkg/types"
)

// Placeholders used in the data file when an index omits a field.
const (
	untitled = "Untitled"
	preprint = "Preprint"
)

// Publication formats w as a data-file record. Author names equal to one
// of highlight (ignoring case and surrounding space) are wrapped in bold.
func Publication(w Work, source string, highlight []string) types.SyncedPublication {
	p := types.SyncedPublication{
		Title:      strings.TrimSpace(w.Title),
		Authors:    HighlightAuthors(w.Authors, highlight),
		Year:       types.UnknownYear,
		Journal:    FormatVenue(w.Venue, w.Volume, w.Issue, w.Pages),
		Link:       w.Link,
		Source:     source,
		ExternalID: w.ID,
	}
	if p.Title == "" {
		p.Title = untitled
	}
	if p.Authors == "" {
		p.Authors = types.Unknown
	}
	if w.Year > 0 {
		p.Year = types.Year(strconv.Itoa(w.Year))
	}
	return p
}

// HighlightAuthors joins authors with ", ", bolding the highlighted names.
func HighlightAuthors(authors, highlight []string) string {
	want := make(map[string]bool, len(highlight))
	for _, h := range highlight {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			want[h] = true
		}
	}
	out := make([]string, 0, len(authors))
	for _, a := range authors {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if want[strings.ToLower(a)] {
			a = "**" + a + "**"
		}
		out = append(out, a)
	}
	return strings.Join(out, ", ")
}

// FormatVenue builds "venue, volume(issue), pages", dropping the parts that
// are missing. The issue is shown only with a volume. An unknown venue
// reads "Preprint".
func FormatVenue(venue, volume, issue, pages string) string {
	venue = strings.TrimSpace(venue)
	if venue == "" {
		venue = preprint
	}
	out := venue
	if volume = strings.TrimSpace(volume); volume != "" {
		out += ", " + volume
		if issue = strings.TrimSpace(issue); issue != "" {
			out += "(" + issue + ")"
		}
	}
	if pages = strings.TrimSpace(pages); pages != "" {
		out += ", " + pages
	}
	return out
}

// SortByYear orders pubs newest first. Records with an unknown year go
// last; ties keep their input order.
func SortByYear(pubs []types.SyncedPublication) {
	sort.SliceStable(pubs, func(i, j int) bool {
		yi, oki := pubs[i].Year.Int()
		yj, okj := pubs[j].Year.Int()
		if oki != okj {
			return oki
		}
		return yi > yj
	})
}
