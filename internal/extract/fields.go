// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"html"
	"regexp"
	"strings"

	"github.com/pdiddy/homepage/pkg/types"
)

// Field-level patterns shared by both strategies. They run against the
// inner markup of one list item or against one line of section text.
var (
	// pubYearRe matches a parenthesised year: (2024).
	pubYearRe = regexp.MustCompile(`\((\d{4})\)`)

	// leadYearRe matches a year at the start of a line: 2022 Some Award.
	leadYearRe = regexp.MustCompile(`^(\d{4})`)

	// linkTextRe captures the text of the first link.
	linkTextRe = regexp.MustCompile(`(?is)<a[^>]*>([^<]+)</a>`)

	// emTextRe captures the text of the first emphasis element.
	emTextRe = regexp.MustCompile(`(?is)<em>([^<]+)</em>`)

	// afterLinkRe captures the text that follows the first link.
	afterLinkRe = regexp.MustCompile(`(?is)</a>\s*([^<]+)`)

	// leadingCommaRe strips a leading comma and spaces from an organization.
	leadingCommaRe = regexp.MustCompile(`^,\s*`)

	// periodRe matches a year or a year range such as 2019–2024 or 2024–Present.
	periodRe = regexp.MustCompile(`\d{4}(?:\s*[–—-]\s*(?:\d{4}|[Pp]resent))?`)

	// yearRe decides whether a section line carries an entry.
	yearRe = regexp.MustCompile(`\d{4}`)

	tagRe   = regexp.MustCompile(`<[^>]+>`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Brackets and commas left behind once a period is cut out of a line.
var (
	emptyParenRe = regexp.MustCompile(`\(\s*\)|\[\s*\]`)
	spaceCommaRe = regexp.MustCompile(`\s+,`)
)

// bulletReplacer removes the bullet glyphs used in front of section lines.
var bulletReplacer = strings.NewReplacer("•", "", "&bull;", "")

// collapse trims s and folds every whitespace run into one space.
func collapse(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// plainText strips tags from markup, decodes entities, and collapses whitespace.
func plainText(markup string) string {
	return collapse(html.UnescapeString(tagRe.ReplaceAllString(markup, "")))
}

// cleanLine strips bullets and surrounding whitespace from one section line.
func cleanLine(line string) string {
	return collapse(bulletReplacer.Replace(line))
}

// parsePublication extracts the citation fields from the inner markup of a
// publication list item. text is the plain-text rendering of the same item;
// each field falls back to its sentinel independently.
func parsePublication(markup, text string) types.Publication {
	pub := types.Publication{
		Year:    types.UnknownYear,
		Title:   types.UnknownTitle,
		Journal: types.UnknownJournal,
		Authors: types.UnknownAuthors,
		Markup:  markup,
		Text:    text,
	}

	yearLoc := pubYearRe.FindStringSubmatchIndex(text)
	if yearLoc != nil {
		pub.Year = types.Year(text[yearLoc[2]:yearLoc[3]])
	}

	if m := emTextRe.FindStringSubmatch(markup); m != nil {
		if j := collapse(html.UnescapeString(m[1])); j != "" {
			pub.Journal = j
		}
	}

	if m := linkTextRe.FindStringSubmatch(markup); m != nil {
		if t := collapse(html.UnescapeString(m[1])); t != "" {
			pub.Title = t
		}
	} else if yearLoc != nil {
		if t := titleAfterYear(text[yearLoc[1]:], pub.Journal); t != "" {
			pub.Title = t
		}
	}

	if i := strings.Index(text, "("); i > 0 {
		if a := strings.TrimSpace(text[:i]); a != "" {
			pub.Authors = a
		}
	} else if i < 0 && text != "" {
		pub.Authors = text
	}

	return pub
}

// titleAfterYear recovers an unlinked title from the text following the
// year: everything up to the journal, or up to the first sentence break.
func titleAfterYear(rest, journal string) string {
	rest = strings.TrimLeft(rest, ". ")
	if journal != types.UnknownJournal {
		if i := strings.Index(rest, journal); i > 0 {
			return strings.TrimRight(rest[:i], ".,; ")
		}
	}
	if i := strings.Index(rest, ". "); i > 0 {
		return rest[:i]
	}
	return strings.TrimRight(rest, ". ")
}

// parseAward splits an award list item into year, name, and organization.
// The name is the link text when there is a link; otherwise the text up to
// the first comma.
func parseAward(markup, text string) types.Award {
	award := types.Award{
		Year:         types.UnknownYear,
		Name:         types.UnknownAward,
		Organization: types.UnknownOrganization,
		Text:         text,
	}

	rest := text
	if m := leadYearRe.FindStringSubmatch(text); m != nil {
		award.Year = types.Year(m[1])
		rest = strings.TrimSpace(text[len(m[0]):])
	}

	if m := linkTextRe.FindStringSubmatch(markup); m != nil {
		if n := collapse(html.UnescapeString(m[1])); n != "" {
			award.Name = n
		}
		if o := afterLinkRe.FindStringSubmatch(markup); o != nil {
			org := collapse(html.UnescapeString(o[1]))
			award.Organization = leadingCommaRe.ReplaceAllString(org, "")
		}
		return award
	}

	name, org, found := strings.Cut(rest, ",")
	if n := strings.TrimSpace(name); n != "" {
		award.Name = n
	}
	if found {
		if o := strings.TrimSpace(org); o != "" {
			award.Organization = o
		}
	}
	return award
}

// splitPeriod separates the year or year range from the description of a
// section line. "2019–2024: Ph.D. in X, Y" and "Ph.D. in X, Y, 2019–2024"
// both yield period "2019–2024".
func splitPeriod(line string) (period, rest string) {
	if head, tail, ok := strings.Cut(line, ":"); ok && periodRe.MatchString(head) {
		return strings.TrimSpace(head), strings.TrimSpace(tail)
	}
	loc := periodRe.FindStringIndex(line)
	if loc == nil {
		return "", strings.TrimSpace(line)
	}
	period = line[loc[0]:loc[1]]
	rest = emptyParenRe.ReplaceAllString(line[:loc[0]]+" "+line[loc[1]:], " ")
	rest = spaceCommaRe.ReplaceAllString(collapse(rest), ",")
	return period, strings.Trim(rest, " ,;:|–-")
}

// parseEducationLine turns a literal section line into an education entry.
// The degree is everything before the first comma.
func parseEducationLine(line string) types.EducationEntry {
	period, rest := splitPeriod(line)
	degree, institution, _ := strings.Cut(rest, ",")
	return types.EducationEntry{
		Degree:      strings.TrimSpace(degree),
		Institution: strings.TrimSpace(institution),
		Period:      period,
	}
}

// parseAppointmentLine turns a literal section line into an appointment.
// The institution is everything after the last comma, since positions
// often carry a comma themselves ("Research Associate, GIS Programmer").
func parseAppointmentLine(line string) types.AppointmentEntry {
	period, rest := splitPeriod(line)
	entry := types.AppointmentEntry{Position: rest, Period: period}
	if i := strings.LastIndex(rest, ","); i >= 0 {
		entry.Position = strings.TrimSpace(rest[:i])
		entry.Institution = strings.TrimSpace(rest[i+1:])
	}
	return entry
}
