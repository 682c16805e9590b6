// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"html"
	"regexp"
	"strings"

	"github.com/pdiddy/homepage/pkg/types"
)

// Contact patterns applied to the raw markup.
var (
	nameRe   = regexp.MustCompile(`<h4>([^<]+)</h4>`)
	mailtoRe = regexp.MustCompile(`href="mailto:([^"]+)"`)
	phoneRe  = regexp.MustCompile(`Phone: ([^<]+)`)
	officeRe = regexp.MustCompile(`Office: ([^<]+)`)
	hrefRe   = regexp.MustCompile(`href="([^"]+)"`)
	liRe     = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)
	brRe     = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// PatternExtractor reads the homepage with regular expressions anchored on
// literal labels. Education and appointments go through the known-record
// table rather than being parsed generically.
type PatternExtractor struct {
	landmarks types.Landmarks
	known     types.KnownRecords
	fallbacks types.ContactInfo

	titleRe        *regexp.Regexp
	educationRe    *regexp.Regexp
	appointmentsRe *regexp.Regexp
	publicationsRe *regexp.Regexp
	awardsRe       *regexp.Regexp
}

// NewPatternExtractor compiles the section patterns for the configured landmarks.
func NewPatternExtractor(cfg types.Config) *PatternExtractor {
	lm := cfg.Landmarks
	e := &PatternExtractor{
		landmarks:      lm,
		known:          cfg.KnownRecords,
		fallbacks:      cfg.Fallbacks,
		educationRe:    labelBlockPattern(lm.Education),
		appointmentsRe: labelBlockPattern(lm.Appointments),
		publicationsRe: regexp.MustCompile(`(?is)<ul[^>]*\bid="` + regexp.QuoteMeta(lm.PublicationsList) + `"[^>]*>(.*?)</ul>`),
		awardsRe: regexp.MustCompile(`(?is)<h[23][^>]*>\s*(?:` + landmarkAlternatives(lm.Awards) +
			`)\s*</h[23]>\s*<ul[^>]*>(.*?)</ul>`),
	}
	if lm.TitleKeyword != "" {
		e.titleRe = regexp.MustCompile(`<h4[^>]*>([^<]*` + regexp.QuoteMeta(lm.TitleKeyword) + `[^<]*)</h4>`)
	}
	return e
}

// labelBlockPattern matches the paragraph text that follows a bold label,
// up to the next bold label or the end of the paragraph.
func labelBlockPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)<strong>\s*` + landmarkAlternatives(label) +
		`\s*</strong>\s*(?:<br\s*/?>)?(.*?)(?:<strong>|</p>)`)
}

// landmarkAlternatives matches a landmark written either literally or with
// HTML entities ("Grants &amp; Awards").
func landmarkAlternatives(s string) string {
	lit := regexp.QuoteMeta(s)
	esc := regexp.QuoteMeta(html.EscapeString(s))
	if lit == esc {
		return lit
	}
	return lit + "|" + esc
}

// Name returns the strategy identifier.
func (e *PatternExtractor) Name() string { return string(types.StrategyPattern) }

// Extract applies every section pattern to doc. It never fails: missing
// landmarks produce empty sections and a diagnostic.
func (e *PatternExtractor) Extract(doc string) (Result, error) {
	var res Result
	res.Profile.Contact = e.contact(doc).WithFallback(e.fallbacks)
	res.Profile.Education = e.education(doc, &res.Diagnostics)
	res.Profile.Appointments = e.appointments(doc, &res.Diagnostics)
	res.Profile.Publications = e.publications(doc, &res.Diagnostics)
	res.Profile.Awards = e.awards(doc, &res.Diagnostics)
	return res, nil
}

func (e *PatternExtractor) contact(doc string) types.ContactInfo {
	var c types.ContactInfo
	if m := nameRe.FindStringSubmatch(doc); m != nil {
		c.Name = html.UnescapeString(strings.TrimSpace(m[1]))
	}
	if e.titleRe != nil {
		if m := e.titleRe.FindStringSubmatch(doc); m != nil {
			c.Title = html.UnescapeString(strings.TrimSpace(m[1]))
		}
	}
	if m := mailtoRe.FindStringSubmatch(doc); m != nil {
		c.Email = m[1]
	}
	if m := phoneRe.FindStringSubmatch(doc); m != nil {
		c.Phone = collapse(m[1])
	}
	if m := officeRe.FindStringSubmatch(doc); m != nil {
		c.Office = collapse(m[1])
	}
	var hrefs []string
	for _, m := range hrefRe.FindAllStringSubmatch(doc, -1) {
		hrefs = append(hrefs, m[1])
	}
	c.Links = classifyLinks(hrefs)
	return c
}

// blockItems splits a label block into cleaned, non-empty bullet items.
func blockItems(block string) []string {
	var items []string
	for _, chunk := range brRe.Split(block, -1) {
		if item := cleanLine(plainText(chunk)); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (e *PatternExtractor) education(doc string, diags *Diagnostics) []types.EducationEntry {
	m := e.educationRe.FindStringSubmatch(doc)
	if m == nil {
		diags.Add("education: landmark %q not found", e.landmarks.Education)
		return nil
	}
	var out []types.EducationEntry
	for _, item := range blockItems(m[1]) {
		if entry, ok := e.known.LookupEducation(item); ok {
			out = append(out, entry)
			continue
		}
		if !e.known.Strict && yearRe.MatchString(item) {
			out = append(out, parseEducationLine(item))
			continue
		}
		diags.Add("education: no known record for %q", item)
	}
	return out
}

func (e *PatternExtractor) appointments(doc string, diags *Diagnostics) []types.AppointmentEntry {
	m := e.appointmentsRe.FindStringSubmatch(doc)
	if m == nil {
		diags.Add("appointments: landmark %q not found", e.landmarks.Appointments)
		return nil
	}
	var out []types.AppointmentEntry
	for _, item := range blockItems(m[1]) {
		if entry, ok := e.known.LookupAppointment(item); ok {
			out = append(out, entry)
			continue
		}
		if !e.known.Strict && yearRe.MatchString(item) {
			out = append(out, parseAppointmentLine(item))
			continue
		}
		diags.Add("appointments: no known record for %q", item)
	}
	return out
}

func (e *PatternExtractor) publications(doc string, diags *Diagnostics) []types.Publication {
	m := e.publicationsRe.FindStringSubmatch(doc)
	if m == nil {
		diags.Add("publications: list #%s not found", e.landmarks.PublicationsList)
		return nil
	}
	var out []types.Publication
	for _, li := range liRe.FindAllStringSubmatch(m[1], -1) {
		inner := strings.TrimSpace(li[1])
		out = append(out, parsePublication(inner, plainText(inner)))
	}
	return out
}

func (e *PatternExtractor) awards(doc string, diags *Diagnostics) []types.Award {
	m := e.awardsRe.FindStringSubmatch(doc)
	if m == nil {
		diags.Add("awards: heading %q not found", e.landmarks.Awards)
		return nil
	}
	var out []types.Award
	for _, li := range liRe.FindAllStringSubmatch(m[1], -1) {
		inner := strings.TrimSpace(li[1])
		out = append(out, parseAward(inner, plainText(inner)))
	}
	return out
}
