// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"net/url"
	"path"
	"strings"
	"text/template"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/pdiddy/homepage/pkg/types"
)

// README section headings. The writer's inspection of an existing
// README.md looks for the same level-2 headings.
const (
	ReadmeEducation    = "Education"
	ReadmeCurrent      = "Current Position"
	ReadmeExperience   = "Professional Experience"
	ReadmePublications = "Recent Publications"
	ReadmeAwards       = "Awards & Grants"
)

var readmeTemplate = template.Must(
	template.New("readme.md.tmpl").ParseFS(templates, "templates/readme.md.tmpl"),
)

// readmeData is the data passed to the README template. List entries are
// preformatted Markdown lines.
type readmeData struct {
	Contact types.ContactInfo
	Readme  types.ReadmeConfig

	Education    []string
	Current      string
	Experience   []string
	Publications []string
	Awards       []string

	GitHubUser string
	Year       int
	Stamp      string

	Headings map[string]string
}

// README renders the repository README for p. Publications and awards are
// truncated to the limits in opts.Readme.
func README(p types.Profile, opts Options) ([]byte, error) {
	data := readmeData{
		Contact:    p.Contact,
		Readme:     opts.Readme,
		GitHubUser: githubUser(p.Contact.Links.GitHub),
		Headings: map[string]string{
			"education":    ReadmeEducation,
			"current":      ReadmeCurrent,
			"experience":   ReadmeExperience,
			"publications": ReadmePublications,
			"awards":       ReadmeAwards,
		},
	}
	if !opts.Now.IsZero() {
		data.Year = opts.Now.Year()
		data.Stamp = opts.Now.Format("2006-01-02")
	}

	for _, e := range p.Education {
		data.Education = append(data.Education, educationLine(e))
	}
	for i, a := range p.Appointments {
		if i == 0 {
			data.Current = appointmentLine(a)
			continue
		}
		data.Experience = append(data.Experience, appointmentLine(a))
	}
	for _, pub := range limit(p.Publications, opts.Readme.MaxPublications) {
		data.Publications = append(data.Publications, publicationLine(pub))
	}
	for _, a := range limit(p.Awards, opts.Readme.MaxAwards) {
		data.Awards = append(data.Awards, awardLine(a))
	}

	var buf bytes.Buffer
	if err := readmeTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering README: %w", err)
	}
	return buf.Bytes(), nil
}

// withPeriod appends " (period)" to s when period is set.
func withPeriod(s, period string) string {
	if period == "" {
		return s
	}
	if s == "" {
		return period
	}
	return s + " (" + period + ")"
}

func educationLine(e types.EducationEntry) string {
	return withPeriod(joinNonEmpty(", ", bold(e.Degree), e.Institution, e.Location), e.Period)
}

func appointmentLine(a types.AppointmentEntry) string {
	return withPeriod(joinNonEmpty(", ", bold(a.Position), a.Institution, a.Location), a.Period)
}

// publicationLine converts the citation markup to inline Markdown so bold
// author names, emphasised venues, and links survive. Items without markup
// are assembled from their fields.
func publicationLine(p types.Publication) string {
	if p.Markup != "" {
		if md, err := htmltomarkdown.ConvertString(p.Markup); err == nil {
			if line := strings.Join(strings.Fields(md), " "); line != "" {
				return line
			}
		}
		if p.Text != "" {
			return p.Text
		}
	}
	var b strings.Builder
	if a := known(p.Authors); a != "" {
		b.WriteString(a)
	}
	if y := yearOf(p.Year); y != "" {
		fmt.Fprintf(&b, " (%s).", y)
	}
	if t := known(p.Title); t != "" {
		fmt.Fprintf(&b, " %s.", t)
	}
	if j := known(p.Journal); j != "" {
		fmt.Fprintf(&b, " *%s*.", j)
	}
	return strings.TrimSpace(b.String())
}

func awardLine(a types.Award) string {
	line := joinNonEmpty(", ", bold(known(a.Name)), known(a.Organization))
	if y := yearOf(a.Year); y != "" {
		return joinNonEmpty(" ", y+":", line)
	}
	return line
}

func bold(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return ""
	}
	return "**" + s + "**"
}

// githubUser returns the last path segment of a GitHub profile URL.
func githubUser(profile string) string {
	if profile == "" {
		return ""
	}
	u, err := url.Parse(profile)
	if err != nil {
		return ""
	}
	user := path.Base(strings.TrimRight(u.Path, "/"))
	if user == "." || user == "/" {
		return ""
	}
	return user
}
