// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/pdiddy/homepage/pkg/types"
)

// CVSection names one section of the CV page and the class carried by
// each of its items.
type CVSection struct {
	Key     string
	Heading string
	Class   string
}

// CVSections lists the CV sections in page order. The writer's inspection
// of an existing cv.html looks for the same headings and classes.
var CVSections = []CVSection{
	{Key: "education", Heading: "Education", Class: "education-item"},
	{Key: "appointments", Heading: "Academic Appointments", Class: "appointment-item"},
	{Key: "publications", Heading: "Publications", Class: "publication-item"},
	{Key: "awards", Heading: "Grants & Awards", Class: "award-item"},
}

func cvSection(key string) (CVSection, error) {
	for _, s := range CVSections {
		if s.Key == key {
			return s, nil
		}
	}
	return CVSection{}, fmt.Errorf("unknown CV section %q", key)
}

var cvTemplate = template.Must(
	template.New("cv.html.tmpl").Funcs(template.FuncMap{
		"known":   known,
		"year":    yearOf,
		"markup":  trustedMarkup,
		"section": cvSection,
	}).ParseFS(templates, "templates/cv.html.tmpl"),
)

// cvPage is the data passed to the CV template.
type cvPage struct {
	types.Profile
	CSS     template.CSS
	Updated string
}

// trustedMarkup marks publication markup as safe HTML. The markup is the
// inner HTML of a list item on the owner's own homepage.
func trustedMarkup(s string) template.HTML {
	return template.HTML(s)
}

// CV renders the curriculum vitae page for p.
func CV(p types.Profile, opts Options) ([]byte, error) {
	css, err := templates.ReadFile("templates/cv.css")
	if err != nil {
		return nil, fmt.Errorf("loading CV stylesheet: %w", err)
	}

	page := cvPage{Profile: p, CSS: template.CSS(css)}
	if !opts.Now.IsZero() {
		page.Updated = opts.Now.Format("January 2006")
	}

	var buf bytes.Buffer
	if err := cvTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("rendering CV: %w", err)
	}
	return buf.Bytes(), nil
}
