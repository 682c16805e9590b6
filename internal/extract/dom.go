// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/homepage/pkg/types"
)

// DOMExtractor parses the homepage and reads each section through a
// declarative locator. Education and appointments are emitted as the
// literal parsed text; no substitution table is involved.
type DOMExtractor struct {
	fallbacks    types.ContactInfo
	titleKeyword string

	education    SectionLocator
	appointments SectionLocator
	publications ListLocator
	awards       ListLocator
}

// NewDOMExtractor builds the section locators for the configured landmarks.
func NewDOMExtractor(cfg types.Config) *DOMExtractor {
	lm := cfg.Landmarks
	labels := []string{lm.Education, lm.Appointments}
	return &DOMExtractor{
		fallbacks:    cfg.Fallbacks,
		titleKeyword: lm.TitleKeyword,
		education: SectionLocator{
			Name:     "education",
			Landmark: lm.Education,
			Ancestor: "p",
			StopAt:   "strong",
			Labels:   labels,
			Keep:     yearRe,
		},
		appointments: SectionLocator{
			Name:     "appointments",
			Landmark: lm.Appointments,
			Ancestor: "p",
			StopAt:   "strong",
			Labels:   labels,
			Keep:     yearRe,
		},
		publications: ListLocator{
			Name:     "publications",
			Selector: fmt.Sprintf(`ul[id=%q]`, lm.PublicationsList),
		},
		awards: ListLocator{
			Name:        "awards",
			Heading:     lm.Awards,
			HeadingTags: "h2, h3",
		},
	}
}

// Name returns the strategy identifier.
func (e *DOMExtractor) Name() string { return string(types.StrategyDOM) }

// Extract parses doc and runs every locator over it.
func (e *DOMExtractor) Extract(doc string) (Result, error) {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return Result{}, fmt.Errorf("parsing document: %w", err)
	}

	var res Result
	res.Profile.Contact = e.contact(d).WithFallback(e.fallbacks)

	if lines, ok := e.education.Lines(d); ok {
		for _, line := range lines {
			res.Profile.Education = append(res.Profile.Education, parseEducationLine(line))
		}
	} else {
		res.Diagnostics.Add("%s: landmark %q not found", e.education.Name, e.education.Landmark)
	}

	if lines, ok := e.appointments.Lines(d); ok {
		for _, line := range lines {
			res.Profile.Appointments = append(res.Profile.Appointments, parseAppointmentLine(line))
		}
	} else {
		res.Diagnostics.Add("%s: landmark %q not found", e.appointments.Name, e.appointments.Landmark)
	}

	if items, ok := e.publications.Items(d); ok {
		items.Each(func(_ int, li *goquery.Selection) {
			markup, _ := li.Html()
			markup = strings.TrimSpace(markup)
			pub := parsePublication(markup, plainText(markup))
			pub.Markup = markup
			res.Profile.Publications = append(res.Profile.Publications, pub)
		})
	} else {
		res.Diagnostics.Add("%s: list %s not found", e.publications.Name, e.publications.Selector)
	}

	if items, ok := e.awards.Items(d); ok {
		items.Each(func(_ int, li *goquery.Selection) {
			markup, _ := li.Html()
			markup = strings.TrimSpace(markup)
			res.Profile.Awards = append(res.Profile.Awards, parseAward(markup, plainText(markup)))
		})
	} else {
		res.Diagnostics.Add("%s: heading %q not found", e.awards.Name, e.awards.Heading)
	}

	return res, nil
}

func (e *DOMExtractor) contact(d *goquery.Document) types.ContactInfo {
	var c types.ContactInfo

	d.Find("h4").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		text := collapse(h.Text())
		switch {
		case text == "":
		case e.titleKeyword != "" && strings.Contains(text, e.titleKeyword):
			if c.Title == "" {
				c.Title = text
			}
		case c.Name == "" && h.Children().Length() == 0 && len(h.Nodes[0].Attr) == 0:
			c.Name = text
		}
		return c.Name == "" || c.Title == ""
	})

	if href, ok := d.Find(`a[href^="mailto:"]`).First().Attr("href"); ok {
		c.Email = strings.TrimPrefix(href, "mailto:")
	}

	for _, line := range textLines(d.Nodes[0]) {
		if v, ok := strings.CutPrefix(line, "Phone:"); ok && c.Phone == "" {
			c.Phone = strings.TrimSpace(v)
		}
		if v, ok := strings.CutPrefix(line, "Office:"); ok && c.Office == "" {
			c.Office = strings.TrimSpace(v)
		}
	}

	var hrefs []string
	d.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		hrefs = append(hrefs, a.AttrOr("href", ""))
	})
	c.Links = classifyLinks(hrefs)
	return c
}
