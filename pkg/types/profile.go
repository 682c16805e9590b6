// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the homepage pipelines.
// Profile records are produced once by an extractor, consumed once by a
// renderer, and never mutated in between.
//
// See docs/ARCHITECTURE § Data Model.
package types

import "strconv"

// Sentinel values substituted when a field cannot be extracted.
const (
	Unknown             = "Unknown"
	UnknownTitle        = "Unknown Title"
	UnknownJournal      = "Unknown Journal"
	UnknownAuthors      = "Unknown Authors"
	UnknownAward        = "Unknown Award"
	UnknownOrganization = "Unknown Organization"
)

// Year is a best-effort publication or award year: either four digits or
// the sentinel "Unknown".
type Year string

// UnknownYear is the Year sentinel.
const UnknownYear Year = Unknown

// Int returns the numeric year and whether the value is numeric.
func (y Year) Int() (int, bool) {
	n, err := strconv.Atoi(string(y))
	if err != nil {
		return 0, false
	}
	return n, true
}

// MarshalYAML writes numeric years as YAML integers and anything else as a
// string, matching the layout of Jekyll data files.
func (y Year) MarshalYAML() (any, error) {
	if n, ok := y.Int(); ok {
		return n, nil
	}
	return string(y), nil
}

// Links holds the academic profile links found on the homepage.
type Links struct {
	Scholar  string `json:"scholar,omitempty" yaml:"scholar,omitempty" mapstructure:"scholar"`
	GitHub   string `json:"github,omitempty" yaml:"github,omitempty" mapstructure:"github"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty" mapstructure:"linkedin"`
}

// ContactInfo holds personal and contact details for the page header.
type ContactInfo struct {
	Name     string `json:"name" yaml:"name" mapstructure:"name"`
	Title    string `json:"title" yaml:"title" mapstructure:"title"`
	Email    string `json:"email" yaml:"email" mapstructure:"email"`
	Phone    string `json:"phone" yaml:"phone" mapstructure:"phone"`
	Office   string `json:"office" yaml:"office" mapstructure:"office"`
	Location string `json:"location" yaml:"location" mapstructure:"location"`
	Website  string `json:"website" yaml:"website" mapstructure:"website"`

	// Affiliation lists the organisation lines printed under the title
	// (e.g. center, then university).
	Affiliation []string `json:"affiliation,omitempty" yaml:"affiliation,omitempty" mapstructure:"affiliation"`

	Links Links `json:"links" yaml:"links" mapstructure:"links"`
}

// WithFallback returns c with every empty field taken from fb.
func (c ContactInfo) WithFallback(fb ContactInfo) ContactInfo {
	pick := func(v, def string) string {
		if v != "" {
			return v
		}
		return def
	}
	out := ContactInfo{
		Name:     pick(c.Name, fb.Name),
		Title:    pick(c.Title, fb.Title),
		Email:    pick(c.Email, fb.Email),
		Phone:    pick(c.Phone, fb.Phone),
		Office:   pick(c.Office, fb.Office),
		Location: pick(c.Location, fb.Location),
		Website:  pick(c.Website, fb.Website),
		Links: Links{
			Scholar:  pick(c.Links.Scholar, fb.Links.Scholar),
			GitHub:   pick(c.Links.GitHub, fb.Links.GitHub),
			LinkedIn: pick(c.Links.LinkedIn, fb.Links.LinkedIn),
		},
	}
	out.Affiliation = c.Affiliation
	if len(out.Affiliation) == 0 {
		out.Affiliation = fb.Affiliation
	}
	return out
}

// EducationEntry is one degree line.
type EducationEntry struct {
	Degree      string `json:"degree" yaml:"degree" mapstructure:"degree"`
	Institution string `json:"institution" yaml:"institution" mapstructure:"institution"`
	Period      string `json:"period" yaml:"period" mapstructure:"period"`
	Location    string `json:"location" yaml:"location" mapstructure:"location"`
}

// AppointmentEntry is one position line.
type AppointmentEntry struct {
	Position    string `json:"position" yaml:"position" mapstructure:"position"`
	Institution string `json:"institution" yaml:"institution" mapstructure:"institution"`
	Period      string `json:"period" yaml:"period" mapstructure:"period"`
	Location    string `json:"location" yaml:"location" mapstructure:"location"`
}

// Publication is one citation from the homepage publication list.
type Publication struct {
	Year    Year   `json:"year" yaml:"year"`
	Title   string `json:"title" yaml:"title"`
	Journal string `json:"journal" yaml:"journal"`
	Authors string `json:"authors" yaml:"authors"`

	// Markup is the inner HTML of the list item, kept so bold and emphasis
	// survive into the CV.
	Markup string `json:"markup,omitempty" yaml:"markup,omitempty"`

	// Text is the whitespace-collapsed plain text of the citation.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Award is one grant or award line.
type Award struct {
	Year         Year   `json:"year" yaml:"year"`
	Name         string `json:"name" yaml:"name"`
	Organization string `json:"organization" yaml:"organization"`

	// Text is the undifferentiated line as it appears on the page.
	Text string `json:"text" yaml:"text"`
}

// Profile is the full record set extracted from one homepage.
type Profile struct {
	Contact      ContactInfo        `json:"contact" yaml:"contact"`
	Education    []EducationEntry   `json:"education" yaml:"education"`
	Appointments []AppointmentEntry `json:"appointments" yaml:"appointments"`
	Publications []Publication      `json:"publications" yaml:"publications"`
	Awards       []Award            `json:"awards" yaml:"awards"`
}
