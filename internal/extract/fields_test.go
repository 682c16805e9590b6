// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/homepage/pkg/types"
)

// --- parsePublication ---

func TestParsePublication(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   types.Publication
	}{
		{
			name:   "unlinked title before journal",
			markup: `Author, A. (2024). Title. <em>Journal</em>.`,
			want: types.Publication{
				Year:    "2024",
				Title:   "Title",
				Journal: "Journal",
				Authors: "Author, A.",
			},
		},
		{
			name:   "linked title with bold author",
			markup: `<b>Yang, Y.</b>, &amp; Yuan, M. (2023). <a href="https://doi.org/x">Mapping Access</a> <em>Cartography &amp; GIS</em>, 4(2), 1-9.`,
			want: types.Publication{
				Year:    "2023",
				Title:   "Mapping Access",
				Journal: "Cartography & GIS",
				Authors: "Yang, Y., & Yuan, M.",
			},
		},
		{
			name:   "no year",
			markup: `Author, A. In press. <em>Journal</em>.`,
			want: types.Publication{
				Year:    types.UnknownYear,
				Title:   types.UnknownTitle,
				Journal: "Journal",
				Authors: "Author, A. In press. Journal.",
			},
		},
		{
			name:   "no journal",
			markup: `Author, A. (2020). A working paper. Mimeo.`,
			want: types.Publication{
				Year:    "2020",
				Title:   "A working paper",
				Journal: types.UnknownJournal,
				Authors: "Author, A.",
			},
		},
		{
			name:   "empty item",
			markup: ``,
			want: types.Publication{
				Year:    types.UnknownYear,
				Title:   types.UnknownTitle,
				Journal: types.UnknownJournal,
				Authors: types.UnknownAuthors,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePublication(tt.markup, plainText(tt.markup))
			assert.Equal(t, tt.want.Year, got.Year)
			assert.Equal(t, tt.want.Title, got.Title)
			assert.Equal(t, tt.want.Journal, got.Journal)
			assert.Equal(t, tt.want.Authors, got.Authors)
			assert.Equal(t, tt.markup, got.Markup)
		})
	}
}

// --- parseAward ---

func TestParseAward(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		wantYear types.Year
		wantName string
		wantOrg  string
	}{
		{"linked name", `2022 <a href="#">Some Award</a>, Some Org`, "2022", "Some Award", "Some Org"},
		{"plain text", `2022 Some Award, Some Org`, "2022", "Some Award", "Some Org"},
		{"organization keeps later commas", `2019 <a href="#">Travel Grant</a>, AAG, GIS Specialty Group`, "2019", "Travel Grant", "AAG, GIS Specialty Group"},
		{"no organization", `2020 Best Paper`, "2020", "Best Paper", types.UnknownOrganization},
		{"no year", `<a href="#">Fellowship</a>, Foundation`, types.UnknownYear, "Fellowship", "Foundation"},
		{"empty", ``, types.UnknownYear, types.UnknownAward, types.UnknownOrganization},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAward(tt.markup, plainText(tt.markup))
			assert.Equal(t, tt.wantYear, got.Year)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantOrg, got.Organization)
			assert.Equal(t, plainText(tt.markup), got.Text)
		})
	}
}

// --- splitPeriod ---

func TestSplitPeriod(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantPeriod string
		wantRest   string
	}{
		{"leading range with colon", "2019–2024: Ph.D. in GIS, UT Dallas", "2019–2024", "Ph.D. in GIS, UT Dallas"},
		{"present", "2024–Present: Research Associate, WVU", "2024–Present", "Research Associate, WVU"},
		{"single year", "2024: Senior GIS Analyst, City of Dallas", "2024", "Senior GIS Analyst, City of Dallas"},
		{"trailing range", "M.A. in Geography, Binghamton University, 2017 - 2019", "2017 - 2019", "M.A. in Geography, Binghamton University"},
		{"no period", "Visiting Scholar, Somewhere", "", "Visiting Scholar, Somewhere"},
		{"parenthesized range", "Ph.D. in GIS (2019–2024), UT Dallas", "2019–2024", "Ph.D. in GIS, UT Dallas"},
		{"trailing parenthesized year", "Senior GIS Analyst, City of Dallas (2024)", "2024", "Senior GIS Analyst, City of Dallas"},
		{"bracketed range", "M.A. in Geography [2017–2019], Binghamton University", "2017–2019", "M.A. in Geography, Binghamton University"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, rest := splitPeriod(tt.line)
			assert.Equal(t, tt.wantPeriod, period)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestParseEducationLine(t *testing.T) {
	got := parseEducationLine("2019–2024: Ph.D. in Geospatial Information Sciences, University of Texas at Dallas")
	assert.Equal(t, types.EducationEntry{
		Degree:      "Ph.D. in Geospatial Information Sciences",
		Institution: "University of Texas at Dallas",
		Period:      "2019–2024",
	}, got)
}

func TestParseAppointmentLine(t *testing.T) {
	tests := []struct {
		line string
		want types.AppointmentEntry
	}{
		{
			"2024–Present: Research Associate, GIS Programmer, West Virginia GIS Technical Center",
			types.AppointmentEntry{Position: "Research Associate, GIS Programmer", Institution: "West Virginia GIS Technical Center", Period: "2024–Present"},
		},
		{
			"2023: Intern",
			types.AppointmentEntry{Position: "Intern", Period: "2023"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAppointmentLine(tt.line))
		})
	}
}

func TestParseEducationLine_ParenthesizedPeriod(t *testing.T) {
	got := parseEducationLine("Ph.D. in GIS (2019–2024), UT Dallas")
	assert.Equal(t, types.EducationEntry{Degree: "Ph.D. in GIS", Institution: "UT Dallas", Period: "2019–2024"}, got)
}

func TestCleanLine(t *testing.T) {
	assert.Equal(t, "2019–2024: Ph.D.", cleanLine("  •   2019–2024:\tPh.D.  "))
	assert.Equal(t, "2019", cleanLine("&bull; 2019"))
	assert.Equal(t, "", cleanLine(" • "))
}

func TestClassifyLinks(t *testing.T) {
	got := classifyLinks([]string{
		"mailto:a@b.c",
		"https://github.com/first",
		"https://scholar.google.com/citations?user=x",
		"https://github.com/second",
		"https://www.linkedin.com/in/someone",
	})
	assert.Equal(t, types.Links{
		Scholar:  "https://scholar.google.com/citations?user=x",
		GitHub:   "https://github.com/second",
		LinkedIn: "https://www.linkedin.com/in/someone",
	}, got)
}
