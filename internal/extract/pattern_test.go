// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/homepage/pkg/types"
)

var (
	phdRecord = types.EducationEntry{
		Degree:      "Ph.D. in Geospatial Information Sciences",
		Institution: "The University of Texas at Dallas",
		Period:      "2019 – 2024",
		Location:    "Richardson, TX",
	}
	wvRecord = types.AppointmentEntry{
		Position:    "Research Associate & GIS Programmer",
		Institution: "West Virginia GIS Technical Center, West Virginia University",
		Period:      "2024 – Present",
		Location:    "Morgantown, WV",
	}
)

func knownConfig(strict bool) types.Config {
	cfg := types.DefaultConfig()
	cfg.Strategy = types.StrategyPattern
	cfg.KnownRecords = types.KnownRecords{
		Strict: strict,
		Education: []types.KnownEducation{
			{Match: []string{"Ph.D.", "Texas at Dallas"}, Entry: phdRecord},
		},
		Appointments: []types.KnownAppointment{
			{Match: []string{"Research Associate", "West Virginia"}, Entry: wvRecord},
		},
	}
	return cfg
}

func TestPatternExtractor_StrictSubstitution(t *testing.T) {
	res, err := NewPatternExtractor(knownConfig(true)).Extract(readFixture(t, "homepage.html"))
	require.NoError(t, err)

	assert.Equal(t, []types.EducationEntry{phdRecord}, res.Profile.Education)
	assert.Equal(t, []types.AppointmentEntry{wvRecord}, res.Profile.Appointments)

	// The unmatched M.A. and Senior GIS Analyst lines are reported, not emitted.
	require.Len(t, res.Diagnostics, 2)
	assert.Contains(t, res.Diagnostics[0], "M.A. in Geography")
	assert.Contains(t, res.Diagnostics[1], "Senior GIS Analyst")
}

func TestPatternExtractor_LenientFallsBackToLiteral(t *testing.T) {
	res, err := NewPatternExtractor(knownConfig(false)).Extract(readFixture(t, "homepage.html"))
	require.NoError(t, err)

	assert.Equal(t, []types.EducationEntry{
		phdRecord,
		{Degree: "M.A. in Geography", Institution: "Binghamton University", Period: "2017–2019"},
	}, res.Profile.Education)
	assert.Equal(t, []types.AppointmentEntry{
		wvRecord,
		{Position: "Senior GIS Analyst", Institution: "City of Dallas", Period: "2024"},
	}, res.Profile.Appointments)
	assert.Empty(t, res.Diagnostics)
}

func TestPatternExtractor_EmptyTableDropsEverything(t *testing.T) {
	cfg := types.DefaultConfig()
	res, err := NewPatternExtractor(cfg).Extract(readFixture(t, "homepage.html"))
	require.NoError(t, err)

	assert.Empty(t, res.Profile.Education)
	assert.Empty(t, res.Profile.Appointments)
	assert.Len(t, res.Diagnostics, 4)
}

func TestPatternExtractor_EscapedAwardsHeading(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"escaped", `<h3>Grants &amp; Awards</h3><ul><li>2022 <a href="#">Some Award</a>, Some Org</li></ul>`},
		{"literal", `<h2 class="section">Grants & Awards</h2>
			<ul class="awards">
				<li>2022 <a href="#">Some Award</a>, Some Org</li>
			</ul>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewPatternExtractor(types.DefaultConfig()).Extract(tt.doc)
			require.NoError(t, err)
			require.Len(t, res.Profile.Awards, 1)
			assert.Equal(t, types.Year("2022"), res.Profile.Awards[0].Year)
			assert.Equal(t, "Some Award", res.Profile.Awards[0].Name)
			assert.Equal(t, "Some Org", res.Profile.Awards[0].Organization)
		})
	}
}

func TestPatternExtractor_CustomLandmarks(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Landmarks.PublicationsList = "pubs"
	cfg.Landmarks.Education = "Degrees:"
	cfg.KnownRecords.Strict = false

	doc := `<p><strong>Degrees:</strong><br/>2010–2014: B.S. in Math, State U</p>
		<ul id="pubs"><li>Author, A. (2024). Title. <em>Journal</em>.</li></ul>`
	res, err := NewPatternExtractor(cfg).Extract(doc)
	require.NoError(t, err)

	require.Len(t, res.Profile.Education, 1)
	assert.Equal(t, "B.S. in Math", res.Profile.Education[0].Degree)
	require.Len(t, res.Profile.Publications, 1)
	assert.Equal(t, "Journal", res.Profile.Publications[0].Journal)
}

func TestKnownRecordLookup(t *testing.T) {
	k := knownConfig(true).KnownRecords

	got, ok := k.LookupEducation("2019–2024: Ph.D. in GIS, University of Texas at Dallas")
	assert.True(t, ok)
	assert.Equal(t, phdRecord, got)

	_, ok = k.LookupEducation("2019–2024: Ph.D. in GIS, Elsewhere")
	assert.False(t, ok, "every match string must occur")

	empty := types.KnownRecords{Education: []types.KnownEducation{{Entry: phdRecord}}}
	_, ok = empty.LookupEducation("anything")
	assert.False(t, ok, "a rule with no match strings never matches")
}

func sampleKnownRecords(t *testing.T) types.KnownRecords {
	t.Helper()
	data, err := os.ReadFile("../../homepage.yaml")
	require.NoError(t, err)
	var file struct {
		KnownRecords types.KnownRecords `yaml:"known_records"`
	}
	require.NoError(t, yaml.Unmarshal(data, &file))
	return file.KnownRecords
}

// The shipped table reproduces the CV records of the homepage it was
// written for, item by item.
func TestSampleConfig_KnownRecords(t *testing.T) {
	k := sampleKnownRecords(t)
	assert.True(t, k.Strict)

	education := []struct {
		item string
		want types.EducationEntry
	}{
		{"2019–2024: Ph.D. in Geospatial Information Sciences, University of Texas at Dallas", types.EducationEntry{
			Degree: "Ph.D. in Geospatial Information Sciences", Institution: "University of Texas at Dallas",
			Period: "2019–2024", Location: "Texas, USA",
		}},
		{"2017–2019: M.A. in Geography, Binghamton University (SUNY)", types.EducationEntry{
			Degree: "M.A. in Geography", Institution: "Binghamton University (SUNY)",
			Period: "2017–2019", Location: "New York, USA",
		}},
		{"2013–2017: B.S. in Geographic Information Science, Yunnan University", types.EducationEntry{
			Degree: "B.S. in Geographic Information Science", Institution: "Yunnan University",
			Period: "2013–2017", Location: "Yunnan, China",
		}},
		// Only the degree marker decides; the institution text is not checked.
		{"2019–2024: Ph.D. in GIS, UTD", types.EducationEntry{
			Degree: "Ph.D. in Geospatial Information Sciences", Institution: "University of Texas at Dallas",
			Period: "2019–2024", Location: "Texas, USA",
		}},
	}
	for _, tt := range education {
		t.Run(tt.item, func(t *testing.T) {
			got, ok := k.LookupEducation(tt.item)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	appointments := []struct {
		item string
		want types.AppointmentEntry
	}{
		{"2024–Present: Research Associate, GIS Programmer, West Virginia GIS Technical Center", types.AppointmentEntry{
			Position: "Research Associate, GIS Programmer", Institution: "West Virginia GIS Technical Center",
			Period: "2024–Present", Location: "West Virginia University",
		}},
		{"2024: Senior GIS Analyst, City of Dallas", types.AppointmentEntry{
			Position: "Senior GIS Analyst", Institution: "City of Dallas",
			Period: "2024", Location: "Dallas, TX",
		}},
		{"2021–2024: GIS Administrator, GAIA Lab, UT Dallas", types.AppointmentEntry{
			Position: "GIS Administrator", Institution: "GAIA Lab, UT Dallas",
			Period: "2021–2024", Location: "University of Texas at Dallas",
		}},
		{"2019–2024: Teaching Assistant, Department of GIScience, UT Dallas", types.AppointmentEntry{
			Position: "Teaching Assistant", Institution: "Department of GIScience, UT Dallas",
			Period: "2019–2024", Location: "University of Texas at Dallas",
		}},
		{"2018–2019: Teaching Assistant, Department of Geography, Binghamton University (SUNY)", types.AppointmentEntry{
			Position: "Teaching Assistant", Institution: "Department of Geography, Binghamton University (SUNY)",
			Period: "2018–2019", Location: "Binghamton University",
		}},
	}
	for _, tt := range appointments {
		t.Run(tt.item, func(t *testing.T) {
			got, ok := k.LookupAppointment(tt.item)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := k.LookupAppointment("2016: Teaching Assistant, Elsewhere")
	assert.False(t, ok, "a teaching assistant item must name its department's university")
}
