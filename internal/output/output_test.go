// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/homepage/internal/render"
	"github.com/pdiddy/homepage/pkg/types"
)

// --- Write ---

func TestWrite_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site", "docs", "cv.html")
	require.NoError(t, Write(path, []byte("<html></html>")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWrite_OverwritesCompletely(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous document\n"), 0o644))

	require.NoError(t, Write(path, []byte("short\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(data))
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(filepath.Join(dir, "cv.html"), []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cv.html", entries[0].Name())
}

func TestWrite_TargetIsDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "cv.html")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0o644))

	err := Write(target, []byte("x"))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file is removed on failure")
}

// --- InspectCV ---

func renderedProfile() types.Profile {
	return types.Profile{
		Education:    []types.EducationEntry{{Degree: "Ph.D.", Period: "2019–2024"}},
		Publications: []types.Publication{{Year: "2023", Title: "A"}, {Year: "2022", Title: "B"}},
		Awards:       []types.Award{{Year: "2021", Name: "Award"}},
	}
}

func TestInspectCV_Missing(t *testing.T) {
	in, err := InspectCV(filepath.Join(t.TempDir(), "cv.html"))
	require.NoError(t, err)
	assert.False(t, in.Exists)
	assert.Equal(t, "no previous file", in.String())
}

func TestInspectCV_RenderedPage(t *testing.T) {
	out, err := render.CV(renderedProfile(), render.Options{Now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "cv.html")
	require.NoError(t, os.WriteFile(path, out, 0o644))

	in, err := InspectCV(path)
	require.NoError(t, err)
	assert.True(t, in.Exists)
	assert.Equal(t, []Section{
		{Heading: "Education", Items: 1},
		{Heading: "Academic Appointments", Items: 0},
		{Heading: "Publications", Items: 2},
		{Heading: "Grants & Awards", Items: 1},
	}, in.Sections)
	assert.Equal(t, "previous file had Education (1), Academic Appointments (0), Publications (2), Grants & Awards (1)", in.String())
}

func TestInspectCV_ForeignPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.html")
	page := `<html><body><h2>Publications</h2><div class="publication-item">x</div><h2>Hobbies</h2></body></html>`
	require.NoError(t, os.WriteFile(path, []byte(page), 0o644))

	in, err := InspectCV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Publications"}, in.Headings())
	assert.Equal(t, 1, in.Sections[0].Items)
}

// --- InspectREADME ---

func TestInspectREADME_RenderedReadme(t *testing.T) {
	p := renderedProfile()
	p.Appointments = []types.AppointmentEntry{{Position: "Now"}, {Position: "Before"}, {Position: "Earlier"}}
	out, err := render.README(p, render.Options{Readme: types.ReadmeConfig{MaxPublications: 1}})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, out, 0o644))

	in, err := InspectREADME(path)
	require.NoError(t, err)
	assert.True(t, in.Exists)
	assert.Equal(t, []Section{
		{Heading: render.ReadmeEducation, Items: 1},
		{Heading: render.ReadmeCurrent, Items: 0},
		{Heading: render.ReadmeExperience, Items: 2},
		{Heading: render.ReadmePublications, Items: 1},
		{Heading: render.ReadmeAwards, Items: 1},
	}, in.Sections)
}

func TestInspectREADME_HandWritten(t *testing.T) {
	md := "# Notes\n\n## Recent Publications\n\n- one\n- two\n\n### Older\n\n- three\n\n## Misc\n\n- x\n"
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte(md), 0o644))

	in, err := InspectREADME(path)
	require.NoError(t, err)
	assert.Equal(t, []Section{{Heading: render.ReadmePublications, Items: 2}}, in.Sections)
}

func TestInspectREADME_Missing(t *testing.T) {
	in, err := InspectREADME(filepath.Join(t.TempDir(), "README.md"))
	require.NoError(t, err)
	assert.False(t, in.Exists)
}
