// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes the stages into the two document runs:
// load the homepage, extract the profile, render the document, inspect the
// previous file, and write the new one. Each run reads one file and writes
// one file; a failure before the write leaves the previous output intact.
//
// See docs/ARCHITECTURE § Pipeline.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/homepage/internal/extract"
	"github.com/pdiddy/homepage/internal/output"
	"github.com/pdiddy/homepage/internal/render"
	"github.com/pdiddy/homepage/internal/source"
	"github.com/pdiddy/homepage/pkg/types"
)

// StampLayout is the layout of types.Config.Stamp.
const StampLayout = "2006-01-02"

// now returns the generation time when no stamp is configured. Tests
// override it.
var now = time.Now

// Result holds the outcome of one pipeline run.
type Result struct {
	// Output is the path written.
	Output string

	// Strategy is the extractor that read the homepage.
	Strategy string

	Profile     types.Profile
	Diagnostics extract.Diagnostics

	// Previous describes the file that was replaced.
	Previous output.Inspection

	// Bytes is the size of the written document.
	Bytes int
}

// document binds one output shape to its renderer and inspector.
type document struct {
	name    string
	path    string
	render  func(types.Profile, render.Options) ([]byte, error)
	inspect func(string) (output.Inspection, error)
}

// RunCV regenerates the CV page at cfg.CVOutput.
func RunCV(cfg types.Config, w io.Writer) (Result, error) {
	return run(cfg, document{
		name:    "CV",
		path:    cfg.CVOutput,
		render:  render.CV,
		inspect: output.InspectCV,
	}, w)
}

// RunREADME regenerates the README at cfg.ReadmeOutput.
func RunREADME(cfg types.Config, w io.Writer) (Result, error) {
	return run(cfg, document{
		name:    "README",
		path:    cfg.ReadmeOutput,
		render:  render.README,
		inspect: output.InspectREADME,
	}, w)
}

func run(cfg types.Config, doc document, w io.Writer) (Result, error) {
	if doc.path == "" {
		return Result{}, fmt.Errorf("no output path configured for %s", doc.name)
	}
	stamp, err := GenerationTime(cfg)
	if err != nil {
		return Result{}, err
	}

	fmt.Fprintf(w, "Generating %s from %s...\n", doc.name, cfg.Source)

	text, err := source.Load(cfg.Source)
	if err != nil {
		return Result{}, err
	}

	ex, err := extract.New(cfg)
	if err != nil {
		return Result{}, err
	}
	extracted, err := ex.Extract(text)
	if err != nil {
		return Result{}, fmt.Errorf("extracting %s: %w", cfg.Source, err)
	}
	for _, d := range extracted.Diagnostics {
		fmt.Fprintf(w, "warning: %s\n", d)
	}

	p := extracted.Profile
	fmt.Fprintf(w, "Extracted (%s): %d education, %d appointments, %d publications, %d awards\n",
		ex.Name(), len(p.Education), len(p.Appointments), len(p.Publications), len(p.Awards))

	rendered, err := doc.render(p, render.Options{Now: stamp, Readme: cfg.Readme})
	if err != nil {
		return Result{}, err
	}

	prev, err := doc.inspect(doc.path)
	if err != nil {
		fmt.Fprintf(w, "warning: %v\n", err)
	} else {
		fmt.Fprintf(w, "%s: %s\n", doc.path, prev)
	}

	if err := output.Write(doc.path, rendered); err != nil {
		return Result{}, err
	}
	fmt.Fprintf(w, "Successfully generated %s\n", doc.path)

	return Result{
		Output:      doc.path,
		Strategy:    ex.Name(),
		Profile:     p,
		Diagnostics: extracted.Diagnostics,
		Previous:    prev,
		Bytes:       len(rendered),
	}, nil
}

// GenerationTime returns the date printed in generated documents: the
// configured stamp when set, otherwise the current time.
func GenerationTime(cfg types.Config) (time.Time, error) {
	if cfg.Stamp == "" {
		return now(), nil
	}
	t, err := time.Parse(StampLayout, cfg.Stamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stamp %q (want YYYY-MM-DD): %w", cfg.Stamp, err)
	}
	return t, nil
}
