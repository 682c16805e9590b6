// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/homepage/internal/render"
)

// Section is one known section found in an existing document.
type Section struct {
	Heading string
	Items   int
}

// Inspection describes an existing output file before it is replaced.
type Inspection struct {
	// Exists is false when there was no previous file.
	Exists bool

	// Sections lists the known sections present, in document order.
	Sections []Section
}

// Headings returns the headings of the sections found.
func (in Inspection) Headings() []string {
	out := make([]string, 0, len(in.Sections))
	for _, s := range in.Sections {
		out = append(out, s.Heading)
	}
	return out
}

// String summarises the inspection for progress output.
func (in Inspection) String() string {
	if !in.Exists {
		return "no previous file"
	}
	if len(in.Sections) == 0 {
		return "previous file has no known sections"
	}
	parts := make([]string, 0, len(in.Sections))
	for _, s := range in.Sections {
		parts = append(parts, fmt.Sprintf("%s (%d)", s.Heading, s.Items))
	}
	return "previous file had " + strings.Join(parts, ", ")
}

// readExisting returns the file contents, or nil with no error when the
// file does not exist.
func readExisting(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// InspectCV reports which CV sections an existing cv.html contains. A
// section counts as present when its <h2> heading exists; Items is the
// number of elements carrying the section's item class.
func InspectCV(path string) (Inspection, error) {
	data, err := readExisting(path)
	if err != nil || data == nil {
		return Inspection{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return Inspection{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	in := Inspection{Exists: true}
	headings := doc.Find("h2")
	for _, sec := range render.CVSections {
		h := headings.FilterFunction(func(_ int, s *goquery.Selection) bool {
			return strings.TrimSpace(s.Text()) == sec.Heading
		}).First()
		if h.Length() == 0 {
			continue
		}
		scope := h.Closest("section")
		if scope.Length() == 0 {
			scope = doc.Selection
		}
		in.Sections = append(in.Sections, Section{
			Heading: sec.Heading,
			Items:   scope.Find("." + sec.Class).Length(),
		})
	}
	return in, nil
}

// readmeSections are the generated README headings worth reporting.
var readmeSections = map[string]bool{
	render.ReadmeEducation:    true,
	render.ReadmeCurrent:      true,
	render.ReadmeExperience:   true,
	render.ReadmePublications: true,
	render.ReadmeAwards:       true,
}

// InspectREADME reports which generated sections an existing README.md
// contains. It walks the Markdown AST: a section is a level-2 heading and
// Items counts the list items between it and the next heading.
func InspectREADME(path string) (Inspection, error) {
	data, err := readExisting(path)
	if err != nil || data == nil {
		return Inspection{}, err
	}

	root := goldmark.New().Parser().Parse(text.NewReader(data))

	in := Inspection{Exists: true}
	current := -1
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			current = -1
			if node.Level != 2 {
				continue
			}
			heading := nodeText(node, data)
			if readmeSections[heading] {
				in.Sections = append(in.Sections, Section{Heading: heading})
				current = len(in.Sections) - 1
			}
		case *ast.List:
			if current >= 0 {
				in.Sections[current].Items += node.ChildCount()
			}
		}
	}
	return in, nil
}

// nodeText concatenates the text segments beneath n.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
