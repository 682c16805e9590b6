// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// SectionLocator finds a paragraph-style section by the text node holding
// its landmark, walks up to the enclosing element, and returns the text
// lines beneath it that look like entries.
type SectionLocator struct {
	// Name labels the section in diagnostics.
	Name string

	// Landmark is the text a node must contain (e.g. "Education:").
	Landmark string

	// Ancestor is the selector of the element that encloses the section.
	// When no ancestor matches, the grandparent of the landmark is used.
	Ancestor string

	// StopAt is the tag that opens the next section inside the same
	// ancestor (e.g. "strong"). Only a StopAt element that reads as a
	// section label ends the section: its text ends in ":" or equals one of
	// Labels. Empty means read to the end of the ancestor.
	StopAt string

	// Labels are the other section landmarks that may share the ancestor.
	Labels []string

	// Keep selects the lines that carry an entry.
	Keep *regexp.Regexp
}

// Lines returns the kept lines of the section, bullets removed, and whether
// the landmark was found at all.
func (l SectionLocator) Lines(doc *goquery.Document) ([]string, bool) {
	label := findTextNode(doc.Nodes[0], l.Landmark)
	if label == nil || label.Parent == nil {
		return nil, false
	}

	sel := doc.FindNodes(label.Parent)
	container := sel.Closest(l.Ancestor)
	if container.Length() == 0 {
		container = sel.Parent()
	}
	if container.Length() == 0 {
		return nil, false
	}

	var (
		lines   []string
		cur     strings.Builder
		started bool
	)
	flush := func() {
		line := cleanLine(cur.String())
		cur.Reset()
		if line != "" && (l.Keep == nil || l.Keep.MatchString(line)) {
			lines = append(lines, line)
		}
	}
	walk(container.Nodes[0], func(n *html.Node) bool {
		if n == label {
			started = true
			return true
		}
		if !started {
			return true
		}
		switch n.Type {
		case html.ElementNode:
			if l.StopAt != "" && n.Data == l.StopAt && l.isLabel(n) {
				return false
			}
			if breaksLine[n.Data] {
				flush()
			}
		case html.TextNode:
			parts := strings.Split(n.Data, "\n")
			for i, part := range parts {
				cur.WriteString(part)
				if i < len(parts)-1 {
					flush()
				}
			}
		}
		return true
	})
	flush()
	return lines, true
}

// breaksLine lists the elements that end the entry line being collected.
// Inline markup such as <strong> or <em> stays part of the line.
var breaksLine = map[string]bool{
	"br": true, "p": true, "div": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func (l SectionLocator) isLabel(n *html.Node) bool {
	text := collapse(strings.Join(textLines(n), " "))
	if strings.HasSuffix(text, ":") {
		return true
	}
	for _, label := range l.Labels {
		if label != "" && text == strings.TrimSpace(label) {
			return true
		}
	}
	return false
}

// ListLocator finds a list element, either directly by selector or as the
// first <ul> following a heading whose text contains a landmark.
type ListLocator struct {
	// Name labels the list in diagnostics.
	Name string

	// Selector locates the list element directly (e.g. `ul[id="publications-list"]`).
	Selector string

	// Heading is the landmark text used when Selector is empty.
	Heading string

	// HeadingTags is the selector of candidate headings (e.g. "h2, h3").
	HeadingTags string
}

// Items returns the <li> elements of the located list and whether the list
// was found.
func (l ListLocator) Items(doc *goquery.Document) (*goquery.Selection, bool) {
	var list *goquery.Selection
	if l.Selector != "" {
		list = doc.Find(l.Selector).First()
	} else {
		doc.Find(l.HeadingTags).EachWithBreak(func(_ int, h *goquery.Selection) bool {
			if !strings.Contains(h.Text(), l.Heading) {
				return true
			}
			if n := nextElement(h.Nodes[0], "ul"); n != nil {
				list = doc.FindNodes(n)
			}
			return false
		})
	}
	if list == nil || list.Length() == 0 {
		return nil, false
	}
	return list.Find("li"), true
}

// walk visits n and its descendants in document order. Returning false
// from visit stops the whole walk.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

// findTextNode returns the first text node under root containing s,
// skipping script and style content.
func findTextNode(root *html.Node, s string) *html.Node {
	if s == "" {
		return nil
	}
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.TextNode && strings.Contains(n.Data, s) && !inRawText(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

func inRawText(n *html.Node) bool {
	p := n.Parent
	return p != nil && p.Type == html.ElementNode && (p.Data == "script" || p.Data == "style")
}

// nextElement returns the first element named tag that follows n in
// document order.
func nextElement(n *html.Node, tag string) *html.Node {
	for cur := following(n); cur != nil; cur = following(cur) {
		if cur.Type == html.ElementNode && cur.Data == tag {
			return cur
		}
	}
	return nil
}

func following(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

// textLines returns every non-empty line of text under n.
func textLines(n *html.Node) []string {
	var lines []string
	walk(n, func(c *html.Node) bool {
		if c.Type != html.TextNode || inRawText(c) {
			return true
		}
		for _, raw := range strings.Split(c.Data, "\n") {
			if s := strings.TrimSpace(raw); s != "" {
				lines = append(lines, s)
			}
		}
		return true
	})
	return lines
}
