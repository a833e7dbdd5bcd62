package main

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Entry is a single version section of the changelog.
type Entry struct {
	Version string
	Date    string
	Content string
}

// Changelog is a parsed Keep a Changelog file.
type Changelog struct {
	Entries []Entry
	Links   map[string]string
}

// FindVersion returns the entry for a version, ignoring a leading "v".
func (c *Changelog) FindVersion(version string) *Entry {
	version = strings.TrimPrefix(version, "v")

	for i := range c.Entries {
		if strings.TrimPrefix(c.Entries[i].Version, "v") == version {
			return &c.Entries[i]
		}
	}
	return nil
}

// section is an h2 heading with the source offsets needed to slice out
// the body that follows it.
type section struct {
	version string
	date    string
	start   int // offset of the heading itself
	body    int // offset just past the heading line
}

// Parse parses a Keep a Changelog formatted markdown file. Each level-2
// heading starts a version entry; everything up to the next level-2
// heading is that entry's content.
func Parse(source []byte) (*Changelog, error) {
	md := goldmark.New()
	ctx := parser.NewContext()
	doc := md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	changelog := &Changelog{Links: make(map[string]string)}
	for _, ref := range ctx.References() {
		changelog.Links[string(ref.Label())] = string(ref.Destination())
	}

	sections := collectSections(doc, source)

	for i, s := range sections {
		end := len(source)
		if i+1 < len(sections) {
			end = sections[i+1].start
		}

		content := ""
		if s.body < end {
			content = strings.TrimSpace(string(source[s.body:end]))
		}

		changelog.Entries = append(changelog.Entries, Entry{
			Version: s.version,
			Date:    s.date,
			Content: content,
		})
	}

	return changelog, nil
}

func collectSections(doc ast.Node, source []byte) []section {
	var sections []section

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 2 {
			return ast.WalkContinue, nil
		}

		version, date := splitHeading(headingText(heading, source))

		s := section{version: version, date: date}
		if lines := heading.Lines(); lines.Len() > 0 {
			s.start = lines.At(0).Start
			s.body = lines.At(lines.Len() - 1).Stop
		}
		sections = append(sections, s)

		return ast.WalkContinue, nil
	})

	return sections
}

// headingText flattens a heading to plain text, unwrapping any links so
// "[1.2.0] - 2025-06-01" reads the same whether or not the version is
// linked inline.
func headingText(heading ast.Node, source []byte) string {
	var buf bytes.Buffer

	_ = ast.Walk(heading, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if textNode, ok := n.(*ast.Text); ok {
				buf.Write(textNode.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})

	return buf.String()
}

// splitHeading parses "[1.2.0] - 2025-06-01" or "1.2.0 - 2025-06-01"
// into its version and date parts.
func splitHeading(heading string) (version, date string) {
	heading = strings.TrimSpace(heading)
	heading = strings.TrimPrefix(heading, "[")

	if idx := strings.Index(heading, "]"); idx != -1 {
		version = heading[:idx]
		rest := strings.TrimSpace(heading[idx+1:])
		if strings.HasPrefix(rest, "- ") {
			date = strings.TrimSpace(rest[2:])
		}
		return version, date
	}

	if idx := strings.Index(heading, " - "); idx != -1 {
		return strings.TrimSpace(heading[:idx]), strings.TrimSpace(heading[idx+3:])
	}

	return heading, ""
}
