package changelog

import (
	"fmt"
	"io"
	"strings"
)

// RenderMarkdown writes doc as markdown:
//
//	## [Draft Version](<diff>) (<date>)
//
//	### Features
//
//	- <summary> ([<short id>](<commit url>))
//
// Sections without items render as a bare heading.
// The function is idempotent - given the same input, it produces identical output.
func RenderMarkdown(doc *Document, w io.Writer) error {
	blocks := make([]string, 0, len(doc.Sections)+1)
	blocks = append(blocks, formatHeading(doc.Heading))

	for _, s := range doc.Sections {
		blocks = append(blocks, formatSection(s))
	}

	if _, err := io.WriteString(w, strings.Join(blocks, "\n\n")+"\n"); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

// RenderMarkdownString is a convenience function that renders to a string.
func RenderMarkdownString(doc *Document) (string, error) {
	var b strings.Builder
	if err := RenderMarkdown(doc, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// formatHeading formats the level-2 document heading.
func formatHeading(h Heading) string {
	return fmt.Sprintf("## %s (%s)", link(h.Label, h.DiffURL), h.Date)
}

// formatSection formats a level-3 heading and its list.
func formatSection(s Section) string {
	var b strings.Builder
	b.WriteString("### " + s.Title)
	if len(s.Items) == 0 {
		return b.String()
	}

	b.WriteString("\n")
	for _, item := range s.Items {
		b.WriteString("\n- " + formatItem(item))
	}
	return b.String()
}

// formatItem formats one list entry without the bullet.
func formatItem(item Item) string {
	return fmt.Sprintf("%s (%s)", item.Text, link(item.LinkText, item.URL))
}

func link(text, url string) string {
	return "[" + text + "](" + url + ")"
}
