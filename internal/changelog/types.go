package changelog

import "github.com/ariel-frischer/changelog/internal/commit"

// Section titles in rendering order.
const (
	TitleBreaking = "BREAKING CHANGES"
	TitleFeatures = "Features"
	TitleFixes    = "Bug Fixes"

	// draftLabel is the link text of the document heading.
	draftLabel = "Draft Version"
)

// Document is a rendered-to-be draft changelog: one heading followed by
// sections in order.
type Document struct {
	Heading  Heading
	Sections []Section
	// Counts holds the number of commits per category, including Other.
	Counts map[commit.Category]int
}

// Heading is the level-2 title linking to the comparison of the covered range.
type Heading struct {
	Label   string
	DiffURL string
	Date    string
}

// Section is a level-3 heading followed by a bulleted list.
type Section struct {
	Title string
	Items []Item
}

// Item is a single list entry: the commit summary and a link to the commit.
type Item struct {
	Text     string
	LinkText string
	URL      string
}

// Section returns the section with the given title, or nil.
func (d *Document) Section(title string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Title == title {
			return &d.Sections[i]
		}
	}
	return nil
}

// Total returns the number of commits the document was built from.
func (d *Document) Total() int {
	total := 0
	for _, n := range d.Counts {
		total += n
	}
	return total
}
