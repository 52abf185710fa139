package commit

import (
	"fmt"
	"strings"
)

// shortIDLength is the number of hash characters shown in links.
const shortIDLength = 7

// Commit is one non-merge commit as it appears in the changelog.
type Commit struct {
	// ID is the full commit hash.
	ID string
	// Summary is the subject line with its conventional prefix removed.
	Summary string
	// Category is derived from the raw subject and message at construction.
	Category Category
}

// New builds a Commit from its hash, raw subject line and full message.
func New(id, summary, message string) Commit {
	return Commit{
		ID:       id,
		Summary:  CleanSummary(summary),
		Category: Classify(summary, message),
	}
}

// CleanSummary strips everything up to and including the first colon.
// Lines without a colon are only trimmed.
func CleanSummary(raw string) string {
	if _, rest, found := strings.Cut(raw, ":"); found {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(raw)
}

// ShortID returns the abbreviated hash used as link text.
func (c Commit) ShortID() string {
	if len(c.ID) < shortIDLength {
		return c.ID
	}
	return c.ID[:shortIDLength]
}

// String renders the commit for trace logging.
func (c Commit) String() string {
	return fmt.Sprintf("id=%s,summary=%s,type=%s", c.ID, c.Summary, c.Category)
}
