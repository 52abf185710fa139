package changelog

import (
	"errors"
	"fmt"
	"time"

	"github.com/ariel-frischer/changelog/internal/commit"
	"github.com/ariel-frischer/changelog/internal/config"
	"github.com/ncruces/go-strftime"
)

// ErrEmptyHistory is returned when there are no commits to derive a diff range from.
var ErrEmptyHistory = errors.New("no commits to build a changelog from")

// Partition groups commits by category, keeping each group in input order.
func Partition(commits []commit.Commit) map[commit.Category][]commit.Commit {
	groups := make(map[commit.Category][]commit.Commit, len(commit.Categories()))
	for _, c := range commits {
		groups[c.Category] = append(groups[c.Category], c)
	}
	return groups
}

// Assemble builds the draft document for commits ordered newest first.
// The diff link spans from the oldest to the newest commit; the heading date is
// now formatted with the configured strftime pattern.
func Assemble(commits []commit.Commit, cfg *config.Configuration, remoteURI string, now time.Time) (*Document, error) {
	if len(commits) == 0 {
		return nil, ErrEmptyHistory
	}

	diffURL, err := ExpandTemplate("diff_format", cfg.DiffFormat, map[string]string{
		VarRepositoryURI: remoteURI,
		VarBase:          commits[len(commits)-1].ID,
		VarLatest:        commits[0].ID,
	})
	if err != nil {
		return nil, err
	}

	groups := Partition(commits)
	doc := &Document{
		Heading: Heading{
			Label:   draftLabel,
			DiffURL: diffURL,
			Date:    strftime.Format(cfg.DateFormat, now),
		},
		Counts: make(map[commit.Category]int, len(groups)),
	}
	for category, group := range groups {
		doc.Counts[category] = len(group)
	}

	sections := []struct {
		title    string
		category commit.Category
		always   bool
	}{
		{TitleBreaking, commit.Breaking, false},
		{TitleFeatures, commit.Feature, true},
		{TitleFixes, commit.Fix, true},
	}

	for _, s := range sections {
		group := groups[s.category]
		if len(group) == 0 && !s.always {
			continue
		}
		section, err := buildSection(s.title, group, cfg.CommitDetailPageFormat, remoteURI)
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, section)
	}

	return doc, nil
}

// buildSection turns one category group into a section of linked items.
func buildSection(title string, group []commit.Commit, commitFormat, remoteURI string) (Section, error) {
	section := Section{Title: title, Items: make([]Item, 0, len(group))}
	for _, c := range group {
		url, err := ExpandTemplate("commit_detail_page_format", commitFormat, map[string]string{
			VarRepositoryURI: remoteURI,
			VarCommit:        c.ID,
		})
		if err != nil {
			return Section{}, fmt.Errorf("linking commit %s: %w", c.ShortID(), err)
		}
		section.Items = append(section.Items, Item{
			Text:     c.Summary,
			LinkText: c.ShortID(),
			URL:      url,
		})
	}
	return section, nil
}
