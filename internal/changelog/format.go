package changelog

import (
	"fmt"
	"io"

	"github.com/ariel-frischer/changelog/internal/commit"
	"github.com/fatih/color"
)

// CategoryStyle defines the color, icon and label for a commit category.
type CategoryStyle struct {
	Color *color.Color
	Icon  string
	Label string
}

// categoryStyles maps categories to their terminal styling.
var categoryStyles = map[commit.Category]CategoryStyle{
	commit.Breaking: {Color: color.New(color.FgRed, color.Bold), Icon: "⚠", Label: "Breaking changes"},
	commit.Feature:  {Color: color.New(color.FgGreen), Icon: "✓", Label: "Features"},
	commit.Fix:      {Color: color.New(color.FgYellow), Icon: "⚡", Label: "Bug fixes"},
	commit.Other:    {Color: color.New(color.Faint), Icon: "·", Label: "Other (not rendered)"},
}

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain bool // Disable colors and icons
}

// FormatSummary writes where the draft went and how many commits landed in each category.
func FormatSummary(res *Result, w io.Writer, opts FormatOptions) error {
	if _, err := fmt.Fprintf(w, "Draft changelog written to %s\n", res.Path); err != nil {
		return err
	}

	for _, category := range commit.Categories() {
		n := res.Document.Counts[category]
		if n == 0 && category == commit.Breaking {
			continue
		}
		if err := writeCount(w, category, n, opts); err != nil {
			return err
		}
	}
	return nil
}

// writeCount writes one category line.
func writeCount(w io.Writer, category commit.Category, n int, opts FormatOptions) error {
	style := categoryStyles[category]
	if opts.Plain {
		_, err := fmt.Fprintf(w, "  %s: %d\n", style.Label, n)
		return err
	}

	label := fmt.Sprintf("%-22s", style.Icon+" "+style.Label)
	_, err := fmt.Fprintf(w, "  %s %d\n", style.Color.Sprint(label), n)
	return err
}
