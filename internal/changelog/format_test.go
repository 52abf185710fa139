package changelog

import (
	"bytes"
	"testing"

	"github.com/ariel-frischer/changelog/internal/commit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		counts   map[commit.Category]int
		expected string
	}{
		"no breaking changes": {
			counts: map[commit.Category]int{commit.Feature: 2, commit.Fix: 1, commit.Other: 4},
			expected: "Draft changelog written to /repo/changelog_DRAFT.md\n" +
				"  Features: 2\n" +
				"  Bug fixes: 1\n" +
				"  Other (not rendered): 4\n",
		},
		"with breaking changes": {
			counts: map[commit.Category]int{commit.Breaking: 1},
			expected: "Draft changelog written to /repo/changelog_DRAFT.md\n" +
				"  Breaking changes: 1\n" +
				"  Features: 0\n" +
				"  Bug fixes: 0\n" +
				"  Other (not rendered): 0\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res := &Result{Path: "/repo/changelog_DRAFT.md", Document: &Document{Counts: tt.counts}}
			var buf bytes.Buffer
			require.NoError(t, FormatSummary(res, &buf, FormatOptions{Plain: true}))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestFormatSummary_Styled(t *testing.T) {
	t.Parallel()

	res := &Result{
		Path:     "/repo/changelog_DRAFT.md",
		Document: &Document{Counts: map[commit.Category]int{commit.Feature: 3}},
	}
	var buf bytes.Buffer
	require.NoError(t, FormatSummary(res, &buf, FormatOptions{}))

	out := buf.String()
	assert.Contains(t, out, "✓ Features")
	assert.Contains(t, out, "⚡ Bug fixes")
	assert.NotContains(t, out, "Breaking")
}
