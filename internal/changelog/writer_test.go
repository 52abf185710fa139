package changelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/changelog/internal/commit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument(t *testing.T, summary string) *Document {
	t.Helper()

	doc, err := Assemble([]commit.Commit{commit.New(hash("1"), summary, "")}, testConfig(), testRemote, testNow)
	require.NoError(t, err)
	return doc
}

func TestWriteDraft(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	doc := sampleDocument(t, "feat: first draft")

	path, err := WriteDraft(root, doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "changelog_DRAFT.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := RenderMarkdownString(doc)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should not remain")
}

func TestWriteDraft_ReplacesPreviousDraft(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(DraftPath(root), []byte("stale content that is much longer than the new draft\n"), 0o644))

	path, err := WriteDraft(root, sampleDocument(t, "fix: fresh"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.Contains(t, string(data), "- fresh (")
}

func TestWriteDraft_LeavesPublishedChangelogAlone(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	published := "# Changelog\n\nreviewed\n"
	require.NoError(t, os.WriteFile(PublishedPath(root), []byte(published), 0o644))

	_, err := WriteDraft(root, sampleDocument(t, "feat: x"))
	require.NoError(t, err)

	data, err := os.ReadFile(PublishedPath(root))
	require.NoError(t, err)
	assert.Equal(t, published, string(data))
}

func TestWriteDraft_MissingDirectory(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := WriteDraft(root, sampleDocument(t, "feat: x"))
	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, DraftPath(root), writeErr.Path)
}

func TestPaths(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		fn   func(string) string
		want string
	}{
		"draft":     {fn: DraftPath, want: filepath.Join("/repo", "changelog_DRAFT.md")},
		"published": {fn: PublishedPath, want: filepath.Join("/repo", "changelog.md")},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.fn("/repo"))
		})
	}
}
