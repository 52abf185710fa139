package changelog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DraftFileName is the generated, unreviewed changelog in the repository root.
	DraftFileName = "changelog_DRAFT.md"
	// PublishedFileName is reserved for the reviewed changelog the draft will be merged into.
	PublishedFileName = "changelog.md"
)

// DraftPath returns the draft changelog path for the repository rooted at root.
func DraftPath(root string) string {
	return filepath.Join(root, DraftFileName)
}

// PublishedPath returns the published changelog path for the repository rooted at root.
func PublishedPath(root string) string {
	return filepath.Join(root, PublishedFileName)
}

// WriteError reports a draft that could not be written. Any previous draft is left intact.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteDraft renders doc and replaces the draft file under root atomically.
// It returns the path written.
func WriteDraft(root string, doc *Document) (string, error) {
	path := DraftPath(root)

	var buf bytes.Buffer
	if err := RenderMarkdown(doc, &buf); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return path, nil
}

// writeFileAtomic writes data to a temporary sibling and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
