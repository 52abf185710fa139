// Package changelog builds the draft changelog from classified commits.
//
// This package implements:
//   - Assembly of a Document (heading plus grouped sections) from commits
//   - Link rendering from the configured URL templates
//   - Markdown serialization of a Document
//   - Atomic replacement of changelog_DRAFT.md in the repository root
//   - A Generator that wires history, configuration and output together
//
// Commits that match no conventional type are counted but never rendered.
package changelog
