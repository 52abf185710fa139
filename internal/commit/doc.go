// Package commit models a single non-merge commit and classifies it against the
// Conventional Commits convention.
//
// Classification inspects the raw subject line and the full message; the stored
// summary is the subject with its "type(scope)!:" prefix removed. Both are computed
// once in New and never change afterwards.
package commit
