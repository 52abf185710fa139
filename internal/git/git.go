// Package git reads commit history for changelog generation. It uses the go-git
// library so no git CLI installation is required.
package git

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ariel-frischer/changelog/internal/commit"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rs/zerolog"
)

// DefaultRemote is the remote whose URL becomes the repository link.
const DefaultRemote = "origin"

var (
	// ErrNotRepository is returned when no working tree is found at or above a path.
	ErrNotRepository = errors.New("not a git repository")
	// ErrRemoteNotFound is returned when a remote is missing or has no URL.
	ErrRemoteNotFound = errors.New("remote not found")
)

// Repository is an opened git working tree.
type Repository struct {
	repo *git.Repository
	root string
	log  zerolog.Logger
}

// Option configures Open.
type Option func(*Repository)

// WithLogger sets the logger used for history tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Repository) {
		r.log = log
	}
}

// Open opens the repository containing path, walking up the directory tree to
// find the repository root. If path is empty, the current working directory is used.
func Open(path string, opts ...Option) (*Repository, error) {
	r := &Repository{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}

	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	r.log.Debug().Str("path", path).Msg("opening repository")

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotRepository, path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotRepository, path, err)
	}

	r.repo = repo
	r.root = worktree.Filesystem.Root()
	r.log.Debug().Str("root", r.root).Msg("repository opened")
	return r, nil
}

// Root returns the absolute path of the working tree root.
func (r *Repository) Root() string {
	return r.root
}

// RemoteURL returns the first URL configured for the named remote.
func (r *Repository) RemoteURL(name string) (string, error) {
	remote, err := r.repo.Remote(name)
	if errors.Is(err, git.ErrRemoteNotFound) {
		return "", fmt.Errorf("%w: %s", ErrRemoteNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("looking up remote %s: %w", name, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return "", fmt.Errorf("%w: %s has no URL", ErrRemoteNotFound, name)
	}
	return urls[0], nil
}

// Commits walks history from HEAD, newest first, and returns every non-merge
// commit. A repository without any commit yields an empty slice.
func (r *Repository) Commits() ([]commit.Commit, error) {
	head, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		r.log.Debug().Msg("HEAD has no commits")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting HEAD reference: %w", err)
	}

	iter, err := r.repo.Log(&git.LogOptions{
		From:  head.Hash(),
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, fmt.Errorf("walking history from %s: %w", head.Hash(), err)
	}
	defer iter.Close()

	var commits []commit.Commit
	skipped := 0
	err = iter.ForEach(func(c *object.Commit) error {
		if isMergeCommit(c) {
			skipped++
			return nil
		}
		cm := commit.New(c.Hash.String(), subject(c.Message), c.Message)
		r.log.Trace().Stringer("commit", cm).Msg("read commit")
		commits = append(commits, cm)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading commits: %w", err)
	}

	r.log.Debug().
		Int("commits", len(commits)).
		Int("merges_skipped", skipped).
		Msg("history read")
	return commits, nil
}

// isMergeCommit reports whether c integrates more than one parent.
func isMergeCommit(c *object.Commit) bool {
	return c.NumParents() > 1
}

// subject returns the first line of a commit message.
func subject(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(line)
}
