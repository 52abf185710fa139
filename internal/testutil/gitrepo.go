// Package testutil provides test helpers for changelog tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitRepo is a throwaway repository built with go-git inside t.TempDir().
// Each commit is one minute newer than the previous one so committer-time
// ordering is deterministic.
type GitRepo struct {
	t    *testing.T
	Dir  string
	Repo *git.Repository

	clock  time.Time
	serial int
}

// NewGitRepo initializes an empty repository.
func NewGitRepo(t *testing.T) *GitRepo {
	t.Helper()

	dir := t.TempDir()
	// Resolve symlinks (macOS /var -> /private/var) so paths compare equal to go-git's root.
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("initializing repository: %v", err)
	}

	return &GitRepo{
		t:     t,
		Dir:   dir,
		Repo:  repo,
		clock: time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Commit records a change on the current branch and returns its hash.
func (r *GitRepo) Commit(message string) plumbing.Hash {
	r.t.Helper()
	return r.CommitWithParents(message)
}

// CommitWithParents records a change whose parents are set explicitly.
// With no parents given, HEAD is used as usual. The current branch moves to the new commit.
func (r *GitRepo) CommitWithParents(message string, parents ...plumbing.Hash) plumbing.Hash {
	r.t.Helper()

	worktree, err := r.Repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}

	r.serial++
	name := fmt.Sprintf("file-%03d.txt", r.serial)
	if err := os.WriteFile(filepath.Join(r.Dir, name), []byte(message), 0o644); err != nil {
		r.t.Fatalf("writing %s: %v", name, err)
	}
	if _, err := worktree.Add(name); err != nil {
		r.t.Fatalf("staging %s: %v", name, err)
	}

	r.clock = r.clock.Add(time.Minute)
	sig := &object.Signature{Name: "Test", Email: "test@test.com", When: r.clock}
	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author:    sig,
		Committer: sig,
		Parents:   parents,
	})
	if err != nil {
		r.t.Fatalf("committing %q: %v", message, err)
	}
	return hash
}

// Merge records a merge commit of HEAD and other.
func (r *GitRepo) Merge(message string, other plumbing.Hash) plumbing.Hash {
	r.t.Helper()

	head, err := r.Repo.Head()
	if err != nil {
		r.t.Fatalf("getting HEAD: %v", err)
	}
	return r.CommitWithParents(message, head.Hash(), other)
}

// AddRemote configures a remote with a single URL.
func (r *GitRepo) AddRemote(name, url string) {
	r.t.Helper()

	_, err := r.Repo.CreateRemote(&config.RemoteConfig{
		Name: name,
		URLs: []string{url},
	})
	if err != nil {
		r.t.Fatalf("creating remote %s: %v", name, err)
	}
}

// Subdir creates and returns a nested directory inside the working tree.
func (r *GitRepo) Subdir(parts ...string) string {
	r.t.Helper()

	dir := filepath.Join(append([]string{r.Dir}, parts...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		r.t.Fatalf("creating %s: %v", dir, err)
	}
	return dir
}
