package changelog

import (
	"errors"
	"fmt"
	"time"

	"github.com/ariel-frischer/changelog/internal/commit"
	"github.com/ariel-frischer/changelog/internal/config"
	"github.com/ariel-frischer/changelog/internal/git"
	"github.com/rs/zerolog"
)

// PlaceholderRemoteURI stands in for the repository link when the remote is missing.
const PlaceholderRemoteURI = "http://git.localhost"

// History is the commit source a Generator reads from.
// *git.Repository satisfies it.
type History interface {
	// Root is the working tree root where the draft is written.
	Root() string
	// RemoteURL resolves a remote; git.ErrRemoteNotFound signals a missing one.
	RemoteURL(name string) (string, error)
	// Commits returns non-merge commits, newest first.
	Commits() ([]commit.Commit, error)
}

// Generator runs one read-classify-render-write pass.
type Generator struct {
	History History
	Config  *config.Configuration
	// Remote names the remote whose URL links the changelog (default "origin").
	Remote string
	// Now returns the generation time (default time.Now in UTC).
	Now    func() time.Time
	Logger zerolog.Logger
}

// Result describes a written draft.
type Result struct {
	Path      string
	RemoteURI string
	Document  *Document
}

// NewGenerator creates a Generator with default remote and clock.
func NewGenerator(history History, cfg *config.Configuration, log zerolog.Logger) *Generator {
	return &Generator{
		History: history,
		Config:  cfg,
		Remote:  git.DefaultRemote,
		Now:     func() time.Time { return time.Now().UTC() },
		Logger:  log,
	}
}

// Generate reads history, assembles the document and writes the draft file.
// Nothing is written unless the whole document assembled successfully.
func (g *Generator) Generate() (*Result, error) {
	if g.History == nil || g.Config == nil {
		return nil, fmt.Errorf("generator requires history and configuration")
	}

	g.Logger.Info().Msg("building changelog")

	commits, err := g.History.Commits()
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	g.Logger.Debug().Int("commits", len(commits)).Msg("classified commits")

	remoteURI, err := g.remoteURI()
	if err != nil {
		return nil, err
	}

	doc, err := Assemble(commits, g.Config, remoteURI, g.now())
	if err != nil {
		return nil, err
	}

	path, err := WriteDraft(g.History.Root(), doc)
	if err != nil {
		return nil, err
	}
	g.Logger.Info().Str("path", path).Msg("draft changelog written")

	return &Result{Path: path, RemoteURI: remoteURI, Document: doc}, nil
}

// remoteURI resolves the configured remote, substituting the placeholder when it is missing.
func (g *Generator) remoteURI() (string, error) {
	name := g.Remote
	if name == "" {
		name = git.DefaultRemote
	}

	uri, err := g.History.RemoteURL(name)
	if errors.Is(err, git.ErrRemoteNotFound) {
		g.Logger.Warn().Str("remote", name).Msg("remote does not exist, using placeholder link")
		return PlaceholderRemoteURI, nil
	}
	if err != nil {
		return "", fmt.Errorf("resolving remote %s: %w", name, err)
	}
	return uri, nil
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now().UTC()
	}
	return g.Now()
}
