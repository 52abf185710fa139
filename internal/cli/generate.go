package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/ariel-frischer/changelog/internal/changelog"
	"github.com/ariel-frischer/changelog/internal/commit"
	"github.com/ariel-frischer/changelog/internal/config"
	clierrors "github.com/ariel-frischer/changelog/internal/errors"
	"github.com/ariel-frischer/changelog/internal/git"
	"github.com/ariel-frischer/changelog/internal/progress"
	"github.com/spf13/cobra"
)

// runGenerate performs one full generation pass for the repository at -C.
func runGenerate(cmd *cobra.Command) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(repo.Root())
	if err != nil {
		return err
	}

	caps := progress.DetectTerminalCapabilities(os.Stderr)
	history := &spinningHistory{
		History: repo,
		spinner: progress.NewSpinner(cmd.ErrOrStderr(), caps, plainFlag),
	}

	res, err := changelog.NewGenerator(history, cfg, log).Generate()
	if err != nil {
		return generateError(err, repo.Root())
	}

	return changelog.FormatSummary(res, cmd.OutOrStdout(), changelog.FormatOptions{Plain: plainOutput()})
}

// openRepository discovers the repository containing the -C directory.
func openRepository() (*git.Repository, error) {
	dir, err := ResolvePath(dirFlag)
	if err != nil {
		return nil, clierrors.WrapWithMessage(err, clierrors.Argument, "invalid --dir")
	}

	repo, err := git.Open(dir, git.WithLogger(log))
	if errors.Is(err, git.ErrNotRepository) {
		return nil, clierrors.NotARepository(dir, err)
	}
	if err != nil {
		return nil, clierrors.Wrap(err, clierrors.Runtime)
	}
	return repo, nil
}

// loadConfig loads the repository configuration, creating it when absent.
func loadConfig(root string) (*config.Configuration, error) {
	return loadConfigWithOptions(config.LoadOptions{Root: root, Logger: &log})
}

// loadConfigWithOptions loads configuration and maps failures to CLI errors.
func loadConfigWithOptions(opts config.LoadOptions) (*config.Configuration, error) {
	cfg, err := config.LoadWithOptions(opts)
	if err != nil {
		return nil, configError(err, opts.Root)
	}
	return cfg, nil
}

// configError maps configuration store failures to CLI errors.
func configError(err error, root string) error {
	var readErr *config.ReadError
	var validationErr *config.ValidationError
	var syntaxErr *config.SyntaxError
	switch {
	case errors.As(err, &readErr):
		return clierrors.ConfigUnreadable(readErr.FilePath, err)
	case errors.As(err, &validationErr), errors.As(err, &syntaxErr):
		return clierrors.ConfigInvalid(config.Path(root), err)
	default:
		return clierrors.Wrap(err, clierrors.Configuration)
	}
}

// generateError maps generator failures to CLI errors.
func generateError(err error, root string) error {
	var tmplErr *changelog.TemplateError
	var writeErr *changelog.WriteError
	switch {
	case errors.Is(err, changelog.ErrEmptyHistory):
		return clierrors.EmptyHistory(err)
	case errors.As(err, &tmplErr):
		return clierrors.TemplateFailure(err, config.Path(root), tmplErr.Variables)
	case errors.As(err, &writeErr):
		return clierrors.DraftWriteFailed(writeErr.Path, err)
	default:
		return clierrors.Wrap(err, clierrors.Runtime)
	}
}

// spinningHistory animates a spinner while commits are read.
type spinningHistory struct {
	changelog.History
	spinner *progress.Spinner
}

func (h *spinningHistory) Commits() ([]commit.Commit, error) {
	var commits []commit.Commit
	err := h.spinner.Run("Reading commit history", func() error {
		var err error
		commits, err = h.History.Commits()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("walking history: %w", err)
	}
	return commits, nil
}
