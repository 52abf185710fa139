package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the changelog CLI.
// These templates keep operator-facing messages consistent and actionable.

// NotARepository creates an error for a directory outside any git repository.
func NotARepository(path string, err error) *CLIError {
	return WrapWithMessage(err, Prerequisite,
		fmt.Sprintf("%s is not inside a git repository", path),
		"Run changelog from inside a git working tree",
		"Or point it at one with: changelog -C <path>",
	)
}

// EmptyHistory creates an error for a repository with no commits reachable from HEAD.
func EmptyHistory(err error) *CLIError {
	return WrapWithMessage(err, Prerequisite,
		"no commits found to build a changelog from",
		"Create at least one non-merge commit on the current branch",
		"Check that HEAD points at a branch with history: git log -1",
	)
}

// TemplateFailure creates an error for a configured URL template that cannot be rendered.
func TemplateFailure(err error, configPath string, variables []string) *CLIError {
	return WrapWithMessage(err, Configuration,
		"configured link format doesn't render",
		fmt.Sprintf("Check diff_format and commit_detail_page_format in %s", configPath),
		fmt.Sprintf("Templates may only use: %s", strings.Join(variables, ", ")),
		"Placeholders use Go template syntax, e.g. {{.repositoryUri}}/commit/{{.commit}}",
	)
}

// ConfigUnreadable creates an error for a configuration file that exists but cannot be read.
func ConfigUnreadable(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("cannot read configuration %s", path),
		"Check file permissions on the .changelog directory",
		"Or regenerate it with: changelog config init --force",
	)
}

// ConfigInvalid creates an error for configuration values that fail validation.
func ConfigInvalid(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid configuration",
		fmt.Sprintf("Fix the reported field in %s", path),
		"Or reset to defaults with: changelog config init --force",
	)
}

// DraftWriteFailed creates an error for a draft file that could not be written.
func DraftWriteFailed(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("writing %s failed", path),
		"Check that the repository root is writable",
	)
}
