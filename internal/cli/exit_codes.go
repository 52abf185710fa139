package cli

import clierrors "github.com/ariel-frischer/changelog/internal/errors"

// Exit codes for the changelog CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitRuntimeFailure indicates reading history or writing the draft failed
	ExitRuntimeFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitPrerequisite indicates the directory cannot produce a changelog
	// (not a repository, no commits)
	ExitPrerequisite = 4

	// ExitConfiguration indicates the configuration or its templates are invalid
	ExitConfiguration = 6
)

// ExitCode maps err to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.Argument:
			return ExitInvalidArguments
		case clierrors.Prerequisite:
			return ExitPrerequisite
		case clierrors.Configuration:
			return ExitConfiguration
		}
	}
	return ExitRuntimeFailure
}
