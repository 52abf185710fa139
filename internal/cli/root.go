package cli

import (
	"fmt"
	"os"

	clierrors "github.com/ariel-frischer/changelog/internal/errors"
	"github.com/ariel-frischer/changelog/internal/lifecycle"
	"github.com/ariel-frischer/changelog/internal/logger"
	"github.com/ariel-frischer/changelog/internal/progress"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Command group IDs for help output organization
const (
	GroupGenerate      = "generate"
	GroupConfiguration = "configuration"
	GroupInformation   = "information"
)

var (
	debugFlag     bool
	logLevelFlag  string
	logFormatFlag string
	plainFlag     bool
	dirFlag       string

	// log is configured in PersistentPreRunE from the global flags.
	log = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Generate a draft changelog from Conventional Commits",
	Long: `changelog reads the commit history of the current git repository, classifies
each non-merge commit by the Conventional Commits convention and writes a draft
changelog to changelog_DRAFT.md in the repository root.

Commits are grouped into BREAKING CHANGES, Features and Bug Fixes. Other commits
are counted but not rendered. Links to the compared range and to each commit are
built from templates in .changelog/changelog.config, which is created with
defaults on first run.`,
	Example: `  # Generate changelog_DRAFT.md for the repository in the current directory
  changelog

  # Generate for another repository
  changelog -C ../service

  # Show the effective configuration
  changelog config show

  # Debug logging as JSON
  changelog --debug --log-format json`,
	Args:              rejectArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		return lifecycle.Run(log, "generate", func() error {
			return runGenerate(cmd)
		})
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupGenerate, Title: "Generate:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"},
		&cobra.Group{ID: GroupInformation, Title: "Information:"},
	)
	rootCmd.SetHelpCommandGroupID(GroupInformation)
	rootCmd.SetCompletionCommandGroupID(GroupInformation)

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Plain output (no colors, icons or spinner)")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "C", "", "Run as if started in this directory (default: current directory)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.WrapWithMessage(err, clierrors.Argument, "invalid flag",
			fmt.Sprintf("See: %s --help", cmd.CommandPath()))
	})
}

// Execute runs the root command. The returned error is not printed yet;
// use PrintError and ExitCode to report it.
func Execute() error {
	return rootCmd.Execute()
}

// PrintError writes err to stderr in the CLI's error format.
func PrintError(err error) {
	clierrors.FprintError(os.Stderr, err, plainOutput())
}

// rejectArgs turns stray positional arguments into an argument error.
func rejectArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return clierrors.New(clierrors.Argument,
		fmt.Sprintf("unexpected argument %q", args[0]),
		fmt.Sprintf("%s takes no arguments", cmd.CommandPath()),
		fmt.Sprintf("See: %s --help", cmd.CommandPath()),
	)
}

// setupLogging validates the global flags and builds the logger.
func setupLogging(cmd *cobra.Command, args []string) error {
	switch logFormatFlag {
	case "text", "json":
	default:
		return clierrors.New(clierrors.Argument,
			fmt.Sprintf("invalid --log-format %q", logFormatFlag),
			"Use --log-format text or --log-format json",
		)
	}

	level := logLevelFlag
	if debugFlag {
		level = zerolog.LevelDebugValue
	}
	log = logger.Setup(level, logFormatFlag, cmd.ErrOrStderr())

	if plainOutput() {
		color.NoColor = true
	}
	return nil
}

// plainOutput reports whether colors and icons should be suppressed.
func plainOutput() bool {
	if plainFlag {
		return true
	}
	return !progress.DetectTerminalCapabilities(os.Stdout).SupportsColor
}
