package cli

import (
	"fmt"

	"github.com/ariel-frischer/changelog/internal/build"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, and Go version information for changelog",
	Example: `  # Show version info
  changelog version

  # Plain output (for scripts)
  changelog version --plain`,
	Args: rejectArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := build.Current()
		if plainFlag {
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return
		}
		printPrettyVersion(cmd, info)
	},
}

func init() {
	versionCmd.GroupID = GroupInformation
	rootCmd.AddCommand(versionCmd)
}

// printPrettyVersion prints aligned, colored build metadata.
func printPrettyVersion(cmd *cobra.Command, info build.Info) {
	yellow := color.New(color.FgYellow).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()

	rows := []struct {
		label string
		value string
	}{
		{"Version", info.Version},
		{"Commit", truncateCommit(info.Commit)},
		{"Built", info.BuildDate},
		{"Go", info.GoVersion},
		{"Platform", info.Platform},
	}

	out := cmd.OutOrStdout()
	for _, row := range rows {
		fmt.Fprintf(out, "%s  %s\n", yellow(fmt.Sprintf("%10s", row.label)), white(row.value))
	}
}

// truncateCommit shortens a commit hash to 8 characters for display
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
