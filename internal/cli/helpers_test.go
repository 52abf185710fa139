package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var changelogEnv = []string{
	"CHANGELOG_SOURCE",
	"CHANGELOG_DATE_FORMAT",
	"CHANGELOG_DIFF_FORMAT",
	"CHANGELOG_COMMIT_DETAIL_PAGE_FORMAT",
}

// executeCLI runs the root command with args and captures its output.
// Tests using it cannot run in parallel due to global rootCmd state.
func executeCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return executeCLIWithEnv(t, nil, args...)
}

// executeCLIWithEnv is executeCLI with CHANGELOG_* variables set from env.
func executeCLIWithEnv(t *testing.T, env map[string]string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	for _, key := range changelogEnv {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	for key, value := range env {
		t.Setenv(key, value)
	}
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}
