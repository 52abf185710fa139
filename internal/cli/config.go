package cli

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/changelog/internal/config"
	clierrors "github.com/ariel-frischer/changelog/internal/errors"
	"github.com/spf13/cobra"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or initialize the repository configuration",
	Long: `Inspect or initialize .changelog/changelog.config.

The file is JSON with these keys:
  source                     File or Tag (reserved, not used yet)
  last_generation            unix seconds of the last generation (informational)
  date_format                strftime pattern for the heading date
  diff_format                link template for the compared range
  commit_detail_page_format  link template for a single commit

Environment variables CHANGELOG_DATE_FORMAT, CHANGELOG_DIFF_FORMAT,
CHANGELOG_COMMIT_DETAIL_PAGE_FORMAT and CHANGELOG_SOURCE override the file.`,
	Args: rejectArgs,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the effective configuration (defaults, file and environment) as YAML.

The settings file is only read: a missing file shows the defaults and a
malformed file is reported as an error instead of being reset.`,
	Example: `  changelog config show
  CHANGELOG_DATE_FORMAT=%d.%m.%Y changelog config show`,
	Args:         rejectArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		cfg, err := loadConfigWithOptions(config.LoadOptions{Root: repo.Root(), Logger: &log, ReadOnly: true})
		if err != nil {
			return err
		}

		data, err := config.MarshalYAML(cfg)
		if err != nil {
			return clierrors.Wrap(err, clierrors.Runtime)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:          "path",
	Short:        "Print the configuration file path",
	Args:         rejectArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Path(repo.Root()))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Example: `  changelog config init
  changelog config init --force   # overwrite an existing file`,
	Args:         rejectArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		return runConfigInit(cmd, repo.Root(), configInitForce)
	},
}

func init() {
	configCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(configCmd)

	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing configuration")
	configCmd.AddCommand(configShowCmd, configPathCmd, configInitCmd)
}

func runConfigInit(cmd *cobra.Command, root string, force bool) error {
	path := config.Path(root)
	if _, err := os.Stat(path); err == nil && !force {
		return clierrors.New(clierrors.Argument,
			fmt.Sprintf("configuration already exists at %s", path),
			"Use --force to overwrite it with defaults",
		)
	}

	if err := config.WriteDefaults(root); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Configuration, "writing default configuration")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
	return nil
}
