package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"protoforge/internal/archive"
	apperrors "protoforge/internal/errors"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <project>",
	Short: "Zip a generated project directory",
	Long: `Create a zip archive of a project in the output directory.

The archive lands next to the project directory as <project>.zip. Dotfiles
and dependency directories (vendor, node_modules) are skipped.`,
	Example: `  protoforge archive soil-monitor`,
	Args:    cobra.ExactArgs(1),
	GroupID: GroupGeneration,
	RunE:    runArchive,
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Configuration)
	}

	name := args[0]
	projectDir := filepath.Join(cfg.OutputDir, name)
	if _, err := os.Stat(projectDir); err != nil {
		return apperrors.ProjectNotFound(name)
	}

	zipPath, err := archive.Build(projectDir)
	if err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Runtime, "archiving project")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Archive written to %s\n", zipPath)
	return nil
}
