package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"protoforge/internal/config"
	apperrors "protoforge/internal/errors"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Show or initialize configuration",
	GroupID: GroupConfiguration,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after merging all sources.

Precedence (highest to lowest):
  1. Environment variables (PROTOFORGE_*)
  2. Local config (.protoforge/config.json)
  3. Global config (~/.protoforge/config.json)
  4. Built-in defaults`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with defaults",
	Example: `  # Create a global config at ~/.protoforge/config.json
  protoforge config init

  # Create a project-local config
  protoforge config init --local`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().Bool("local", false, "Create .protoforge/config.json in the current directory")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Configuration,
			"run 'protoforge config init' to create a valid config")
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	local, _ := cmd.Flags().GetBool("local")

	var path string
	if local {
		path = config.LocalConfigPath
	} else {
		var err error
		path, err = config.GlobalConfigPath()
		if err != nil {
			return apperrors.Wrap(err, apperrors.Runtime)
		}
	}

	if err := config.WriteDefault(path); err != nil {
		return apperrors.Wrap(err, apperrors.Configuration,
			"remove the existing file first if you want to regenerate it")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config created at %s\n", path)
	return nil
}
