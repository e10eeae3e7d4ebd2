// Package cli provides the Cobra-based protoforge commands: generation
// (generate), inspection (validate, recent), packaging (archive), the
// local dashboard (serve), and configuration management (config).
package cli

import (
	"github.com/spf13/cobra"

	"protoforge/internal/config"
)

// Command group IDs for organizing help output
const (
	GroupGeneration    = "generation"
	GroupInspection    = "inspection"
	GroupConfiguration = "configuration"
)

var rootCmd = &cobra.Command{
	Use:   "protoforge",
	Short: "Turn model completions into buildable prototype packages",
	Long: `protoforge turns LLM completions into organized prototype packages.

A completion describing a hardware or software prototype is parsed as JSON,
validated tolerantly, and materialized into a project directory with code,
documentation, schematics, and a bill of materials.`,
	Example: `  # Generate a prototype from a description (calls the configured provider)
  protoforge generate "ESP32 soil moisture monitor with MQTT"

  # Materialize a completion saved to a file, no provider call
  protoforge generate --from-file completion.txt --name soil-monitor

  # Check a completion without writing anything
  protoforge validate completion.txt

  # List recent runs
  protoforge recent`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: GroupGeneration, Title: "Generation:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupInspection, Title: "Inspection:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})

	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", config.LocalConfigPath, "Path to config file")
	rootCmd.PersistentFlags().StringP("output-dir", "o", "", "Directory for generated projects (overrides config)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Skip confirmation prompts")
}

// loadConfig loads configuration honoring the global flags.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if outputDir, _ := cmd.Flags().GetString("output-dir"); outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		cfg.SkipConfirmations = true
	}
	return cfg, nil
}
