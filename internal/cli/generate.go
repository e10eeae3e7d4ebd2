package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"protoforge/internal/archive"
	"protoforge/internal/config"
	apperrors "protoforge/internal/errors"
	"protoforge/internal/history"
	"protoforge/internal/logging"
	"protoforge/internal/materialize"
	"protoforge/internal/pipeline"
	"protoforge/internal/progress"
	"protoforge/internal/provider"
)

const maxHistoryEntries = 100

var generateCmd = &cobra.Command{
	Use:   "generate [description]",
	Short: "Generate a prototype package from a description or completion",
	Long: `Generate a prototype project package.

With a description argument the configured provider is called to produce a
completion. With --from-file (or piped stdin) an existing completion is
materialized directly and no provider call is made.

The package lands in <output-dir>/<name>/ with code, docs, schematics,
a bill of materials, and a build report.`,
	Example: `  # Call the provider and materialize the result
  protoforge generate "ESP32 soil moisture monitor with MQTT"

  # Materialize a saved completion
  protoforge generate --from-file completion.txt --name soil-monitor

  # Pipe a completion in
  cat completion.txt | protoforge generate --name soil-monitor`,
	Args:    cobra.MaximumNArgs(1),
	GroupID: GroupGeneration,
	RunE:    runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("from-file", "f", "", "Read the completion from a file instead of calling a provider")
	generateCmd.Flags().StringP("name", "n", "", "Project directory name (defaults to a slug of the description)")
	generateCmd.Flags().StringP("provider", "p", "", "Provider to use: openai or gemini (overrides config)")
	generateCmd.Flags().StringP("model", "m", "", "Model name (overrides config)")
	generateCmd.Flags().BoolP("archive", "a", false, "Zip the project directory after generation")
	generateCmd.Flags().Bool("keep-failed", false, "Keep the project directory when parsing or validation fails")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Configuration,
			"run 'protoforge config init' to create a valid config")
	}
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		cfg.Provider = p
	}
	if m, _ := cmd.Flags().GetString("model"); m != "" {
		cfg.Model = m
	}

	debug, _ := cmd.Flags().GetBool("debug")
	log, err := logging.New(debug)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}
	defer log.Sync()

	description := ""
	if len(args) > 0 {
		description = strings.TrimSpace(args[0])
	}

	rawText, usedProvider, err := resolveCompletion(cmd, cfg, description)
	if err != nil {
		return err
	}

	name := projectName(cmd, description)
	targetDir := filepath.Join(cfg.OutputDir, name)

	if err := confirmOverwrite(cmd, cfg, targetDir); err != nil {
		return err
	}

	hist := history.NewWriter(cfg.StateDir, maxHistoryEntries)
	histProvider, histModel := "", ""
	if usedProvider {
		histProvider, histModel = cfg.Provider, cfg.Model
	}
	runID, err := hist.WriteStart(name, targetDir, histProvider, histModel)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to record run history: %v\n", err)
	}

	start := time.Now()
	result, runErr := pipeline.Run(rawText, pipeline.Options{
		TargetDir:   targetDir,
		Description: description,
		Logger:      log,
	})

	if runID != "" {
		status := history.StatusCompleted
		files := 0
		if runErr != nil {
			status = history.StatusFailed
		} else {
			files = len(result.Files)
		}
		if err := hist.UpdateComplete(runID, status, files, runErr, time.Since(start)); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to update run history: %v\n", err)
		}
	}

	if runErr != nil {
		keepFailed, _ := cmd.Flags().GetBool("keep-failed")
		if keepFailed {
			fmt.Fprintf(cmd.ErrOrStderr(), "Debug artifacts kept in %s\n", targetDir)
		}
		return apperrors.Wrap(runErr, apperrors.Runtime,
			"inspect prototype.parse-error.txt in the project directory",
			"rerun with --keep-failed to retain debug artifacts")
	}

	printResult(cmd.OutOrStdout(), targetDir, result)

	archiveFlag, _ := cmd.Flags().GetBool("archive")
	if archiveFlag || cfg.ArchiveAfterGenerate {
		zipPath, err := archive.Build(targetDir)
		if err != nil {
			return apperrors.WrapWithMessage(err, apperrors.Runtime, "archiving project")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Archive written to %s\n", zipPath)
	}

	return nil
}

// resolveCompletion obtains the raw completion text: from a file, from
// piped stdin, or by calling the configured provider. The bool reports
// whether a provider call was made.
func resolveCompletion(cmd *cobra.Command, cfg *config.Configuration, description string) (string, bool, error) {
	if fromFile, _ := cmd.Flags().GetString("from-file"); fromFile != "" {
		data, err := os.ReadFile(fromFile)
		if err != nil {
			if os.IsNotExist(err) {
				return "", false, apperrors.MissingInputFile(fromFile)
			}
			return "", false, apperrors.Wrap(err, apperrors.Runtime)
		}
		return string(data), false, nil
	}

	if description == "" {
		if stdinPiped() {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return "", false, apperrors.Wrap(err, apperrors.Runtime)
			}
			if len(strings.TrimSpace(string(data))) > 0 {
				return string(data), false, nil
			}
		}
		return "", false, apperrors.MissingDescription()
	}

	text, err := callProvider(cmd.Context(), cfg, description)
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

func callProvider(ctx context.Context, cfg *config.Configuration, description string) (string, error) {
	client, err := provider.New(provider.Config{Provider: cfg.Provider, Model: cfg.Model})
	if err != nil {
		var missing *provider.MissingKeyError
		if errors.As(err, &missing) {
			return "", apperrors.APIKeyMissing(missing.Provider, missing.EnvVar)
		}
		return "", apperrors.InvalidProvider(cfg.Provider)
	}

	pcfg := provider.Config{
		Provider:   cfg.Provider,
		Model:      cfg.Model,
		MaxRetries: cfg.MaxRetries,
		Timeout:    time.Duration(cfg.Timeout) * time.Second,
	}

	display := progress.NewDisplay(progress.DetectTerminalCapabilities(), cfg.ShowProgress)
	display.Start(fmt.Sprintf("Asking %s to design the prototype", client.Name()))

	text, err := provider.Complete(ctx, client, pcfg, buildPrompt(description))
	if err != nil {
		display.Fail("Provider call failed", err)
		if ctx.Err() != nil || strings.Contains(err.Error(), "deadline exceeded") {
			return "", apperrors.TimeoutError(pcfg.Timeout.String(), client.Name())
		}
		return "", apperrors.WrapWithMessage(err, apperrors.Runtime, "provider call failed",
			"check your API key and network connection",
			"increase max_retries or timeout in your config")
	}
	display.Succeed("Completion received")
	return text, nil
}

// projectName picks the target directory name: the --name flag, then a
// slug of the description, then a fixed fallback.
func projectName(cmd *cobra.Command, description string) string {
	if name, _ := cmd.Flags().GetString("name"); name != "" {
		return materialize.Slug(name)
	}
	if description != "" {
		slug := materialize.Slug(description)
		if len(slug) > 60 {
			slug = strings.Trim(slug[:60], "-")
		}
		if slug != "" {
			return slug
		}
	}
	return "prototype"
}

func confirmOverwrite(cmd *cobra.Command, cfg *config.Configuration, targetDir string) error {
	if cfg.SkipConfirmations {
		return nil
	}
	if _, err := os.Stat(targetDir); err != nil {
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Project directory %s exists. Overwrite? [y/N]: ", targetDir)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	if answer != "y" && answer != "yes" {
		return apperrors.NewArgumentError(
			"aborted: project directory already exists",
			"pass --name to pick a different directory",
			"or rerun with --yes to overwrite",
		)
	}
	return nil
}

func printResult(out io.Writer, targetDir string, result *pipeline.Result) {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Fprintf(out, "%s %d files written to %s\n", green.Sprint("✓"), len(result.Files), targetDir)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f.Path)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintf(out, "%s\n", yellow.Sprintf("%d warnings (see prototype.warnings.txt):", len(result.Warnings)))
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}
}

func stdinPiped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}
