package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	apperrors "protoforge/internal/errors"
	"protoforge/internal/extract"
	"protoforge/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a completion without writing anything",
	Long: `Validate a saved completion.

The completion is extracted, decoded, and validated exactly as generate
would, but nothing is written to disk. Diagnostics and warnings go to
stdout; the exit code reflects the outcome.`,
	Example: `  protoforge validate completion.txt
  cat completion.txt | protoforge validate`,
	Args:    cobra.MaximumNArgs(1),
	GroupID: GroupInspection,
	RunE:    runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	rawText, err := readValidateInput(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	red := color.New(color.FgRed, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)

	candidate := extract.Candidate(rawText)
	raw, err := extract.Decode(candidate, rawText)
	if err != nil {
		var pe *extract.ParseError
		if errors.As(err, &pe) {
			fmt.Fprintf(out, "%s %s\n\n%s\n", red.Sprint("✗"), pe.Error(), pe.Context())
		}
		return apperrors.Wrap(err, apperrors.Runtime)
	}

	res, err := schema.Validate(raw)
	if err != nil {
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintf(out, "%s completion is not a usable prototype spec\n", red.Sprint("✗"))
			for _, d := range ve.Diagnostics {
				fmt.Fprintf(out, "  %s: %s\n", d.Path, d.Reason)
			}
		}
		return apperrors.Wrap(err, apperrors.Runtime)
	}

	fmt.Fprintf(out, "%s completion parses cleanly (%d snippets, %d BOM entries)\n",
		green.Sprint("✓"), len(res.Spec.Snippets), len(res.Spec.BOM))
	if len(res.Warnings) > 0 {
		fmt.Fprintf(out, "%s\n", yellow.Sprintf("%d warnings:", len(res.Warnings)))
		for _, w := range res.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}
	return nil
}

func readValidateInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			if os.IsNotExist(err) {
				return "", apperrors.MissingInputFile(args[0])
			}
			return "", apperrors.Wrap(err, apperrors.Runtime)
		}
		return string(data), nil
	}

	if stdinPiped() {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", apperrors.Wrap(err, apperrors.Runtime)
		}
		return string(data), nil
	}

	return "", apperrors.NewArgumentErrorWithUsage(
		"no completion to validate",
		"protoforge validate <file>",
		"pass a file path or pipe the completion on stdin",
	)
}
