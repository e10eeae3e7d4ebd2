package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	apperrors "protoforge/internal/errors"
	"protoforge/internal/history"
)

var recentCmd = &cobra.Command{
	Use:     "recent",
	Short:   "List recent generation runs",
	Example: `  protoforge recent
  protoforge recent --limit 5`,
	GroupID: GroupInspection,
	RunE:    runRecent,
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().IntP("limit", "l", 10, "Maximum number of runs to show")
	recentCmd.Flags().Bool("clear", false, "Clear the run history")
}

func runRecent(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Configuration)
	}

	if clear, _ := cmd.Flags().GetBool("clear"); clear {
		if err := history.Clear(cfg.StateDir); err != nil {
			return apperrors.Wrap(err, apperrors.Runtime)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
		return nil
	}

	hist, err := history.Load(cfg.StateDir)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}

	out := cmd.OutOrStdout()
	if len(hist.Entries) == 0 {
		fmt.Fprintln(out, "No runs yet. Try: protoforge generate \"<description>\"")
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	entries := hist.Entries
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	// Newest first
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		var mark string
		switch e.Status {
		case history.StatusCompleted:
			mark = green.Sprint("✓")
		case history.StatusFailed:
			mark = red.Sprint("✗")
		default:
			mark = yellow.Sprint("…")
		}

		line := fmt.Sprintf("%s %s  %s", mark, e.CreatedAt.Format("2006-01-02 15:04"), e.Project)
		if e.Status == history.StatusCompleted {
			line += fmt.Sprintf("  (%d files", e.Files)
			if e.Duration != "" {
				line += ", " + e.Duration
			}
			line += ")"
		} else if e.Error != "" {
			line += "  " + e.Error
		}
		if e.Provider != "" {
			line += "  [" + e.Provider + "]"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
