package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "protoforge/internal/errors"
	"protoforge/internal/logging"
	"protoforge/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local dashboard API",
	Long: `Serve the dashboard HTTP API.

Exposes generation, run history, and archiving over HTTP for local
tooling. The listen address comes from serve_addr in the config.`,
	Example: `  protoforge serve
  protoforge serve --addr :9000`,
	GroupID: GroupGeneration,
	RunE:    runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Configuration)
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.ServeAddr = addr
	}

	debug, _ := cmd.Flags().GetBool("debug")
	log, err := logging.New(debug)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}
	defer log.Sync()

	fmt.Fprintf(cmd.OutOrStdout(), "Dashboard API listening on %s\n", cfg.ServeAddr)
	if err := server.New(cfg, log).Run(); err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}
	return nil
}
