package main

import (
	"os"

	"github.com/joho/godotenv"

	"protoforge/internal/cli"
	apperrors "protoforge/internal/errors"
)

func main() {
	// API keys may live in a local .env file; a missing file is fine.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		if cliErr := apperrors.AsCLIError(err); cliErr != nil {
			apperrors.PrintError(cliErr)
		} else {
			os.Stderr.WriteString(apperrors.FormatSimpleError(err, apperrors.Runtime))
		}
		os.Exit(cli.ExitCode(err))
	}
}
