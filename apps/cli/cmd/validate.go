package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/reqfile/packages/core/runner"
	"github.com/abdul-hamid-achik/reqfile/packages/http"
	"github.com/abdul-hamid-achik/reqfile/packages/logging"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a request file builds a complete request",
	Long: `Merge the request file over the base file and build the request
without sending it. Reports the first missing field, if any.

Examples:
  reqfile validate get-user.toml
  reqfile validate get-user.toml --env-file envs/staging.toml`,
	Args: exactlyOneFile,
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	r := runner.NewRunner(&runner.Config{EnvFile: envFileFlag}, runner.WithLogger(logger))

	merged, _, err := r.Load(args[0])
	if err != nil {
		return err
	}

	req, err := http.BuildRequest(merged)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	logger.Printf(logging.Minimal, "Valid: %s (%s %s)", args[0], req.Method, req.URL)
	return nil
}
