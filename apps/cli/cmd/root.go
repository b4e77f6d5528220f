package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abdul-hamid-achik/reqfile/packages/core/config"
	"github.com/abdul-hamid-achik/reqfile/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "reqfile <file>",
	Short: "Send one HTTP request described in a plain text file.",
	Long: `reqfile reads a single HTTP request from a TOML (or YAML) file,
layers it over a shared base file, sends it and prints the response.

Request file keys: method, host, path, body and a [headers] table.
The base file (env.toml by default) uses the same keys; values in the
request file win.

Examples:
  reqfile get-user.toml
  reqfile create-user.toml --env-file envs/staging.toml
  reqfile create-user.toml --verbosity detailed --dry-run`,
	Args:          exactlyOneFile,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCommand,
}

// Execute runs the CLI and exits the process with the code for the error,
// if any.
func Execute(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = v

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		formatter := output.NewConsoleFormatter(output.WithNoColor(noColorFlag))
		fmt.Fprintln(rootCmd.ErrOrStderr(), formatter.FormatError(err))
		os.Exit(ExitCode(err))
	}
}

func exactlyOneFile(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	rootCmd.SetVersionTemplate("reqfile version {{.Version}}\n")
	if desc := config.Describe(); desc != "" {
		rootCmd.Long += "\n\n" + desc
	}

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}
