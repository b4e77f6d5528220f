package cmd

import (
	"fmt"
	"time"

	"github.com/abdul-hamid-achik/reqfile/packages/core/config"
	"github.com/abdul-hamid-achik/reqfile/packages/core/runner"
	"github.com/abdul-hamid-achik/reqfile/packages/logging"
	"github.com/abdul-hamid-achik/reqfile/packages/output"
	"github.com/spf13/cobra"
)

// settings supplies flag defaults from REQFILE_* variables. A bad value is
// reported once the logger exists and the built-in defaults are used.
var settings, settingsErr = config.Load()

var (
	envFileFlag   string
	verbosityFlag string
	timeoutFlag   time.Duration
	noColorFlag   bool
	prettyFlag    bool
	dryRunFlag    bool
)

func init() {
	// Shared with validate
	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&envFileFlag, "env-file", "e", settings.EnvFile, "Base request file merged beneath the request file (env: REQFILE_ENV_FILE)")
	persistent.StringVarP(&verbosityFlag, "verbosity", "V", settings.Verbosity, "Output level: minimal, normal, detailed (env: REQFILE_VERBOSITY)")
	persistent.BoolVar(&noColorFlag, "no-color", settings.NoColor, "Disable colored output (env: REQFILE_NO_COLOR)")

	flags := rootCmd.Flags()
	flags.DurationVar(&timeoutFlag, "timeout", settings.Timeout, "Request timeout, 0 for none (e.g., 5s, 1m) (env: REQFILE_TIMEOUT)")
	flags.BoolVar(&prettyFlag, "pretty", settings.Pretty, "Re-indent JSON response bodies (env: REQFILE_PRETTY)")
	flags.BoolVar(&dryRunFlag, "dry-run", false, "Build and print the request without sending it")

	_ = rootCmd.RegisterFlagCompletionFunc("verbosity", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return logging.Names(), cobra.ShellCompDirectiveNoFileComp
	})
}

// newLogger builds the one logger for this invocation.
func newLogger(cmd *cobra.Command) (*logging.Logger, error) {
	level, err := logging.ParseVerbosity(verbosityFlag)
	if err != nil {
		return nil, &usageError{err: err}
	}

	logger := logging.New(
		logging.WithWriter(cmd.OutOrStdout()),
		logging.WithErrorWriter(cmd.ErrOrStderr()),
		logging.WithNoColor(noColorFlag),
	)
	logger.Init(level)

	switch {
	case settingsErr != nil:
		logger.Notice(logging.Normal, "ignoring REQFILE_* settings: %v", settingsErr)
	case !settings.IsDefault():
		logger.Notice(logging.Detailed, "REQFILE_* settings in effect: %+v", *settings)
	}
	return logger, nil
}

func runCommand(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	if timeoutFlag < 0 {
		return &usageError{err: fmt.Errorf("invalid timeout %s: must not be negative", timeoutFlag)}
	}

	formatter := output.NewConsoleFormatter(
		output.WithNoColor(noColorFlag),
		output.WithPrettyJSON(prettyFlag),
	)

	r := runner.NewRunner(&runner.Config{
		EnvFile: envFileFlag,
		Timeout: timeoutFlag,
		DryRun:  dryRunFlag,
	}, runner.WithLogger(logger), runner.WithFormatter(formatter))

	_, err = r.RunFile(cmd.Context(), args[0])
	return err
}
