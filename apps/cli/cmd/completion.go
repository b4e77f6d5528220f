package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// completionShells lists the shells in the order help shows them.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

var completionWriters = map[string]func(*cobra.Command, io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error {
		return root.GenBashCompletionV2(w, true)
	},
	"zsh": (*cobra.Command).GenZshCompletion,
	"fish": func(root *cobra.Command, w io.Writer) error {
		return root.GenFishCompletion(w, true)
	},
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
}

var completionCmd = &cobra.Command{
	Use:   "completion <shell>",
	Short: "Print a shell completion script",
	Long: `Print a completion script for bash, zsh, fish or powershell on stdout.
Flag values such as --verbosity complete as well as subcommands.

Examples:
  source <(reqfile completion bash)
  reqfile completion zsh > "${fpath[1]}/_reqfile"
  reqfile completion fish > ~/.config/fish/completions/reqfile.fish
  reqfile completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells,
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		write, ok := completionWriters[args[0]]
		if !ok {
			return &usageError{err: fmt.Errorf("unsupported shell %q", args[0])}
		}
		return write(cmd.Root(), cmd.OutOrStdout())
	},
}
