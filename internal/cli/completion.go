package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for npyi.

Besides commands and flag names, the script completes the values npyi
validates locally:

  --address-purpose        LOCATION, MAILING, PRIMARY, SECONDARY
  --use-first-name-alias   true, false
  --api-version            1.0, 2.0, 2.1
  --output                 table, json

Load it for the current session:

  bash:        source <(npyi completion bash)
  zsh:         source <(npyi completion zsh)
  fish:        npyi completion fish | source
  powershell:  npyi completion powershell | Out-String | Invoke-Expression

To load it in every session, write the script to your shell's completion
directory instead, e.g. npyi completion zsh > "${fpath[1]}/_npyi".
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
