package app

import "github.com/spf13/cobra"

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell autocompletion scripts",
		Long: `Generate autocompletion scripts for your shell.

Examples:
  # Bash (add to ~/.bashrc)
  source <(resourcectl completion bash)

  # Zsh (add to ~/.zshrc)
  source <(resourcectl completion zsh)

  # Fish
  resourcectl completion fish > ~/.config/fish/completions/resourcectl.fish

  # PowerShell
  resourcectl completion powershell | Out-String | Invoke-Expression`,
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			default:
				return cmd.Help()
			}
		},
	}

	return cmd
}
