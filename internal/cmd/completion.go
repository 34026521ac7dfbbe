// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate completion script for your shell",
	Long: `To load completions:

Bash:

  $ source <(dqjs completion bash)

  # To load completions for each session, add to your .bashrc:
  $ dqjs completion bash > /usr/local/etc/bash_completion.d/dqjs

Zsh:

  # To load completions for each session, add to your .zshrc:
  $ source <(dqjs completion zsh)

  # Alternatively, you can add the completion script to your fpath:
  $ dqjs completion zsh > "${fpath[1]}/_dqjs"

Fish:

  $ dqjs completion fish | source

  # To load completions for each session:
  $ dqjs completion fish > ~/.config/fish/completions/dqjs.fish

PowerShell:

  PS> dqjs completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
