// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dotandev/dqjs/internal/config"
	"github.com/dotandev/dqjs/internal/logger"
)

// cfg is the loaded configuration, available to every subcommand.
var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dqjs",
	Short: "Decompiler for QuickJS-style bytecode artifacts",
	Long: `Dqjs reconstructs readable source from compiled QuickJS-style bytecode
artifacts. It understands two on-disk dialects (current and legacy) and
auto-selects between them from the version byte.

Key features:
  - Best-effort pseudo-source output with if/else and while recovery
  - Linear disassembly of every embedded function
  - Deobfuscation naming for anonymous closures
  - Result caching for repeated runs over large artifacts

Examples:
  dqjs decompile file bundle.jsc                   Pseudo-source output
  dqjs decompile file --mode disasm bundle.jsc     Disassembly
  dqjs decompile file --version legacy old.jsc     Pin the legacy dialect
  dqjs cache status                                Check cache usage

Get started with 'dqjs decompile --help'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logger.SetLevel(logger.ParseLevel(cfg.LogLevel))
		logger.Logger.Debug("configuration loaded", slog.String("default_mode", cfg.DefaultMode))
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}
