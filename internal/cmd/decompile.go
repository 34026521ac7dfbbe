// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dotandev/dqjs/internal/bytecode"
	"github.com/dotandev/dqjs/internal/cache"
	"github.com/dotandev/dqjs/internal/decompiler"
	"github.com/dotandev/dqjs/internal/logger"
)

var (
	modeFlag        string
	versionFlag     string
	deobfuscateFlag bool
	optimizeFlag    bool
	noCacheFlag     bool
)

// decompileCmd groups the decompilation entry points.
var decompileCmd = &cobra.Command{
	Use:   "decompile",
	Short: "Decompile a bytecode artifact",
}

// decompileFileCmd decompiles a bytecode file from disk.
var decompileFileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Decompile a bytecode file",
	Long: `Read a bytecode artifact from disk and print every embedded function,
either as best-effort pseudo source or as a linear disassembly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		mode := modeFlag
		if mode == "" {
			mode = cfg.DefaultMode
		}
		opts, err := buildOptions(mode, versionFlag)
		if err != nil {
			return err
		}

		useCache := cfg.CacheEnabled && !noCacheFlag
		key := cache.Key{
			InputDigest: cache.DigestInput(data),
			Mode:        mode,
			Version:     versionFlag,
			Deobfuscate: deobfuscateFlag,
			Optimize:    optimizeFlag,
		}

		var store *cache.Store
		if useCache {
			store, err = cache.Open(cfg.CachePath)
			if err != nil {
				// A broken cache never blocks decompilation.
				logger.Logger.Debug("cache unavailable", slog.String("error", err.Error()))
			} else {
				defer store.Close()
				if out, found, err := store.Lookup(key); err == nil && found {
					logger.Logger.Debug("cache hit", slog.String("digest", key.InputDigest))
					fmt.Fprint(cmd.OutOrStdout(), out)
					return nil
				}
			}
		}

		out, err := decompiler.Decompile(data, opts)
		if err != nil {
			color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "decompilation failed: %v\n", err)
			return err
		}

		if store != nil {
			if err := store.Save(key, out); err != nil {
				logger.Logger.Debug("cache save failed", slog.String("error", err.Error()))
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func buildOptions(mode, version string) (decompiler.Options, error) {
	opts := decompiler.DefaultOptions()
	opts.Deobfuscate = deobfuscateFlag
	opts.Optimize = optimizeFlag
	if cfg != nil && cfg.LegacyDebugMask != 0 {
		opts.Legacy = bytecode.LegacyConfig{DebugFlagMask: cfg.LegacyDebugMask}
	}

	switch mode {
	case "", "pseudo":
		opts.Mode = decompiler.ModePseudo
	case "disasm":
		opts.Mode = decompiler.ModeDisasm
	default:
		return opts, fmt.Errorf("invalid mode %q: must be pseudo or disasm", mode)
	}

	switch version {
	case "", "auto":
		opts.Version = decompiler.VersionAuto
	case "current":
		opts.Version = decompiler.VersionCurrent
	case "legacy":
		opts.Version = decompiler.VersionLegacy
	default:
		return opts, fmt.Errorf("invalid version %q: must be auto, current or legacy", version)
	}
	return opts, nil
}

func init() {
	decompileFileCmd.Flags().StringVar(&modeFlag, "mode", "", "Output mode: pseudo or disasm (default from config)")
	decompileFileCmd.Flags().StringVar(&versionFlag, "version", "auto", "Bytecode dialect: auto, current or legacy")
	decompileFileCmd.Flags().BoolVar(&deobfuscateFlag, "deobfuscate", false, "Give human readable names to anonymous functions / closures")
	decompileFileCmd.Flags().BoolVar(&optimizeFlag, "optimize", false, "Apply simple output optimizations to reduce generated pseudo code size")
	decompileFileCmd.Flags().BoolVar(&noCacheFlag, "no-cache", false, "Bypass the decompilation result cache")

	decompileCmd.AddCommand(decompileFileCmd)
	rootCmd.AddCommand(decompileCmd)
}
