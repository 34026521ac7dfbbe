// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build information populated by ldflags
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

type VersionInfo struct {
	Version   string `json:"version"`
	CommitSHA string `json:"commit_sha"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display detailed build information including version, commit hash, and build date",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		info := VersionInfo{
			Version:   Version,
			CommitSHA: CommitSHA,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}

		if jsonOutput {
			output, _ := json.MarshalIndent(info, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Dqjs Version: %s\n", info.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "Commit SHA:   %s\n", info.CommitSHA)
		fmt.Fprintf(cmd.OutOrStdout(), "Build Date:   %s\n", info.BuildDate)
		fmt.Fprintf(cmd.OutOrStdout(), "Go Version:   %s\n", info.GoVersion)
	},
}

func init() {
	versionCmd.Flags().Bool("json", false, "Output version information as JSON")
	rootCmd.AddCommand(versionCmd)
}
