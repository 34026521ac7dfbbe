// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/dotandev/dqjs/internal/cmd"
	"github.com/dotandev/dqjs/internal/updater"
)

func main() {
	// Start update checker in background (non-blocking)
	go updater.NewChecker(cmd.Version).CheckForUpdates()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
