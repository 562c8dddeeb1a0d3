// Package main provides the asset-runner CLI application.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webasset-toolkit/asset-runner/pkg/version"
)

// versionCmd represents the version command with detailed output
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Info()
		fmt.Printf("asset-runner version: %s\n", info["version"])
		fmt.Printf("  build date: %s\n", info["buildDate"])
		fmt.Printf("  git commit: %s\n", info["gitCommit"])
		fmt.Printf("  go version: %s\n", info["goVersion"])
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
