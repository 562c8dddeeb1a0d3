// Package main provides the asset-runner CLI application.
package main

import (
	"github.com/spf13/cobra"

	"github.com/webasset-toolkit/asset-runner/pkg/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "asset-runner",
	Short: "Web Asset Toolkit Runner",
	Long: `Web Asset Toolkit Runner - a build-time asset processing pipeline.

The runner chains textual transformations over CSS/JS resources and
aggregates lint diagnostics into structured XML reports.`,
	Version: version.FullString(),
}

// rootFlags holds the persistent flags shared by all commands
type rootFlags struct {
	config   string
	logLevel string
}

var rootOpts rootFlags

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootOpts.config, "config", "c", "", "config file (default is ./.asset-runner.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootOpts.logLevel, "log-level", "", "log level: debug, info, warn, error")
}
