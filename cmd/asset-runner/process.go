// Package main provides the asset-runner CLI application.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/webasset-toolkit/asset-runner/pkg/config"
	"github.com/webasset-toolkit/asset-runner/pkg/observability"
	"github.com/webasset-toolkit/asset-runner/pkg/runner"
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process [files...]",
	Short: "Run the transformation pipeline over resources",
	Long: `Run the configured transformation pipeline over CSS/JS resources.

Each resource is fed through the stage chain for its type; the fully
transformed text is written to the output directory (or stdout).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log := observability.NewLogger(cfg.Global.LogLevel)
		r, err := runner.NewRunner(cfg, log)
		if err != nil {
			return err
		}

		result, err := r.Process(cmd.Context(), runner.ProcessOptions{
			Paths: args,
			Force: processOpts.force,
		})
		if err != nil {
			return err
		}

		for _, res := range result.Resources {
			if res.Err != nil {
				fmt.Fprintf(os.Stderr, "failed: %s: %v\n", res.Path, res.Err)
				continue
			}
			if err := writeOutput(res); err != nil {
				return err
			}
		}
		if result.Failed > 0 {
			return fmt.Errorf("%d of %d resources failed", result.Failed, len(result.Resources))
		}
		return nil
	},
}

// processFlags holds the flags for the process command
type processFlags struct {
	outputDir string
	force     bool
}

var processOpts processFlags

func writeOutput(res runner.ResourceResult) error {
	if processOpts.outputDir == "" {
		_, err := os.Stdout.WriteString(res.Output)
		return err
	}
	target := filepath.Join(processOpts.outputDir, filepath.Base(res.Path))
	if err := os.MkdirAll(processOpts.outputDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, []byte(res.Output), 0o644)
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if rootOpts.config != "" {
		cfg, err = config.Load(rootOpts.config)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}
	if rootOpts.logLevel != "" {
		cfg.Global.LogLevel = rootOpts.logLevel
	}
	return cfg, nil
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&processOpts.outputDir, "output-dir", "o", "", "directory for transformed resources (default stdout)")
	processCmd.Flags().BoolVar(&processOpts.force, "force", false, "skip the processed-text cache")
}
