// Package main provides the asset-runner CLI application.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/webasset-toolkit/asset-runner/pkg/observability"
	"github.com/webasset-toolkit/asset-runner/pkg/report"
	"github.com/webasset-toolkit/asset-runner/pkg/runner"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [raw-lint.json]",
	Short: "Format raw lint output as a structured XML report",
	Long: `Format raw lint tool output as a structured XML report.

The input file maps resource paths to the raw records produced by the
lint tool. The records are normalized into the canonical model and
rendered in the selected dialect (plain, checkstyle or csslint).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if reportOpts.dialect != "" {
			cfg.Report.Dialect = reportOpts.dialect
		}
		if reportOpts.tool != "" {
			cfg.Report.Tool = reportOpts.tool
		}
		if reportOpts.output != "" {
			cfg.Report.Output = reportOpts.output
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		log := observability.NewLogger(cfg.Global.LogLevel)
		r, err := runner.NewRunner(cfg, log)
		if err != nil {
			return err
		}

		result, err := r.LintReport(cmd.Context(), runner.ReportOptions{
			RawData: raw,
			Paths:   reportOpts.paths,
			Tool:    cfg.Report.Tool,
			Dialect: cfg.Report.Dialect,
		})
		if err != nil {
			return err
		}

		w := report.NewWriter()
		if cfg.Report.Output != "" {
			return w.WriteFile(cfg.Report.Output, result.Document)
		}
		return w.Write(os.Stdout, result.Document)
	},
}

// reportFlags holds the flags for the report command
type reportFlags struct {
	dialect string
	tool    string
	output  string
	paths   []string
}

var reportOpts reportFlags

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportOpts.dialect, "dialect", "d", "", "report dialect: plain, checkstyle, csslint")
	reportCmd.Flags().StringVarP(&reportOpts.tool, "tool", "t", "", "raw diagnostic schema: linter, csslint")
	reportCmd.Flags().StringVarP(&reportOpts.output, "output", "o", "", "report file path (default stdout)")
	reportCmd.Flags().StringSliceVar(&reportOpts.paths, "paths", nil, "resource order in the report (default: all resources, sorted)")
}
