package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/profcalc/internal/report"
	"github.com/profcalc/internal/salary"
)

var exportCmd = &cobra.Command{
	Use:     "export [format]",
	Aliases: []string{"exp", "pdf"},
	Short:   "Export the salary report",
	Long: `Export the salary summary to a document. PDF is the default.

Examples:
  profcalc export --hours 8,8,8,8,8,4
  profcalc export md --hours 8,8,8,8,8 -o salario.md
  profcalc export json --hours 8,8,8,8,8 -o -`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		if len(args) > 0 {
			format = args[0]
		}
		if format == "" {
			format = cfg.DefaultFormat
		}

		in, err := inputFromFlags(cmd)
		if err != nil {
			return err
		}

		path, err := exportReport(cmd.OutOrStdout(), in, format, output)
		if err != nil {
			return err
		}
		if path != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Relatório salvo em %s\n", path)
		}
		return nil
	},
}

func reportOptions() report.Options {
	return report.Options{
		Currency: cfg.Currency,
		Location: cfg.GetLocation(),
	}
}

// exportReport renders in as format. An empty output uses the configured
// path; "-" writes to stdout and returns an empty path.
func exportReport(stdout io.Writer, in salary.Input, format, output string) (string, error) {
	log := zap.L().Named("export")

	exp, err := report.ForFormat(format, reportOptions())
	if err != nil {
		return "", err
	}
	r := report.New(in, salary.Compute(in), cfg.Now())

	if output == "-" {
		return "", exp.Export(stdout, r)
	}
	if output == "" {
		output = cfg.OutputPath(exp.Extension())
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	f, err := os.Create(output)
	if err != nil {
		return "", fmt.Errorf("failed to create report: %w", err)
	}
	if err := exp.Export(f, r); err != nil {
		f.Close()
		log.Error("export failed", zap.String("path", output), zap.Error(err))
		return "", fmt.Errorf("failed to write %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	log.Info("report written",
		zap.String("path", output),
		zap.String("format", exp.Extension()),
		zap.String("report_id", r.ID.String()),
	)
	return output, nil
}

func printSummary(w io.Writer, in salary.Input) error {
	exp, err := report.ForFormat("txt", reportOptions())
	if err != nil {
		return err
	}
	return exp.Export(w, report.New(in, salary.Compute(in), cfg.Now()))
}
