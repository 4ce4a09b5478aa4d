package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caportal/prorate-calculator/internal/calculation"
	"github.com/caportal/prorate-calculator/internal/domain"
	applog "github.com/caportal/prorate-calculator/internal/log"
	"github.com/caportal/prorate-calculator/internal/output"
	"github.com/caportal/prorate-calculator/pkg/dateutil"
)

func newCalcCmd(a *app) *cobra.Command {
	var (
		req     domain.ProrationRequest
		amount  string
		format  string
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Prorate a single subscription",
		Example: `  prorate calc --amount 50 --start 2024-02-01 --date 2024-02-15
  prorate calc --amount 100 --start 2023-01-10 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := dateutil.FormatCalendarDate(calculation.Today())
			if !cmd.Flags().Changed("start") {
				req.StartDate = today
			}
			if !cmd.Flags().Changed("date") {
				req.CalculationDate = today
			}
			req.TotalMonthlyCost = domain.Amount(amount)

			report := a.engine.SingleReport(req)
			if err := a.emit(cmd, report, format, outPath); err != nil {
				return err
			}
			if report.Failures() > 0 {
				a.logger.Debug("calculation rejected",
					applog.FieldErrorKind, string(domain.KindOf(report.Entries[0].Err)),
					applog.FieldError, report.Entries[0].Err)
				return errRejected
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "total monthly subscription cost, e.g. 50 or $49.99")
	cmd.Flags().StringVarP(&req.StartDate, "start", "s", "", "subscription start date YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&req.CalculationDate, "date", "d", "", "calculation date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&req.Name, "name", "", "label shown in reports")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (default PRORATE_OUTPUT_FORMAT)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the report to this file instead of stdout")
	return cmd
}

// emit renders a report to stdout, or to a file when a path is given or the
// format is binary.
func (a *app) emit(cmd *cobra.Command, report *domain.ProrationReport, format, outPath string) error {
	if format == "" {
		format = a.cfg.OutputFormat
	}
	f, err := output.ResolveFormatter(format)
	if err != nil {
		return err
	}
	exporter := a.logger.WithComponent(applog.ComponentExporter)

	if outPath == "" && !isBinary(f) {
		data, err := f.Format(report)
		if err != nil {
			return fmt.Errorf("format %s: %w", f.Name(), err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	path, err := output.WriteFormatted(f, report, outPath)
	if err != nil {
		return err
	}
	exporter.Info("report written", applog.FieldFormat, f.Name(), applog.FieldFile, path, applog.FieldEntries, len(report.Entries))
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	return nil
}

func isBinary(f output.Formatter) bool {
	switch f.Extension() {
	case "pdf", "xlsx":
		return true
	}
	return false
}
