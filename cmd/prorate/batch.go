package main

import (
	"github.com/spf13/cobra"

	"github.com/caportal/prorate-calculator/internal/config"
	applog "github.com/caportal/prorate-calculator/internal/log"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		format  string
		outPath string
		workers int
		strict  bool
	)
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Prorate every calculation in a YAML batch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := a.logger.WithComponent(applog.ComponentBatch)

			batch, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			logger.Info("batch loaded", applog.FieldFile, args[0], applog.FieldEntries, len(batch.Calculations))

			if workers <= 0 {
				workers = a.cfg.BatchWorkers
			}
			report, err := a.engine.RunBatch(cmd.Context(), batch, workers)
			if err != nil {
				return err
			}
			if err := a.emit(cmd, report, format, outPath); err != nil {
				return err
			}
			if strict && report.Failures() > 0 {
				return errRejected
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (default PRORATE_OUTPUT_FORMAT)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent calculations (default PRORATE_BATCH_WORKERS)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any calculation is rejected")
	return cmd
}
