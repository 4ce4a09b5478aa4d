package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/caportal/prorate-calculator/internal/calculation"
	"github.com/caportal/prorate-calculator/internal/config"
	applog "github.com/caportal/prorate-calculator/internal/log"
)

// errRejected signals a non-zero exit after the rejection was already rendered.
var errRejected = errors.New("calculation rejected")

// app is the state shared by subcommands once the root pre-run has loaded configuration.
type app struct {
	envFile  string
	logLevel string

	cfg    config.AppConfig
	logger *applog.Logger
	engine *calculation.ProrationEngine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "prorate",
		Short:         "Prorate monthly subscription charges over the start month",
		Long:          "prorate computes the daily cost, days used and prorated amounts of a monthly subscription\nfor the calendar month in which it started.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load settings from this .env file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override PRORATE_LOG_LEVEL (debug, info, warn, error)")

	root.AddCommand(
		newCalcCmd(a),
		newBatchCmd(a),
		newServeCmd(a),
		newLinksCmd(),
		newLearnCmd(),
		newFormatsCmd(),
		newExampleCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	var files []string
	if a.envFile != "" {
		files = append(files, a.envFile)
	}
	cfg, err := config.LoadAppConfig(files...)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		level, err := applog.ParseLevel(a.logLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}
	a.cfg = cfg

	logCfg := applog.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logCfg.Writer = cmd.ErrOrStderr()
	a.logger = applog.New(logCfg)

	a.engine = calculation.NewProrationEngine()
	a.engine.SetLogger(applog.CalcLogger{L: a.logger.WithComponent(applog.ComponentEngine)})
	return nil
}
