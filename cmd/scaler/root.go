package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"dfscaler/pkg/config"
)

const (
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
	flagInclude     = "include"
	flagExclude     = "exclude"
	flagDDOF        = "ddof"
	flagParams      = "params"
	flagOutput      = "output"
	flagCategorical = "categorical"
	flagCorr        = "corr"
)

// NewRootCmd builds the scaler command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "scaler",
		Short:         "Standardize the numeric columns of CSV tables",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagConfig, "", "path to a configuration file")
	flags.String(flagLogLevel, "info", "logging level (trace|debug|info|warn|error)")
	flags.String(flagLogFormat, config.LogFormatText, "logging format (json|text)")
	flags.StringSlice(flagInclude, nil, "columns to standardize (mutually exclusive with --exclude)")
	flags.StringSlice(flagExclude, nil, "numeric columns to leave untouched")
	flags.Int(flagDDOF, 0, "delta degrees of freedom of the standard deviation")
	flags.String(flagParams, "", "fitted parameter file (.yaml or .yaml.zst)")
	flags.StringP(flagOutput, "o", "", "output path, CSV or .arrow (CSV on stdout when empty)")
	flags.StringSlice(flagCategorical, nil, "columns to load as categories")

	rootCmd.AddCommand(
		getFitCmd(),
		getTransformCmd(),
		getInverseCmd(),
		getFitTransformCmd(),
		getDescribeCmd(),
	)
	return rootCmd
}

// loadConfig reads the --config file when given and lets explicitly set
// flags override it.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, zerolog.Logger, error) {
	cfg := config.Default()
	flags := cmd.Flags()

	path, err := flags.GetString(flagConfig)
	if err != nil {
		return cfg, zerolog.Nop(), err
	}
	if path != "" {
		if cfg, err = config.ParseConfig(path); err != nil {
			return cfg, zerolog.Nop(), err
		}
	}

	overrides := []struct {
		name string
		set  func() error
	}{
		{flagLogLevel, func() (err error) { cfg.Log.Level, err = flags.GetString(flagLogLevel); return }},
		{flagLogFormat, func() (err error) { cfg.Log.Format, err = flags.GetString(flagLogFormat); return }},
		{flagInclude, func() (err error) { cfg.Include, err = flags.GetStringSlice(flagInclude); return }},
		{flagExclude, func() (err error) { cfg.Exclude, err = flags.GetStringSlice(flagExclude); return }},
		{flagDDOF, func() (err error) { cfg.DDOF, err = flags.GetInt(flagDDOF); return }},
		{flagParams, func() (err error) { cfg.Params, err = flags.GetString(flagParams); return }},
		{flagOutput, func() (err error) { cfg.Output, err = flags.GetString(flagOutput); return }},
		{flagCategorical, func() (err error) { cfg.Categorical, err = flags.GetStringSlice(flagCategorical); return }},
	}
	for _, o := range overrides {
		if !flags.Changed(o.name) {
			continue
		}
		if err := o.set(); err != nil {
			return cfg, zerolog.Nop(), err
		}
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return cfg, zerolog.Nop(), err
	}
	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return cfg, zerolog.Nop(), err
	}
	return cfg, logger, nil
}
