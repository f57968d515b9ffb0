package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"dfscaler/pkg/config"
	"dfscaler/pkg/data"
	"dfscaler/pkg/frame"
	"dfscaler/pkg/paramfile"
	"dfscaler/pkg/scale"
	"dfscaler/pkg/stats"
)

var (
	errNoInput  = errors.New("no input CSV given")
	errNoParams = errors.New("no parameter file given, set --params")
)

func getFitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fit [input-csv]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Learn per-column mean and standard deviation and save them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			if cfg.Params == "" {
				return errNoParams
			}
			df, err := readFrame(cfg)
			if err != nil {
				return err
			}
			s := scale.NewStandardizer(scale.WithLogger(logger))
			if err := s.Fit(df, fitOptions(cfg)...); err != nil {
				return err
			}
			return saveParams(cfg, s, logger)
		},
	}
}

func getTransformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transform [input-csv]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Standardize a CSV with previously fitted parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithParams(cmd, args, (*scale.Standardizer).Transform)
		},
	}
}

func getInverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inverse [input-csv]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Map a standardized CSV back to its original scale",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithParams(cmd, args, (*scale.Standardizer).InverseTransform)
		},
	}
}

func getFitTransformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fit-transform [input-csv]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Fit on a CSV and standardize it in one pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			df, err := readFrame(cfg)
			if err != nil {
				return err
			}
			s := scale.NewStandardizer(scale.WithLogger(logger))
			if _, err := s.FitTransform(df, fitOptions(cfg)...); err != nil {
				return err
			}
			if cfg.Params != "" {
				if err := saveParams(cfg, s, logger); err != nil {
					return err
				}
			}
			return writeFrame(cmd, cfg, df)
		},
	}
}

func getDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [input-csv]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Print summary statistics of the numeric columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			df, err := readFrame(cfg)
			if err != nil {
				return err
			}
			if err := describe(cmd.OutOrStdout(), df, cfg.DDOF); err != nil {
				return err
			}
			if corr, _ := cmd.Flags().GetBool(flagCorr); corr {
				return correlation(cmd.OutOrStdout(), df)
			}
			return nil
		},
	}
	cmd.Flags().Bool(flagCorr, false, "also print the Pearson correlation matrix")
	return cmd
}

type transformFunc func(*scale.Standardizer, *frame.Frame) (*frame.Frame, error)

func runWithParams(cmd *cobra.Command, args []string, fn transformFunc) error {
	cfg, logger, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	if cfg.Params == "" {
		return errNoParams
	}
	params, err := paramfile.Load(cfg.Params)
	if err != nil {
		return err
	}
	s, err := scale.FromParams(params, scale.WithLogger(logger))
	if err != nil {
		return err
	}
	df, err := readFrame(cfg)
	if err != nil {
		return err
	}
	if _, err := fn(s, df); err != nil {
		return err
	}
	return writeFrame(cmd, cfg, df)
}

func fitOptions(cfg config.Config) []scale.FitOption {
	opts := []scale.FitOption{scale.WithDDOF(cfg.DDOF)}
	switch {
	case len(cfg.Include) > 0:
		opts = append(opts, scale.WithInclude(cfg.Include...))
	case len(cfg.Exclude) > 0:
		opts = append(opts, scale.WithExclude(cfg.Exclude...))
	}
	return opts
}

func readFrame(cfg config.Config) (*frame.Frame, error) {
	if cfg.Input == "" {
		return nil, errNoInput
	}
	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if isArrow(cfg.Input) {
		return data.ReadArrow(f)
	}
	return data.ReadCSV(f, data.CSVOptions{Comma: cfg.CommaRune(), Categorical: cfg.Categorical})
}

// isArrow reports whether path names an Arrow IPC stream.
func isArrow(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".arrow")
}

func writeFrame(cmd *cobra.Command, cfg config.Config, df *frame.Frame) error {
	if cfg.Output == "" {
		return data.WriteCSV(cmd.OutOrStdout(), df)
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	write := data.WriteCSV
	if isArrow(cfg.Output) {
		write = data.WriteArrow
	}
	if err := write(f, df); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func saveParams(cfg config.Config, s *scale.Standardizer, logger zerolog.Logger) error {
	params, err := s.Params()
	if err != nil {
		return err
	}
	if err := paramfile.Save(cfg.Params, params); err != nil {
		return err
	}
	logger.Info().Str("path", cfg.Params).Strs("columns", s.Columns()).Msg("saved standardizer parameters")
	return nil
}

func describe(w io.Writer, df *frame.Frame, ddof int) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	for _, name := range df.NumericNames() {
		values, err := df.Float64s(name)
		if err != nil {
			return err
		}
		s, err := stats.Describe(values, ddof)
		if err != nil {
			return err
		}
		row := []string{name, strconv.Itoa(s.Count)}
		for _, v := range []float64{s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max} {
			row = append(row, strconv.FormatFloat(v, 'g', 6, 64))
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

// correlation prints the Pearson correlation matrix of the numeric columns.
func correlation(w io.Writer, df *frame.Frame) error {
	names := df.NumericNames()
	if len(names) == 0 || df.NumRows() < 2 {
		return nil
	}
	m, err := df.Matrix(names...)
	if err != nil {
		return err
	}
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, m, nil)

	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{""}, names...))
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	for i, name := range names {
		row := []string{name}
		for j := range names {
			row = append(row, strconv.FormatFloat(corr.At(i, j), 'f', 4, 64))
		}
		table.Append(row)
	}
	table.Render()
	return nil
}
