package scale

import (
	"runtime"
	"strings"

	"cosmossdk.io/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"dfscaler/pkg/frame"
)

// Stat holds the fitted mean and standard deviation of one column.
type Stat struct {
	Mean float64
	Std  float64
}

// Standardizer rescales the numeric columns of a frame with z = (x - u) / s,
// using the mean u and standard deviation s learned by Fit.
//
// A Standardizer is not safe for concurrent use while Fit is running.
type Standardizer struct {
	logger  zerolog.Logger
	workers int

	scaler  map[string]Stat
	columns []string
	ddof    int
	fitted  bool
}

func NewStandardizer(opts ...Option) *Standardizer {
	s := &Standardizer{
		logger:  zerolog.Nop(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Fit learns the mean and standard deviation of the selected columns of df.
// Without a selector every numeric column is used. Fit replaces any previous
// state and leaves df untouched; on error the previous state is kept.
func (s *Standardizer) Fit(df *frame.Frame, opts ...FitOption) error {
	if df == nil {
		return errors.Wrap(ErrInvalidTable, "nil frame")
	}
	var cfg fitConfig
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.ddof < 0 {
		return errors.Wrapf(ErrInvalidDDOF, "got %d", cfg.ddof)
	}

	columns, err := selectColumns(df, cfg)
	if err != nil {
		return err
	}

	results := make([]Stat, len(columns))
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, name := range columns {
		i, name := i, name
		g.Go(func() error {
			mean, std, err := df.MeanStd(name, cfg.ddof)
			if err != nil {
				return err
			}
			results[i] = Stat{Mean: mean, Std: std}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	scaler := make(map[string]Stat, len(columns))
	for i, name := range columns {
		scaler[name] = results[i]
		if results[i].Std == 0 {
			s.logger.Warn().Str("column", name).Msg("zero standard deviation, transform will yield non-finite values")
		}
	}
	s.scaler = scaler
	s.columns = columns
	s.ddof = cfg.ddof
	s.fitted = true

	s.logger.Debug().Strs("columns", columns).Int("ddof", cfg.ddof).Msg("standardizer fitted")
	return nil
}

// selectColumns resolves the working column list. All selector names are
// checked against df before anything is computed.
func selectColumns(df *frame.Frame, cfg fitConfig) ([]string, error) {
	if cfg.hasInclude && cfg.hasExclude {
		return nil, ErrSelectorConflict
	}
	selector := cfg.exclude
	if cfg.hasInclude {
		selector = cfg.include
	}
	var missing []string
	for _, name := range selector {
		if !df.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(ErrColumnNotFound, "selector names %s", strings.Join(missing, ", "))
	}

	if cfg.hasInclude {
		seen := make(map[string]struct{}, len(cfg.include))
		columns := make([]string, 0, len(cfg.include))
		for _, name := range cfg.include {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			kind, _ := df.Kind(name)
			if !kind.Numeric() {
				return nil, errors.Wrapf(ErrColumnType, "column %q is %s", name, kind)
			}
			columns = append(columns, name)
		}
		return columns, nil
	}

	excluded := make(map[string]struct{}, len(cfg.exclude))
	for _, name := range cfg.exclude {
		excluded[name] = struct{}{}
	}
	var columns []string
	for _, name := range df.NumericNames() {
		if _, ok := excluded[name]; !ok {
			columns = append(columns, name)
		}
	}
	return columns, nil
}

// Transform standardizes every fitted column of df in place and returns df.
// Fitted columns are rewritten as float64 columns. Columns with a zero
// standard deviation become ±Inf or NaN.
func (s *Standardizer) Transform(df *frame.Frame) (*frame.Frame, error) {
	return s.apply(df, func(x []float64, st Stat) {
		floats.AddConst(-st.Mean, x)
		floats.Scale(1/st.Std, x)
	})
}

// InverseTransform maps standardized values of df back to the original scale,
// in place, and returns df.
func (s *Standardizer) InverseTransform(df *frame.Frame) (*frame.Frame, error) {
	return s.apply(df, func(x []float64, st Stat) {
		floats.Scale(st.Std, x)
		floats.AddConst(st.Mean, x)
	})
}

// TransformCopy is Transform on a deep copy of df; df is left untouched.
func (s *Standardizer) TransformCopy(df *frame.Frame) (*frame.Frame, error) {
	if df == nil {
		return nil, errors.Wrap(ErrInvalidTable, "nil frame")
	}
	return s.Transform(df.Clone())
}

// InverseTransformCopy is InverseTransform on a deep copy of df.
func (s *Standardizer) InverseTransformCopy(df *frame.Frame) (*frame.Frame, error) {
	if df == nil {
		return nil, errors.Wrap(ErrInvalidTable, "nil frame")
	}
	return s.InverseTransform(df.Clone())
}

// FitTransform fits on df and then transforms df in place.
func (s *Standardizer) FitTransform(df *frame.Frame, opts ...FitOption) (*frame.Frame, error) {
	if err := s.Fit(df, opts...); err != nil {
		return nil, err
	}
	return s.Transform(df)
}

// apply validates that every fitted column is present and numeric before
// writing any of them, so a failed call leaves df as it was.
func (s *Standardizer) apply(df *frame.Frame, fn func([]float64, Stat)) (*frame.Frame, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	if df == nil {
		return nil, errors.Wrap(ErrInvalidTable, "nil frame")
	}

	values := make([][]float64, len(s.columns))
	for i, name := range s.columns {
		kind, err := df.Kind(name)
		if err != nil {
			return nil, err
		}
		if !kind.Numeric() {
			return nil, errors.Wrapf(ErrColumnType, "column %q is %s", name, kind)
		}
		if values[i], err = df.Float64s(name); err != nil {
			return nil, err
		}
		fn(values[i], s.scaler[name])
	}

	for i, name := range s.columns {
		if err := df.SetFloat64s(name, values[i]); err != nil {
			return nil, err
		}
	}
	s.logger.Debug().Int("columns", len(s.columns)).Int("rows", df.NumRows()).Msg("frame rescaled")
	return df, nil
}

// Fitted reports whether Fit has succeeded at least once.
func (s *Standardizer) Fitted() bool { return s.fitted }

// Columns returns the fitted column names in selection order.
func (s *Standardizer) Columns() []string {
	return append([]string(nil), s.columns...)
}

// Stat returns the fitted statistics of a column.
func (s *Standardizer) Stat(name string) (Stat, bool) {
	st, ok := s.scaler[name]
	return st, ok
}

func (s *Standardizer) DDOF() int { return s.ddof }
