package scale

import (
	"github.com/rs/zerolog"
)

// Option configures a Standardizer.
type Option func(*Standardizer)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Standardizer) { s.logger = logger }
}

// WithWorkers bounds how many columns Fit reduces at once.
func WithWorkers(n int) Option {
	return func(s *Standardizer) {
		if n > 0 {
			s.workers = n
		}
	}
}

// FitOption configures a single Fit call.
type FitOption func(*fitConfig)

type fitConfig struct {
	include    []string
	exclude    []string
	hasInclude bool
	hasExclude bool
	ddof       int
}

// WithInclude fits exactly the named columns. Every one of them must exist
// and be numeric.
func WithInclude(names ...string) FitOption {
	return func(c *fitConfig) {
		c.include = append(c.include, names...)
		c.hasInclude = true
	}
}

// WithExclude fits every numeric column except the named ones. Every name
// must exist in the table.
func WithExclude(names ...string) FitOption {
	return func(c *fitConfig) {
		c.exclude = append(c.exclude, names...)
		c.hasExclude = true
	}
}

// WithDDOF sets the delta degrees of freedom; the deviation divides by N-ddof.
func WithDDOF(ddof int) FitOption {
	return func(c *fitConfig) { c.ddof = ddof }
}
