package scale

import (
	"cosmossdk.io/errors"
)

// Params is the serializable form of a fitted Standardizer.
type Params struct {
	DDOF    int            `yaml:"ddof"`
	Columns []ColumnParams `yaml:"columns"`
}

type ColumnParams struct {
	Name string  `yaml:"name"`
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
}

// Params exports the fitted state in column order.
func (s *Standardizer) Params() (Params, error) {
	if !s.fitted {
		return Params{}, ErrNotFitted
	}
	p := Params{DDOF: s.ddof, Columns: make([]ColumnParams, len(s.columns))}
	for i, name := range s.columns {
		st := s.scaler[name]
		p.Columns[i] = ColumnParams{Name: name, Mean: st.Mean, Std: st.Std}
	}
	return p, nil
}

// FromParams builds a fitted Standardizer from exported parameters.
func FromParams(p Params, opts ...Option) (*Standardizer, error) {
	if p.DDOF < 0 {
		return nil, errors.Wrapf(ErrInvalidDDOF, "got %d", p.DDOF)
	}
	scaler := make(map[string]Stat, len(p.Columns))
	columns := make([]string, 0, len(p.Columns))
	for _, c := range p.Columns {
		if c.Name == "" {
			return nil, errors.Wrap(ErrInvalidParams, "empty column name")
		}
		if _, ok := scaler[c.Name]; ok {
			return nil, errors.Wrapf(ErrInvalidParams, "duplicate column %q", c.Name)
		}
		scaler[c.Name] = Stat{Mean: c.Mean, Std: c.Std}
		columns = append(columns, c.Name)
	}

	s := NewStandardizer(opts...)
	s.scaler = scaler
	s.columns = columns
	s.ddof = p.DDOF
	s.fitted = true
	return s, nil
}
