package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = LogFormatText

	LogFormatJSON = "json"
	LogFormatText = "text"
)

var (
	validate = validator.New()

	// ErrEmptyConfigPath defines a sentinel error for an empty config path.
	ErrEmptyConfigPath = errors.New("empty configuration file path")
)

func init() {
	validate.RegisterStructValidation(selectorValidation, Config{})
}

type (
	// Config defines the scaler command configuration.
	Config struct {
		Input       string   `mapstructure:"input"`
		Output      string   `mapstructure:"output"`
		Params      string   `mapstructure:"params"`
		Include     []string `mapstructure:"include"`
		Exclude     []string `mapstructure:"exclude"`
		DDOF        int      `mapstructure:"ddof" validate:"gte=0"`
		Categorical []string `mapstructure:"categorical"`
		Comma       string   `mapstructure:"comma" validate:"omitempty,len=1"`
		Log         Log      `mapstructure:"log"`
	}

	// Log defines the logger configuration.
	Log struct {
		Level  string `mapstructure:"level" validate:"required,oneof=trace debug info warn error"`
		Format string `mapstructure:"format" validate:"required,oneof=json text"`
	}
)

// Default returns a configuration with every optional field set.
func Default() Config {
	return Config{
		Log: Log{Level: defaultLogLevel, Format: defaultLogFormat},
	}
}

// selectorValidation rejects configurations naming both include and exclude
// columns.
func selectorValidation(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)

	if len(cfg.Include) > 0 && len(cfg.Exclude) > 0 {
		sl.ReportError(cfg.Include, "include", "Include", "includeexclusive", "")
	}
}

// Validate returns an error if the Config object is invalid.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// CommaRune returns the CSV delimiter, ',' when unset.
func (c Config) CommaRune() rune {
	if c.Comma == "" {
		return ','
	}
	return []rune(c.Comma)[0]
}

// Logger builds the zerolog logger described by the Log section, writing
// JSON lines or console text to w.
func (c Config) Logger(w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.Logger{}, err
	}
	switch strings.ToLower(c.Log.Format) {
	case LogFormatJSON:
		return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
	case LogFormatText:
		return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger(), nil
	default:
		return zerolog.Logger{}, fmt.Errorf("invalid logging format: %s", c.Log.Format)
	}
}
