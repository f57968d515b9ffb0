package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scaler.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseConfig(t *testing.T) {
	path := writeConfig(t, `
input: data.csv
params: params.yaml.zst
exclude: [id, zip]
ddof: 1
comma: ";"
log:
  level: debug
  format: json
`)
	cfg, err := ParseConfig(path)
	require.NoError(t, err)
	require.Equal(t, "data.csv", cfg.Input)
	require.Equal(t, "params.yaml.zst", cfg.Params)
	require.Equal(t, []string{"id", "zip"}, cfg.Exclude)
	require.Equal(t, 1, cfg.DDOF)
	require.Equal(t, ';', cfg.CommaRune())
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, LogFormatJSON, cfg.Log.Format)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(writeConfig(t, "input: data.csv\n"))
	require.NoError(t, err)
	require.Equal(t, 0, cfg.DDOF)
	require.Equal(t, ',', cfg.CommaRune())
	require.Equal(t, Default().Log, cfg.Log)
}

func TestParseConfigEnvOverride(t *testing.T) {
	t.Setenv("SCALER_DDOF", "2")
	t.Setenv("SCALER_LOG_LEVEL", "warn")

	cfg, err := ParseConfig(writeConfig(t, "ddof: 1\n"))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.DDOF)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig("")
	require.ErrorIs(t, err, ErrEmptyConfigPath)

	_, err = ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	tests := map[string]string{
		"include and exclude": "include: [a]\nexclude: [b]\n",
		"negative ddof":       "ddof: -1\n",
		"bad log level":       "log:\n  level: loud\n",
		"bad log format":      "log:\n  format: xml\n",
		"long delimiter":      "comma: ';;'\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.Log = Log{Level: "warn", Format: LogFormatJSON}

	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)
	logger.Info().Msg("hidden")
	logger.Warn().Str("column", "x").Msg("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"column":"x"`)
}
