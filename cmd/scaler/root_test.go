package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dfscaler/pkg/data"
	"dfscaler/pkg/paramfile"
)

const input = `id,x,y,label
1,1,10,a
2,2,20,b
3,3,30,a
4,4,40,b
5,5,50,a
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o600))
	return path
}

func TestFitTransformInverse(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)
	params := filepath.Join(dir, "params.yaml.zst")
	scaled := filepath.Join(dir, "scaled.csv")

	_, err := execute(t, "fit", in, "--params", params, "--exclude", "id")
	require.NoError(t, err)

	p, err := paramfile.Load(params)
	require.NoError(t, err)
	require.Len(t, p.Columns, 2)
	require.Equal(t, "x", p.Columns[0].Name)
	require.InDelta(t, 3.0, p.Columns[0].Mean, 1e-12)

	_, err = execute(t, "transform", in, "--params", params, "-o", scaled)
	require.NoError(t, err)

	f, err := os.Open(scaled)
	require.NoError(t, err)
	defer f.Close()
	df, err := data.ReadCSV(f, data.CSVOptions{})
	require.NoError(t, err)
	x, err := df.Float64s("x")
	require.NoError(t, err)
	require.InDelta(t, 0.0, x[2], 1e-12)
	id, _ := df.Float64s("id")
	require.Equal(t, []float64{1, 2, 3, 4, 5}, id)

	out, err := execute(t, "inverse", scaled, "--params", params)
	require.NoError(t, err)
	restored, err := data.ReadCSV(strings.NewReader(out), data.CSVOptions{})
	require.NoError(t, err)
	y, _ := restored.Float64s("y")
	require.InDeltaSlice(t, []float64{10, 20, 30, 40, 50}, y, 1e-9)
}

func TestFitTransformArrow(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)
	out := filepath.Join(dir, "scaled.arrow")

	_, err := execute(t, "fit-transform", in, "--include", "y", "--ddof", "1", "-o", out)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	df, err := data.ReadArrow(f)
	require.NoError(t, err)

	y, _ := df.Float64s("y")
	require.InDelta(t, 0.0, y[2], 1e-12)
	x, _ := df.Float64s("x")
	require.Equal(t, []float64{1, 2, 3, 4, 5}, x, "columns outside --include are untouched")
}

func TestDescribe(t *testing.T) {
	in := writeInput(t, t.TempDir())

	out, err := execute(t, "describe", in, "--corr")
	require.NoError(t, err)
	require.Contains(t, out, "mean")
	require.Contains(t, out, "25%")
	require.Contains(t, out, "1.0000")
	require.NotContains(t, out, "label")
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)

	_, err := execute(t, "fit", in)
	require.ErrorIs(t, err, errNoParams)

	_, err = execute(t, "fit-transform")
	require.ErrorIs(t, err, errNoInput)

	_, err = execute(t, "fit-transform", in, "--include", "x", "--exclude", "y")
	require.Error(t, err)

	_, err = execute(t, "fit-transform", in, "--exclude", "missing")
	require.Error(t, err)

	_, err = execute(t, "transform", in, "--params", filepath.Join(dir, "none.yaml"))
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)
	cfgPath := filepath.Join(dir, "scaler.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input: "+in+"\ninclude: [x]\nlog:\n  level: error\n"), 0o600))

	out, err := execute(t, "fit-transform", "--config", cfgPath)
	require.NoError(t, err)

	df, err := data.ReadCSV(strings.NewReader(out), data.CSVOptions{})
	require.NoError(t, err)
	y, _ := df.Float64s("y")
	require.Equal(t, []float64{10, 20, 30, 40, 50}, y)
	x, _ := df.Float64s("x")
	require.InDelta(t, 0.0, x[2], 1e-12)
}
