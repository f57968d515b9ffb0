package paramfile

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"dfscaler/pkg/scale"
)

func sampleParams() scale.Params {
	return scale.Params{
		DDOF: 1,
		Columns: []scale.ColumnParams{
			{Name: "price", Mean: 12.5, Std: 3.25},
			{Name: "qty", Mean: 4, Std: 0},
		},
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"params.yaml", "params.yaml.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Save(path, sampleParams()))

			got, err := Load(path)
			require.NoError(t, err)
			require.Equal(t, sampleParams(), got)
		})
	}
}

func TestCompressedFileIsNotPlainYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.zst")
	require.NoError(t, Save(path, sampleParams()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "price")

	_, err = Decode(raw, false)
	require.Error(t, err)
}

func TestEncodeKeepsColumnOrder(t *testing.T) {
	data, err := Encode(sampleParams(), false)
	require.NoError(t, err)
	require.Equal(t, `ddof: 1
columns:
  - name: price
    mean: 12.5
    std: 3.25
  - name: qty
    mean: 4
    std: 0
`, string(data))
}

func TestNaNStatistics(t *testing.T) {
	p := scale.Params{Columns: []scale.ColumnParams{{Name: "x", Mean: 1, Std: math.NaN()}}}
	data, err := Encode(p, true)
	require.NoError(t, err)

	got, err := Decode(data, true)
	require.NoError(t, err)
	require.Len(t, got.Columns, 1)
	require.True(t, math.IsNaN(got.Columns[0].Std))
}

func TestEmptyPath(t *testing.T) {
	require.ErrorIs(t, Save("", sampleParams()), ErrEmptyPath)
	_, err := Load("")
	require.ErrorIs(t, err, ErrEmptyPath)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
