package main

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"dfscaler/pkg/frame"
	"dfscaler/pkg/scale"
)

// generateMeasurements creates n rows with a log-normal "latency" column and
// a normal "load" column on very different scales.
func generateMeasurements(n int, rng *rand.Rand) (*frame.Frame, error) {
	latency := make([]float64, n)
	load := make([]int64, n)
	for i := 0; i < n; i++ {
		latency[i] = math.Exp(rng.NormFloat64()*0.5 + 4) // ms
		load[i] = int64(rng.NormFloat64()*200 + 1500)
	}
	return frame.New(
		frame.NewFloat64Column("latency", latency),
		frame.NewInt64Column("load", load),
	)
}

// plotHistogram saves a histogram of one column.
func plotHistogram(values []float64, title, filename string, fill color.Color) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "value"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(values), 30)
	if err != nil {
		return err
	}
	h.FillColor = fill
	p.Add(h)

	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	rng := rand.New(rand.NewSource(42))

	df, err := generateMeasurements(2000, rng)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build frame")
	}

	for _, name := range df.Names() {
		values, _ := df.Float64s(name)
		if err := plotHistogram(values, name+" (raw)", name+"_raw.png", color.RGBA{R: 200, G: 80, B: 80, A: 255}); err != nil {
			logger.Fatal().Err(err).Msg("failed to plot")
		}
	}

	s := scale.NewStandardizer(scale.WithLogger(logger))
	if _, err := s.FitTransform(df, scale.WithDDOF(1)); err != nil {
		logger.Fatal().Err(err).Msg("failed to standardize")
	}

	for _, name := range s.Columns() {
		values, _ := df.Float64s(name)
		if err := plotHistogram(values, name+" (standardized)", name+"_std.png", color.RGBA{R: 50, G: 50, B: 255, A: 255}); err != nil {
			logger.Fatal().Err(err).Msg("failed to plot")
		}
		st, _ := s.Stat(name)
		fmt.Printf("%-10s mean=%-12.4f std=%-12.4f -> saved %s_raw.png, %s_std.png\n", name, st.Mean, st.Std, name, name)
	}
}
