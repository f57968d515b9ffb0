package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"dfscaler/pkg/data"
	"dfscaler/pkg/frame"
	"dfscaler/pkg/loader"
	"dfscaler/pkg/scale"
)

//
// ---------------------- USAGE ----------------------
//
//   go run ./cmd/examples/Standardize_CSV [input.csv]
//
// Without an argument a small built-in employee table is used. The rows are
// split 75/25, the standardizer is fitted on the training rows only and then
// applied to both parts, so the test rows are scaled with training statistics.
// The "id" column is excluded from scaling.
//
// ---------------------------------------------------
//

const employees = `id,age,salary,years,remote,department
1,34,72000,5,true,eng
2,45,98000,12,false,sales
3,29,61000,2,true,eng
4,51,120000,20,false,mgmt
5,38,83000,9,true,eng
6,26,54000,1,false,support
7,41,91000,14,true,sales
8,33,70000,6,false,support
`

// previewData prints the first n rows of the numeric columns.
func previewData(df *frame.Frame, n int) {
	if n > df.NumRows() {
		n = df.NumRows()
	}
	names := df.NumericNames()
	for _, h := range names {
		fmt.Printf("%-15s", h)
	}
	fmt.Println()

	cols := make([][]float64, len(names))
	for j, name := range names {
		cols[j], _ = df.Float64s(name)
	}
	for i := 0; i < n; i++ {
		for j := range names {
			fmt.Printf("%-15.6f", cols[j][i])
		}
		fmt.Println()
	}
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var df *frame.Frame
	var err error
	if len(os.Args) > 1 {
		file, openErr := os.Open(os.Args[1])
		if openErr != nil {
			logger.Fatal().Err(openErr).Msg("failed to open input")
		}
		defer file.Close()
		df, err = data.ReadCSV(file, data.CSVOptions{})
	} else {
		df, err = data.ReadCSV(strings.NewReader(employees), data.CSVOptions{Categorical: []string{"department"}})
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load table")
	}
	logger.Info().Int("rows", df.NumRows()).Int("columns", df.NumCols()).Msg("loaded table")

	train, test, err := loader.TrainTestSplit(df, 0.25, rand.New(rand.NewSource(7)))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to split")
	}

	s := scale.NewStandardizer(scale.WithLogger(logger))
	var fitOpts []scale.FitOption
	if df.Has("id") {
		fitOpts = append(fitOpts, scale.WithExclude("id"))
	}
	if _, err := s.FitTransform(train, fitOpts...); err != nil {
		logger.Fatal().Err(err).Msg("failed to fit")
	}
	for _, name := range s.Columns() {
		st, _ := s.Stat(name)
		logger.Info().Str("column", name).Float64("mean", st.Mean).Float64("std", st.Std).Msg("fitted")
	}

	if _, err := s.Transform(test); err != nil {
		logger.Fatal().Err(err).Msg("failed to transform test rows")
	}

	fmt.Println("\nTrain (standardized):")
	previewData(train, 5)
	fmt.Println("\nTest (scaled with train statistics):")
	previewData(test, 5)

	restored, err := s.InverseTransformCopy(test)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to invert")
	}
	fmt.Println("\nTest (restored):")
	previewData(restored, 5)

	fmt.Println("\nTrain CSV:")
	if err := data.WriteCSV(os.Stdout, train); err != nil {
		logger.Fatal().Err(err).Msg("failed to write csv")
	}
}
