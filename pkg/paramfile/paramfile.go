// Package paramfile stores fitted standardizer parameters on disk as YAML.
// Paths ending in ".zst" hold the YAML document inside a zstd stream.
package paramfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"dfscaler/pkg/scale"
)

const compressedExt = ".zst"

// ErrEmptyPath defines a sentinel error for an empty parameter file path.
var ErrEmptyPath = errors.New("empty parameter file path")

// Save writes p to path, compressing it when path ends in ".zst".
func Save(path string, p scale.Params) error {
	if path == "" {
		return ErrEmptyPath
	}
	data, err := Encode(p, strings.HasSuffix(path, compressedExt))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write parameter file: %w", err)
	}
	return nil
}

// Load reads parameters written by Save.
func Load(path string) (scale.Params, error) {
	if path == "" {
		return scale.Params{}, ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return scale.Params{}, fmt.Errorf("failed to read parameter file: %w", err)
	}
	return Decode(data, strings.HasSuffix(path, compressedExt))
}

// Encode renders p as YAML, optionally zstd compressed.
func Encode(p scale.Params, compress bool) ([]byte, error) {
	var buf bytes.Buffer
	var w io.Writer = &buf

	var enc *zstd.Encoder
	if compress {
		var err error
		if enc, err = zstd.NewWriter(&buf); err != nil {
			return nil, err
		}
		w = enc
	}

	ye := yaml.NewEncoder(w)
	ye.SetIndent(2)
	if err := ye.Encode(p); err != nil {
		return nil, fmt.Errorf("failed to encode parameters: %w", err)
	}
	if err := ye.Close(); err != nil {
		return nil, err
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Decode parses data produced by Encode.
func Decode(data []byte, compressed bool) (scale.Params, error) {
	var p scale.Params
	var r io.Reader = bytes.NewReader(data)
	if compressed {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return p, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		defer dec.Close()
		r = dec
	}
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return p, fmt.Errorf("failed to decode parameters: %w", err)
	}
	return p, nil
}
