package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/nurbs"
)

const defaultSamples = 100

// curveFile is the on-disk description of a curve.
type curveFile struct {
	Degree  int         `toml:"degree" yaml:"degree"`
	Samples int         `toml:"samples" yaml:"samples"`
	Knots   []float64   `toml:"knots" yaml:"knots"`
	Points  []pointSpec `toml:"points" yaml:"points"`
}

type pointSpec struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
	// Weight defaults to 1.
	Weight *float64 `toml:"weight" yaml:"weight"`
}

func (p pointSpec) controlPoint() nurbs.ControlPoint {
	w := 1.0
	if p.Weight != nil {
		w = *p.Weight
	}
	return nurbs.CP(p.X, p.Y, w)
}

// loadCurveFile reads a curve description. The format is chosen by the file
// extension: .toml, or .yaml and .yml.
func loadCurveFile(path string) (*curveFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f *curveFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		f, err = decodeTOML(data)
	case ".yaml", ".yml":
		f, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("%s: unsupported file extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func decodeTOML(data []byte) (*curveFile, error) {
	var f curveFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func decodeYAML(data []byte) (*curveFile, error) {
	var f curveFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &f, nil
}

func (f *curveFile) validate() error {
	if f.Degree < 0 {
		return fmt.Errorf("degree must not be negative, got %d", f.Degree)
	}
	if f.Samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", f.Samples)
	}
	if f.Samples == 0 {
		f.Samples = defaultSamples
	}
	if len(f.Points) == 0 {
		return errors.New("curve has no control points")
	}
	if !nurbs.KnotVector(f.Knots).IsNonDecreasing() {
		return errors.New("knots must be non-decreasing")
	}
	return nil
}

// curve builds the curve described by f. Explicit knots replace the
// generated ones.
func (f *curveFile) curve() *nurbs.Curve {
	c := nurbs.NewCurve(f.Degree)
	for _, p := range f.Points {
		c.AddControlPoint(p.controlPoint())
	}
	if len(f.Knots) > 0 {
		c.SetKnots(f.Knots)
	}
	return c
}

// appendSamples appends count interleaved samples of the curve to dst.
func (f *curveFile) appendSamples(dst []float64, count int) []float64 {
	if len(f.Knots) == 0 {
		xs := make([]float64, len(f.Points))
		ys := make([]float64, len(f.Points))
		ws := make([]float64, len(f.Points))
		for i, p := range f.Points {
			cp := p.controlPoint()
			xs[i], ys[i], ws[i] = cp.X, cp.Y, cp.Weight
		}
		return nurbs.AppendCurvePoints(dst, xs, ys, ws, f.Degree, count)
	}
	for cp := range f.curve().Samples(count) {
		dst = append(dst, cp.X, cp.Y)
	}
	return dst
}
