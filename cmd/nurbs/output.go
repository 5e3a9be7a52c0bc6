package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/nurbs"
)

type format string

const (
	formatFlat format = "flat"
	formatCSV  format = "csv"
	formatSVG  format = "svg"
)

func parseFormat(s string) (format, error) {
	switch f := format(strings.ToLower(s)); f {
	case formatFlat, formatCSV, formatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeFlat writes interleaved coordinates, one pair per line.
func writeFlat(w io.Writer, flat []float64) error {
	bw := bufio.NewWriter(w)
	for i := 0; i+1 < len(flat); i += 2 {
		fmt.Fprintf(bw, "%s %s\n", formatFloat(flat[i]), formatFloat(flat[i+1]))
	}
	return bw.Flush()
}

func writeCSV(w io.Writer, flat []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for i := 0; i+1 < len(flat); i += 2 {
		if err := cw.Write([]string{formatFloat(flat[i]), formatFloat(flat[i+1])}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeSVG draws the sampled curve as a polyline over its control polygon.
// Curve coordinates are y-up, so they are flipped for SVG's y-down space.
func writeSVG(w io.Writer, c *nurbs.Curve, flat []float64) error {
	flipped := c.Transform(nurbs.FlipY)
	bbox := flipped.ControlBoundingBox()
	margin := 0.05 * max(bbox.Width(), bbox.Height(), 1)
	bbox = bbox.Inflate(margin, margin)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg viewBox="%s %s %s %s" xmlns="http://www.w3.org/2000/svg">`+"\n",
		formatFloat(bbox.X0), formatFloat(bbox.Y0), formatFloat(bbox.Width()), formatFloat(bbox.Height()))
	stroke := formatFloat(margin / 5)

	var sb strings.Builder
	for i, cp := range flipped.ControlPoints() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s,%s", formatFloat(cp.X), formatFloat(cp.Y))
	}
	fmt.Fprintf(bw, `<polyline points="%s" fill="none" stroke="#999" stroke-width="%s" />`+"\n", sb.String(), stroke)

	sb.Reset()
	for i := 0; i+1 < len(flat); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		pt := nurbs.Pt(flat[i], flat[i+1]).Transform(nurbs.FlipY)
		fmt.Fprintf(&sb, "%s,%s", formatFloat(pt.X), formatFloat(pt.Y))
	}
	fmt.Fprintf(bw, `<polyline points="%s" fill="none" stroke="black" stroke-width="%s" />`+"\n", sb.String(), stroke)
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}
