// SPDX-License-Identifier: MIT
// Package: report
//
// encode.go - text, YAML and JSON renderings.

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a format other than text, yaml or json.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts a case-insensitive format name; "yml" is an alias of yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Encode writes r to w in the given format.
func (r *Report) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatText:
		return r.encodeText(w)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// encodeText prints a summary block followed by a per-node table.
func (r *Report) encodeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "nodes:\t%d\n", r.Nodes)
	fmt.Fprintf(tw, "edges:\t%d\n", r.Edges)
	fmt.Fprintf(tw, "components:\t%d\t%v\n", len(r.Components), r.Components)
	fmt.Fprintf(tw, "diameter:\t%s\n", r.Diameter)
	fmt.Fprintf(tw, "radius:\t%s\n", r.Radius)
	fmt.Fprintf(tw, "center:\t%v\n", r.Center)
	fmt.Fprintf(tw, "articulation points:\t%v\n", r.ArticulationPoints)
	fmt.Fprintf(tw, "bridges:\t%v\n", r.Bridges)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: text: %w", err)
	}
	if r.Nodes == 0 {
		return nil
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "\nnode\tdegree\teccentricity\t")
	for i := 0; i < r.Nodes; i++ {
		fmt.Fprintf(tw, "%d\t%d\t%s\t\n", i, r.Degrees[i], r.Eccentricities[i])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: text: %w", err)
	}

	return nil
}
