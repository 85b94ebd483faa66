package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/symcalc/symcalc/eval"
)

// valuesReport is the output of the solve and eval commands.
type valuesReport struct {
	Input   string   `json:"input" yaml:"input"`
	Unknown string   `json:"unknown,omitempty" yaml:"unknown,omitempty"`
	Values  []string `json:"values" yaml:"values"`
}

func newValuesReport(input, unknown string, res eval.Result, format byte, digits int) valuesReport {
	values := make([]string, res.Len())
	for i, v := range res.Values() {
		values[i] = v.TextFormat(format, digits)
	}
	return valuesReport{Input: input, Unknown: unknown, Values: values}
}

func renderValues(w io.Writer, format string, r valuesReport) error {
	switch format {
	case "json", "yaml":
		return encode(w, format, r)
	case "table":
		header := "value"
		if r.Unknown != "" {
			header = r.Unknown
		}
		t := newTable(w, table.Row{"#", header})
		for i, v := range r.Values {
			t.AppendRow(table.Row{i + 1, v})
		}
		t.Render()
		return nil
	default:
		for _, v := range r.Values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}
}

func renderSelftest(w io.Writer, format string, r selftestReport) error {
	switch format {
	case "json", "yaml":
		return encode(w, format, r)
	}

	rows := [][2]string{
		{"seed", r.Seed},
		{"precision", strconv.FormatUint(uint64(r.Precision), 10)},
		{"polynomials", strconv.Itoa(r.Polynomials)},
		{"solved", strconv.Itoa(r.Solved)},
		{"rejected", strconv.Itoa(r.Rejected)},
		{"roots", strconv.Itoa(r.Roots)},
		{"failed", strconv.Itoa(r.Failed)},
		{"max residual", formatResidual(r.MaxResidual)},
		{"mean residual", formatResidual(r.MeanResidual)},
		{"median residual", formatResidual(r.MedianResidual)},
	}

	if format == "table" {
		t := newTable(w, table.Row{"metric", "value"})
		for _, row := range rows {
			t.AppendRow(table.Row{row[0], row[1]})
		}
		t.Render()
		return nil
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-16s %s\n", row[0]+":", row[1]); err != nil {
			return err
		}
	}
	return nil
}

func formatResidual(x float64) string {
	return strconv.FormatFloat(x, 'e', 3, 64)
}

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

func encode(w io.Writer, format string, v interface{}) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
