// Package output provides utilities for formatting and displaying calculator results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Value renders a single value for display according to its kind.
func Value(p *message.Printer, kind calculator.Kind, value float64, text, symbol string) string {
	switch kind {
	case calculator.KindCurrency:
		return format.Currency(value, symbol)
	case calculator.KindPercent:
		return format.Percent(value)
	case calculator.KindInteger:
		return p.Sprintf("%d", int64(value))
	case calculator.KindText, calculator.KindChoice:
		return text
	default:
		return format.NumericCurrency(value)
	}
}

// Pretty writes a human-readable rather than machine-readable rendering of a result.
func Pretty(w io.Writer, result calculator.Result, symbol string) error {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	fmt.Fprintf(&b, "--- %s ---\n", result.Title)
	width := 0
	for _, out := range result.Outputs {
		if len(out.Label) > width {
			width = len(out.Label)
		}
	}
	for _, out := range result.Outputs {
		fmt.Fprintf(&b, "%-*s | %s\n", width, out.Label, Value(p, out.Kind, out.Value, out.Text, symbol))
	}

	if len(result.Notes) > 0 {
		b.WriteString("\nNotes:\n")
		for _, note := range result.Notes {
			fmt.Fprintf(&b, "  - %s\n", note)
		}
	}

	if t := result.Table; t != nil && len(t.Rows) > 0 {
		writeTable(&b, p, t, symbol)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTable(b *strings.Builder, p *message.Printer, t *calculator.Table, symbol string) {
	headers := append([]string{t.Key}, make([]string, len(t.Columns))...)
	for i, col := range t.Columns {
		headers[i+1] = col.Label
	}
	cells := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells[i] = make([]string, len(headers))
		cells[i][0] = row.Label
		for j, v := range row.Values {
			if j < len(t.Columns) {
				cells[i][j+1] = Value(p, t.Columns[j].Kind, v, "", symbol)
			}
		}
	}

	widths := columnWidths(headers, cells)

	fmt.Fprintf(b, "\n%s:\n", t.Title)
	writeRow(b, headers, widths)
	underline := make([]string, len(headers))
	for i, width := range widths {
		underline[i] = strings.Repeat("_", width)
	}
	writeRow(b, underline, widths)
	for _, row := range cells {
		writeRow(b, row, widths)
	}
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, c := range cells {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(c)
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-len([]rune(c))))
		}
	}
	b.WriteString("\n")
}

// Catalog writes one line per calculator: name, category and title.
func Catalog(w io.Writer, calculators []calculator.Calculator) error {
	headers := []string{"Name", "Category", "Title"}
	rows := make([][]string, 0, len(calculators))
	for _, c := range calculators {
		rows = append(rows, []string{c.Name, c.Category, c.Title})
	}

	var b strings.Builder
	widths := columnWidths(headers, rows)
	writeRow(&b, headers, widths)
	for _, row := range rows {
		writeRow(&b, row, widths)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Schema writes a calculator's description and its input fields.
func Schema(w io.Writer, c calculator.Calculator) error {
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s (%s) ---\n", c.Title, c.Name)
	if c.Description != "" {
		fmt.Fprintf(&b, "%s\n", c.Description)
	}

	headers := []string{"Input", "Kind", "Default", "Description"}
	rows := make([][]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		desc := f.Label
		if len(f.Options) > 0 {
			desc += " [" + strings.Join(f.Options, "|") + "]"
		}
		if f.Help != "" {
			desc += ". " + f.Help
		}
		rows = append(rows, []string{f.Key, string(f.Kind), f.Default, desc})
	}
	if len(rows) > 0 {
		b.WriteString("\n")
		widths := columnWidths(headers, rows)
		writeRow(&b, headers, widths)
		for _, row := range rows {
			writeRow(&b, row, widths)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, c := range row {
			if n := len([]rune(c)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// JSON writes any value, usually a result, as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
