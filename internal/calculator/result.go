package calculator

import (
	"fmt"

	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// Output is one named figure in a result.
type Output struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Kind  Kind    `json:"kind"`
	Value float64 `json:"value"`
	Text  string  `json:"text,omitempty"`
}

// Column heads one table column.
type Column struct {
	Label string `json:"label"`
	Kind  Kind   `json:"kind"`
}

// Row is one table row; Values line up with the table's columns.
type Row struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// Table is an optional breakdown such as a yearly schedule.
type Table struct {
	Title   string   `json:"title"`
	Key     string   `json:"key"` // heading of the row label column
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Result is what every calculator returns. Values are rounded to two decimals.
type Result struct {
	Calculator string                 `json:"calculator"`
	Title      string                 `json:"title"`
	Inputs     map[string]interface{} `json:"inputs"`
	Outputs    []Output               `json:"outputs"`
	Notes      []string               `json:"notes,omitempty"`
	Table      *Table                 `json:"table,omitempty"`
}

// Add appends a numeric output. Non-finite values become zero.
func (r *Result) Add(key, label string, kind Kind, value float64) {
	r.Outputs = append(r.Outputs, Output{Key: key, Label: label, Kind: kind, Value: mathutil.Round(mathutil.Finite(value))})
}

// AddText appends a text output.
func (r *Result) AddText(key, label, text string) {
	r.Outputs = append(r.Outputs, Output{Key: key, Label: label, Kind: KindText, Text: text})
}

// AddFlag appends a yes/no output; Value is 1 for yes.
func (r *Result) AddFlag(key, label string, flag bool) {
	out := Output{Key: key, Label: label, Kind: KindText, Text: "no"}
	if flag {
		out.Value, out.Text = 1, "yes"
	}
	r.Outputs = append(r.Outputs, out)
}

// Note appends an explanatory note.
func (r *Result) Note(note string) {
	r.Notes = append(r.Notes, note)
}

// Notef appends a formatted note.
func (r *Result) Notef(format string, args ...interface{}) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}

// Output returns the output with the given key.
func (r Result) Output(key string) (Output, bool) {
	for _, out := range r.Outputs {
		if out.Key == key {
			return out, true
		}
	}
	return Output{}, false
}

// NewTable starts a table with the given columns.
func NewTable(title, key string, columns ...Column) *Table {
	return &Table{Title: title, Key: key, Columns: columns}
}

// AddRow appends a row, rounding each value.
func (t *Table) AddRow(label string, values ...float64) {
	rounded := make([]float64, len(values))
	for i, v := range values {
		rounded[i] = mathutil.Round(mathutil.Finite(v))
	}
	t.Rows = append(t.Rows, Row{Label: label, Values: rounded})
}
