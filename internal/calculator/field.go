// Package calculator exposes every formula behind a common, name-addressable
// interface: a schema of input fields, lenient input coercion and a flat
// result record.
package calculator

import (
	"fmt"
	"math"
	"strings"
)

// Kind tells clients how to read and display a value.
type Kind string

const (
	KindCurrency Kind = "currency"
	KindPercent  Kind = "percent"
	KindNumber   Kind = "number"
	KindInteger  Kind = "integer"
	KindChoice   Kind = "choice"
	KindText     Kind = "text"
)

// Numeric reports whether values of this kind are parsed as numbers.
func (k Kind) Numeric() bool {
	switch k {
	case KindCurrency, KindPercent, KindNumber, KindInteger:
		return true
	}
	return false
}

// Field describes one calculator input. Numeric values are clamped to
// [Min, Max]; a zero Max means no upper bound, except for percentages which
// stop at 100 unless Max says otherwise.
type Field struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Kind    Kind     `json:"kind"`
	Default string   `json:"default,omitempty"`
	Min     float64  `json:"min"`
	Max     float64  `json:"max,omitempty"`
	Options []string `json:"options,omitempty"`
	Help    string   `json:"help,omitempty"`
}

func (f Field) bounds() (lo, hi float64) {
	hi = f.Max
	if hi == 0 {
		if f.Kind == KindPercent {
			hi = 100
		} else {
			hi = math.Inf(1)
		}
	}
	return f.Min, hi
}

func (f Field) hasOption(value string) bool {
	for _, option := range f.Options {
		if option == value {
			return true
		}
	}
	return false
}

func (f Field) validate() error {
	if strings.TrimSpace(f.Key) == "" {
		return fmt.Errorf("field %q has no key", f.Label)
	}
	switch f.Kind {
	case KindCurrency, KindPercent, KindNumber, KindInteger, KindText:
	case KindChoice:
		if len(f.Options) == 0 {
			return fmt.Errorf("choice field %s has no options", f.Key)
		}
		if !f.hasOption(f.Default) {
			return fmt.Errorf("choice field %s default %q is not an option", f.Key, f.Default)
		}
	default:
		return fmt.Errorf("field %s has unknown kind %q", f.Key, f.Kind)
	}
	if lo, hi := f.bounds(); lo > hi {
		return fmt.Errorf("field %s has min %v above max %v", f.Key, lo, hi)
	}
	return nil
}
