package calculator

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// numberNoise is stripped from numeric input before parsing so that values
// such as "£1,250.50" or "5%" are accepted.
var numberNoise = strings.NewReplacer(",", "", "_", "", " ", "", "£", "", "$", "", "€", "", "%", "")

// Inputs resolves raw string values against a calculator's fields. A missing
// key takes the field default; a value that does not parse as a finite number
// becomes 0; numbers are then clamped to the field's bounds.
type Inputs struct {
	fields map[string]Field
	raw    map[string]string
}

// NewInputs matches raw values to fields by case-insensitive key. Keys that
// match no field are ignored.
func NewInputs(fields []Field, raw map[string]string) Inputs {
	in := Inputs{
		fields: make(map[string]Field, len(fields)),
		raw:    make(map[string]string, len(raw)),
	}
	for _, f := range fields {
		in.fields[strings.ToLower(f.Key)] = f
	}
	for key, value := range raw {
		key = strings.ToLower(strings.TrimSpace(key))
		if _, ok := in.fields[key]; ok {
			in.raw[key] = value
		}
	}
	return in
}

// ParseNumber reads a number the way a form field would: anything that is
// not a finite number is 0.
func ParseNumber(value string) float64 {
	cleaned := numberNoise.Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return 0
	}
	f, err := cast.ToFloat64E(cleaned)
	if err != nil {
		return 0
	}
	return mathutil.Finite(f)
}

func (in Inputs) value(key string) (Field, string, bool) {
	key = strings.ToLower(key)
	f, ok := in.fields[key]
	if !ok {
		return Field{}, "", false
	}
	if v, present := in.raw[key]; present {
		return f, v, true
	}
	return f, f.Default, true
}

// Float returns a numeric input after coercion and clamping.
func (in Inputs) Float(key string) float64 {
	f, raw, ok := in.value(key)
	if !ok {
		return 0
	}
	lo, hi := f.bounds()
	v := mathutil.Clamp(ParseNumber(raw), lo, hi)
	if f.Kind == KindInteger {
		v = math.Round(v)
	}
	return v
}

// Int returns a numeric input rounded to the nearest whole number.
func (in Inputs) Int(key string) int {
	return int(math.Round(in.Float(key)))
}

// String returns a text or choice input. Choices are matched
// case-insensitively and fall back to the default when not recognised.
func (in Inputs) String(key string) string {
	f, raw, ok := in.value(key)
	if !ok {
		return ""
	}
	raw = strings.TrimSpace(raw)
	if f.Kind != KindChoice {
		return raw
	}
	for _, option := range f.Options {
		if strings.EqualFold(option, raw) {
			return option
		}
	}
	return f.Default
}

// List splits a comma-separated text input into its non-empty parts.
func (in Inputs) List(key string) []string {
	var items []string
	for _, part := range strings.Split(in.String(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// Resolved returns every field's effective value keyed by field key.
func (in Inputs) Resolved() map[string]interface{} {
	values := make(map[string]interface{}, len(in.fields))
	for _, f := range in.fields {
		if f.Kind.Numeric() {
			values[f.Key] = in.Float(f.Key)
		} else {
			values[f.Key] = in.String(f.Key)
		}
	}
	return values
}
