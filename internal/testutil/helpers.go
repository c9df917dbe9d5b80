// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/finance-calculators/internal/calculator"
)

// FindOutput finds an output by key in a result.
// Returns a pointer to the output if found, nil otherwise.
func FindOutput(result calculator.Result, key string) *calculator.Output {
	for i := range result.Outputs {
		if result.Outputs[i].Key == key {
			return &result.Outputs[i]
		}
	}
	return nil
}

// OutputValue returns the value of the output with the given key and fails the
// test when the result has no such output.
func OutputValue(t testing.TB, result calculator.Result, key string) float64 {
	t.Helper()
	out := FindOutput(result, key)
	if out == nil {
		t.Fatalf("result %s has no output %q", result.Calculator, key)
		return 0
	}
	return out.Value
}
