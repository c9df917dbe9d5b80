package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/internal/testutil"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return stdout.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 26)
	assert.True(t, strings.HasPrefix(lines[0], "Name"))
	assert.True(t, strings.HasPrefix(lines[1], "annuity "))

	out, err = run(t, "list", "--category", "tax")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 8)
	assert.Contains(t, out, "take-home-pay")
	assert.NotContains(t, out, "mortgage")

	_, err = run(t, "list", "--category", "gardening")
	assert.ErrorContains(t, err, "no calculators in category")
}

func TestListJSON(t *testing.T) {
	out, err := run(t, "list", "-o", "json")
	require.NoError(t, err)

	var calculators []calculator.Calculator
	require.NoError(t, json.Unmarshal([]byte(out), &calculators))
	assert.Len(t, calculators, 25)
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "VAT")
	require.NoError(t, err)
	assert.Contains(t, out, "--- VAT (vat) ---")
	assert.Contains(t, out, "[net|gross]")

	_, err = run(t, "describe", "anuity")
	require.Error(t, err)
	assert.ErrorIs(t, err, calculator.ErrUnknownCalculator)
	assert.Contains(t, err.Error(), "did you mean annuity")

	_, err = run(t, "describe")
	assert.Error(t, err)
}

func TestCalcPretty(t *testing.T) {
	out, err := run(t, "calc", "annuity", "--set", "pot=150000", "rate=5")
	require.NoError(t, err)
	assert.Contains(t, out, "--- Annuity income ---")
	assert.Contains(t, out, "£989.93")

	out, err = run(t, "calc", "annuity", "-s", "pot=abc")
	require.NoError(t, err)
	assert.Contains(t, out, "£0.00")
}

func TestCalcJSON(t *testing.T) {
	out, err := run(t, "calc", "take-home-pay", "salary=£40,000", "pensionPercent=5", "--output", "json")
	require.NoError(t, err)

	var result calculator.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "take-home-pay", result.Calculator)
	assert.InDelta(t, 30879.60, testutil.OutputValue(t, result, "netAnnual"), 0.01)
}

func TestCalcUsesConfiguration(t *testing.T) {
	path := writeConfig(t, `
output:
  format: pretty
  currencySymbol: "$"
tax:
  vatRate: 5
`)
	out, err := run(t, "--config", path, "calc", "vat")
	require.NoError(t, err)
	assert.Contains(t, out, "$105.00")

	out, err = run(t, "--config", path, "calc", "vat", "rate=20", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"calculator": "vat"`)
}

func TestCalcErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing name", []string{"calc"}, "requires at least 1 arg"},
		{"unknown calculator", []string{"calc", "morgage"}, "did you mean mortgage"},
		{"bad assignment", []string{"calc", "vat", "amount"}, "expected key=value"},
		{"bad output", []string{"calc", "vat", "-o", "csv"}, "expected output format"},
		{"missing config", []string{"--config", "does-not-exist.yaml", "calc", "vat"}, "error reading config file"},
		{"bad log level", []string{"--log-level", "loud", "calc", "vat"}, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseAssignments(t *testing.T) {
	inputs, err := parseAssignments([]string{"pot=1", " rate = 5% ", "pot=2", "note=a=b", "empty="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"pot": "2", "rate": "5%", "note": "a=b", "empty": ""}, inputs)

	_, err = parseAssignments([]string{"=5"})
	assert.Error(t, err)
}

func newApp(t *testing.T) *app {
	t.Helper()
	a := &app{}
	require.NoError(t, a.setup())
	return a
}

func TestPrepareServeOverrides(t *testing.T) {
	a := newApp(t)

	deps, err := a.prepareServe(serveOptions{
		address:        "127.0.0.1:9999",
		maxRequestSize: "128K",
		serverConfig:   filepath.Join(t.TempDir(), "missing.yaml"),
	})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", deps.cfg.Address)
	assert.Equal(t, int64(128*1024), deps.cfg.RequestSizeBytes())
	assert.Same(t, a.logger, deps.logger)
	assert.Same(t, a.registry, deps.registry)

	for _, size := range []string{"12Q", "0"} {
		_, err := a.prepareServe(serveOptions{maxRequestSize: size, serverConfig: "missing.yaml"})
		assert.ErrorContains(t, err, "invalid --max-request-size", size)
	}
}

func TestPrepareServeLoggingSection(t *testing.T) {
	a := newApp(t)
	logFile := filepath.Join(t.TempDir(), "logs", "server.log")
	serverConfig := writeConfig(t, "logging:\n  level: debug\n  format: json\n  outputFile: "+logFile+"\n")

	deps, err := a.prepareServe(serveOptions{serverConfig: serverConfig})
	require.NoError(t, err)
	assert.NotSame(t, a.registry, deps.registry)

	_, err = deps.registry.Compute("vat", nil)
	require.NoError(t, err)
	deps.sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "calculator evaluated")
}
