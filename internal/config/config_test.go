package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/tax"
)

const sampleConfig = `
logging:
  level: debug
  format: console
output:
  format: json
  currencySymbol: "$"
tax:
  name: "custom"
  personalAllowance: 15000
  vatRate: 17.5
  studentLoans:
    plan2:
      threshold: 30000
`

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Empty path uses defaults",
			configPath: "",
			wantError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0600))

	conf, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", conf.Logging.Level)
	assert.Equal(t, "console", conf.Logging.Format)
	assert.Equal(t, constants.OutputFormatJSON, conf.Output.Format)
	assert.Equal(t, "$", conf.Output.CurrencySymbol)

	assert.Equal(t, "custom", conf.Tax.Name)
	assert.Equal(t, 15000.0, conf.Tax.PersonalAllowance)
	assert.Equal(t, 17.5, conf.Tax.VATRate)

	defaults := tax.DefaultTaxYear()
	assert.Equal(t, defaults.Bands, conf.Tax.Bands)
	assert.Equal(t, defaults.NationalInsurance, conf.Tax.NationalInsurance)

	plan2, ok := conf.Tax.Plan(tax.PlanTwo)
	require.True(t, ok)
	assert.Equal(t, 30000.0, plan2.Threshold)
	assert.Equal(t, 9.0, plan2.Rate)
	assert.Equal(t, 30, plan2.WriteOffYears)
	assert.Len(t, conf.Tax.PlanNames(), len(defaults.StudentLoans))
}

func TestLoadConfigurationDefaults(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, "info", conf.Logging.Level)
	assert.Equal(t, "json", conf.Logging.Format)
	assert.Empty(t, conf.Logging.OutputFile)
	assert.Equal(t, constants.OutputFormatPretty, conf.Output.Format)
	assert.Equal(t, constants.DefaultCurrencySymbol, conf.Output.CurrencySymbol)
	assert.Equal(t, tax.DefaultTaxYear(), conf.Tax)
	assert.Empty(t, conf.ValidateConfiguration())
}

func TestLoadConfigurationEnvironmentOverrides(t *testing.T) {
	t.Setenv("FINCALC_OUTPUT_FORMAT", "JSON")
	t.Setenv("FINCALC_LOGGING_LEVEL", "warn")

	conf, err := LoadConfigurationFromReader(strings.NewReader("logging:\n  level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, constants.OutputFormatJSON, conf.Output.Format)
	assert.Equal(t, "warn", conf.Logging.Level)
}

func TestLoadConfigurationTaxEnvironmentOverrides(t *testing.T) {
	t.Setenv("FINCALC_TAX_VATRATE", "5")
	t.Setenv("FINCALC_TAX_NAME", "2026/27")
	t.Setenv("FINCALC_TAX_NATIONALINSURANCE_MAINRATE", "6")

	conf, err := LoadConfigurationFromReader(strings.NewReader("tax:\n  personalAllowance: 15000\n"))
	require.NoError(t, err)
	assert.Equal(t, 5.0, conf.Tax.VATRate)
	assert.Equal(t, "2026/27", conf.Tax.Name)
	assert.Equal(t, 15000.0, conf.Tax.PersonalAllowance)
	assert.Equal(t, 6.0, conf.Tax.NationalInsurance.MainRate)
	assert.Equal(t, tax.DefaultTaxYear().NationalInsurance.UpperRate, conf.Tax.NationalInsurance.UpperRate)
	assert.Equal(t, tax.DefaultTaxYear().Bands, conf.Tax.Bands)
}

func TestLoadConfigurationRejectsBadInput(t *testing.T) {
	_, err := LoadConfigurationFromReader(strings.NewReader("output:\n  format: csv\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv")

	_, err = LoadConfigurationFromReader(strings.NewReader("output: [unclosed"))
	assert.Error(t, err)
}

func TestValidateConfiguration(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(`
output:
  currencySymbol: " "
tax:
  vatRate: 120
  bands:
    - name: basic
      rate: 20
    - name: higher
      upperLimit: 100000
      rate: 40
`))
	require.NoError(t, err)

	warnings := conf.ValidateConfiguration()
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "band 'basic' has no upper limit")
	assert.Contains(t, warnings[1], "VAT rate 120.00")
	assert.Contains(t, warnings[2], "currency symbol is empty")
}
