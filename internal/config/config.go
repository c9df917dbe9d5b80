// Package config defines the configuration structures for finance-calculators
// and loads them with viper from YAML and FINCALC_ environment variables.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/tax"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// Configuration holds all configuration for finance-calculators.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Tax     tax.TaxYear   `yaml:"tax,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format         string `yaml:"format,omitempty"` // pretty, json
	CurrencySymbol string `yaml:"currencySymbol,omitempty"`
}

// taxEnvKeys are the scalar tax settings that can be overridden from the
// environment, e.g. FINCALC_TAX_VATRATE. Bands and student loan plans are
// lists and come from the config file only.
var taxEnvKeys = []string{
	"tax.name",
	"tax.personalAllowance",
	"tax.taperThreshold",
	"tax.vatRate",
	"tax.nationalInsurance.primaryThreshold",
	"tax.nationalInsurance.upperEarningsLimit",
	"tax.nationalInsurance.mainRate",
	"tax.nationalInsurance.upperRate",
	"tax.capitalGains.annualExemptAmount",
	"tax.capitalGains.basicRate",
	"tax.capitalGains.higherRate",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.currencySymbol", constants.DefaultCurrencySymbol)

	// AutomaticEnv only sees keys viper already knows about.
	for _, key := range taxEnvKeys {
		_ = v.BindEnv(key)
	}
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path yields the defaults plus any FINCALC_
// environment overrides.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	configuration.Output.Format = strings.ToLower(strings.TrimSpace(configuration.Output.Format))
	if err := validation.ValidateOutputFormat(configuration.Output.Format); err != nil {
		return nil, err
	}
	configuration.Output.CurrencySymbol = strings.TrimSpace(configuration.Output.CurrencySymbol)
	configuration.Tax = configuration.Tax.WithDefaults()
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	warnings := validation.ValidateTaxYear(c.Tax)
	if strings.TrimSpace(c.Output.CurrencySymbol) == "" {
		warnings = append(warnings, "Output currency symbol is empty; "+constants.DefaultCurrencySymbol+" is used instead")
	}
	return warnings
}
