// Package constants provides shared constants for the finance-calculators application.
package constants

// DateTimeLayout is the month format accepted for schedule start dates and used
// for schedule row labels.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// WeeksPerYear is the number of paid weeks assumed in a year
	WeeksPerYear = 52

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// MaxPayoffMonths bounds every month-by-month payoff loop (100 years).
	MaxPayoffMonths = 1200

	// MaxTermYears bounds loan, savings and annuity terms.
	MaxTermYears = 100
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the machine-readable output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "FINCALC"

	// DefaultCurrencySymbol is used when no symbol is configured
	DefaultCurrencySymbol = "£"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum JSON request body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (one penny)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
