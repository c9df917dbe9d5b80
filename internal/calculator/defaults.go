package calculator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/iwvelando/finance-calculators/pkg/tax"
)

// Calculator categories.
const (
	CategorySavings   = "savings"
	CategoryBorrowing = "borrowing"
	CategoryTax       = "tax"
	CategoryBudgeting = "budgeting"
)

// frequencies maps payment and compounding choices to periods per year.
var frequencies = map[string]int{
	"annual":      1,
	"semi-annual": 2,
	"quarterly":   4,
	"monthly":     12,
	"weekly":      52,
	"daily":       365,
}

var frequencyOptions = []string{"monthly", "quarterly", "semi-annual", "annual"}
var compoundingOptions = []string{"daily", "weekly", "monthly", "quarterly", "semi-annual", "annual"}

// NewDefaultRegistry registers every built-in calculator. Tax calculators use
// taxYear, with unset fields taken from the current defaults.
func NewDefaultRegistry(logger *zap.Logger, taxYear tax.TaxYear) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := NewRegistry(logger)
	ty := taxYear.WithDefaults()

	var all []Calculator
	all = append(all, savingsCalculators()...)
	all = append(all, borrowingCalculators(logger)...)
	all = append(all, taxCalculators(ty)...)
	all = append(all, budgetingCalculators()...)

	for _, c := range all {
		if err := r.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register default calculators: %w", err)
		}
	}
	logger.Debug("registered default calculators",
		zap.String("op", "calculator.NewDefaultRegistry"),
		zap.Int("count", len(all)),
		zap.String("taxYear", ty.Name),
	)
	return r, nil
}

// currency, percent and friends keep the field tables below readable.
func currency(key, label, def string) Field {
	return Field{Key: key, Label: label, Kind: KindCurrency, Default: def}
}

func percent(key, label, def string) Field {
	return Field{Key: key, Label: label, Kind: KindPercent, Default: def}
}

func integer(key, label, def string, upper float64) Field {
	return Field{Key: key, Label: label, Kind: KindInteger, Default: def, Max: upper}
}

func number(key, label, def string, upper float64) Field {
	return Field{Key: key, Label: label, Kind: KindNumber, Default: def, Max: upper}
}

func choice(key, label, def string, options ...string) Field {
	return Field{Key: key, Label: label, Kind: KindChoice, Default: def, Options: options}
}

func text(key, label, def, help string) Field {
	return Field{Key: key, Label: label, Kind: KindText, Default: def, Help: help}
}
