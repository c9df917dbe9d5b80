package calculator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
)

var (
	// ErrUnknownCalculator is returned (wrapped) when no calculator has the requested name.
	ErrUnknownCalculator = errors.New("unknown calculator")
	// ErrDuplicateCalculator is returned when a name is registered twice.
	ErrDuplicateCalculator = errors.New("duplicate calculator")
)

const maxSuggestions = 3

// UnknownCalculatorError carries the closest registered names.
type UnknownCalculatorError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownCalculatorError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%s: %q", ErrUnknownCalculator, e.Name)
	}
	return fmt.Sprintf("%s: %q (did you mean %s?)", ErrUnknownCalculator, e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownCalculatorError) Unwrap() error { return ErrUnknownCalculator }

// Calculator is one named formula with its input schema.
type Calculator struct {
	Name        string                         `json:"name"`
	Title       string                         `json:"title"`
	Category    string                         `json:"category"`
	Description string                         `json:"description"`
	Fields      []Field                        `json:"fields"`
	Compute     func(in Inputs) (Result, error) `json:"-"`
}

// Registry holds calculators by name and is safe for concurrent use.
type Registry struct {
	logger      *zap.Logger
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// NewRegistry returns an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{logger: logger, calculators: make(map[string]Calculator)}
}

// Register adds a calculator after checking its schema.
func (r *Registry) Register(c Calculator) error {
	c.Name = strings.ToLower(strings.TrimSpace(c.Name))
	if c.Name == "" {
		return errors.New("calculator name cannot be empty")
	}
	if c.Compute == nil {
		return fmt.Errorf("calculator %s has no compute function", c.Name)
	}
	seen := make(map[string]bool, len(c.Fields))
	for _, f := range c.Fields {
		if err := f.validate(); err != nil {
			return fmt.Errorf("calculator %s: %w", c.Name, err)
		}
		key := strings.ToLower(f.Key)
		if seen[key] {
			return fmt.Errorf("calculator %s: field %s declared twice", c.Name, f.Key)
		}
		seen[key] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.calculators[c.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCalculator, c.Name)
	}
	r.calculators[c.Name] = c
	return nil
}

// Lookup finds a calculator by case-insensitive name. Unknown names return an
// *UnknownCalculatorError wrapping ErrUnknownCalculator.
func (r *Registry) Lookup(name string) (Calculator, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	r.mu.RLock()
	c, ok := r.calculators[key]
	r.mu.RUnlock()
	if !ok {
		return Calculator{}, &UnknownCalculatorError{Name: name, Suggestions: r.Suggest(key)}
	}
	return c, nil
}

// List returns all calculators sorted by name, optionally limited to one category.
func (r *Registry) List(category string) []Calculator {
	category = strings.ToLower(strings.TrimSpace(category))
	r.mu.RLock()
	list := make([]Calculator, 0, len(r.calculators))
	for _, c := range r.calculators {
		if category == "" || strings.EqualFold(c.Category, category) {
			list = append(list, c)
		}
	}
	r.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Categories returns the distinct categories in sorted order.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	set := make(map[string]bool)
	for _, c := range r.calculators {
		set[c.Category] = true
	}
	r.mu.RUnlock()
	categories := make([]string, 0, len(set))
	for category := range set {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Suggest returns up to three registered names close to name by edit distance
// or containing it.
func (r *Registry) Suggest(name string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	limit := len(name) / 3
	if limit < 2 {
		limit = 2
	}

	type candidate struct {
		name     string
		distance int
	}
	var candidates []candidate
	r.mu.RLock()
	for registered := range r.calculators {
		distance := levenshtein.ComputeDistance(name, registered)
		if distance <= limit || (len(name) >= 3 && strings.Contains(registered, name)) {
			candidates = append(candidates, candidate{name: registered, distance: distance})
		}
	}
	r.mu.RUnlock()

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	suggestions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, c.name)
	}
	return suggestions
}

// Compute looks up a calculator and evaluates it against raw inputs.
func (r *Registry) Compute(name string, raw map[string]string) (Result, error) {
	c, err := r.Lookup(name)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	in := NewInputs(c.Fields, raw)
	result, err := c.Compute(in)
	if err != nil {
		return Result{}, fmt.Errorf("calculator %s: %w", c.Name, err)
	}
	result.Calculator = c.Name
	result.Title = c.Title
	result.Inputs = in.Resolved()

	r.logger.Debug("calculator evaluated",
		zap.String("op", "calculator.Compute"),
		zap.String("calculator", c.Name),
		zap.Int("inputs", len(raw)),
		zap.Int("outputs", len(result.Outputs)),
		zap.Duration("duration", time.Since(start)),
	)
	return result, nil
}
