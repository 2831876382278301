package mamdani

import (
	"errors"

	"github.com/katalvlaran/fuzium/fuzz"
)

// Sentinel errors. Configuration errors surface from New; ErrMissingInput is
// the only evaluation-time error.
var (
	// ErrNoInputs indicates a config without input variables.
	ErrNoInputs = errors.New("mamdani: config needs at least one input variable")

	// ErrNoRules indicates a config without rules.
	ErrNoRules = errors.New("mamdani: config needs at least one rule")

	// ErrBadVariable indicates a variable that was not built with fuzz.NewVariable.
	ErrBadVariable = errors.New("mamdani: variable must be built with fuzz.NewVariable")

	// ErrDuplicateVariable indicates two input variables sharing a name.
	ErrDuplicateVariable = errors.New("mamdani: duplicate input variable name")

	// ErrUnknownVariable indicates a rule clause referencing an undeclared input.
	ErrUnknownVariable = errors.New("mamdani: rule references an undeclared variable")

	// ErrUnknownTerm indicates a rule referencing a label its variable does not declare.
	ErrUnknownTerm = errors.New("mamdani: rule references an undeclared term")

	// ErrBadResolution indicates a non-positive, non-finite or too-coarse
	// discretization step (the grid needs at least two samples).
	ErrBadResolution = errors.New("mamdani: resolution must be positive, finite and finer than the output span")

	// ErrMissingInput indicates a declared input with no supplied value at
	// call time. Surfaced to the caller, never silently defaulted.
	ErrMissingInput = errors.New("mamdani: missing value for declared input")

	// ErrGridMismatch indicates a FuzzySet whose sample and degree slices disagree.
	ErrGridMismatch = errors.New("mamdani: fuzzy set samples and degrees must have equal non-zero length")
)

// Options configures the inference grid.
//
// Resolution is the discretization step across the output domain: finer
// steps trade compute for numeric fidelity. The grid is deterministic
// (lo + i·step), never sampled randomly, so identical inputs always yield
// identical outputs. The zero value means "use DefaultOptions().Resolution".
type Options struct {
	Resolution float64
}

// DefaultResolution is the default output discretization step, matching a
// 1-unit grid over the canonical 0–100 sprinkler domain.
const DefaultResolution = 1.0

// DefaultOptions returns the canonical options (Resolution = 1).
func DefaultOptions() Options {
	return Options{Resolution: DefaultResolution}
}

// Config declares a complete controller: input axes, one output axis, the
// rule base and the discretization options. It is consumed by New and never
// mutated afterwards; the rule order is irrelevant to the result
// (aggregation is commutative) but preserved for reproducible traces.
type Config struct {
	Inputs  []fuzz.Variable
	Output  fuzz.Variable
	Rules   []fuzz.Rule
	Options Options
}

// Result is the outcome of one Compute call.
type Result struct {
	// Value is the crisp output, always within the output domain.
	Value float64

	// Activated reports whether any rule fired. When false, Value is the
	// documented fallback: the midpoint of the output domain.
	Activated bool
}

// FuzzySet is an aggregated output fuzzy set sampled over the controller's
// grid: Mu[i] is the degree of membership at Xs[i]. Produced per Infer call
// and owned solely by the caller.
type FuzzySet struct {
	Xs []float64
	Mu []float64
}
