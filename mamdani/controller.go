package mamdani

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fuzium/fuzz"
)

// Controller is an immutable Mamdani controller: the sole externally visible
// entry point composing fuzzification, inference and defuzzification.
//
// A Controller retains no state between calls; Compute is pure and safe for
// concurrent use from many goroutines.
type Controller struct {
	order       []string                 // declared input order, for deterministic traversal
	inputs      map[string]fuzz.Variable // input name → variable
	output      fuzz.Variable
	rules       []fuzz.Rule
	consequents []fuzz.MembershipFunc // rules[i]'s output term, resolved once
	grid        []float64             // output domain samples, lo + i·step
	fallback    float64               // midpoint of the output domain
}

// New validates cfg and builds a Controller.
//
// Contracts:
//   - at least one input variable and one rule; unique input names.
//   - every variable built via fuzz.NewVariable (a zero-value Variable is rejected).
//   - every rule clause references a declared input and one of its labels;
//     every consequent references a label of the output variable.
//   - Options.Resolution > 0 and finer than the output span (0 selects
//     DefaultOptions).
//
// Errors: ErrNoInputs, ErrNoRules, ErrBadVariable, ErrDuplicateVariable,
// ErrUnknownVariable, ErrUnknownTerm, ErrBadResolution, plus the fuzz rule
// shape sentinels for malformed rules.
//
// Complexity: O(#rules·#clauses + #samples).
func New(cfg Config) (*Controller, error) {
	if len(cfg.Inputs) == 0 {
		return nil, ErrNoInputs
	}
	if len(cfg.Rules) == 0 {
		return nil, ErrNoRules
	}

	c := &Controller{
		order:  make([]string, 0, len(cfg.Inputs)),
		inputs: make(map[string]fuzz.Variable, len(cfg.Inputs)),
		output: cfg.Output,
	}

	// Stage 1: input variables (shape + uniqueness).
	var (
		v  fuzz.Variable
		ok bool
	)
	for _, v = range cfg.Inputs {
		if len(v.Labels()) == 0 {
			return nil, ErrBadVariable
		}
		if _, ok = c.inputs[v.Name()]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, v.Name())
		}
		c.inputs[v.Name()] = v
		c.order = append(c.order, v.Name())
	}
	if len(cfg.Output.Labels()) == 0 {
		return nil, ErrBadVariable
	}

	// Stage 2: rule cross-references, resolved once so evaluation never looks up labels.
	c.rules = make([]fuzz.Rule, 0, len(cfg.Rules))
	c.consequents = make([]fuzz.MembershipFunc, 0, len(cfg.Rules))

	var (
		r  fuzz.Rule
		mf fuzz.MembershipFunc
	)
	for _, r = range cfg.Rules {
		// Re-run shape validation: Config rules may be struct literals that
		// never went through fuzz.NewRule.
		checked, err := fuzz.NewRule(r.Connective, r.Consequent, r.Antecedents...)
		if err != nil {
			return nil, err
		}
		for _, cl := range checked.Antecedents {
			in, declared := c.inputs[cl.Variable]
			if !declared {
				return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, cl.Variable)
			}
			if _, declared = in.Term(cl.Label); !declared {
				return nil, fmt.Errorf("%w: %q is %q", ErrUnknownTerm, cl.Variable, cl.Label)
			}
		}
		if mf, ok = cfg.Output.Term(checked.Consequent); !ok {
			return nil, fmt.Errorf("%w: %q is %q", ErrUnknownTerm, cfg.Output.Name(), checked.Consequent)
		}
		c.rules = append(c.rules, checked)
		c.consequents = append(c.consequents, mf)
	}

	// Stage 3: output sample grid.
	grid, err := sampleGrid(cfg.Output, cfg.Options)
	if err != nil {
		return nil, err
	}
	c.grid = grid

	lo, hi := cfg.Output.Domain()
	c.fallback = lo + (hi-lo)/2

	return c, nil
}

// sampleGrid discretizes the output domain as lo + i·step for
// i = 0..floor((hi-lo)/step); the upper bound is included whenever the step
// divides the span. At least two samples are required.
func sampleGrid(out fuzz.Variable, opts Options) ([]float64, error) {
	step := opts.Resolution
	if step == 0 {
		step = DefaultResolution
	}
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return nil, ErrBadResolution
	}

	lo, hi := out.Domain()
	// gridEps absorbs FP drift so that an exactly-dividing step includes hi.
	const gridEps = 1e-9
	n := int(math.Floor((hi-lo)/step + gridEps))
	if n < 1 {
		return nil, ErrBadResolution
	}

	grid := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		grid[i] = lo + float64(i)*step
	}
	// FP drift can push the last sample a hair past hi; pin it so the grid
	// never leaves the output domain.
	if grid[n] > hi {
		grid[n] = hi
	}

	return grid, nil
}

// Inputs returns the declared input variable names in declaration order.
func (c *Controller) Inputs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Output returns the output variable.
func (c *Controller) Output() fuzz.Variable { return c.output }

// Rules returns the rule base in declaration order (fresh copy).
func (c *Controller) Rules() []fuzz.Rule {
	out := make([]fuzz.Rule, len(c.rules))
	copy(out, c.rules)

	return out
}

// Compute evaluates the controller for one set of crisp readings.
//
// Every declared input must be present in inputs (extra keys are ignored);
// out-of-domain values are clamped. When no rule fires, Result carries the
// output-domain midpoint with Activated=false — a defined fallback, not an
// error.
//
// Errors: ErrMissingInput (wrapped with the variable name).
// Complexity: O(#rules × #samples). Pure; safe for concurrent use.
func (c *Controller) Compute(inputs map[string]float64) (Result, error) {
	mu, err := c.aggregate(inputs)
	if err != nil {
		return Result{}, err
	}

	value, activated := centroid(c.grid, mu)
	if !activated {
		value = c.fallback
	}

	return Result{Value: value, Activated: activated}, nil
}

// Infer runs fuzzification, firing, implication and aggregation, returning
// the aggregated output fuzzy set over the controller's sample grid. The
// returned set is a fresh copy owned by the caller; plotting and analysis
// adapters consume it without touching the controller.
//
// Errors: ErrMissingInput.
func (c *Controller) Infer(inputs map[string]float64) (FuzzySet, error) {
	mu, err := c.aggregate(inputs)
	if err != nil {
		return FuzzySet{}, err
	}

	xs := make([]float64, len(c.grid))
	copy(xs, c.grid)

	return FuzzySet{Xs: xs, Mu: mu}, nil
}
