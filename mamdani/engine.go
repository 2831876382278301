package mamdani

import (
	"fmt"

	"github.com/katalvlaran/fuzium/fuzz"
)

// aggregate is the Mamdani inference core: fuzzify every declared input,
// fire each rule, clip its consequent at the firing strength and fold all
// partial sets into one aggregated membership array over c.grid.
//
// Returns the aggregated degrees (all zero when nothing fires) or
// ErrMissingInput. All state is call-local.
//
// Complexity: O(#inputs·#terms + #rules × #samples).
func (c *Controller) aggregate(inputs map[string]float64) ([]float64, error) {
	// Stage 1: fuzzification, in declaration order so that a call missing
	// several inputs always reports the same one.
	degrees := make(map[string]map[string]float64, len(c.order))

	var (
		name string
		x    float64
		ok   bool
	)
	for _, name = range c.order {
		if x, ok = inputs[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingInput, name)
		}
		degrees[name] = c.inputs[name].Fuzzify(x)
	}

	// Stages 2–4: firing, implication (clip) and max-aggregation.
	mu := make([]float64, len(c.grid))

	var (
		i     int
		alpha float64
		d     float64
		j     int
		xj    float64
	)
	for i = range c.rules {
		alpha = firingStrength(c.rules[i], degrees)
		if alpha == 0 {
			// Zero-strength rules contribute nothing; skipping them is an
			// optimization, not a semantic choice.
			continue
		}
		for j, xj = range c.grid {
			d = c.consequents[i].Degree(xj)
			if d > alpha {
				d = alpha // implication: clip at the firing strength
			}
			if d > mu[j] {
				mu[j] = d // aggregation: pointwise maximum
			}
		}
	}

	return mu, nil
}

// firingStrength combines the antecedent degrees of one rule: minimum for
// AND, maximum for OR. References were validated at construction, so the
// lookups cannot miss.
func firingStrength(r fuzz.Rule, degrees map[string]map[string]float64) float64 {
	alpha := degrees[r.Antecedents[0].Variable][r.Antecedents[0].Label]

	var (
		cl fuzz.Clause
		d  float64
	)
	for _, cl = range r.Antecedents[1:] {
		d = degrees[cl.Variable][cl.Label]
		switch r.Connective {
		case fuzz.And:
			if d < alpha {
				alpha = d
			}
		case fuzz.Or:
			if d > alpha {
				alpha = d
			}
		}
	}

	return alpha
}
