package mamdani

// Centroid reduces an aggregated fuzzy set to a crisp value by the
// center-of-gravity method: Σ(x·μ)/Σ(μ) over the sampled grid.
//
// The boolean mirrors Result.Activated: when the set carries no mass (no
// rule fired) there is no centroid to take, so the midpoint of the sampled
// span is returned with false instead of dividing by zero.
//
// Errors: ErrGridMismatch when Xs and Mu differ in length or are empty.
// Complexity: O(#samples).
func Centroid(set FuzzySet) (float64, bool, error) {
	if len(set.Xs) == 0 || len(set.Xs) != len(set.Mu) {
		return 0, false, ErrGridMismatch
	}

	value, activated := centroid(set.Xs, set.Mu)
	if !activated {
		lo, hi := set.Xs[0], set.Xs[len(set.Xs)-1]
		value = lo + (hi-lo)/2
	}

	return value, activated, nil
}

// centroid computes Σ(x·μ)/Σ(μ) over parallel slices, reporting false when
// the total mass is zero (the caller substitutes its documented fallback).
// Summation runs in grid order, keeping results bit-identical across calls.
func centroid(xs, mu []float64) (float64, bool) {
	var (
		num  float64 // Σ x·μ
		mass float64 // Σ μ
		i    int
	)
	for i = range xs {
		num += xs[i] * mu[i]
		mass += mu[i]
	}
	if mass == 0 {
		return 0, false
	}

	return num / mass, true
}
