// Package mamdani implements Mamdani-style fuzzy inference: fuzzify crisp
// inputs, fire a rule base, aggregate the clipped consequents and reduce the
// result to one crisp number by centroid defuzzification.
//
// Pipeline (one Compute call):
//
//  1. Fuzzification — each declared input variable clamps its crisp reading
//     to the domain and evaluates every label's membership function.
//  2. Firing — per rule, clause degrees combine via min (AND) or max (OR)
//     into the firing strength α ∈ [0,1]; rules with α = 0 are skipped
//     (an optimization, not a semantic choice).
//  3. Implication — the consequent label's membership function is clipped
//     (min) at height α.
//  4. Aggregation — pointwise maximum across all rules over a fixed sample
//     grid of the output domain: any rule supporting a label contributes,
//     the strongest dominates.
//  5. Defuzzification — centroid Σ(x·μ)/Σ(μ) over the grid. Zero total mass
//     (no rule fired) is a defined degenerate state: the domain midpoint is
//     returned with Activated=false, never NaN and never an error.
//
// Design principles (shared with the rest of the module):
//   - Deterministic: the grid is lo + i·step for a fixed step; identical
//     inputs always produce bit-identical outputs.
//   - Strict sentinels: inconsistent configurations fail in New, evaluation
//     only ever reports a missing input.
//   - Immutable: a built Controller never changes; Compute allocates only
//     call-local state, so concurrent calls need no synchronization.
//
// ⚙️ Usage:
//
//	ctl, err := mamdani.New(mamdani.Config{
//		Inputs:  []fuzz.Variable{soil, temp},
//		Output:  water,
//		Rules:   rules,
//		Options: mamdani.DefaultOptions(),
//	})
//	res, err := ctl.Compute(map[string]float64{
//		"soil_moisture": 20,
//		"temperature":   35,
//	})
//	// res.Value ∈ [0,100], res.Activated reports whether any rule fired.
//
// Complexity per Compute: O(#rules × #grid samples).
package mamdani
