// Package fuzium is a small, deterministic Mamdani fuzzy-logic toolkit:
// linguistic variables, rule bases and centroid defuzzification for building
// crisp-in / crisp-out controllers (the classic example: a sprinkler that
// maps soil moisture and temperature to a water-flow level).
//
// 🚀 What is a Mamdani controller?
//
//	A fixed table of fuzzy IF/THEN rules over overlapping linguistic labels:
//	  • Fuzzification: crisp readings → degrees per label (dry/moist/wet …)
//	  • Firing: min (AND) / max (OR) of antecedent degrees per rule
//	  • Implication: clip each consequent shape at the firing strength
//	  • Aggregation: pointwise max across all rules
//	  • Defuzzification: centroid of the aggregated set → one crisp number
//
// ✨ Why choose this library?
//
//   - Deterministic – fixed sample grid, no randomness, bit-identical replays
//   - Strict sentinels – inconsistent configurations never build
//   - Pure hot path – closed-form membership math, no hidden allocations
//   - Concurrent-safe – controllers are immutable after construction
//
// Everything is organized under four subpackages:
//
//	fuzz/    — membership functions, linguistic variables, rules
//	mamdani/ — inference engine, centroid defuzzifier, Controller
//	fuzzcfg/ — declarative TOML controller tables
//	examples/— runnable end-to-end demos
//
//	go get github.com/katalvlaran/fuzium
package fuzium
