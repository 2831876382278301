// Package fuzzcfg loads declarative Mamdani controller tables from TOML.
//
// A table is the on-disk equivalent of a mamdani.Config: input and output
// variables as {name, domain, terms} with {label, shape, points} rows, plus
// rules as {when, connective, consequent} rows. Unknown fields, unknown
// shapes and unknown connectives are rejected.
//
// ⚙️ Example table:
//
//	resolution = 1.0
//
//	[[input]]
//	name = "soil_moisture"
//	min = 0.0
//	max = 100.0
//	[[input.term]]
//	label = "dry"
//	shape = "triangular"
//	points = [0.0, 0.0, 50.0]
//
//	[output]
//	name = "water"
//	min = 0.0
//	max = 100.0
//	[[output.term]]
//	label = "low"
//	shape = "triangular"
//	points = [0.0, 0.0, 50.0]
//
//	[[rule]]
//	connective = "and"   # optional; "and" is the default
//	consequent = "low"
//	[[rule.when]]
//	variable = "soil_moisture"
//	label = "dry"
//
// Load/Parse only assemble the mamdani.Config; full semantic validation
// (cross-references, domains, grid) still happens in mamdani.New.
package fuzzcfg
