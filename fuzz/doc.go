// Package fuzz provides the primitives of fuzzy set theory used by the
// mamdani inference engine: membership functions, linguistic variables and
// rules.
//
// 🚀 What lives here?
//
//	• MembershipFunc — a closed variant over Triangular / Trapezoidal shapes,
//	  evaluating a degree of membership in [0,1] at any point.
//	• Variable — a named axis (e.g. "temperature") with a bounded domain and
//	  a set of labeled, overlapping membership functions.
//	• Rule — one IF/THEN clause combining antecedent labels with AND or OR
//	  into a consequent label on the output variable.
//
// ✨ Key guarantees:
//
//   - Immutable values: once constructed, shapes, variables and rules never
//     change; sharing across goroutines needs no synchronization.
//   - Construction-time validation: malformed shapes (non-monotone control
//     points), empty domains and out-of-domain terms are rejected with
//     sentinel errors, never at evaluation time.
//   - Cheap evaluation: Degree and Fuzzify are closed-form, allocation-free
//     on the membership hot path.
//
// ⚙️ Usage:
//
//	dry, _ := fuzz.Triangular(0, 0, 50)
//	wet, _ := fuzz.Triangular(50, 100, 100)
//	soil, _ := fuzz.NewVariable("soil_moisture", 0, 100,
//		fuzz.Term{Label: "dry", MF: dry},
//		fuzz.Term{Label: "wet", MF: wet},
//	)
//	degrees := soil.Fuzzify(20) // map[dry:0.6 wet:0]
//
// Inputs outside the domain are clamped to the nearest bound before
// evaluation, so noisy sensor readings always yield defined degrees.
package fuzz
