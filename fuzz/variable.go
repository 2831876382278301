package fuzz

import (
	"math"
	"sort"
)

// Term pairs a label with its membership function when declaring a Variable.
type Term struct {
	// Label names the fuzzy set on this variable (e.g. "dry").
	Label string

	// MF is the membership function evaluated for this label.
	MF MembershipFunc
}

// Variable is a named linguistic axis: a bounded domain partitioned into
// labeled, usually overlapping fuzzy sets.
//
// A Variable is immutable once built by NewVariable and therefore safe to
// share across goroutines without synchronization.
type Variable struct {
	name   string
	lo, hi float64
	terms  map[string]MembershipFunc
	labels []string // sorted; fixes iteration order for reproducible traces
}

// NewVariable builds a linguistic variable over the domain [lo,hi].
//
// Contracts:
//   - name must be non-empty; lo < hi, both finite.
//   - at least one term; labels non-empty and unique.
//   - every term's support must lie within [lo,hi].
//
// Errors: ErrEmptyName, ErrBadDomain, ErrNoTerms, ErrEmptyTermLabel,
// ErrDuplicateTerm, ErrTermOutsideDomain.
//
// Complexity: O(t·log t) for t terms (label sort).
func NewVariable(name string, lo, hi float64, terms ...Term) (Variable, error) {
	if name == "" {
		return Variable{}, ErrEmptyName
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return Variable{}, ErrBadDomain
	}
	if len(terms) == 0 {
		return Variable{}, ErrNoTerms
	}

	var (
		byLabel = make(map[string]MembershipFunc, len(terms))
		labels  = make([]string, 0, len(terms))
		t       Term
		sLo     float64 // term support lower bound
		sHi     float64 // term support upper bound
		ok      bool
	)
	for _, t = range terms {
		if t.Label == "" {
			return Variable{}, ErrEmptyTermLabel
		}
		if _, ok = byLabel[t.Label]; ok {
			return Variable{}, ErrDuplicateTerm
		}
		sLo, sHi = t.MF.Support()
		if sLo < lo || sHi > hi {
			return Variable{}, ErrTermOutsideDomain
		}
		byLabel[t.Label] = t.MF
		labels = append(labels, t.Label)
	}
	sort.Strings(labels)

	return Variable{name: name, lo: lo, hi: hi, terms: byLabel, labels: labels}, nil
}

// Name returns the variable name.
func (v Variable) Name() string { return v.name }

// Domain returns the inclusive bounds of the variable axis.
func (v Variable) Domain() (lo, hi float64) { return v.lo, v.hi }

// Labels returns the term labels in sorted order (fresh copy).
func (v Variable) Labels() []string {
	out := make([]string, len(v.labels))
	copy(out, v.labels)

	return out
}

// Term returns the membership function for label, and whether it exists.
func (v Variable) Term(label string) (MembershipFunc, bool) {
	mf, ok := v.terms[label]

	return mf, ok
}

// Clamp maps x to the nearest domain bound when it falls outside [lo,hi].
// Out-of-range readings are sensor noise, not errors. NaN clamps to lo so
// that downstream evaluation stays defined.
func (v Variable) Clamp(x float64) float64 {
	if math.IsNaN(x) || x < v.lo {
		return v.lo
	}
	if x > v.hi {
		return v.hi
	}

	return x
}

// Fuzzify evaluates every term at the clamped input and returns the degree
// of membership per label. The returned map is owned by the caller.
//
// Complexity: O(t) for t terms.
func (v Variable) Fuzzify(x float64) map[string]float64 {
	x = v.Clamp(x)
	out := make(map[string]float64, len(v.terms))

	var label string
	for _, label = range v.labels {
		out[label] = v.terms[label].Degree(x)
	}

	return out
}
