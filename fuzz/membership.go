package fuzz

import (
	"errors"
	"math"
)

// Sentinel errors for fuzzy primitive construction.
var (
	// ErrShapeOrder indicates membership control points that are not
	// monotonically non-decreasing (a ≤ b ≤ c (≤ d) is required).
	ErrShapeOrder = errors.New("fuzz: membership control points must be non-decreasing")

	// ErrShapeNotFinite indicates a NaN or infinite membership control point.
	ErrShapeNotFinite = errors.New("fuzz: membership control points must be finite")

	// ErrEmptyName indicates a variable with an empty name.
	ErrEmptyName = errors.New("fuzz: variable name must be non-empty")

	// ErrBadDomain indicates a domain whose lower bound is not below its upper bound.
	ErrBadDomain = errors.New("fuzz: domain lower bound must be below upper bound")

	// ErrNoTerms indicates a variable declared without any labeled term.
	ErrNoTerms = errors.New("fuzz: variable needs at least one term")

	// ErrEmptyTermLabel indicates a term with an empty label.
	ErrEmptyTermLabel = errors.New("fuzz: term label must be non-empty")

	// ErrDuplicateTerm indicates two terms sharing the same label on one variable.
	ErrDuplicateTerm = errors.New("fuzz: duplicate term label")

	// ErrTermOutsideDomain indicates a term whose support exceeds the variable domain.
	ErrTermOutsideDomain = errors.New("fuzz: term support must lie within the variable domain")
)

// Shape enumerates the closed set of supported membership shapes.
// Extend by adding variants, not subclasses.
type Shape int

const (
	// Triangle is a three-point shape: ramp a→b up to 1, ramp b→c down to 0.
	Triangle Shape = iota

	// Trapezoid is a four-point shape: ramp a→b, plateau at 1 on [b,c], ramp c→d.
	Trapezoid
)

// String returns the shape name used in configuration tables.
func (s Shape) String() string {
	switch s {
	case Triangle:
		return "triangular"
	case Trapezoid:
		return "trapezoidal"
	default:
		return "unknown"
	}
}

// MembershipFunc evaluates the degree of membership of one fuzzy set.
//
// It is an immutable value over a closed variant of shapes; construct with
// Triangular or Trapezoidal. Internally every shape is held in canonical
// trapezoid form (a,b,c,d) — a triangle is the degenerate case b == c — so
// Degree evaluates one uniform piecewise formula. The zero value is the
// degenerate triangle at 0.
type MembershipFunc struct {
	shape      Shape
	a, b, c, d float64
}

// Triangular builds a three-point membership function with a ≤ b ≤ c.
//
// Degree is 0 outside [a,c], ramps linearly 0→1 on [a,b], is exactly 1 at
// x=b, and ramps 1→0 on [b,c]. Degenerate sides (a=b or b=c) collapse to a
// right/left shoulder: the vertical side evaluates to 1 at the shared point
// without any 0/0 division.
//
// Errors: ErrShapeNotFinite, ErrShapeOrder.
// Complexity: O(1).
func Triangular(a, b, c float64) (MembershipFunc, error) {
	if err := validatePoints(a, b, b, c); err != nil {
		return MembershipFunc{}, err
	}

	return MembershipFunc{shape: Triangle, a: a, b: b, c: b, d: c}, nil
}

// Trapezoidal builds a four-point membership function with a ≤ b ≤ c ≤ d.
//
// Degree is 0 outside [a,d], ramps on [a,b], holds a plateau at 1 on [b,c],
// and ramps down on [c,d]. Degenerate ramps collapse to shoulders the same
// way Triangular sides do.
//
// Errors: ErrShapeNotFinite, ErrShapeOrder.
// Complexity: O(1).
func Trapezoidal(a, b, c, d float64) (MembershipFunc, error) {
	if err := validatePoints(a, b, c, d); err != nil {
		return MembershipFunc{}, err
	}

	return MembershipFunc{shape: Trapezoid, a: a, b: b, c: c, d: d}, nil
}

// validatePoints rejects non-finite or decreasing control points.
func validatePoints(a, b, c, d float64) error {
	var p float64
	for _, p = range [4]float64{a, b, c, d} {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return ErrShapeNotFinite
		}
	}
	if a > b || b > c || c > d {
		return ErrShapeOrder
	}

	return nil
}

// Shape reports which variant this membership function is.
func (m MembershipFunc) Shape() Shape { return m.shape }

// Points returns the control points in canonical trapezoid form; a Triangle
// carries its peak as both middle points (b == c).
func (m MembershipFunc) Points() (a, b, c, d float64) {
	return m.a, m.b, m.c, m.d
}

// Support returns the closed interval outside of which Degree is zero.
func (m MembershipFunc) Support() (lo, hi float64) { return m.a, m.d }

// Degree evaluates the degree of membership at x, always in [0,1].
//
// NaN inputs yield 0 (no membership anywhere). No allocations; called many
// times per inference pass.
//
// Complexity: O(1).
func (m MembershipFunc) Degree(x float64) float64 {
	if math.IsNaN(x) || x < m.a || x > m.d {
		return 0
	}
	// Rising ramp: only reachable when a < b, so the division is well-defined.
	if x < m.b {
		return (x - m.a) / (m.b - m.a)
	}
	// Falling ramp: only reachable when c < d.
	if x > m.c {
		return (m.d - x) / (m.d - m.c)
	}

	// Plateau [b,c] (a single point for triangles).
	return 1
}
