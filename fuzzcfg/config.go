package fuzzcfg

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/fuzium/fuzz"
	"github.com/katalvlaran/fuzium/mamdani"
)

// Sentinel errors for table decoding.
var (
	// ErrUnknownShape indicates a term shape outside {triangular, trapezoidal}.
	ErrUnknownShape = errors.New("fuzzcfg: unknown membership shape")

	// ErrBadPointCount indicates a points array whose length does not match
	// its shape (3 for triangular, 4 for trapezoidal).
	ErrBadPointCount = errors.New("fuzzcfg: wrong number of control points for shape")

	// ErrUnknownConnective indicates a rule connective outside {and, or}.
	ErrUnknownConnective = errors.New("fuzzcfg: unknown rule connective")
)

// Document mirrors the TOML table layout. Field names follow the schema in
// the package documentation.
type Document struct {
	Resolution float64         `toml:"resolution,omitempty"`
	Inputs     []VariableTable `toml:"input"`
	Output     VariableTable   `toml:"output"`
	Rules      []RuleTable     `toml:"rule"`
}

// VariableTable declares one linguistic variable.
type VariableTable struct {
	Name  string      `toml:"name"`
	Min   float64     `toml:"min"`
	Max   float64     `toml:"max"`
	Terms []TermTable `toml:"term"`
}

// TermTable declares one labeled membership function.
type TermTable struct {
	Label  string    `toml:"label"`
	Shape  string    `toml:"shape"`
	Points []float64 `toml:"points"`
}

// RuleTable declares one rule row.
type RuleTable struct {
	Connective string        `toml:"connective,omitempty"`
	Consequent string        `toml:"consequent"`
	When       []ClauseTable `toml:"when"`
}

// ClauseTable declares one antecedent clause.
type ClauseTable struct {
	Variable string `toml:"variable"`
	Label    string `toml:"label"`
}

// Load reads a controller table from path and assembles a mamdani.Config.
func Load(path string) (mamdani.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return mamdani.Config{}, fmt.Errorf("fuzzcfg: read %s: %w", path, err)
	}

	return Parse(raw)
}

// Parse decodes a TOML controller table. Unknown fields are rejected so a
// typo in a table never silently drops a term or rule.
func Parse(data []byte) (mamdani.Config, error) {
	var doc Document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return mamdani.Config{}, fmt.Errorf("fuzzcfg: decode: %w", err)
	}

	return doc.Config()
}

// Config assembles the declared tables into a mamdani.Config. Shape-level
// validation happens here; cross-reference and grid validation is left to
// mamdani.New, which consumes the result.
func (d Document) Config() (mamdani.Config, error) {
	cfg := mamdani.Config{
		Options: mamdani.Options{Resolution: d.Resolution},
		Inputs:  make([]fuzz.Variable, 0, len(d.Inputs)),
		Rules:   make([]fuzz.Rule, 0, len(d.Rules)),
	}

	var (
		v   fuzz.Variable
		err error
	)
	for _, vt := range d.Inputs {
		if v, err = vt.variable(); err != nil {
			return mamdani.Config{}, err
		}
		cfg.Inputs = append(cfg.Inputs, v)
	}
	if cfg.Output, err = d.Output.variable(); err != nil {
		return mamdani.Config{}, err
	}

	var r fuzz.Rule
	for _, rt := range d.Rules {
		if r, err = rt.rule(); err != nil {
			return mamdani.Config{}, err
		}
		cfg.Rules = append(cfg.Rules, r)
	}

	return cfg, nil
}

func (vt VariableTable) variable() (fuzz.Variable, error) {
	terms := make([]fuzz.Term, 0, len(vt.Terms))

	var (
		mf  fuzz.MembershipFunc
		err error
	)
	for _, tt := range vt.Terms {
		if mf, err = tt.membership(); err != nil {
			return fuzz.Variable{}, fmt.Errorf("%w (variable %q, term %q)", err, vt.Name, tt.Label)
		}
		terms = append(terms, fuzz.Term{Label: tt.Label, MF: mf})
	}

	return fuzz.NewVariable(vt.Name, vt.Min, vt.Max, terms...)
}

func (tt TermTable) membership() (fuzz.MembershipFunc, error) {
	switch tt.Shape {
	case fuzz.Triangle.String():
		if len(tt.Points) != 3 {
			return fuzz.MembershipFunc{}, ErrBadPointCount
		}

		return fuzz.Triangular(tt.Points[0], tt.Points[1], tt.Points[2])

	case fuzz.Trapezoid.String():
		if len(tt.Points) != 4 {
			return fuzz.MembershipFunc{}, ErrBadPointCount
		}

		return fuzz.Trapezoidal(tt.Points[0], tt.Points[1], tt.Points[2], tt.Points[3])

	default:
		return fuzz.MembershipFunc{}, fmt.Errorf("%w: %q", ErrUnknownShape, tt.Shape)
	}
}

func (rt RuleTable) rule() (fuzz.Rule, error) {
	var conn fuzz.Connective
	switch rt.Connective {
	case "", fuzz.And.String():
		conn = fuzz.And
	case fuzz.Or.String():
		conn = fuzz.Or
	default:
		return fuzz.Rule{}, fmt.Errorf("%w: %q", ErrUnknownConnective, rt.Connective)
	}

	when := make([]fuzz.Clause, 0, len(rt.When))
	for _, ct := range rt.When {
		when = append(when, fuzz.Clause{Variable: ct.Variable, Label: ct.Label})
	}

	return fuzz.NewRule(conn, rt.Consequent, when...)
}
