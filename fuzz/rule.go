package fuzz

import (
	"errors"
	"strings"
)

// Sentinel errors for rule construction.
var (
	// ErrNoClauses indicates a rule declared without antecedent clauses.
	ErrNoClauses = errors.New("fuzz: rule needs at least one antecedent clause")

	// ErrEmptyClause indicates a clause with an empty variable or label.
	ErrEmptyClause = errors.New("fuzz: clause variable and label must be non-empty")

	// ErrEmptyConsequent indicates a rule without a consequent label.
	ErrEmptyConsequent = errors.New("fuzz: rule consequent must be non-empty")

	// ErrBadConnective indicates a connective outside the And/Or variant.
	ErrBadConnective = errors.New("fuzz: unknown connective")
)

// Connective selects how a rule combines its antecedent degrees.
type Connective int

const (
	// And combines clause degrees with the minimum.
	And Connective = iota

	// Or combines clause degrees with the maximum.
	Or
)

// String returns the connective keyword used in configuration tables.
func (c Connective) String() string {
	switch c {
	case And:
		return "and"
	case Or:
		return "or"
	default:
		return "unknown"
	}
}

// Clause is one antecedent condition: "<Variable> IS <Label>".
type Clause struct {
	Variable string
	Label    string
}

// When is a readability helper for building rule tables in code.
func When(variable, label string) Clause {
	return Clause{Variable: variable, Label: label}
}

// Rule is one IF/THEN entry of a rule base.
//
// Antecedents are combined by Connective into a firing strength; Consequent
// names a term of the output variable. Whether the referenced variables and
// labels actually exist is checked once, at controller construction, never
// during evaluation.
type Rule struct {
	Antecedents []Clause
	Connective  Connective
	Consequent  string
}

// NewRule builds a rule and checks its shape (not its cross-references).
//
// Errors: ErrNoClauses, ErrEmptyClause, ErrEmptyConsequent, ErrBadConnective.
// Complexity: O(k) for k clauses.
func NewRule(conn Connective, consequent string, when ...Clause) (Rule, error) {
	if conn != And && conn != Or {
		return Rule{}, ErrBadConnective
	}
	if consequent == "" {
		return Rule{}, ErrEmptyConsequent
	}
	if len(when) == 0 {
		return Rule{}, ErrNoClauses
	}

	var cl Clause
	for _, cl = range when {
		if cl.Variable == "" || cl.Label == "" {
			return Rule{}, ErrEmptyClause
		}
	}

	// Private copy: the rule must stay immutable even if the caller reuses
	// the clause slice.
	ants := make([]Clause, len(when))
	copy(ants, when)

	return Rule{Antecedents: ants, Connective: conn, Consequent: consequent}, nil
}

// String renders the rule in trace form, e.g.
// "IF soil_moisture IS dry AND temperature IS hot THEN high".
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString("IF ")

	glue := " " + strings.ToUpper(r.Connective.String()) + " "
	for i, cl := range r.Antecedents {
		if i > 0 {
			sb.WriteString(glue)
		}
		sb.WriteString(cl.Variable)
		sb.WriteString(" IS ")
		sb.WriteString(cl.Label)
	}
	sb.WriteString(" THEN ")
	sb.WriteString(r.Consequent)

	return sb.String()
}
