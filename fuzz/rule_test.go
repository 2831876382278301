package fuzz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzium/fuzz"
)

// TestNewRule_Shape verifies a well-formed rule and its private clause copy.
func TestNewRule_Shape(t *testing.T) {
	when := []fuzz.Clause{
		fuzz.When("soil_moisture", "dry"),
		fuzz.When("temperature", "hot"),
	}

	r, err := fuzz.NewRule(fuzz.And, "high", when...)
	require.NoError(t, err)
	assert.Equal(t, fuzz.And, r.Connective)
	assert.Equal(t, "high", r.Consequent)
	assert.Len(t, r.Antecedents, 2)

	// Mutating the caller's slice must not leak into the rule.
	when[0] = fuzz.When("soil_moisture", "wet")
	assert.Equal(t, "dry", r.Antecedents[0].Label, "rule must hold a private clause copy")
}

// TestNewRule_Validation exercises every rule shape sentinel.
func TestNewRule_Validation(t *testing.T) {
	_, err := fuzz.NewRule(fuzz.Connective(42), "high", fuzz.When("a", "b"))
	assert.ErrorIs(t, err, fuzz.ErrBadConnective)

	_, err = fuzz.NewRule(fuzz.And, "", fuzz.When("a", "b"))
	assert.ErrorIs(t, err, fuzz.ErrEmptyConsequent)

	_, err = fuzz.NewRule(fuzz.And, "high")
	assert.ErrorIs(t, err, fuzz.ErrNoClauses)

	_, err = fuzz.NewRule(fuzz.And, "high", fuzz.When("", "b"))
	assert.ErrorIs(t, err, fuzz.ErrEmptyClause)

	_, err = fuzz.NewRule(fuzz.Or, "high", fuzz.When("a", ""))
	assert.ErrorIs(t, err, fuzz.ErrEmptyClause)
}

// TestRule_String checks the reproducible trace rendering.
func TestRule_String(t *testing.T) {
	r, err := fuzz.NewRule(fuzz.And, "high",
		fuzz.When("soil_moisture", "dry"),
		fuzz.When("temperature", "hot"),
	)
	require.NoError(t, err)
	assert.Equal(t, "IF soil_moisture IS dry AND temperature IS hot THEN high", r.String())

	single, err := fuzz.NewRule(fuzz.Or, "low", fuzz.When("soil_moisture", "wet"))
	require.NoError(t, err)
	assert.Equal(t, "IF soil_moisture IS wet THEN low", single.String())
}

// TestConnective_String pins the configuration keywords.
func TestConnective_String(t *testing.T) {
	assert.Equal(t, "and", fuzz.And.String())
	assert.Equal(t, "or", fuzz.Or.String())
	assert.Equal(t, "unknown", fuzz.Connective(9).String())
	assert.Equal(t, "triangular", fuzz.Triangle.String())
	assert.Equal(t, "trapezoidal", fuzz.Trapezoid.String())
}
