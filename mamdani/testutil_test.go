package mamdani_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzium/fuzz"
	"github.com/katalvlaran/fuzium/mamdani"
)

// tri is a test shorthand for fuzz.Triangular with literal points.
func tri(t *testing.T, a, b, c float64) fuzz.MembershipFunc {
	t.Helper()

	mf, err := fuzz.Triangular(a, b, c)
	require.NoError(t, err)

	return mf
}

// variable is a test shorthand for fuzz.NewVariable.
func variable(t *testing.T, name string, lo, hi float64, terms ...fuzz.Term) fuzz.Variable {
	t.Helper()

	v, err := fuzz.NewVariable(name, lo, hi, terms...)
	require.NoError(t, err)

	return v
}

// rule is a test shorthand for fuzz.NewRule with the AND connective.
func rule(t *testing.T, consequent string, when ...fuzz.Clause) fuzz.Rule {
	t.Helper()

	r, err := fuzz.NewRule(fuzz.And, consequent, when...)
	require.NoError(t, err)

	return r
}

// sprinklerConfig builds the canonical five-rule sprinkler base:
// dry/moist/wet × cold/warm/hot → low/medium/high.
func sprinklerConfig(t *testing.T) mamdani.Config {
	t.Helper()

	soil := variable(t, "soil_moisture", 0, 100,
		fuzz.Term{Label: "dry", MF: tri(t, 0, 0, 50)},
		fuzz.Term{Label: "moist", MF: tri(t, 20, 50, 80)},
		fuzz.Term{Label: "wet", MF: tri(t, 50, 100, 100)},
	)
	temp := variable(t, "temperature", 0, 50,
		fuzz.Term{Label: "cold", MF: tri(t, 0, 0, 20)},
		fuzz.Term{Label: "warm", MF: tri(t, 10, 25, 40)},
		fuzz.Term{Label: "hot", MF: tri(t, 30, 50, 50)},
	)
	water := variable(t, "water", 0, 100,
		fuzz.Term{Label: "low", MF: tri(t, 0, 0, 50)},
		fuzz.Term{Label: "medium", MF: tri(t, 20, 50, 80)},
		fuzz.Term{Label: "high", MF: tri(t, 50, 100, 100)},
	)

	return mamdani.Config{
		Inputs: []fuzz.Variable{soil, temp},
		Output: water,
		Rules: []fuzz.Rule{
			rule(t, "high", fuzz.When("soil_moisture", "dry"), fuzz.When("temperature", "hot")),
			rule(t, "medium", fuzz.When("soil_moisture", "dry"), fuzz.When("temperature", "warm")),
			rule(t, "medium", fuzz.When("soil_moisture", "moist"), fuzz.When("temperature", "warm")),
			rule(t, "low", fuzz.When("soil_moisture", "moist"), fuzz.When("temperature", "cold")),
			rule(t, "low", fuzz.When("soil_moisture", "wet")),
		},
		Options: mamdani.DefaultOptions(),
	}
}

// sprinklerController builds a ready controller over sprinklerConfig.
func sprinklerController(t *testing.T) *mamdani.Controller {
	t.Helper()

	ctl, err := mamdani.New(sprinklerConfig(t))
	require.NoError(t, err)

	return ctl
}

// reading builds the input map for one (soil, temperature) pair.
func reading(soil, temp float64) map[string]float64 {
	return map[string]float64{
		"soil_moisture": soil,
		"temperature":   temp,
	}
}
