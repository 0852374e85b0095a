package evaluator

import (
	"fmt"
	"reflect"
	"testing"

	"envguard/internal/schema"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// propKey generates a key name for the i-th schema entry.
func propKey(i int) string {
	return fmt.Sprintf("KEY_%d", i)
}

// For any schema with N missing required keys and M passing keys, the
// result contains exactly one error per failing key and none for the
// passing ones.
func TestEvaluate_Aggregation_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("one error per failing key, none for passing keys", prop.ForAll(
		func(numMissing, numPassing int) bool {
			s := schema.New()
			inputs := Inputs{}

			for i := 0; i < numMissing; i++ {
				s.SetShorthand("MISSING_"+propKey(i), true)
			}
			for i := 0; i < numPassing; i++ {
				key := "PASSING_" + propKey(i)
				s.SetShorthand(key, true)
				inputs[key] = "value"
			}

			result := Evaluate(s, inputs)

			if numMissing == 0 {
				return result.Valid && len(result.Errors) == 0
			}
			if result.Valid || len(result.Errors) != numMissing {
				return false
			}
			for _, e := range result.Errors {
				if e.Kind != KindMissing {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 10),
		gen.IntRange(0, 10),
	))

	properties.Property("errors appear in declaration order", prop.ForAll(
		func(numMissing int) bool {
			s := schema.New()
			for i := 0; i < numMissing; i++ {
				s.SetShorthand(propKey(i), true)
			}

			result := Evaluate(s, Inputs{})

			for i, e := range result.Errors {
				if e.Key != propKey(i) {
					return false
				}
			}
			return len(result.Errors) == numMissing
		},
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}

// Evaluating twice with identical schema and inputs produces
// structurally identical results.
func TestEvaluate_Determinism_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("repeated evaluation is identical", prop.ForAll(
		func(values []string, requireAll bool) bool {
			s := schema.New()
			inputs := Inputs{}
			for i, v := range values {
				key := propKey(i)
				s.SetShorthand(key, requireAll)
				// Every other key is left absent from inputs.
				if i%2 == 0 {
					inputs[key] = v
				}
			}

			first := Evaluate(s, inputs)
			second := Evaluate(s, inputs)
			return reflect.DeepEqual(first, second)
		},
		gen.SliceOf(gen.AnyString()),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// The boolean shorthand and its expanded structured form are
// indistinguishable for every input.
func TestEvaluate_ShorthandEquivalence_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("shorthand matches structured rule", prop.ForAll(
		func(required bool, present bool, value string) bool {
			short := schema.New()
			short.SetShorthand("KEY", required)

			long := schema.New()
			long.Set("KEY", schema.Rule{Required: required})

			inputs := Inputs{}
			if present {
				inputs["KEY"] = value
			}

			return reflect.DeepEqual(Evaluate(short, inputs), Evaluate(long, inputs))
		},
		gen.Bool(),
		gen.Bool(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// A key with a default resolves to the default verbatim whenever the
// input is absent, regardless of other constraints.
func TestEvaluate_DefaultPrecedence_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("absent input resolves to default verbatim", prop.ForAll(
		func(def string, required bool) bool {
			s := schema.New()
			s.Set("KEY", schema.Rule{
				Required: required,
				Default:  &def,
				OneOf:    []string{"something-else"},
			})

			result := Evaluate(s, Inputs{})
			return result.Valid && result.Config["KEY"] == def
		},
		gen.AnyString(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
