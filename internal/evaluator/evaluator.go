// Package evaluator implements the schema evaluation pass: declared
// rules against observed inputs, producing either a fully resolved
// configuration or the complete list of validation failures.
package evaluator

import "envguard/internal/schema"

// Inputs is the observed key/value mapping, conventionally sourced from
// the process environment (see envsource). Absence is map
// non-membership; an env var explicitly set to the empty string is a
// present value, not a missing one.
type Inputs map[string]string

// Result is the outcome of one evaluation. Config is populated only
// when Valid; otherwise Errors holds one entry per failed key, in
// schema declaration order.
type Result struct {
	Valid  bool              `json:"valid"`
	Config map[string]string `json:"config,omitempty"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// Evaluate checks every schema key against inputs and aggregates all
// failures rather than stopping at the first failing key. It is a pure
// function: no I/O, no logging, no process control, and no shared state,
// so concurrent callers need no coordination.
//
// Per key: an absent input takes the default if one is declared
// (defaults are trusted and skip all further checks), errors if the key
// is required, or is silently skipped if optional. A present value must
// satisfy the pattern, then the one-of enumeration, and only then is the
// transform applied. A failing transform is reported as a validation
// error for that key instead of escaping.
func Evaluate(s *schema.Schema, inputs Inputs) Result {
	config := make(map[string]string)
	var errs []ValidationError

	if s == nil {
		return Result{Valid: true, Config: config}
	}

	for _, key := range s.Keys() {
		r, _ := s.Rule(key)
		value, present := inputs[key]

		if !present {
			switch {
			case r.Default != nil:
				config[key] = *r.Default
			case r.Required:
				errs = append(errs, missingError(key, r))
			}
			// Optional and absent: the key stays out of the config.
			continue
		}

		if r.Pattern != nil && !r.Pattern.Match(value) {
			errs = append(errs, patternError(key, value, r))
			continue
		}

		if len(r.OneOf) > 0 && !isOneOf(value, r.OneOf) {
			errs = append(errs, oneOfError(key, value, r))
			continue
		}

		if r.Transform != nil {
			transformed, err := r.Transform(value)
			if err != nil {
				errs = append(errs, transformError(key, err))
				continue
			}
			value = transformed
		}

		config[key] = value
	}

	if len(errs) > 0 {
		return Result{Errors: errs}
	}

	return Result{Valid: true, Config: config}
}

func isOneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
