package evaluator

import (
	"fmt"
	"strings"

	"envguard/internal/schema"
)

// Kind classifies a validation failure.
type Kind string

const (
	KindMissing         Kind = "missing"
	KindPatternMismatch Kind = "pattern-mismatch"
	KindOneOfMismatch   Kind = "one-of-mismatch"
	KindTransformError  Kind = "transform-error"
)

// ValidationError describes a single failed key. A key contributes at
// most one error per evaluation.
type ValidationError struct {
	Key     string `json:"key"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func missingError(key string, r schema.Rule) ValidationError {
	return ValidationError{
		Key:     key,
		Kind:    KindMissing,
		Message: withDescription(fmt.Sprintf("Missing required env var: %s", key), r),
	}
}

func patternError(key, value string, r schema.Rule) ValidationError {
	return ValidationError{
		Key:     key,
		Kind:    KindPatternMismatch,
		Message: withDescription(fmt.Sprintf("%s: '%s' does not match pattern: %s", key, value, r.Pattern), r),
	}
}

func oneOfError(key, value string, r schema.Rule) ValidationError {
	return ValidationError{
		Key:  key,
		Kind: KindOneOfMismatch,
		Message: withDescription(fmt.Sprintf("%s: '%s' is not valid, must be one of: %s",
			key, value, strings.Join(r.OneOf, ", ")), r),
	}
}

func transformError(key string, err error) ValidationError {
	return ValidationError{
		Key:     key,
		Kind:    KindTransformError,
		Message: fmt.Sprintf("%s: transform failed: %v", key, err),
	}
}

func withDescription(msg string, r schema.Rule) string {
	if r.Description == "" {
		return msg
	}
	return msg + " (" + r.Description + ")"
}
