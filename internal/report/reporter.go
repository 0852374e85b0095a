// Package report renders evaluation results for the boundary layer.
// The evaluator itself never prints; everything user-facing lives here.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"envguard/internal/evaluator"
)

// FormatCLI renders the failure report for terminal output:
//
//	Environment validation failed (2 error(s)):
//	  - Missing required env var: DATABASE_URL
//	  - PORT: 'abc' does not match pattern: ^[0-9]+$
//
// Returns the empty string for a valid result.
func FormatCLI(result evaluator.Result) string {
	if result.Valid || len(result.Errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Environment validation failed (%d error(s)):\n", len(result.Errors)))
	for _, e := range result.Errors {
		sb.WriteString("  - " + e.Message + "\n")
	}
	return sb.String()
}

// FormatCI renders failures as GitHub Actions error annotations,
// followed by a summary line.
func FormatCI(result evaluator.Result) string {
	if result.Valid || len(result.Errors) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, e := range result.Errors {
		sb.WriteString(fmt.Sprintf("::error file=envguard.yaml::%s\n", e.Message))
	}
	sb.WriteString(fmt.Sprintf("\n❌ Environment validation failed: %d error(s)\n", len(result.Errors)))
	return sb.String()
}

// FormatJSON renders the full result as indented JSON.
func FormatJSON(result evaluator.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
