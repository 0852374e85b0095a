// Package envsource adapts ambient environment data into the explicit
// input mapping the evaluator consumes. Keeping this a separate boundary
// means the evaluator never touches process-wide state and tests can
// feed it synthetic slices.
package envsource

import (
	"strings"

	"envguard/internal/evaluator"
)

// FromEnviron converts an os.Environ()-shaped slice ("KEY=VALUE"
// entries) into evaluator inputs. The split is on the first "=" only,
// since values may themselves contain "=". Entries without any "=" are
// skipped. "KEY=" yields a present empty-string value.
func FromEnviron(environ []string) evaluator.Inputs {
	inputs := make(evaluator.Inputs, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		inputs[key] = value
	}
	return inputs
}
