// Package injector materializes a resolved configuration for the
// wrapped process, either directly in its environment or as a JSON file.
// Injection is what makes defaults and transform output visible to the
// child: the raw environment alone does not contain them.
package injector

import (
	"sort"
	"strings"

	"envguard/internal/artifact"
)

// InjectEnv overlays resolved config values onto an environ slice.
// Entries for keys the config resolves are replaced; everything else is
// preserved. Injected entries are appended in sorted key order so the
// result is deterministic.
func InjectEnv(values map[string]string, environ []string) []string {
	result := make([]string, 0, len(environ)+len(values))
	for _, entry := range environ {
		key, _, ok := strings.Cut(entry, "=")
		if ok {
			if _, replaced := values[key]; replaced {
				continue
			}
		}
		result = append(result, entry)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		result = append(result, k+"="+values[k])
	}
	return result
}

// InjectFile writes the config artifact to a file for the target
// process to read.
func InjectFile(art artifact.ConfigArtifact, path string) error {
	return art.WriteToFile(path)
}
