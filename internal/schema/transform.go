package schema

import "strings"

// transforms holds the named transforms available to YAML-declared
// schemas. Programmatic callers can put any TransformFunc on a Rule;
// schema files are limited to these names.
var transforms = map[string]TransformFunc{
	"lower": func(v string) (string, error) { return strings.ToLower(v), nil },
	"upper": func(v string) (string, error) { return strings.ToUpper(v), nil },
	"trim":  func(v string) (string, error) { return strings.TrimSpace(v), nil },
}

// LookupTransform resolves a named transform.
func LookupTransform(name string) (TransformFunc, bool) {
	fn, ok := transforms[name]
	return fn, ok
}
