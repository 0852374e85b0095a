package schema

import (
	"fmt"
	"regexp"
)

// TransformFunc is a pure string transform applied to a value after it
// has passed validation. A non-nil error is reported as a validation
// failure for the key rather than escaping the evaluation.
type TransformFunc func(string) (string, error)

// Pattern pairs a compiled regular expression with its source text.
// Compilation happens once when the schema is built; the source text is
// kept for error messages.
type Pattern struct {
	re  *regexp.Regexp
	src string
}

// CompilePattern compiles src into a Pattern.
func CompilePattern(src string) (*Pattern, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", src, err)
	}
	return &Pattern{re: re, src: src}, nil
}

// MustPattern is CompilePattern for patterns known to be valid.
// It panics on a compile error.
func MustPattern(src string) *Pattern {
	p, err := CompilePattern(src)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether value satisfies the pattern. Matching is
// unanchored, per the regexp package's default semantics.
func (p *Pattern) Match(value string) bool {
	return p.re.MatchString(value)
}

// String returns the pattern's source text.
func (p *Pattern) String() string {
	return p.src
}

// Rule is the canonical validation rule for a single key. The boolean
// shorthand form (`KEY: true` in a schema file, or SetShorthand) expands
// into a Rule before evaluation, so nothing downstream branches on the
// shorthand.
//
// A nil Default means no default; an empty-string default is a real
// value. The YAML parser defaults an unspecified `required` to true;
// programmatic callers set Required explicitly.
type Rule struct {
	Required    bool
	Default     *string
	Pattern     *Pattern
	OneOf       []string
	Transform   TransformFunc
	Description string
}

// Schema maps env var names to rules. Declaration order is preserved:
// the evaluator emits errors in the order keys were declared, which
// keeps output deterministic.
type Schema struct {
	keys  []string
	rules map[string]Rule
}

// New returns an empty schema.
func New() *Schema {
	return &Schema{rules: make(map[string]Rule)}
}

// Set adds or replaces the rule for key. A replaced key keeps its
// original position.
func (s *Schema) Set(key string, r Rule) {
	if _, ok := s.rules[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.rules[key] = r
}

// SetShorthand expands the boolean shorthand into its canonical rule:
// true means {required: true}, false means {required: false}.
func (s *Schema) SetShorthand(key string, required bool) {
	s.Set(key, Rule{Required: required})
}

// Keys returns the key names in declaration order.
func (s *Schema) Keys() []string {
	return s.keys
}

// Rule returns the rule for key.
func (s *Schema) Rule(key string) (Rule, bool) {
	r, ok := s.rules[key]
	return r, ok
}

// Len returns the number of declared keys.
func (s *Schema) Len() int {
	return len(s.keys)
}
