// Package artifact captures a validated configuration as an immutable,
// hashable record. The config version hash lets callers compare the
// effective configuration across runs without diffing values by hand.
package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// ConfigArtifact is a resolved configuration plus its content hash.
// Values include defaulted and transformed entries, exactly as the
// evaluator produced them.
type ConfigArtifact struct {
	ConfigVersion string            `json:"configVersion"` // sha256:hex
	Values        map[string]string `json:"values"`
}

// Generate builds an artifact from a resolved configuration.
func Generate(values map[string]string) ConfigArtifact {
	return ConfigArtifact{
		ConfigVersion: ComputeConfigVersion(values),
		Values:        values,
	}
}

// ComputeConfigVersion hashes the values in canonical form (sorted
// keys, no whitespace) so the version is independent of map iteration
// order. The result is prefixed with "sha256:".
func ComputeConfigVersion(values map[string]string) string {
	sum := sha256.Sum256(canonicalValuesJSON(values))
	return "sha256:" + hex.EncodeToString(sum[:])
}

// ToJSON serializes the artifact as indented JSON for human readers.
func (a ConfigArtifact) ToJSON() ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}

// ToCanonicalJSON serializes the artifact deterministically: sorted
// keys, no whitespace.
func (a ConfigArtifact) ToCanonicalJSON() ([]byte, error) {
	version, err := json.Marshal(a.ConfigVersion)
	if err != nil {
		return nil, err
	}

	out := append([]byte(`{"configVersion":`), version...)
	out = append(out, `,"values":`...)
	out = append(out, canonicalValuesJSON(a.Values)...)
	return append(out, '}'), nil
}

func canonicalValuesJSON(values map[string]string) []byte {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := []byte{'{'}
	for i, k := range keys {
		if i > 0 {
			out = append(out, ',')
		}
		keyJSON, _ := json.Marshal(k)
		valueJSON, _ := json.Marshal(values[k])
		out = append(out, keyJSON...)
		out = append(out, ':')
		out = append(out, valueJSON...)
	}
	return append(out, '}')
}
