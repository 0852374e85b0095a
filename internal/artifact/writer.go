package artifact

import (
	"os"
	"path/filepath"
)

// WriteToFile writes the artifact JSON to path, creating parent
// directories as needed.
func (a ConfigArtifact) WriteToFile(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := a.ToJSON()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
