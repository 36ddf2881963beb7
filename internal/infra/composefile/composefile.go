// Where: cli/internal/infra/composefile/composefile.go
// What: Minimal docker-compose.yml reader.
// Why: Report which services the generated compose file starts.
package composefile

import (
	"fmt"
	"os"
	"sort"

	"sigs.k8s.io/yaml"
)

// File is the subset of a compose file we care about.
type File struct {
	Services map[string]Service `json:"services"`
}

// Service is one compose service entry.
type Service struct {
	Image     string `json:"image,omitempty"`
	Ports     []any  `json:"ports,omitempty"`
	DependsOn any    `json:"depends_on,omitempty"`
}

// Load reads and parses a compose file.
func Load(path string) (File, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read compose file: %w", err)
	}
	return Parse(payload)
}

// Parse decodes compose YAML.
func Parse(payload []byte) (File, error) {
	var file File
	if err := yaml.Unmarshal(payload, &file); err != nil {
		return File{}, fmt.Errorf("decode compose file: %w", err)
	}
	return file, nil
}

// ServiceNames returns the service names in sorted order.
func (f File) ServiceNames() []string {
	names := make([]string, 0, len(f.Services))
	for name := range f.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
