// Where: cli/internal/infra/docker/ports.go
// What: Host/container port mapping for `docker run -p`.
// Why: Validate configured ports with the same parser docker itself uses.
package docker

import (
	"fmt"
	"strconv"

	"github.com/docker/go-connections/nat"
)

// PortMapping binds one host port to one container port.
type PortMapping struct {
	Host      int
	Container int
}

// String renders the mapping in `-p` form.
func (p PortMapping) String() string {
	return fmt.Sprintf("%d:%d", p.Host, p.Container)
}

// ParsePortMapping parses a single "host:container" spec.
func ParsePortMapping(spec string) (PortMapping, error) {
	mappings, err := nat.ParsePortSpec(spec)
	if err != nil {
		return PortMapping{}, fmt.Errorf("parse port spec %q: %w", spec, err)
	}
	if len(mappings) != 1 {
		return PortMapping{}, fmt.Errorf("%w: %q", errPortSpecUnsupported, spec)
	}
	m := mappings[0]
	container := m.Port.Int()
	host, err := strconv.Atoi(m.Binding.HostPort)
	if err != nil || m.Binding.HostPort == "" {
		return PortMapping{}, fmt.Errorf("%w: %q has no host port", errPortSpecUnsupported, spec)
	}
	return PortMapping{Host: host, Container: container}, nil
}

// NewPortMapping builds a mapping and validates it.
func NewPortMapping(host, container int) (PortMapping, error) {
	return ParsePortMapping(fmt.Sprintf("%d:%d", host, container))
}
