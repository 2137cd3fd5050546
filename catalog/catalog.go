// Package catalog holds the per-service operation metadata table. The table
// is configuration data generated from the provider's API models, not code:
// adding a service or operation means regenerating apimodel.json, never
// touching the scan logic.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

//go:embed apimodel.json
var embeddedModel []byte

// serviceModel is one service entry in the model file
type serviceModel struct {
	Operations []string `json:"operations"`
}

// modelFile is the on-disk shape of the operation metadata table
type modelFile struct {
	Services map[string]serviceModel `json:"services"`
}

// Catalog answers which service namespaces exist and which operations each
// one exposes
type Catalog struct {
	services map[string][]string
	names    []string
}

// Default loads the embedded operation metadata table
func Default() (*Catalog, error) {
	return parse(embeddedModel)
}

// Load reads an operation metadata table from an external model file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("failed to read API model: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var model modelFile
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to parse API model: %w", err)
	}
	if len(model.Services) == 0 {
		return nil, fmt.Errorf("API model contains no services")
	}

	c := &Catalog{services: make(map[string][]string, len(model.Services))}
	for name, svc := range model.Services {
		if len(svc.Operations) == 0 {
			return nil, fmt.Errorf("service %s has no operations", name)
		}
		c.services[name] = svc.Operations
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c, nil
}

// Services returns the sorted set of known service namespaces
func (c *Catalog) Services() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Has reports whether the service is in the catalog
func (c *Catalog) Has(service string) bool {
	_, ok := c.services[service]
	return ok
}

// Operations returns the full operation set for a service in model order.
// Unknown services yield nil.
func (c *Catalog) Operations(service string) []string {
	ops, ok := c.services[service]
	if !ok {
		return nil
	}
	out := make([]string, len(ops))
	copy(out, ops)
	return out
}

// Filter validates a user-supplied service list against the catalog,
// returning the known subset and the rejected names
func (c *Catalog) Filter(requested []string) (known, unknown []string) {
	for _, svc := range requested {
		if c.Has(svc) {
			known = append(known, svc)
		} else {
			unknown = append(unknown, svc)
		}
	}
	return known, unknown
}
