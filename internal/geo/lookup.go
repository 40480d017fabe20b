package geo

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lookup maps a department name to its cities. It is read-only after Load.
type Lookup map[string][]string

// Load reads a department -> cities mapping from a YAML or JSON file
func Load(path string) (Lookup, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lookup: %w", err)
	}
	return Parse(b)
}

// Parse decodes and validates a lookup document. JSON input is accepted
// since it is valid YAML.
func Parse(b []byte) (Lookup, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse lookup: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("lookup has no departments")
	}

	l := make(Lookup, len(raw))
	for dept, cities := range raw {
		name := strings.TrimSpace(dept)
		if name == "" {
			return nil, fmt.Errorf("lookup has an empty department name")
		}
		if len(cities) == 0 {
			return nil, fmt.Errorf("department %q has no cities", name)
		}
		l[name] = append([]string(nil), cities...)
	}
	return l, nil
}

// Departments returns the department names sorted
func (l Lookup) Departments() []string {
	out := make([]string, 0, len(l))
	for d := range l {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Cities returns a sorted copy of the department's cities, or nil if the
// department is unknown.
func (l Lookup) Cities(department string) []string {
	cities, ok := l[department]
	if !ok {
		return nil
	}
	out := append([]string(nil), cities...)
	sort.Strings(out)
	return out
}

// Has reports whether department is a key of the lookup
func (l Lookup) Has(department string) bool {
	_, ok := l[department]
	return ok
}

// HasCity reports whether city belongs to department
func (l Lookup) HasCity(department, city string) bool {
	for _, c := range l[department] {
		if c == city {
			return true
		}
	}
	return false
}
