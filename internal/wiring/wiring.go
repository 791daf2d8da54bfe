// Package wiring loads declarative manifests that describe actions and the
// handlers meant to connect to them, and checks the declared signatures for
// compatibility before any code is wired up.
//
// A manifest is a small YAML document:
//
//	actions:
//	  - name: score_updated
//	    args: [string, int]
//	    handlers:
//	      - name: log_score
//	        params: [string, int]
package wiring

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Allorak/actions/internal/typecheck"
)

// Manifest is the root wiring document.
type Manifest struct {
	Actions []ActionDecl `yaml:"actions"`
}

// ActionDecl declares one action slot and the handlers wired to it.
type ActionDecl struct {
	Name     string        `yaml:"name"`
	Args     []string      `yaml:"args"`
	Handlers []HandlerDecl `yaml:"handlers"`
}

// HandlerDecl declares one handler by name and parameter type list.
type HandlerDecl struct {
	Name   string   `yaml:"name"`
	Params []string `yaml:"params"`
}

// typeTable maps manifest type names to runtime descriptors.
var typeTable = map[string]reflect.Type{
	"string":   reflect.TypeFor[string](),
	"bool":     reflect.TypeFor[bool](),
	"int":      reflect.TypeFor[int](),
	"int32":    reflect.TypeFor[int32](),
	"int64":    reflect.TypeFor[int64](),
	"uint":     reflect.TypeFor[uint](),
	"uint32":   reflect.TypeFor[uint32](),
	"uint64":   reflect.TypeFor[uint64](),
	"float32":  reflect.TypeFor[float32](),
	"float64":  reflect.TypeFor[float64](),
	"bytes":    reflect.TypeFor[[]byte](),
	"time":     reflect.TypeFor[time.Time](),
	"duration": reflect.TypeFor[time.Duration](),
	"error":    reflect.TypeFor[error](),
	"any":      reflect.TypeFor[any](),
}

// ResolveType maps a manifest type name to its descriptor.
func ResolveType(name string) (reflect.Type, error) {
	if t, ok := typeTable[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("unknown type name: %q", name)
}

// Load parses a manifest from r. Unknown fields are rejected so typos in
// manifests surface instead of silently dropping declarations.
func Load(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// LoadFile parses the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Check verifies every declared handler against its action's argument
// types and reports all findings at once, mirroring what connecting each
// handler under the error safety level would reject.
func (m *Manifest) Check() error {
	var findings []string

	for _, act := range m.Actions {
		expected, bad := resolveAll(act.Args)
		for _, b := range bad {
			findings = append(findings, fmt.Sprintf("action '%s': %s", act.Name, b))
		}
		if len(bad) > 0 {
			continue
		}

		for _, h := range act.Handlers {
			params, bad := resolveAll(h.Params)
			for _, b := range bad {
				findings = append(findings, fmt.Sprintf("action '%s', handler '%s': %s", act.Name, h.Name, b))
			}
			if len(bad) > 0 {
				continue
			}

			if len(params) < len(expected) {
				findings = append(findings, fmt.Sprintf(
					"action '%s', handler '%s': declares %d params, action expects %d",
					act.Name, h.Name, len(params), len(expected)))
				continue
			}
			for _, mm := range typecheck.Params(expected, params) {
				findings = append(findings, fmt.Sprintf(
					"action '%s', handler '%s': position %d expects %s, declared %s",
					act.Name, h.Name, mm.Position, mm.Expected, mm.Actual))
			}
		}
	}

	if len(findings) > 0 {
		return fmt.Errorf("found %d problems:\n- %s", len(findings), strings.Join(findings, "\n- "))
	}
	return nil
}

func resolveAll(names []string) ([]reflect.Type, []string) {
	types := make([]reflect.Type, 0, len(names))
	var bad []string
	for _, n := range names {
		t, err := ResolveType(n)
		if err != nil {
			bad = append(bad, err.Error())
			continue
		}
		types = append(types, t)
	}
	return types, bad
}
