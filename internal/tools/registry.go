package tools

import (
	"fmt"
)

// ParamType is the shape of a tool parameter.
type ParamType string

const (
	TypeNumber      ParamType = "number"
	TypeNumberArray ParamType = "number[]"
	TypeString      ParamType = "string"
)

// Param describes one named parameter of a tool.
type Param struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Required    bool      `json:"required"`
	Description string    `json:"description"`
}

// Descriptor names a tool and declares its parameters in schema order.
type Descriptor struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"parameters"`
}

// Definition renders the descriptor as a JSON-schema function tool.
func (d Descriptor) Definition() Tool {
	schema := JSONSchema{Type: "object", Properties: make(map[string]*JSONSchema, len(d.Params))}
	for _, p := range d.Params {
		prop := &JSONSchema{Type: string(p.Type), Description: p.Description}
		if p.Type == TypeNumberArray {
			prop.Type = "array"
			prop.Items = &JSONSchema{Type: "number"}
		}
		schema.Properties[p.Name] = prop
		if p.Required {
			schema.Required = append(schema.Required, p.Name)
		}
	}
	return NewFunctionTool(d.Name, d.Description, schema)
}

func (d Descriptor) clone() Descriptor {
	d.Params = append([]Param(nil), d.Params...)
	return d
}

// Invoker runs the formula behind a tool with already validated values.
type Invoker func(v Values) (any, error)

// Spec pairs a descriptor with its formula.
type Spec struct {
	Descriptor
	Invoke Invoker
}

// Registry is an ordered, immutable set of tools. It is safe for concurrent
// use because nothing mutates it after NewRegistry returns.
type Registry struct {
	name  string
	specs []Spec
	index map[string]int
}

// NewRegistry builds a registry from specs in the order given. Tool names and
// parameter names within a tool must be unique.
func NewRegistry(name string, specs ...Spec) (*Registry, error) {
	r := &Registry{name: name, index: make(map[string]int, len(specs))}
	for _, s := range specs {
		if s.Name == "" || s.Invoke == nil {
			return nil, fmt.Errorf("registry %s: tool %q needs a name and an invoker", name, s.Name)
		}
		if _, dup := r.index[s.Name]; dup {
			return nil, fmt.Errorf("registry %s: tool %q registered twice", name, s.Name)
		}
		seen := make(map[string]bool, len(s.Params))
		for _, p := range s.Params {
			if seen[p.Name] {
				return nil, fmt.Errorf("registry %s: tool %q declares parameter %q twice", name, s.Name, p.Name)
			}
			switch p.Type {
			case TypeNumber, TypeNumberArray, TypeString:
			default:
				return nil, fmt.Errorf("registry %s: tool %q parameter %q has unknown type %q", name, s.Name, p.Name, p.Type)
			}
			seen[p.Name] = true
		}
		r.index[s.Name] = len(r.specs)
		r.specs = append(r.specs, Spec{Descriptor: s.Descriptor.clone(), Invoke: s.Invoke})
	}
	return r, nil
}

// MustRegistry is NewRegistry for package-level registries.
func MustRegistry(name string, specs ...Spec) *Registry {
	r, err := NewRegistry(name, specs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Name identifies the registry, e.g. "form4".
func (r *Registry) Name() string { return r.name }

// List returns every descriptor in registration order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, len(r.specs))
	for i, s := range r.specs {
		out[i] = s.Descriptor.clone()
	}
	return out
}

// Find looks a tool up by exact, case-sensitive name.
func (r *Registry) Find(name string) (Descriptor, bool) {
	i, ok := r.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return r.specs[i].Descriptor.clone(), true
}

// Definitions returns the registry as function tools, in registration order,
// ready to be sent to a model.
func (r *Registry) Definitions() []Tool {
	defs := make([]Tool, len(r.specs))
	for i, s := range r.specs {
		defs[i] = s.Definition()
	}
	return defs
}

// ToolCount returns the number of registered tools.
func (r *Registry) ToolCount() int {
	return len(r.specs)
}
