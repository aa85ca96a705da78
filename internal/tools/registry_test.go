package tools

import (
	"reflect"
	"strings"
	"testing"
)

func TestRegistriesBuild(t *testing.T) {
	for _, r := range []*Registry{Form3(), Form4()} {
		if r.ToolCount() == 0 {
			t.Fatalf("%s: empty registry", r.Name())
		}
		if got := len(r.Definitions()); got != r.ToolCount() {
			t.Errorf("%s: %d definitions for %d tools", r.Name(), got, r.ToolCount())
		}
	}
}

func TestByName(t *testing.T) {
	r, ok := ByName("form4")
	if !ok || r != Form4() {
		t.Fatal("form4 should resolve to the Form 4 registry")
	}
	if _, ok := ByName("form5"); ok {
		t.Error("form5 should not resolve")
	}
}

func TestFindIsIdempotent(t *testing.T) {
	r := Form4()
	first, ok := r.Find("solveQuadraticRoots")
	if !ok {
		t.Fatal("solveQuadraticRoots not found")
	}
	second, _ := r.Find("solveQuadraticRoots")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Find returned different descriptors: %+v vs %+v", first, second)
	}

	// Mutating a returned descriptor must not leak into the registry.
	first.Params[0].Name = "changed"
	third, _ := r.Find("solveQuadraticRoots")
	if third.Params[0].Name != "a" {
		t.Errorf("registry was mutated through Find: %+v", third.Params)
	}

	if _, ok := r.Find("SolveQuadraticRoots"); ok {
		t.Error("lookup should be case-sensitive")
	}
}

func TestListKeepsRegistrationOrder(t *testing.T) {
	list := Form3().List()
	if list[0].Name != "evaluatePower" {
		t.Errorf("expected evaluatePower first, got %s", list[0].Name)
	}
	names := make(map[string]bool, len(list))
	for _, d := range list {
		if names[d.Name] {
			t.Errorf("duplicate tool %s", d.Name)
		}
		names[d.Name] = true
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	noop := func(Values) (any, error) { return nil, nil }
	_, err := NewRegistry("test",
		tool("a", "", noop, num("x", "")),
		tool("a", "", noop, num("y", "")),
	)
	if err == nil || !strings.Contains(err.Error(), "registered twice") {
		t.Errorf("expected duplicate tool error, got %v", err)
	}

	_, err = NewRegistry("test", tool("a", "", noop, num("x", ""), optNum("x", "")))
	if err == nil || !strings.Contains(err.Error(), "declares parameter") {
		t.Errorf("expected duplicate parameter error, got %v", err)
	}

	_, err = NewRegistry("test", tool("a", "", noop, Param{Name: "x", Type: "integer"}))
	if err == nil || !strings.Contains(err.Error(), "unknown type") {
		t.Errorf("expected unknown type error, got %v", err)
	}

	_, err = NewRegistry("test", Spec{Descriptor: Descriptor{Name: "a"}})
	if err == nil {
		t.Error("expected error for a tool without an invoker")
	}
}

func TestDefinitionSchema(t *testing.T) {
	d, _ := Form4().Find("calculateDispersion")
	def := d.Definition()
	if def.Type != ToolTypeFunction || def.Function.Name != "calculateDispersion" {
		t.Fatalf("unexpected definition %+v", def)
	}
	prop := def.Function.Parameters.Properties["values"]
	if prop == nil || prop.Type != "array" || prop.Items == nil || prop.Items.Type != "number" {
		t.Errorf("number[] should render as an array of numbers, got %+v", prop)
	}
	if !reflect.DeepEqual(def.Function.Parameters.Required, []string{"values"}) {
		t.Errorf("unexpected required list %v", def.Function.Parameters.Required)
	}

	d, _ = Form3().Find("calculateReturnOnInvestment")
	req := d.Definition().Function.Parameters.Required
	if !reflect.DeepEqual(req, []string{"cost", "finalValue"}) {
		t.Errorf("optional income should not be required, got %v", req)
	}
}
