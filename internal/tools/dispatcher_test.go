package tools

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/dileep-u-k/math-assist/internal/formula"
)

func TestDispatchQuadratic(t *testing.T) {
	args, err := ParseArguments(`{"a": 1, "b": -5, "c": 6}`)
	if err != nil {
		t.Fatal(err)
	}
	out := Form4().Dispatch("solveQuadraticRoots", args)
	if !out.OK() {
		t.Fatalf("unexpected failure: %+v", out.Failure)
	}
	got, ok := out.Result.(formula.QuadraticRoots)
	if !ok {
		t.Fatalf("unexpected result type %T", out.Result)
	}
	if got.Discriminant != 1 || !reflect.DeepEqual(got.Roots, []float64{3, 2}) || got.Message != "Two real roots" {
		t.Errorf("unexpected roots %+v", got)
	}

	// Same input, same outcome.
	again := Form4().Dispatch("solveQuadraticRoots", args)
	if !reflect.DeepEqual(out, again) {
		t.Errorf("dispatch is not deterministic: %+v vs %+v", out, again)
	}
}

func TestDispatchZeroDiscriminant(t *testing.T) {
	out := Form4().Dispatch("solveQuadraticRoots", Args{"a": 1, "b": -2, "c": 1})
	got := out.Result.(formula.QuadraticRoots)
	if !reflect.DeepEqual(got.Roots, []float64{1}) || got.Message != "One real root" {
		t.Errorf("unexpected roots %+v", got)
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	out := Form3().Dispatch("solveQuadraticRoots", Args{"a": 1, "b": 2, "c": 1})
	if out.OK() || out.Failure.Kind != UnknownTool {
		t.Fatalf("expected UnknownTool, got %+v", out)
	}
	if !strings.Contains(out.Failure.Message, "solveQuadraticRoots") {
		t.Errorf("message should name the tool: %q", out.Failure.Message)
	}
}

func TestDispatchMissingArguments(t *testing.T) {
	for _, r := range []*Registry{Form3(), Form4()} {
		out := r.Dispatch("calculateLinearY", Args{"m": 2, "x": 3})
		if out.OK() || out.Failure.Kind != MissingArguments {
			t.Fatalf("%s: expected MissingArguments, got %+v", r.Name(), out)
		}
		if !reflect.DeepEqual(out.Failure.Missing, []string{"c"}) {
			t.Errorf("%s: expected missing [c], got %v", r.Name(), out.Failure.Missing)
		}
		if out.Failure.Message != "missing required arguments for calculateLinearY: c" {
			t.Errorf("%s: unexpected message %q", r.Name(), out.Failure.Message)
		}
	}
}

func TestDispatchMissingInSchemaOrder(t *testing.T) {
	out := Form4().Dispatch("solveQuadraticRoots", Args{"b": "not a number"})
	if out.Failure == nil || out.Failure.Kind != MissingArguments {
		t.Fatalf("missing arguments take precedence, got %+v", out)
	}
	if !reflect.DeepEqual(out.Failure.Missing, []string{"a", "c"}) {
		t.Errorf("expected [a c], got %v", out.Failure.Missing)
	}
}

func TestDispatchInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args Args
	}{
		{"non-numeric", "calculateLinearY", Args{"m": "two", "x": 3, "c": 1}},
		{"wrong shape", "calculateMean", Args{"values": map[string]any{"x": 1}}},
		{"string expected", "convertNumberBase", Args{"value": 1011, "fromBase": 2, "toBase": 10}},
		{"formula shape error", "multiplyMatrices", Args{"matrixA": []any{1, 2, 3}, "matrixB": []any{1, 2, 3, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Form4().Dispatch(tt.tool, tt.args)
			if out.OK() || out.Failure.Kind != InvalidArguments {
				t.Errorf("expected InvalidArguments, got %+v", out)
			}
		})
	}
}

func TestDispatchComputationError(t *testing.T) {
	out := Form4().Dispatch("solveQuadraticRoots", Args{"a": 0, "b": 2, "c": 1})
	if out.OK() || out.Failure.Kind != ComputationError {
		t.Fatalf("expected ComputationError, got %+v", out)
	}
	out = Form4().Dispatch("calculateInverseMatrix", Args{"a": 1, "b": 2, "c": 2, "d": 4})
	if out.OK() || out.Failure.Kind != ComputationError {
		t.Errorf("expected ComputationError for singular matrix, got %+v", out)
	}
}

func TestDispatchNonFiniteResult(t *testing.T) {
	out := Form3().Dispatch("evaluatePower", Args{"base": 10, "exponent": 400})
	if out.OK() || out.Failure.Kind != ComputationError {
		t.Errorf("expected ComputationError for an infinite result, got %+v", out)
	}
}

func TestDispatchChordSentinel(t *testing.T) {
	out := Form3().Dispatch("calculateChordLength", Args{"radius": 5, "distance": 5})
	if !out.OK() {
		t.Fatalf("sentinel should be a success, got %+v", out.Failure)
	}
	b, err := json.Marshal(out.Result)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"valid":false,"length":null,"message":"Invalid: distance must be less than radius"}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
}

func TestDispatchAcceptsLooseArguments(t *testing.T) {
	out := Form4().Dispatch("calculateMean", Args{"values": "2, 4 6;8"})
	if !out.OK() {
		t.Fatalf("unexpected failure %+v", out.Failure)
	}
	if m := out.Result.(formula.Mean); m.Mean != 5 {
		t.Errorf("expected mean 5, got %v", m.Mean)
	}

	out = Form4().Dispatch("evaluateQuadratic", Args{"a": "1", "b": json.Number("0"), "c": 0, "x": 3.0})
	if !out.OK() || out.Result.(formula.QuadraticValue).Y != 9 {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestDispatchOptionalDefaults(t *testing.T) {
	out := Form4().Dispatch("solveDirectVariation", Args{"x1": 2, "y1": 8, "x2": 5})
	if !out.OK() {
		t.Fatalf("unexpected failure %+v", out.Failure)
	}
	if v := out.Result.(formula.Variation); v.Power != 1 || v.Y != 20 {
		t.Errorf("expected n to default to 1, got %+v", v)
	}
}

func TestParseArguments(t *testing.T) {
	args, err := ParseArguments("")
	if err != nil || len(args) != 0 {
		t.Errorf("empty arguments should parse to an empty bag, got %v (%v)", args, err)
	}
	if _, err := ParseArguments(`{"a": 1`); err == nil {
		t.Error("expected an error for truncated JSON")
	}
	if _, err := ParseArguments(`[1, 2]`); err == nil {
		t.Error("expected an error for a non-object")
	}
	args, _ = ParseArguments(`{"a": 0.1}`)
	if _, ok := args["a"].(json.Number); !ok {
		t.Errorf("numbers should decode as json.Number, got %T", args["a"])
	}
}

// Every tool must only read the parameters it declares. Reading an
// undeclared one panics inside the tool and surfaces as a failure message.
func TestToolsReadOnlyDeclaredParams(t *testing.T) {
	for _, r := range []*Registry{Form3(), Form4()} {
		for _, d := range r.List() {
			args := Args{}
			for _, p := range d.Params {
				switch p.Type {
				case TypeNumber:
					args[p.Name] = 2
				case TypeNumberArray:
					args[p.Name] = []any{1, 2, 3, 4}
				case TypeString:
					args[p.Name] = "10"
				}
			}
			out := r.Dispatch(d.Name, args)
			if out.Failure != nil && strings.Contains(out.Failure.Message, "is not declared") {
				t.Errorf("%s/%s: %s", r.Name(), d.Name, out.Failure.Message)
			}
			if out.Failure != nil && out.Failure.Kind == MissingArguments {
				t.Errorf("%s/%s: all parameters supplied but got %s", r.Name(), d.Name, out.Failure.Message)
			}
		}
	}
}
