package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Args is the untyped argument bag of a tool call.
type Args map[string]any

// ParseArguments decodes the JSON object a model produced for a tool call.
// Numbers are kept as json.Number so no precision is lost before parsing.
func ParseArguments(raw string) (Args, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Args{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var args Args
	if err := dec.Decode(&args); err != nil {
		return nil, fmt.Errorf("tool arguments are not a JSON object: %w", err)
	}
	if args == nil {
		args = Args{}
	}
	return args, nil
}

// Values are the parsed arguments of one call, keyed by parameter name.
// Reading a parameter the descriptor does not declare panics; the dispatcher
// turns that into a computation error for the call.
type Values struct {
	tool     string
	declared map[string]ParamType
	numbers  map[string]float64
	arrays   map[string][]float64
	strings  map[string]string
}

// Has reports whether an optional parameter was supplied.
func (v Values) Has(name string) bool {
	v.check(name)
	_, n := v.numbers[name]
	_, a := v.arrays[name]
	_, s := v.strings[name]
	return n || a || s
}

// Num returns a number parameter, or zero when an optional one was omitted.
func (v Values) Num(name string) float64 {
	v.check(name)
	return v.numbers[name]
}

// NumOr returns a number parameter or def when it was omitted.
func (v Values) NumOr(name string, def float64) float64 {
	v.check(name)
	if n, ok := v.numbers[name]; ok {
		return n
	}
	return def
}

// Nums returns a number[] parameter.
func (v Values) Nums(name string) []float64 {
	v.check(name)
	return v.arrays[name]
}

// Str returns a string parameter.
func (v Values) Str(name string) string {
	v.check(name)
	return v.strings[name]
}

func (v Values) check(name string) {
	if _, ok := v.declared[name]; !ok {
		panic(fmt.Sprintf("tool %s: parameter %q is not declared", v.tool, name))
	}
}

// bind parses args against the descriptor in schema order. It returns the
// names of missing required parameters, or an error for the first value of
// the wrong shape.
func bind(d Descriptor, args Args) (Values, []string, error) {
	v := Values{
		tool:     d.Name,
		declared: make(map[string]ParamType, len(d.Params)),
		numbers:  map[string]float64{},
		arrays:   map[string][]float64{},
		strings:  map[string]string{},
	}
	var missing []string
	for _, p := range d.Params {
		v.declared[p.Name] = p.Type
		raw, ok := args[p.Name]
		if !ok || raw == nil {
			if p.Required {
				missing = append(missing, p.Name)
			}
			continue
		}
		if len(missing) > 0 {
			continue
		}
		switch p.Type {
		case TypeNumber:
			n, err := toNumber(raw)
			if err != nil {
				return v, nil, fmt.Errorf("argument %q must be a number: %v", p.Name, err)
			}
			v.numbers[p.Name] = n
		case TypeNumberArray:
			ns, err := toNumbers(raw)
			if err != nil {
				return v, nil, fmt.Errorf("argument %q must be a list of numbers: %v", p.Name, err)
			}
			v.arrays[p.Name] = ns
		case TypeString:
			s, ok := raw.(string)
			if !ok {
				return v, nil, fmt.Errorf("argument %q must be a string", p.Name)
			}
			v.strings[p.Name] = s
		}
	}
	return v, missing, nil
}

func toNumber(raw any) (float64, error) {
	var n float64
	switch x := raw.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%q is not numeric", x.String())
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not numeric", x)
		}
		n = f
	default:
		return 0, fmt.Errorf("got %T", raw)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("value is not finite")
	}
	return n, nil
}

func toNumbers(raw any) ([]float64, error) {
	switch x := raw.(type) {
	case []float64:
		return append([]float64(nil), x...), nil
	case []any:
		out := make([]float64, 0, len(x))
		for i, item := range x {
			n, err := toNumber(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %v", i, err)
			}
			out = append(out, n)
		}
		return out, nil
	case string:
		fields := strings.FieldsFunc(x, func(r rune) bool { return r == ',' || r == ' ' || r == ';' })
		out := make([]float64, 0, len(fields))
		for i, f := range fields {
			n, err := toNumber(f)
			if err != nil {
				return nil, fmt.Errorf("element %d: %v", i, err)
			}
			out = append(out, n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("got %T", raw)
	}
}
