package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dileep-u-k/math-assist/internal/formula"
)

// ErrorKind classifies why a dispatch failed.
type ErrorKind string

const (
	UnknownTool      ErrorKind = "UnknownTool"
	MissingArguments ErrorKind = "MissingArguments"
	InvalidArguments ErrorKind = "InvalidArguments"
	ComputationError ErrorKind = "ComputationError"
)

// Failure is the error half of an Outcome. It satisfies error so callers can
// pass it along unchanged.
type Failure struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	// Missing lists absent required parameters in schema order.
	Missing []string `json:"missing,omitempty"`
}

func (f *Failure) Error() string { return f.Message }

// Outcome is the result of one dispatch: exactly one of Result or Failure is set.
type Outcome struct {
	Tool    string   `json:"tool"`
	Result  any      `json:"result,omitempty"`
	Failure *Failure `json:"failure,omitempty"`
}

// OK reports whether the dispatch succeeded.
func (o Outcome) OK() bool { return o.Failure == nil }

// Call is a tool name with its argument bag.
type Call struct {
	Name      string `json:"tool"`
	Arguments Args   `json:"arguments"`
}

// DispatchCall is Dispatch for a Call value.
func (r *Registry) DispatchCall(c Call) Outcome {
	return r.Dispatch(c.Name, c.Arguments)
}

// Dispatch is the single path from a tool name and untrusted arguments to a
// formula result. It never panics and holds no state between calls, so the
// same input always yields the same outcome.
func (r *Registry) Dispatch(name string, args Args) Outcome {
	i, ok := r.index[name]
	if !ok {
		return fail(name, UnknownTool, fmt.Sprintf("unknown tool: %q", name))
	}
	spec := r.specs[i]

	values, missing, err := bind(spec.Descriptor, args)
	if len(missing) > 0 {
		o := fail(name, MissingArguments, fmt.Sprintf("missing required arguments for %s: %s", name, strings.Join(missing, ", ")))
		o.Failure.Missing = missing
		return o
	}
	if err != nil {
		return fail(name, InvalidArguments, err.Error())
	}

	result, err := invoke(spec.Invoke, values)
	if err != nil {
		if errors.Is(err, formula.ErrInvalidInput) {
			return fail(name, InvalidArguments, err.Error())
		}
		return fail(name, ComputationError, err.Error())
	}
	// NaN and ±Inf cannot reach a client as JSON.
	if _, err := json.Marshal(result); err != nil {
		return fail(name, ComputationError, fmt.Sprintf("%s produced a result that is not a finite number", name))
	}
	return Outcome{Tool: name, Result: result}
}

func invoke(fn Invoker, v Values) (result any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("calculation failed: %v", rec)
		}
	}()
	return fn(v)
}

func fail(tool string, kind ErrorKind, msg string) Outcome {
	return Outcome{Tool: tool, Failure: &Failure{Kind: kind, Message: msg}}
}
