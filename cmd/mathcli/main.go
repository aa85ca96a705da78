// In file: cmd/mathcli/main.go

// Package main implements an offline command-line front end to the tool
// registries. It dispatches calculations directly, without a model, which is
// useful for checking a formula or scripting a batch of calls.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/dileep-u-k/math-assist/internal/tools"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mathcli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	form := fs.String("form", "form4", "syllabus form whose tools are used (form3 or form4)")
	list := fs.Bool("list", false, "print the tool names of the form and exit")
	toolName := fs.String("tool", "", "tool to dispatch")
	rawArgs := fs.String("args", "{}", "JSON object of tool arguments")
	batch := fs.String("batch", "", "file with a JSON array of {\"tool\",\"arguments\"} calls")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	registry, ok := tools.ByName(*form)
	if !ok {
		fmt.Fprintf(stderr, "❌ unknown form %q\n", *form)
		return 2
	}

	switch {
	case *list:
		for _, d := range registry.List() {
			fmt.Fprintln(stdout, d.Name)
		}
		return 0
	case *batch != "":
		return runBatch(registry, *batch, stdout, stderr)
	case *toolName != "":
		callArgs, err := tools.ParseArguments(*rawArgs)
		if err != nil {
			fmt.Fprintf(stderr, "❌ %v\n", err)
			return 2
		}
		outcome := registry.Dispatch(*toolName, callArgs)
		if err := writeJSON(stdout, outcome); err != nil {
			fmt.Fprintf(stderr, "❌ %v\n", err)
			return 1
		}
		if !outcome.OK() {
			return 1
		}
		return 0
	}
	fs.Usage()
	return 2
}

// runBatch dispatches every call in the file concurrently and prints the
// outcomes in input order. It fails if any call fails.
func runBatch(registry *tools.Registry, path string, stdout, stderr io.Writer) int {
	calls, err := readCalls(path)
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return 2
	}
	log.Printf("📚 Dispatching %d calls against %s", len(calls), registry.Name())

	outcomes := make([]tools.Outcome, len(calls))
	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(i int, call tools.Call) {
			defer wg.Done()
			outcomes[i] = registry.DispatchCall(call)
		}(i, call)
	}
	wg.Wait()

	failed := 0
	for _, o := range outcomes {
		if !o.OK() {
			failed++
		}
	}
	if err := writeJSON(stdout, outcomes); err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return 1
	}
	if failed > 0 {
		log.Printf("WARNING: %d of %d calls failed", failed, len(calls))
		return 1
	}
	log.Println("✅ All calls succeeded.")
	return 0
}

func readCalls(path string) ([]tools.Call, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read batch file: %w", err)
	}
	var calls []tools.Call
	if err := json.Unmarshal(data, &calls); err != nil {
		return nil, fmt.Errorf("could not parse batch file %s: %w", path, err)
	}
	if len(calls) == 0 {
		return nil, errors.New("batch file contains no calls")
	}
	return calls, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
