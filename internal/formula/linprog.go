package formula

import (
	"math"
	"sort"
	"strings"
)

// Goal of a linear program.
const (
	Maximize = "max"
	Minimize = "min"
)

// Vertex of a feasible region with the objective evaluated there.
type Vertex struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value float64 `json:"k"`
}

// LinearProgram is the corner-point solution of a two-variable program.
type LinearProgram struct {
	Goal     string   `json:"goal"`
	Optimum  Vertex   `json:"optimum"`
	Vertices []Vertex `json:"vertices"`
}

// feasibility tolerance for vertices produced by intersecting constraint lines
const lpTolerance = 1e-9

// SolveLinearProgram optimises k = px + qy subject to a[i]x + b[i]y ≤ c[i]
// and x, y ≥ 0 using the corner-point method taught for linear inequalities.
// The optimum is taken over the vertices of the feasible region; an unbounded
// region is not detected.
func SolveLinearProgram(p, q float64, a, b, c []float64, goal string) (LinearProgram, error) {
	if len(a) == 0 || len(a) != len(b) || len(a) != len(c) {
		return LinearProgram{}, invalid("constraint coefficient lists must be non-empty and of equal length")
	}
	goal = strings.ToLower(strings.TrimSpace(goal))
	switch goal {
	case "", "max", "maximize", "maximum":
		goal = Maximize
	case "min", "minimize", "minimum":
		goal = Minimize
	default:
		return LinearProgram{}, invalid("goal must be max or min")
	}

	type line struct{ a, b, c float64 }
	lines := []line{{1, 0, 0}, {0, 1, 0}} // x = 0, y = 0
	for i := range a {
		lines = append(lines, line{a[i], b[i], c[i]})
	}
	feasible := func(x, y float64) bool {
		if x < -lpTolerance || y < -lpTolerance {
			return false
		}
		for i := range a {
			if a[i]*x+b[i]*y > c[i]+lpTolerance {
				return false
			}
		}
		return true
	}

	seen := map[[2]float64]bool{}
	var vertices []Vertex
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			l1, l2 := lines[i], lines[j]
			det := l1.a*l2.b - l1.b*l2.a
			if det == 0 {
				continue
			}
			x := (l1.c*l2.b - l1.b*l2.c) / det
			y := (l1.a*l2.c - l1.c*l2.a) / det
			if !feasible(x, y) {
				continue
			}
			x, y = cleanZero(x), cleanZero(y)
			key := [2]float64{roundTo(x, 9), roundTo(y, 9)}
			if seen[key] {
				continue
			}
			seen[key] = true
			vertices = append(vertices, Vertex{X: x, Y: y, Value: p*x + q*y})
		}
	}
	if len(vertices) == 0 {
		return LinearProgram{}, undefined("the constraints have no feasible region")
	}
	sort.Slice(vertices, func(i, j int) bool {
		if vertices[i].X != vertices[j].X {
			return vertices[i].X < vertices[j].X
		}
		return vertices[i].Y < vertices[j].Y
	})
	best := vertices[0]
	for _, v := range vertices[1:] {
		if (goal == Maximize && v.Value > best.Value) || (goal == Minimize && v.Value < best.Value) {
			best = v
		}
	}
	return LinearProgram{Goal: goal, Optimum: best, Vertices: vertices}, nil
}

// Inequality reports whether a point satisfies ax + by (op) c.
type Inequality struct {
	LeftSide  float64 `json:"lhs"`
	Satisfied bool    `json:"satisfied"`
}

// CheckInequality evaluates ax + by against c with one of <, <=, >, >=, =.
func CheckInequality(a, b, c, x, y float64, op string) (Inequality, error) {
	lhs := a*x + b*y
	var ok bool
	switch strings.TrimSpace(op) {
	case "<":
		ok = lhs < c
	case "<=", "≤":
		ok = lhs <= c
	case ">":
		ok = lhs > c
	case ">=", "≥":
		ok = lhs >= c
	case "=", "==":
		ok = lhs == c
	default:
		return Inequality{}, invalid("operator must be one of <, <=, >, >=, =")
	}
	return Inequality{LeftSide: lhs, Satisfied: ok}, nil
}

func cleanZero(v float64) float64 {
	if math.Abs(v) < lpTolerance {
		return 0
	}
	return v
}
