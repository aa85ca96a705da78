package formula

import (
	"fmt"
	"math"
	"strconv"
)

// QuadraticRoots is the result of solving ax² + bx + c = 0.
type QuadraticRoots struct {
	Discriminant float64   `json:"discriminant"`
	Roots        []float64 `json:"roots"`
	Message      string    `json:"message"`
}

// SolveQuadratic finds the real roots of ax² + bx + c = 0. A negative
// discriminant is not an error: the result carries no roots and the message
// "No real roots".
func SolveQuadratic(a, b, c float64) (QuadraticRoots, error) {
	if a == 0 {
		return QuadraticRoots{}, undefined("coefficient a must not be zero for a quadratic equation")
	}
	d := b*b - 4*a*c
	switch {
	case d > 0:
		sq := math.Sqrt(d)
		return QuadraticRoots{
			Discriminant: d,
			Roots:        []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)},
			Message:      "Two real roots",
		}, nil
	case d == 0:
		return QuadraticRoots{Discriminant: d, Roots: []float64{-b / (2 * a)}, Message: "One real root"}, nil
	default:
		return QuadraticRoots{Discriminant: d, Roots: []float64{}, Message: "No real roots"}, nil
	}
}

// QuadraticVertex describes the turning point of y = ax² + bx + c.
type QuadraticVertex struct {
	AxisOfSymmetry float64 `json:"axisOfSymmetry"`
	VertexY        float64 `json:"vertexY"`
	YIntercept     float64 `json:"yIntercept"`
	Nature         string  `json:"nature"`
}

// QuadraticTurningPoint returns the axis of symmetry and the turning point.
func QuadraticTurningPoint(a, b, c float64) (QuadraticVertex, error) {
	if a == 0 {
		return QuadraticVertex{}, undefined("coefficient a must not be zero for a quadratic function")
	}
	x := -b / (2 * a)
	nature := "minimum"
	if a < 0 {
		nature = "maximum"
	}
	return QuadraticVertex{
		AxisOfSymmetry: x,
		VertexY:        a*x*x + b*x + c,
		YIntercept:     c,
		Nature:         nature,
	}, nil
}

// QuadraticValue is f(x) for a quadratic function.
type QuadraticValue struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EvaluateQuadratic computes ax² + bx + c at x.
func EvaluateQuadratic(a, b, c, x float64) QuadraticValue {
	return QuadraticValue{X: x, Y: a*x*x + b*x + c}
}

// PowerResult is base raised to exponent.
type PowerResult struct {
	Base     float64 `json:"base"`
	Exponent float64 `json:"exponent"`
	Value    float64 `json:"value"`
}

// Power evaluates base^exponent using the laws of indices.
func Power(base, exponent float64) (PowerResult, error) {
	if base == 0 && exponent <= 0 {
		return PowerResult{}, undefined("zero cannot be raised to a zero or negative index")
	}
	if base < 0 && exponent != math.Trunc(exponent) {
		return PowerResult{}, undefined("a negative base needs a whole-number index")
	}
	return PowerResult{Base: base, Exponent: exponent, Value: math.Pow(base, exponent)}, nil
}

// StandardForm is a number written as A × 10ⁿ with 1 ≤ |A| < 10.
type StandardForm struct {
	Coefficient float64 `json:"coefficient"`
	Exponent    int     `json:"exponent"`
	Formatted   string  `json:"formatted"`
}

// ToStandardForm writes value in standard form. Zero is written as 0 × 10⁰.
func ToStandardForm(value float64) StandardForm {
	if value == 0 {
		return StandardForm{Formatted: "0 × 10^0"}
	}
	exp := int(math.Floor(math.Log10(math.Abs(value))))
	coef := value / math.Pow(10, float64(exp))
	// Floating point can leave the coefficient at 9.999.. or 10.
	if math.Abs(coef) >= 10 {
		coef /= 10
		exp++
	}
	coef = roundTo(coef, 10)
	return StandardForm{
		Coefficient: coef,
		Exponent:    exp,
		Formatted:   fmt.Sprintf("%s × 10^%d", strconv.FormatFloat(coef, 'f', -1, 64), exp),
	}
}

// Rounded is a value rounded to a number of significant figures.
type Rounded struct {
	Value   float64 `json:"value"`
	Figures int     `json:"figures"`
	Rounded float64 `json:"rounded"`
}

// RoundSignificant rounds value to the given number of significant figures.
func RoundSignificant(value float64, figures float64) (Rounded, error) {
	if figures < 1 || figures != math.Trunc(figures) {
		return Rounded{}, invalid("significant figures must be a whole number of at least 1")
	}
	n := int(figures)
	if value == 0 {
		return Rounded{Value: 0, Figures: n, Rounded: 0}, nil
	}
	mag := int(math.Floor(math.Log10(math.Abs(value))))
	return Rounded{Value: value, Figures: n, Rounded: roundTo(value, n-1-mag)}, nil
}

// LinearPoint is y = mx + c evaluated at x.
type LinearPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LinearY evaluates y = mx + c.
func LinearY(m, x, c float64) LinearPoint {
	return LinearPoint{X: x, Y: m*x + c}
}

// Variation is the constant and the predicted value of a variation y = k·xⁿ
// (direct) or y = k/xⁿ (inverse).
type Variation struct {
	Constant float64 `json:"k"`
	Power    float64 `json:"n"`
	Y        float64 `json:"y"`
	Relation string  `json:"relation"`
}

// DirectVariation finds k from (x1, y1) in y = k·xⁿ and evaluates y at x2.
func DirectVariation(x1, y1, x2, n float64) (Variation, error) {
	p1 := math.Pow(x1, n)
	if p1 == 0 {
		return Variation{}, undefined("x1 must not be zero in a direct variation")
	}
	k := y1 / p1
	return Variation{Constant: k, Power: n, Y: k * math.Pow(x2, n), Relation: "y = kx^n"}, nil
}

// InverseVariation finds k from (x1, y1) in y = k/xⁿ and evaluates y at x2.
func InverseVariation(x1, y1, x2, n float64) (Variation, error) {
	p2 := math.Pow(x2, n)
	if math.Pow(x1, n) == 0 || p2 == 0 {
		return Variation{}, undefined("x values must not be zero in an inverse variation")
	}
	k := y1 * math.Pow(x1, n)
	return Variation{Constant: k, Power: n, Y: k / p2, Relation: "y = k/x^n"}, nil
}

// JointResult is y = k·x·z solved from one observation.
type JointResult struct {
	Constant float64 `json:"k"`
	Y        float64 `json:"y"`
}

// JointVariation finds k from (y1, x1, z1) in y = kxz and evaluates y at (x2, z2).
func JointVariation(y1, x1, z1, x2, z2 float64) (JointResult, error) {
	if x1*z1 == 0 {
		return JointResult{}, undefined("x1 and z1 must not be zero in a joint variation")
	}
	k := y1 / (x1 * z1)
	return JointResult{Constant: k, Y: k * x2 * z2}, nil
}

// SimultaneousSolution is the solution of a pair of linear equations.
type SimultaneousSolution struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Determinant float64 `json:"determinant"`
}

// SolveSimultaneous solves a1x + b1y = c1, a2x + b2y = c2 with the matrix method.
func SolveSimultaneous(a1, b1, c1, a2, b2, c2 float64) (SimultaneousSolution, error) {
	inv, err := Inverse2x2(a1, b1, a2, b2)
	if err != nil {
		return SimultaneousSolution{}, undefined("the equations have no unique solution")
	}
	m := inv.Inverse
	return SimultaneousSolution{
		X:           m[0][0]*c1 + m[0][1]*c2,
		Y:           m[1][0]*c1 + m[1][1]*c2,
		Determinant: inv.Determinant,
	}, nil
}

func roundTo(v float64, places int) float64 {
	if places < 0 {
		p := math.Pow(10, float64(-places))
		return math.Round(v/p) * p
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
