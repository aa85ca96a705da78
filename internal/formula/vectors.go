package formula

import "math"

// Vector2 is a vector in the plane with its derived measures.
type Vector2 struct {
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
	Magnitude        float64 `json:"magnitude"`
	DirectionDegrees float64 `json:"directionDegrees"`
	Unit             *Point  `json:"unitVector"`
}

func vector(x, y float64) Vector2 {
	v := Vector2{X: x, Y: y, Magnitude: math.Hypot(x, y)}
	if v.Magnitude != 0 {
		v.Unit = &Point{X: x / v.Magnitude, Y: y / v.Magnitude}
		v.DirectionDegrees = degrees(math.Atan2(y, x))
	}
	return v
}

// VectorMagnitude returns |v|, the unit vector and the direction from the
// positive x-axis. The zero vector has no unit vector.
func VectorMagnitude(x, y float64) Vector2 {
	return vector(x, y)
}

// VectorSum is the resultant of two vectors.
type VectorSum struct {
	Sum        Vector2 `json:"resultant"`
	Difference Vector2 `json:"difference"`
}

// AddVectors returns a + b and a − b.
func AddVectors(x1, y1, x2, y2 float64) VectorSum {
	return VectorSum{Sum: vector(x1+x2, y1+y2), Difference: vector(x1-x2, y1-y2)}
}

// DotProduct of two vectors and the angle between them.
type DotProduct struct {
	Dot          float64 `json:"dot"`
	AngleDegrees float64 `json:"angleDegrees"`
}

// Dot computes a·b and the angle between a and b.
func Dot(x1, y1, x2, y2 float64) (DotProduct, error) {
	ma, mb := math.Hypot(x1, y1), math.Hypot(x2, y2)
	if ma == 0 || mb == 0 {
		return DotProduct{}, undefined("the angle with a zero vector is undefined")
	}
	d := x1*x2 + y1*y2
	cos := math.Max(-1, math.Min(1, d/(ma*mb)))
	return DotProduct{Dot: d, AngleDegrees: degrees(math.Acos(cos))}, nil
}

// ScaledVector is k times a vector.
type ScaledVector struct {
	Scalar float64 `json:"k"`
	Vector Vector2 `json:"vector"`
}

// ScaleVector multiplies a vector by a scalar.
func ScaleVector(k, x, y float64) ScaledVector {
	return ScaledVector{Scalar: k, Vector: vector(k*x, k*y)}
}
