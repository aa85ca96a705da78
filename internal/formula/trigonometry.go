package formula

import "math"

// TrigRatios are the ratios of a right-angled triangle seen from one acute angle.
type TrigRatios struct {
	Hypotenuse   float64 `json:"hypotenuse"`
	Sine         float64 `json:"sin"`
	Cosine       float64 `json:"cos"`
	Tangent      float64 `json:"tan"`
	AngleDegrees float64 `json:"angleDegrees"`
}

// RightTriangleRatios computes sin, cos and tan from the opposite and adjacent sides.
func RightTriangleRatios(opposite, adjacent float64) (TrigRatios, error) {
	if err := requirePositive("opposite", opposite); err != nil {
		return TrigRatios{}, err
	}
	if err := requirePositive("adjacent", adjacent); err != nil {
		return TrigRatios{}, err
	}
	h := math.Hypot(opposite, adjacent)
	return TrigRatios{
		Hypotenuse:   h,
		Sine:         opposite / h,
		Cosine:       adjacent / h,
		Tangent:      opposite / adjacent,
		AngleDegrees: degrees(math.Atan2(opposite, adjacent)),
	}, nil
}

// Hypotenuse of a right-angled triangle.
type Hypotenuse struct {
	Hypotenuse float64 `json:"hypotenuse"`
}

// Pythagoras computes √(a² + b²).
func Pythagoras(a, b float64) (Hypotenuse, error) {
	if err := dimensions(a, b); err != nil {
		return Hypotenuse{}, err
	}
	return Hypotenuse{Hypotenuse: math.Hypot(a, b)}, nil
}

// Elevation is an angle of elevation or depression.
type Elevation struct {
	AngleDegrees float64 `json:"angleDegrees"`
	LineOfSight  float64 `json:"lineOfSight"`
}

// AngleOfElevation computes tan⁻¹(height/distance).
func AngleOfElevation(height, distance float64) (Elevation, error) {
	if err := requirePositive("horizontal distance", distance); err != nil {
		return Elevation{}, err
	}
	return Elevation{
		AngleDegrees: degrees(math.Atan(height / distance)),
		LineOfSight:  math.Hypot(height, distance),
	}, nil
}

// TrigValues are the three ratios of an arbitrary angle.
type TrigValues struct {
	AngleDegrees float64  `json:"angleDegrees"`
	Sine         float64  `json:"sin"`
	Cosine       float64  `json:"cos"`
	Tangent      *float64 `json:"tan"`
	Quadrant     int      `json:"quadrant"`
}

// TrigValuesOf evaluates sin, cos and tan of an angle in degrees. Tangent is
// nil where it is undefined (90°, 270°, ...). Quadrant is 0 for angles on an axis.
func TrigValuesOf(angle float64) TrigValues {
	norm := math.Mod(angle, 360)
	if norm < 0 {
		norm += 360
	}
	v := TrigValues{AngleDegrees: angle}
	switch norm {
	case 0:
		v.Sine, v.Cosine = 0, 1
	case 90:
		v.Sine, v.Cosine = 1, 0
	case 180:
		v.Sine, v.Cosine = 0, -1
	case 270:
		v.Sine, v.Cosine = -1, 0
	default:
		r := radians(norm)
		v.Sine, v.Cosine = math.Sin(r), math.Cos(r)
		v.Quadrant = int(norm/90) + 1
	}
	if v.Cosine != 0 {
		t := v.Sine / v.Cosine
		v.Tangent = &t
	}
	return v
}

// Side is an unknown side of a triangle.
type Side struct {
	Side float64 `json:"side"`
}

// SineRule computes b = a·sin B / sin A.
func SineRule(a, angleA, angleB float64) (Side, error) {
	if err := triangleAngles(angleA, angleB); err != nil {
		return Side{}, err
	}
	if err := requirePositive("side a", a); err != nil {
		return Side{}, err
	}
	return Side{Side: a * math.Sin(radians(angleB)) / math.Sin(radians(angleA))}, nil
}

// CosineRule computes c = √(a² + b² − 2ab·cos C).
func CosineRule(a, b, angleC float64) (Side, error) {
	if err := triangleAngles(angleC); err != nil {
		return Side{}, err
	}
	if a <= 0 || b <= 0 {
		return Side{}, undefined("sides must be greater than zero")
	}
	return Side{Side: math.Sqrt(a*a + b*b - 2*a*b*math.Cos(radians(angleC)))}, nil
}

// TriangleArea is the area of a triangle.
type TriangleArea struct {
	Area float64 `json:"area"`
}

// TriangleAreaSAS computes ½ab·sin C.
func TriangleAreaSAS(a, b, angleC float64) (TriangleArea, error) {
	if err := triangleAngles(angleC); err != nil {
		return TriangleArea{}, err
	}
	if err := dimensions(a, b); err != nil {
		return TriangleArea{}, err
	}
	return TriangleArea{Area: 0.5 * a * b * math.Sin(radians(angleC))}, nil
}

func triangleAngles(angles ...float64) error {
	sum := 0.0
	for _, a := range angles {
		if a <= 0 || a >= 180 {
			return undefined("triangle angles must be between 0 and 180 degrees")
		}
		sum += a
	}
	if sum >= 180 {
		return undefined("triangle angles must sum to less than 180 degrees")
	}
	return nil
}
