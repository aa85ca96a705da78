package formula

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean radius used for great-circle distances.
const EarthRadiusKm = 6371.0

const kmPerNauticalMile = 1.852

// CircleMeasures holds the basic measures of a circle.
type CircleMeasures struct {
	Radius        float64 `json:"radius"`
	Diameter      float64 `json:"diameter"`
	Circumference float64 `json:"circumference"`
	Area          float64 `json:"area"`
}

// Circle computes diameter, circumference and area from the radius.
func Circle(radius float64) (CircleMeasures, error) {
	if err := requireNonNegative("radius", radius); err != nil {
		return CircleMeasures{}, err
	}
	return CircleMeasures{
		Radius:        radius,
		Diameter:      2 * radius,
		Circumference: 2 * math.Pi * radius,
		Area:          math.Pi * radius * radius,
	}, nil
}

// ArcResult is the arc length subtended by a central angle.
type ArcResult struct {
	ArcLength float64 `json:"arcLength"`
}

// ArcLength computes θ/360 × 2πr for a central angle in degrees.
func ArcLength(radius, angle float64) (ArcResult, error) {
	if err := requireNonNegative("radius", radius); err != nil {
		return ArcResult{}, err
	}
	return ArcResult{ArcLength: angle / 360 * 2 * math.Pi * radius}, nil
}

// SectorResult is the area of a sector.
type SectorResult struct {
	Area float64 `json:"area"`
}

// SectorArea computes θ/360 × πr² for a central angle in degrees.
func SectorArea(radius, angle float64) (SectorResult, error) {
	if err := requireNonNegative("radius", radius); err != nil {
		return SectorResult{}, err
	}
	return SectorResult{Area: angle / 360 * math.Pi * radius * radius}, nil
}

// ChordResult is the length of a chord at a given distance from the centre.
// Length is nil when the chord does not exist.
type ChordResult struct {
	Valid   bool     `json:"valid"`
	Length  *float64 `json:"length"`
	Message string   `json:"message"`
}

// ChordLength computes 2√(r² − d²). When distance is not strictly less than
// the radius the chord does not exist and the result is a sentinel with
// Valid false and a nil Length.
func ChordLength(radius, distance float64) (ChordResult, error) {
	if err := requireNonNegative("radius", radius); err != nil {
		return ChordResult{}, err
	}
	if err := requireNonNegative("distance", distance); err != nil {
		return ChordResult{}, err
	}
	if distance >= radius {
		return ChordResult{Message: "Invalid: distance must be less than radius"}, nil
	}
	l := 2 * math.Sqrt(radius*radius-distance*distance)
	return ChordResult{Valid: true, Length: &l, Message: "Valid chord"}, nil
}

// TangentResult is the length of a tangent from an external point.
type TangentResult struct {
	Length float64 `json:"length"`
}

// TangentLength computes √(d² − r²) for a point at distance d from the centre.
func TangentLength(radius, distance float64) (TangentResult, error) {
	if err := requireNonNegative("radius", radius); err != nil {
		return TangentResult{}, err
	}
	if distance <= radius {
		return TangentResult{}, undefined("the point must lie outside the circle")
	}
	return TangentResult{Length: math.Sqrt(distance*distance - radius*radius)}, nil
}

// Solid holds volume and total surface area of a solid.
type Solid struct {
	Volume      float64  `json:"volume"`
	SurfaceArea float64  `json:"surfaceArea"`
	SlantHeight *float64 `json:"slantHeight,omitempty"`
}

// Cylinder computes πr²h and 2πr(r + h).
func Cylinder(radius, height float64) (Solid, error) {
	if err := dimensions(radius, height); err != nil {
		return Solid{}, err
	}
	return Solid{
		Volume:      math.Pi * radius * radius * height,
		SurfaceArea: 2 * math.Pi * radius * (radius + height),
	}, nil
}

// Cone computes ⅓πr²h and πr(r + s) with slant s = √(r² + h²).
func Cone(radius, height float64) (Solid, error) {
	if err := dimensions(radius, height); err != nil {
		return Solid{}, err
	}
	s := math.Hypot(radius, height)
	return Solid{
		Volume:      math.Pi * radius * radius * height / 3,
		SurfaceArea: math.Pi * radius * (radius + s),
		SlantHeight: &s,
	}, nil
}

// Sphere computes ⁴⁄₃πr³ and 4πr².
func Sphere(radius float64) (Solid, error) {
	if err := requireNonNegative("radius", radius); err != nil {
		return Solid{}, err
	}
	return Solid{
		Volume:      4 * math.Pi * radius * radius * radius / 3,
		SurfaceArea: 4 * math.Pi * radius * radius,
	}, nil
}

// PrismResult is the volume of a right prism.
type PrismResult struct {
	Volume float64 `json:"volume"`
}

// Prism computes cross-sectional area × length.
func Prism(baseArea, length float64) (PrismResult, error) {
	if err := dimensions(baseArea, length); err != nil {
		return PrismResult{}, err
	}
	return PrismResult{Volume: baseArea * length}, nil
}

// Gradient is the slope between two points.
type Gradient struct {
	Gradient float64 `json:"gradient"`
	Rise     float64 `json:"rise"`
	Run      float64 `json:"run"`
}

// GradientOf computes (y2 − y1)/(x2 − x1). A vertical line has no gradient.
func GradientOf(x1, y1, x2, y2 float64) (Gradient, error) {
	run := x2 - x1
	if run == 0 {
		return Gradient{}, undefined("the gradient of a vertical line is undefined")
	}
	rise := y2 - y1
	return Gradient{Gradient: rise / run, Rise: rise, Run: run}, nil
}

// Intercepts of the line y = mx + c.
type Intercepts struct {
	XIntercept float64 `json:"xIntercept"`
	YIntercept float64 `json:"yIntercept"`
}

// LineIntercepts returns −c/m and c. A horizontal line has no x-intercept.
func LineIntercepts(m, c float64) (Intercepts, error) {
	if m == 0 {
		return Intercepts{}, undefined("a horizontal line has no single x-intercept")
	}
	return Intercepts{XIntercept: -c / m, YIntercept: c}, nil
}

// Distance between two points.
type Distance struct {
	Distance float64 `json:"distance"`
}

// DistanceBetween computes √((x2 − x1)² + (y2 − y1)²).
func DistanceBetween(x1, y1, x2, y2 float64) Distance {
	return Distance{Distance: math.Hypot(x2-x1, y2-y1)}
}

// Point in the Cartesian plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Midpoint of two points.
func Midpoint(x1, y1, x2, y2 float64) Point {
	return Point{X: (x1 + x2) / 2, Y: (y1 + y2) / 2}
}

// Line is y = mx + c through two points.
type Line struct {
	Gradient  float64 `json:"m"`
	Intercept float64 `json:"c"`
	Equation  string  `json:"equation"`
}

// LineThrough finds the equation of the straight line through two points.
func LineThrough(x1, y1, x2, y2 float64) (Line, error) {
	g, err := GradientOf(x1, y1, x2, y2)
	if err != nil {
		return Line{}, err
	}
	c := y1 - g.Gradient*x1
	return Line{Gradient: g.Gradient, Intercept: c, Equation: lineEquation(g.Gradient, c)}, nil
}

// PerpendicularBisector is the locus of points equidistant from two points.
func PerpendicularBisector(x1, y1, x2, y2 float64) (Line, error) {
	if x1 == x2 && y1 == y2 {
		return Line{}, undefined("the two points must be distinct")
	}
	mid := Midpoint(x1, y1, x2, y2)
	if y1 == y2 {
		return Line{}, undefined("the bisector is the vertical line x = %g", mid.X)
	}
	m := -(x2 - x1) / (y2 - y1)
	c := mid.Y - m*mid.X
	return Line{Gradient: m, Intercept: c, Equation: lineEquation(m, c)}, nil
}

// GreatCircle is the shortest surface distance between two places on Earth.
type GreatCircle struct {
	DistanceKm            float64 `json:"distanceKm"`
	DistanceNauticalMiles float64 `json:"distanceNauticalMiles"`
	CentralAngleDegrees   float64 `json:"centralAngleDegrees"`
}

// GreatCircleDistance uses the haversine formula on coordinates in degrees.
func GreatCircleDistance(lat1, lon1, lat2, lon2 float64) (GreatCircle, error) {
	for _, lat := range []float64{lat1, lat2} {
		if lat < -90 || lat > 90 {
			return GreatCircle{}, invalid("latitude must be between -90 and 90 degrees")
		}
	}
	phi1, phi2 := radians(lat1), radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lon2 - lon1)
	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) + math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	central := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	km := EarthRadiusKm * central
	return GreatCircle{
		DistanceKm:            km,
		DistanceNauticalMiles: km / kmPerNauticalMile,
		CentralAngleDegrees:   degrees(central),
	}, nil
}

func dimensions(a, b float64) error {
	if a < 0 || b < 0 {
		return undefined("dimensions must not be negative")
	}
	return nil
}

func lineEquation(m, c float64) string {
	switch {
	case c > 0:
		return fmt.Sprintf("y = %gx + %g", m, c)
	case c < 0:
		return fmt.Sprintf("y = %gx - %g", m, -c)
	default:
		return fmt.Sprintf("y = %gx", m)
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Scale of a drawing written as 1 : n.
type Scale struct {
	Factor   float64 `json:"n"`
	Notation string  `json:"scale"`
}

// ScaleOf compares a drawing length with the matching actual length.
func ScaleOf(drawingLength, actualLength float64) (Scale, error) {
	if err := requirePositive("drawing length", drawingLength); err != nil {
		return Scale{}, err
	}
	if err := requirePositive("actual length", actualLength); err != nil {
		return Scale{}, err
	}
	n := actualLength / drawingLength
	return Scale{Factor: n, Notation: fmt.Sprintf("1 : %g", n)}, nil
}

// ScaledLength is the real length represented on a drawing.
type ScaledLength struct {
	ActualLength float64 `json:"actualLength"`
}

// ActualLength converts a drawing length at scale 1 : n into the real length.
func ActualLength(drawingLength, n float64) (ScaledLength, error) {
	if err := requirePositive("scale", n); err != nil {
		return ScaledLength{}, err
	}
	if err := requireNonNegative("drawing length", drawingLength); err != nil {
		return ScaledLength{}, err
	}
	return ScaledLength{ActualLength: drawingLength * n}, nil
}
