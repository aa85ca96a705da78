package tools

import "github.com/dileep-u-k/math-assist/internal/formula"

func num(name, desc string) Param { return Param{Name: name, Type: TypeNumber, Required: true, Description: desc} }

func optNum(name, desc string) Param { return Param{Name: name, Type: TypeNumber, Description: desc} }

func nums(name, desc string) Param {
	return Param{Name: name, Type: TypeNumberArray, Required: true, Description: desc}
}

func str(name, desc string) Param { return Param{Name: name, Type: TypeString, Required: true, Description: desc} }

func optStr(name, desc string) Param { return Param{Name: name, Type: TypeString, Description: desc} }

func tool(name, desc string, fn Invoker, params ...Param) Spec {
	return Spec{Descriptor: Descriptor{Name: name, Description: desc, Params: params}, Invoke: fn}
}

// Tools present in both syllabus registries.
var (
	linearYTool = tool("calculateLinearY",
		"Evaluate the straight line y = mx + c at a given x.",
		func(v Values) (any, error) { return formula.LinearY(v.Num("m"), v.Num("x"), v.Num("c")), nil },
		num("m", "Gradient of the line"),
		num("x", "The x value"),
		num("c", "y-intercept of the line"),
	)

	compoundInterestTool = tool("calculateCompoundInterest",
		"Matured value and interest of savings with compound interest MV = P(1 + r/n)^(nt).",
		func(v Values) (any, error) {
			return formula.CompoundInterest(v.Num("principal"), v.Num("rate"), v.Num("years"), v.NumOr("periodsPerYear", 1))
		},
		num("principal", "Initial deposit P"),
		num("rate", "Annual interest rate in percent"),
		num("years", "Number of years t"),
		optNum("periodsPerYear", "Compounding periods per year n (default 1)"),
	)
)

var form3 = MustRegistry("form3",
	// Indices and standard form
	tool("evaluatePower",
		"Evaluate a number raised to an index, a^n.",
		func(v Values) (any, error) { return formula.Power(v.Num("base"), v.Num("exponent")) },
		num("base", "The base a"),
		num("exponent", "The index n"),
	),
	tool("toStandardForm",
		"Write a number in standard form A × 10^n.",
		func(v Values) (any, error) { return formula.ToStandardForm(v.Num("value")), nil },
		num("value", "The number to convert"),
	),
	tool("roundSignificantFigures",
		"Round a number to a given number of significant figures.",
		func(v Values) (any, error) { return formula.RoundSignificant(v.Num("value"), v.Num("figures")) },
		num("value", "The number to round"),
		num("figures", "Number of significant figures"),
	),

	// Consumer mathematics: savings, investments, credit and debt
	tool("calculateSimpleInterest",
		"Simple interest I = Prt and the final amount.",
		func(v Values) (any, error) {
			return formula.SimpleInterest(v.Num("principal"), v.Num("rate"), v.Num("years"))
		},
		num("principal", "Principal P"),
		num("rate", "Annual interest rate in percent"),
		num("years", "Time in years t"),
	),
	compoundInterestTool,
	tool("calculateLoanInstalment",
		"Total repayment and monthly instalment of a flat-rate loan A = P + Prt.",
		func(v Values) (any, error) {
			return formula.FlatRateInstalment(v.Num("principal"), v.Num("rate"), v.Num("years"))
		},
		num("principal", "Loan amount P"),
		num("rate", "Flat annual interest rate in percent"),
		num("years", "Loan period in years"),
	),
	tool("calculateReturnOnInvestment",
		"Return on investment as a percentage of the cost.",
		func(v Values) (any, error) {
			return formula.ReturnOnInvestment(v.Num("cost"), v.Num("finalValue"), v.NumOr("income", 0))
		},
		num("cost", "Total cost of the investment"),
		num("finalValue", "Value of the investment when sold or valued"),
		optNum("income", "Dividends, rent or other income received (default 0)"),
	),

	// Scale drawings
	tool("calculateScale",
		"Scale 1 : n of a drawing from a drawing length and the actual length.",
		func(v Values) (any, error) { return formula.ScaleOf(v.Num("drawingLength"), v.Num("actualLength")) },
		num("drawingLength", "Length on the drawing"),
		num("actualLength", "Actual length in the same unit"),
	),
	tool("calculateActualLength",
		"Actual length represented by a drawing length at scale 1 : n.",
		func(v Values) (any, error) { return formula.ActualLength(v.Num("drawingLength"), v.Num("scale")) },
		num("drawingLength", "Length on the drawing"),
		num("scale", "The n of the scale 1 : n"),
	),

	// Trigonometric ratios
	tool("calculateTrigRatios",
		"sin, cos, tan and the angle of a right-angled triangle from the opposite and adjacent sides.",
		func(v Values) (any, error) { return formula.RightTriangleRatios(v.Num("opposite"), v.Num("adjacent")) },
		num("opposite", "Side opposite the angle"),
		num("adjacent", "Side adjacent to the angle"),
	),
	tool("calculateHypotenuse",
		"Hypotenuse of a right-angled triangle by Pythagoras' theorem.",
		func(v Values) (any, error) { return formula.Pythagoras(v.Num("a"), v.Num("b")) },
		num("a", "First shorter side"),
		num("b", "Second shorter side"),
	),
	tool("calculateAngleOfElevation",
		"Angle of elevation from a height and a horizontal distance.",
		func(v Values) (any, error) { return formula.AngleOfElevation(v.Num("height"), v.Num("distance")) },
		num("height", "Vertical height"),
		num("distance", "Horizontal distance"),
	),

	// Angles and tangents of circles
	tool("calculateCircleProperties",
		"Diameter, circumference and area of a circle.",
		func(v Values) (any, error) { return formula.Circle(v.Num("radius")) },
		num("radius", "Radius of the circle"),
	),
	tool("calculateArcLength",
		"Arc length subtended by a central angle.",
		func(v Values) (any, error) { return formula.ArcLength(v.Num("radius"), v.Num("angle")) },
		num("radius", "Radius of the circle"),
		num("angle", "Central angle in degrees"),
	),
	tool("calculateSectorArea",
		"Area of a sector with a given central angle.",
		func(v Values) (any, error) { return formula.SectorArea(v.Num("radius"), v.Num("angle")) },
		num("radius", "Radius of the circle"),
		num("angle", "Central angle in degrees"),
	),
	tool("calculateChordLength",
		"Length of a chord at a perpendicular distance from the centre. Invalid when distance is not less than the radius.",
		func(v Values) (any, error) { return formula.ChordLength(v.Num("radius"), v.Num("distance")) },
		num("radius", "Radius of the circle"),
		num("distance", "Perpendicular distance from the centre to the chord"),
	),
	tool("calculateTangentLength",
		"Length of a tangent drawn from an external point to a circle.",
		func(v Values) (any, error) { return formula.TangentLength(v.Num("radius"), v.Num("distance")) },
		num("radius", "Radius of the circle"),
		num("distance", "Distance from the external point to the centre"),
	),

	// Plans, elevations and solids
	tool("calculateCylinderVolume",
		"Volume and total surface area of a cylinder.",
		func(v Values) (any, error) { return formula.Cylinder(v.Num("radius"), v.Num("height")) },
		num("radius", "Radius of the base"),
		num("height", "Height of the cylinder"),
	),
	tool("calculateConeVolume",
		"Volume, slant height and total surface area of a cone.",
		func(v Values) (any, error) { return formula.Cone(v.Num("radius"), v.Num("height")) },
		num("radius", "Radius of the base"),
		num("height", "Perpendicular height"),
	),
	tool("calculateSphereVolume",
		"Volume and surface area of a sphere.",
		func(v Values) (any, error) { return formula.Sphere(v.Num("radius")) },
		num("radius", "Radius of the sphere"),
	),
	tool("calculatePrismVolume",
		"Volume of a right prism from its cross-sectional area and length.",
		func(v Values) (any, error) { return formula.Prism(v.Num("baseArea"), v.Num("length")) },
		num("baseArea", "Area of the uniform cross-section"),
		num("length", "Length of the prism"),
	),

	// Loci in two dimensions
	tool("findPerpendicularBisector",
		"Equation of the locus of points equidistant from two points.",
		func(v Values) (any, error) {
			return formula.PerpendicularBisector(v.Num("x1"), v.Num("y1"), v.Num("x2"), v.Num("y2"))
		},
		num("x1", "x of the first point"), num("y1", "y of the first point"),
		num("x2", "x of the second point"), num("y2", "y of the second point"),
	),

	// Straight lines
	tool("calculateGradient",
		"Gradient of the straight line through two points.",
		func(v Values) (any, error) { return formula.GradientOf(v.Num("x1"), v.Num("y1"), v.Num("x2"), v.Num("y2")) },
		num("x1", "x of the first point"), num("y1", "y of the first point"),
		num("x2", "x of the second point"), num("y2", "y of the second point"),
	),
	linearYTool,
	tool("calculateIntercepts",
		"x-intercept and y-intercept of y = mx + c.",
		func(v Values) (any, error) { return formula.LineIntercepts(v.Num("m"), v.Num("c")) },
		num("m", "Gradient"),
		num("c", "y-intercept"),
	),
	tool("calculateDistance",
		"Distance between two points.",
		func(v Values) (any, error) {
			return formula.DistanceBetween(v.Num("x1"), v.Num("y1"), v.Num("x2"), v.Num("y2")), nil
		},
		num("x1", "x of the first point"), num("y1", "y of the first point"),
		num("x2", "x of the second point"), num("y2", "y of the second point"),
	),
	tool("calculateMidpoint",
		"Midpoint of the line segment joining two points.",
		func(v Values) (any, error) {
			return formula.Midpoint(v.Num("x1"), v.Num("y1"), v.Num("x2"), v.Num("y2")), nil
		},
		num("x1", "x of the first point"), num("y1", "y of the first point"),
		num("x2", "x of the second point"), num("y2", "y of the second point"),
	),
	tool("findLineEquation",
		"Equation y = mx + c of the straight line through two points.",
		func(v Values) (any, error) { return formula.LineThrough(v.Num("x1"), v.Num("y1"), v.Num("x2"), v.Num("y2")) },
		num("x1", "x of the first point"), num("y1", "y of the first point"),
		num("x2", "x of the second point"), num("y2", "y of the second point"),
	),
)

// Form3 returns the Form 3 tool registry.
func Form3() *Registry { return form3 }
