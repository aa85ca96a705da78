package tools

import "github.com/dileep-u-k/math-assist/internal/formula"

var form4 = MustRegistry("form4",
	// Quadratic functions and equations
	tool("solveQuadraticRoots",
		"Solve ax² + bx + c = 0 for its real roots using the discriminant.",
		func(v Values) (any, error) { return formula.SolveQuadratic(v.Num("a"), v.Num("b"), v.Num("c")) },
		num("a", "Coefficient of x²"),
		num("b", "Coefficient of x"),
		num("c", "Constant term"),
	),
	tool("calculateQuadraticVertex",
		"Axis of symmetry and turning point of y = ax² + bx + c.",
		func(v Values) (any, error) { return formula.QuadraticTurningPoint(v.Num("a"), v.Num("b"), v.Num("c")) },
		num("a", "Coefficient of x²"),
		num("b", "Coefficient of x"),
		num("c", "Constant term"),
	),
	tool("evaluateQuadratic",
		"Value of ax² + bx + c at a given x.",
		func(v Values) (any, error) {
			return formula.EvaluateQuadratic(v.Num("a"), v.Num("b"), v.Num("c"), v.Num("x")), nil
		},
		num("a", "Coefficient of x²"),
		num("b", "Coefficient of x"),
		num("c", "Constant term"),
		num("x", "The x value"),
	),

	// Number bases
	tool("convertNumberBase",
		"Convert a whole number between bases 2 to 10.",
		func(v Values) (any, error) { return formula.ConvertBase(v.Str("value"), v.Num("fromBase"), v.Num("toBase")) },
		str("value", "Digits of the number in its original base, e.g. \"1011\""),
		num("fromBase", "Base the number is written in"),
		num("toBase", "Base to convert to"),
	),

	// Set operations
	tool("calculateSetOperations",
		"Union, intersection and differences of two sets of numbers.",
		func(v Values) (any, error) { return formula.SetsOf(v.Nums("setA"), v.Nums("setB")), nil },
		nums("setA", "Elements of set A"),
		nums("setB", "Elements of set B"),
	),
	tool("calculateUnionCount",
		"n(A ∪ B) = n(A) + n(B) − n(A ∩ B), and the number in neither set when n(ξ) is given.",
		func(v Values) (any, error) {
			return formula.InclusionExclusion(v.Num("nA"), v.Num("nB"), v.Num("nAandB"), v.NumOr("universal", 0))
		},
		num("nA", "Number of elements in A"),
		num("nB", "Number of elements in B"),
		num("nAandB", "Number of elements in A ∩ B"),
		optNum("universal", "Number of elements in the universal set"),
	),

	// Network in graph theory
	tool("calculateGraphEdges",
		"Sum of degrees and number of edges of a graph from its degree sequence.",
		func(v Values) (any, error) { return formula.GraphDegrees(v.Nums("degrees")) },
		nums("degrees", "Degree of each vertex"),
	),

	// Linear inequalities in two variables
	tool("checkLinearInequality",
		"Check whether a point (x, y) satisfies ax + by (operator) c.",
		func(v Values) (any, error) {
			return formula.CheckInequality(v.Num("a"), v.Num("b"), v.Num("c"), v.Num("x"), v.Num("y"), v.Str("operator"))
		},
		num("a", "Coefficient of x"),
		num("b", "Coefficient of y"),
		num("c", "Right-hand side"),
		num("x", "x of the point"),
		num("y", "y of the point"),
		str("operator", "One of <, <=, >, >=, ="),
	),
	tool("solveLinearProgram",
		"Optimise k = px + qy subject to constraints a[i]x + b[i]y <= c[i], x >= 0, y >= 0 by the corner-point method.",
		func(v Values) (any, error) {
			return formula.SolveLinearProgram(v.Num("p"), v.Num("q"),
				v.Nums("constraintA"), v.Nums("constraintB"), v.Nums("constraintC"), v.Str("goal"))
		},
		num("p", "Coefficient of x in the objective"),
		num("q", "Coefficient of y in the objective"),
		nums("constraintA", "Coefficient of x in each constraint"),
		nums("constraintB", "Coefficient of y in each constraint"),
		nums("constraintC", "Right-hand side of each constraint"),
		optStr("goal", "max or min (default max)"),
	),

	// Graphs of motion
	tool("calculateSpeed",
		"Average speed from total distance and total time.",
		func(v Values) (any, error) { return formula.AverageSpeed(v.Num("distance"), v.Num("time")) },
		num("distance", "Total distance"),
		num("time", "Total time"),
	),
	tool("calculateAcceleration",
		"Acceleration and distance travelled from a speed-time graph segment.",
		func(v Values) (any, error) {
			return formula.AccelerationOf(v.Num("initialSpeed"), v.Num("finalSpeed"), v.Num("time"))
		},
		num("initialSpeed", "Speed at the start u"),
		num("finalSpeed", "Speed at the end v"),
		num("time", "Time taken t"),
	),

	// Measures of dispersion for ungrouped data
	tool("calculateMean",
		"Mean of a list of numbers.",
		func(v Values) (any, error) { return formula.MeanOf(v.Nums("values")) },
		nums("values", "The data"),
	),
	tool("calculateMedian",
		"Median of a list of numbers.",
		func(v Values) (any, error) { return formula.MedianOf(v.Nums("values")) },
		nums("values", "The data"),
	),
	tool("calculateMode",
		"Mode or modes of a list of numbers.",
		func(v Values) (any, error) { return formula.ModeOf(v.Nums("values")) },
		nums("values", "The data"),
	),
	tool("calculateDispersion",
		"Range, quartiles, interquartile range, variance and standard deviation of ungrouped data.",
		func(v Values) (any, error) { return formula.DispersionOf(v.Nums("values")) },
		nums("values", "The data"),
	),

	// Probability of combined events
	tool("calculateIndependentProbability",
		"P(A and B) and P(A or B) for independent events.",
		func(v Values) (any, error) { return formula.IndependentEvents(v.Num("pA"), v.Num("pB")) },
		num("pA", "P(A)"),
		num("pB", "P(B)"),
	),
	tool("calculateExclusiveProbability",
		"P(A or B) for mutually exclusive events.",
		func(v Values) (any, error) { return formula.MutuallyExclusiveEvents(v.Num("pA"), v.Num("pB")) },
		num("pA", "P(A)"),
		num("pB", "P(B)"),
	),
	tool("calculateComplementProbability",
		"Probability that an event does not occur, 1 − P(A).",
		func(v Values) (any, error) { return formula.ComplementOf(v.Num("p")) },
		num("p", "P(A)"),
	),

	// Consumer mathematics: financial management
	tool("calculateBudget",
		"Total expenses and surplus or deficit of a monthly budget.",
		func(v Values) (any, error) { return formula.MonthlyBudget(v.Num("income"), v.Nums("expenses")) },
		num("income", "Monthly income"),
		nums("expenses", "Each monthly expense"),
	),
	tool("calculateSavingsGoal",
		"Monthly saving needed to reach a financial goal.",
		func(v Values) (any, error) {
			return formula.SavingsGoal(v.Num("target"), v.Num("months"), v.NumOr("saved", 0))
		},
		num("target", "Amount to reach"),
		num("months", "Months available"),
		optNum("saved", "Amount already saved (default 0)"),
	),
	compoundInterestTool,

	// Trigonometry of triangles
	tool("calculateTrigValues",
		"sin, cos and tan of an angle in degrees and the quadrant it lies in.",
		func(v Values) (any, error) { return formula.TrigValuesOf(v.Num("angle")), nil },
		num("angle", "Angle in degrees"),
	),
	tool("solveSineRule",
		"Side b of a triangle from side a and angles A and B, b = a·sin B / sin A.",
		func(v Values) (any, error) { return formula.SineRule(v.Num("a"), v.Num("angleA"), v.Num("angleB")) },
		num("a", "Side opposite angle A"),
		num("angleA", "Angle A in degrees"),
		num("angleB", "Angle B in degrees"),
	),
	tool("solveCosineRule",
		"Side c of a triangle from sides a, b and the included angle C.",
		func(v Values) (any, error) { return formula.CosineRule(v.Num("a"), v.Num("b"), v.Num("angleC")) },
		num("a", "Side a"),
		num("b", "Side b"),
		num("angleC", "Included angle C in degrees"),
	),
	tool("calculateTriangleArea",
		"Area of a triangle, ½ab·sin C.",
		func(v Values) (any, error) { return formula.TriangleAreaSAS(v.Num("a"), v.Num("b"), v.Num("angleC")) },
		num("a", "Side a"),
		num("b", "Side b"),
		num("angleC", "Included angle C in degrees"),
	),

	// Vectors
	tool("calculateVectorMagnitude",
		"Magnitude, direction and unit vector of xi + yj.",
		func(v Values) (any, error) { return formula.VectorMagnitude(v.Num("x"), v.Num("y")), nil },
		num("x", "i component"),
		num("y", "j component"),
	),
	tool("addVectors",
		"Resultant and difference of two vectors.",
		func(v Values) (any, error) { return formula.AddVectors(v.Num("x1"), v.Num("y1"), v.Num("x2"), v.Num("y2")), nil },
		num("x1", "i component of the first vector"), num("y1", "j component of the first vector"),
		num("x2", "i component of the second vector"), num("y2", "j component of the second vector"),
	),
	tool("scaleVector",
		"Multiply a vector by a scalar k.",
		func(v Values) (any, error) { return formula.ScaleVector(v.Num("k"), v.Num("x"), v.Num("y")), nil },
		num("k", "The scalar"),
		num("x", "i component"),
		num("y", "j component"),
	),
	tool("calculateDotProduct",
		"Dot product of two vectors and the angle between them.",
		func(v Values) (any, error) { return formula.Dot(v.Num("x1"), v.Num("y1"), v.Num("x2"), v.Num("y2")) },
		num("x1", "i component of the first vector"), num("y1", "j component of the first vector"),
		num("x2", "i component of the second vector"), num("y2", "j component of the second vector"),
	),

	// Matrices
	tool("calculateDeterminant",
		"Determinant of the 2×2 matrix [[a, b], [c, d]].",
		func(v Values) (any, error) {
			return formula.Determinant2x2(v.Num("a"), v.Num("b"), v.Num("c"), v.Num("d")), nil
		},
		num("a", "Row 1, column 1"), num("b", "Row 1, column 2"),
		num("c", "Row 2, column 1"), num("d", "Row 2, column 2"),
	),
	tool("calculateInverseMatrix",
		"Inverse of the 2×2 matrix [[a, b], [c, d]].",
		func(v Values) (any, error) { return formula.Inverse2x2(v.Num("a"), v.Num("b"), v.Num("c"), v.Num("d")) },
		num("a", "Row 1, column 1"), num("b", "Row 1, column 2"),
		num("c", "Row 2, column 1"), num("d", "Row 2, column 2"),
	),
	tool("multiplyMatrices",
		"Product of two 2×2 matrices, each given as four elements in row order.",
		func(v Values) (any, error) { return formula.Multiply2x2(v.Nums("matrixA"), v.Nums("matrixB")) },
		nums("matrixA", "Left matrix [a, b, c, d]"),
		nums("matrixB", "Right matrix [a, b, c, d]"),
	),
	tool("solveSimultaneousEquations",
		"Solve a1x + b1y = c1 and a2x + b2y = c2 with the matrix method.",
		func(v Values) (any, error) {
			return formula.SolveSimultaneous(v.Num("a1"), v.Num("b1"), v.Num("c1"), v.Num("a2"), v.Num("b2"), v.Num("c2"))
		},
		num("a1", "Coefficient of x in equation 1"), num("b1", "Coefficient of y in equation 1"), num("c1", "Constant of equation 1"),
		num("a2", "Coefficient of x in equation 2"), num("b2", "Coefficient of y in equation 2"), num("c2", "Constant of equation 2"),
	),

	// Variation
	tool("solveDirectVariation",
		"Find k in y = kx^n from one pair (x1, y1) and evaluate y at x2.",
		func(v Values) (any, error) {
			return formula.DirectVariation(v.Num("x1"), v.Num("y1"), v.Num("x2"), v.NumOr("n", 1))
		},
		num("x1", "Known x"), num("y1", "Known y"), num("x2", "New x"),
		optNum("n", "Power of x (default 1)"),
	),
	tool("solveInverseVariation",
		"Find k in y = k/x^n from one pair (x1, y1) and evaluate y at x2.",
		func(v Values) (any, error) {
			return formula.InverseVariation(v.Num("x1"), v.Num("y1"), v.Num("x2"), v.NumOr("n", 1))
		},
		num("x1", "Known x"), num("y1", "Known y"), num("x2", "New x"),
		optNum("n", "Power of x (default 1)"),
	),
	tool("solveJointVariation",
		"Find k in y = kxz from one observation and evaluate y at new x and z.",
		func(v Values) (any, error) {
			return formula.JointVariation(v.Num("y1"), v.Num("x1"), v.Num("z1"), v.Num("x2"), v.Num("z2"))
		},
		num("y1", "Known y"), num("x1", "Known x"), num("z1", "Known z"),
		num("x2", "New x"), num("z2", "New z"),
	),

	// Earth as a sphere and straight lines
	tool("calculateGreatCircleDistance",
		"Distance between two places on Earth from latitude and longitude in degrees.",
		func(v Values) (any, error) {
			return formula.GreatCircleDistance(v.Num("lat1"), v.Num("lon1"), v.Num("lat2"), v.Num("lon2"))
		},
		num("lat1", "Latitude of the first place (north positive)"), num("lon1", "Longitude of the first place (east positive)"),
		num("lat2", "Latitude of the second place"), num("lon2", "Longitude of the second place"),
	),
	linearYTool,
)

// Form4 returns the Form 4 tool registry.
func Form4() *Registry { return form4 }

// ByName returns the registry for a syllabus form ("form3" or "form4").
func ByName(form string) (*Registry, bool) {
	switch form {
	case form3.Name():
		return form3, true
	case form4.Name():
		return form4, true
	}
	return nil, false
}
