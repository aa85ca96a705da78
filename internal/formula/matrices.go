package formula

// Determinant of a 2×2 matrix.
type Determinant struct {
	Determinant float64 `json:"determinant"`
	Singular    bool    `json:"singular"`
}

// Determinant2x2 computes ad − bc for [[a b] [c d]].
func Determinant2x2(a, b, c, d float64) Determinant {
	det := a*d - b*c
	return Determinant{Determinant: det, Singular: det == 0}
}

// Inverse of a 2×2 matrix.
type Inverse struct {
	Determinant float64       `json:"determinant"`
	Inverse     [2][2]float64 `json:"inverse"`
}

// Inverse2x2 computes 1/(ad − bc)·[[d −b] [−c a]]. A singular matrix has no inverse.
func Inverse2x2(a, b, c, d float64) (Inverse, error) {
	det := a*d - b*c
	if det == 0 {
		return Inverse{}, undefined("the matrix is singular and has no inverse")
	}
	return Inverse{
		Determinant: det,
		Inverse:     [2][2]float64{{d / det, -b / det}, {-c / det, a / det}},
	}, nil
}

// MatrixProduct is the product of two 2×2 matrices.
type MatrixProduct struct {
	Product [2][2]float64 `json:"product"`
}

// Multiply2x2 multiplies two 2×2 matrices given as four row-major elements each.
func Multiply2x2(left, right []float64) (MatrixProduct, error) {
	if len(left) != 4 || len(right) != 4 {
		return MatrixProduct{}, invalid("each matrix needs exactly 4 elements in row order")
	}
	a := [2][2]float64{{left[0], left[1]}, {left[2], left[3]}}
	b := [2][2]float64{{right[0], right[1]}, {right[2], right[3]}}
	var p [2][2]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			p[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j]
		}
	}
	return MatrixProduct{Product: p}, nil
}
