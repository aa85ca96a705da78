package formula

import (
	"math"
	"sort"
)

// Mean of a data set.
type Mean struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
	Mean  float64 `json:"mean"`
}

// MeanOf computes Σx/n.
func MeanOf(values []float64) (Mean, error) {
	if len(values) == 0 {
		return Mean{}, invalid("at least one value is required")
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return Mean{Count: len(values), Sum: sum, Mean: sum / float64(len(values))}, nil
}

// Median of a data set.
type Median struct {
	Sorted []float64 `json:"sorted"`
	Median float64   `json:"median"`
}

// MedianOf sorts a copy of values and returns the middle value.
func MedianOf(values []float64) (Median, error) {
	if len(values) == 0 {
		return Median{}, invalid("at least one value is required")
	}
	s := sortedCopy(values)
	return Median{Sorted: s, Median: median(s)}, nil
}

// Mode of a data set.
type Mode struct {
	Modes     []float64 `json:"modes"`
	Frequency int       `json:"frequency"`
	Message   string    `json:"message"`
}

// ModeOf returns every value that occurs most often, in ascending order.
// When every value occurs the same number of times there is no mode.
func ModeOf(values []float64) (Mode, error) {
	if len(values) == 0 {
		return Mode{}, invalid("at least one value is required")
	}
	counts := make(map[float64]int, len(values))
	best := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > best {
			best = counts[v]
		}
	}
	if len(counts) > 1 && best*len(counts) == len(values) {
		return Mode{Modes: []float64{}, Frequency: best, Message: "No mode"}, nil
	}
	modes := make([]float64, 0, 1)
	for v, n := range counts {
		if n == best {
			modes = append(modes, v)
		}
	}
	sort.Float64s(modes)
	msg := "One mode"
	if len(modes) > 1 {
		msg = "Multiple modes"
	}
	return Mode{Modes: modes, Frequency: best, Message: msg}, nil
}

// Dispersion holds the measures of dispersion of ungrouped data.
type Dispersion struct {
	Count              int     `json:"count"`
	Mean               float64 `json:"mean"`
	Range              float64 `json:"range"`
	FirstQuartile      float64 `json:"q1"`
	ThirdQuartile      float64 `json:"q3"`
	InterquartileRange float64 `json:"interquartileRange"`
	Variance           float64 `json:"variance"`
	StandardDeviation  float64 `json:"standardDeviation"`
}

// DispersionOf computes range, quartiles, population variance and standard
// deviation. Quartiles are the medians of the lower and upper halves; the
// median itself is excluded from both halves when the count is odd.
func DispersionOf(values []float64) (Dispersion, error) {
	if len(values) < 2 {
		return Dispersion{}, invalid("at least two values are required")
	}
	s := sortedCopy(values)
	n := len(s)
	m, _ := MeanOf(s)
	ss := 0.0
	for _, v := range s {
		ss += (v - m.Mean) * (v - m.Mean)
	}
	variance := ss / float64(n)
	half := n / 2
	q1 := median(s[:half])
	q3 := median(s[n-half:])
	return Dispersion{
		Count:              n,
		Mean:               m.Mean,
		Range:              s[n-1] - s[0],
		FirstQuartile:      q1,
		ThirdQuartile:      q3,
		InterquartileRange: q3 - q1,
		Variance:           variance,
		StandardDeviation:  math.Sqrt(variance),
	}, nil
}

// Probability of combined events.
type Probability struct {
	And float64 `json:"pAandB"`
	Or  float64 `json:"pAorB"`
}

// IndependentEvents computes P(A ∩ B) = P(A)P(B) and P(A ∪ B).
func IndependentEvents(pA, pB float64) (Probability, error) {
	if err := probabilities(pA, pB); err != nil {
		return Probability{}, err
	}
	and := pA * pB
	return Probability{And: and, Or: pA + pB - and}, nil
}

// MutuallyExclusiveEvents computes P(A ∪ B) = P(A) + P(B) with P(A ∩ B) = 0.
func MutuallyExclusiveEvents(pA, pB float64) (Probability, error) {
	if err := probabilities(pA, pB); err != nil {
		return Probability{}, err
	}
	if pA+pB > 1 {
		return Probability{}, invalid("mutually exclusive events cannot have probabilities summing above 1")
	}
	return Probability{And: 0, Or: pA + pB}, nil
}

// Complement is the probability that an event does not occur.
type Complement struct {
	P          float64 `json:"p"`
	Complement float64 `json:"complement"`
}

// ComplementOf computes 1 − P(A).
func ComplementOf(p float64) (Complement, error) {
	if err := probabilities(p); err != nil {
		return Complement{}, err
	}
	return Complement{P: p, Complement: 1 - p}, nil
}

// SetOperations between two finite sets of numbers.
type SetOperations struct {
	Union        []float64 `json:"union"`
	Intersection []float64 `json:"intersection"`
	AOnly        []float64 `json:"aMinusB"`
	BOnly        []float64 `json:"bMinusA"`
	CountUnion   int       `json:"nUnion"`
	CountInter   int       `json:"nIntersection"`
}

// SetsOf treats both lists as sets (duplicates dropped) and returns their
// union, intersection and differences in ascending order.
func SetsOf(a, b []float64) SetOperations {
	inA, inB := toSet(a), toSet(b)
	res := SetOperations{Union: []float64{}, Intersection: []float64{}, AOnly: []float64{}, BOnly: []float64{}}
	for v := range inA {
		res.Union = append(res.Union, v)
		if inB[v] {
			res.Intersection = append(res.Intersection, v)
		} else {
			res.AOnly = append(res.AOnly, v)
		}
	}
	for v := range inB {
		if !inA[v] {
			res.Union = append(res.Union, v)
			res.BOnly = append(res.BOnly, v)
		}
	}
	for _, s := range [][]float64{res.Union, res.Intersection, res.AOnly, res.BOnly} {
		sort.Float64s(s)
	}
	res.CountUnion, res.CountInter = len(res.Union), len(res.Intersection)
	return res
}

// Inclusion is n(A ∪ B) from the counts of two sets.
type Inclusion struct {
	Union   float64  `json:"nAorB"`
	Neither *float64 `json:"neither,omitempty"`
}

// InclusionExclusion computes n(A ∪ B) = n(A) + n(B) − n(A ∩ B). When the
// universal count is positive the number in neither set is included.
func InclusionExclusion(nA, nB, nAB, universal float64) (Inclusion, error) {
	if nA < 0 || nB < 0 || nAB < 0 {
		return Inclusion{}, invalid("set sizes must not be negative")
	}
	if nAB > nA || nAB > nB {
		return Inclusion{}, invalid("n(A ∩ B) cannot exceed n(A) or n(B)")
	}
	res := Inclusion{Union: nA + nB - nAB}
	if universal > 0 {
		if universal < res.Union {
			return Inclusion{}, invalid("the universal set is smaller than A ∪ B")
		}
		n := universal - res.Union
		res.Neither = &n
	}
	return res, nil
}

// DegreeSum relates the degrees of a graph's vertices to its edges.
type DegreeSum struct {
	Vertices int     `json:"vertices"`
	Sum      float64 `json:"sumOfDegrees"`
	Edges    float64 `json:"edges"`
}

// GraphDegrees applies Σd = 2E to a degree sequence.
func GraphDegrees(sequence []float64) (DegreeSum, error) {
	if len(sequence) == 0 {
		return DegreeSum{}, invalid("at least one vertex degree is required")
	}
	sum := 0.0
	for _, d := range sequence {
		if d < 0 || d != math.Trunc(d) {
			return DegreeSum{}, invalid("degrees must be non-negative whole numbers")
		}
		sum += d
	}
	if math.Mod(sum, 2) != 0 {
		return DegreeSum{}, undefined("the sum of degrees must be even")
	}
	return DegreeSum{Vertices: len(sequence), Sum: sum, Edges: sum / 2}, nil
}

func probabilities(ps ...float64) error {
	for _, p := range ps {
		if p < 0 || p > 1 {
			return invalid("probabilities must be between 0 and 1")
		}
	}
	return nil
}

func sortedCopy(values []float64) []float64 {
	s := append([]float64(nil), values...)
	sort.Float64s(s)
	return s
}

// median expects sorted, non-empty input.
func median(s []float64) float64 {
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

func toSet(values []float64) map[float64]bool {
	set := make(map[float64]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
