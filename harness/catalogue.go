// SPDX-License-Identifier: MIT
// Package harness: the built-in example catalogue.

package harness

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gaussjordan/gauss"
	"github.com/katalvlaran/gaussjordan/matrix"
)

// familyTwoX is the free parameter of the second family's right-hand sides.
const familyTwoX = 1.23

// DefaultSPDSizes are the orders of the random symmetric positive definite systems.
var DefaultSPDSizes = []int{10, 20, 30, 40, 50}

// handWritten returns the small systems with known answers.
func handWritten() []Case {
	return []Case{
		{
			Name:   "diagonal-2",
			A:      matrix.MustFromRows([][]float64{{4, 0}, {0, 5}}),
			F:      matrix.Column(1, 1),
			Answer: matrix.Column(0.25, 0.2),
		},
		{
			Name:   "dense-3a",
			A:      matrix.MustFromRows([][]float64{{8, 7, 3}, {-7, -4, -4}, {-6, 5, -4}}),
			F:      matrix.Column(18, -11, -15),
			Answer: matrix.Column(5, -1, -5),
		},
		{
			Name:   "dense-3b",
			A:      matrix.MustFromRows([][]float64{{1, 2, 3}, {2, -1, 2}, {1, 1, 5}}),
			F:      matrix.Column(1, 6, -1),
			Answer: matrix.Column(4, 0, -1),
		},
		{
			Name:   "dense-3c",
			A:      matrix.MustFromRows([][]float64{{3, 2, -5}, {2, -1, 3}, {1, 2, -1}}),
			F:      matrix.Column(-1, 13, 9),
			Answer: matrix.Column(3, 5, 4),
		},
		{
			Name:   "dense-3d",
			A:      matrix.MustFromRows([][]float64{{4, 2, -1}, {5, 3, -2}, {3, 2, -3}}),
			F:      matrix.Column(1, 2, 0),
			Answer: matrix.Column(-1, 3, 1),
		},
		{
			Name:   "dense-4",
			A:      matrix.MustFromRows([][]float64{{2, 5, 4, 1}, {1, 3, 2, 1}, {2, 10, 9, 7}, {3, 8, 9, 2}}),
			F:      matrix.Column(20, 11, 40, 37),
			Answer: matrix.Column(1, 2, 2, 0),
		},
	}
}

// textbook returns three 4×4 systems without reference answers; the second
// has a singular coefficient matrix.
func textbook() []Case {
	return []Case{
		{
			Name: "textbook-1",
			A:    matrix.MustFromRows([][]float64{{2, -2, 0, 1}, {2, 3, 1, -3}, {3, 4, -1, 2}, {1, 3, 1, -1}}),
			F:    matrix.Column(-3, -6, 0, 2),
		},
		{
			Name: "textbook-2",
			A:    matrix.MustFromRows([][]float64{{1, 3, 2, 1}, {2, -1, 3, -2}, {3, -5, 4, -3}, {1, 17, 4, -23}}),
			F:    matrix.Column(0, 0, 0, 0),
		},
		{
			Name: "textbook-3",
			A:    matrix.MustFromRows([][]float64{{45, -28, 34, -52}, {36, -23, 29, -43}, {47, -32, 36, -48}, {27, -19, 22, -35}}),
			F:    matrix.Column(9, 3, -17, 6),
		},
	}
}

// smallSPD is the tridiagonal system with a known answer that closes the catalogue.
func smallSPD() Case {
	return Case{
		Name:   "spd-3",
		A:      matrix.MustFromRows([][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}),
		F:      matrix.Column(0, 1, 2),
		Answer: matrix.Column(1, 2, 2),
	}
}

// variant is one generated system: order n, parameter m and the formula of F.
type variant struct {
	n, m int
	f    matrix.GeneratorFunc
}

// familyOneA: diagonally dominant, a[i][i] = n + m² + j/m + i/n and
// a[i][j] = (i+j)/(m+n) off the diagonal (1-based i, j).
func familyOneA(i, j, rows, _ int, m float64) float64 {
	fi, fj, n := float64(i+1), float64(j+1), float64(rows)
	if i == j {
		return n + m*m + fj/m + fi/n
	}

	return (fi + fj) / (m + n)
}

// familyTwoA: ill-conditioned, q = 1.001 - 2m·10⁻³, a[i][i] = (q-1)^(i+j)
// and a[i][j] = q^(i+j) + 0.1(j-i) off the diagonal (1-based i, j).
func familyTwoA(i, j, _, _ int, m float64) float64 {
	fi, fj := float64(i+1), float64(j+1)
	q := 1.001 - 2*m*1e-3
	if i == j {
		return math.Pow(q-1, fi+fj)
	}

	return math.Pow(q, fi+fj) + 0.1*(fj-fi)
}

func familyOneVariants() []variant {
	return []variant{
		{40, 10, func(i, _, rows, _ int, m float64) float64 { return float64(rows*(i+1)) + m }},
		{20, 8, func(i, _, _, _ int, _ float64) float64 { return 200 + 50*float64(i+1) }},
		{30, 9, func(i, _, _, _ int, _ float64) float64 {
			k := float64(i + 1)
			return k*k - 100
		}},
		{50, 15, func(i, _, rows, _ int, m float64) float64 {
			k := float64(i + 1)
			return m*float64(rows) - k*k*k
		}},
		{30, 20, func(i, _, rows, _ int, m float64) float64 { return m*float64(i+1) + float64(rows) }},
		{25, 10, func(i, _, rows, _ int, _ float64) float64 {
			k := float64(i + 1)
			return k*k - float64(rows)
		}},
	}
}

func familyTwoVariants() []variant {
	expCos := func(i, _, rows, _ int, _ float64) float64 {
		return float64(rows) * math.Exp(familyTwoX/float64(i+1)) * math.Cos(familyTwoX)
	}
	absSin := func(i, _, rows, _ int, _ float64) float64 {
		return math.Abs(familyTwoX-float64(rows)/10) * float64(i+1) * math.Sin(familyTwoX)
	}
	expCosI := func(i, _, _, _ int, _ float64) float64 {
		k := float64(i + 1)
		return familyTwoX * math.Exp(familyTwoX/k) * math.Cos(familyTwoX/k)
	}

	return []variant{
		{50, 1, expCos},
		{40, 2, absSin},
		{30, 3, expCosI},
		{100, 4, expCos},
		{100, 5, absSin},
		{100, 6, expCosI},
	}
}

func generateFamily(prefix string, a matrix.GeneratorFunc, vs []variant) []Case {
	out := make([]Case, 0, len(vs))
	for k, v := range vs {
		// sizes are positive, Generate cannot fail
		A, _ := matrix.Generate(v.n, v.n, float64(v.m), a)
		F, _ := matrix.Generate(v.n, 1, float64(v.m), v.f)
		out = append(out, Case{Name: fmt.Sprintf("%s-v%d", prefix, k+1), A: A, F: F})
	}

	return out
}

// FamilyOneCases returns the six diagonally dominant generated systems.
func FamilyOneCases() []Case { return generateFamily("family1", familyOneA, familyOneVariants()) }

// FamilyTwoCases returns the six ill-conditioned generated systems.
func FamilyTwoCases() []Case { return generateFamily("family2", familyTwoA, familyTwoVariants()) }

// RandomSPDCases builds one symmetric positive definite system per size.
//
// For order n: draw A uniformly from [0, 10) until it has rank n, form
// B = A·D·A⁻¹ with D = diag(1..n), and use B·Bᵀ as the coefficient matrix
// with a right-hand side drawn from [0, 10). A nil rng uses matrix.NewRNG(0).
func RandomSPDCases(rng *rand.Rand, sizes []int) ([]Case, error) {
	if rng == nil {
		rng = matrix.NewRNG(0)
	}
	out := make([]Case, 0, len(sizes))
	for _, n := range sizes {
		c, err := randomSPD(rng, n)
		if err != nil {
			return nil, fmt.Errorf("RandomSPDCases(n=%d): %w", n, err)
		}
		out = append(out, c)
	}

	return out, nil
}

const maxSPDDraws = 64

func randomSPD(rng *rand.Rand, n int) (Case, error) {
	for draw := 0; draw < maxSPDDraws; draw++ {
		a, err := matrix.Random(rng, n, n, 0, 10)
		if err != nil {
			return Case{}, err
		}
		if gauss.Rank(a) < n {
			continue
		}
		inv, err := gauss.Inverse(a)
		if err != nil {
			continue
		}
		d, _ := matrix.Generate(n, n, 0, func(i, j, _, _ int, _ float64) float64 {
			if i == j {
				return float64(i + 1)
			}
			return 0
		})
		ad, err := matrix.Mul(a, d)
		if err != nil {
			return Case{}, err
		}
		b, err := matrix.Mul(ad, inv)
		if err != nil {
			return Case{}, err
		}
		spd, err := matrix.Mul(b, b.T())
		if err != nil {
			return Case{}, err
		}
		f, err := matrix.Random(rng, n, 1, 0, 10)
		if err != nil {
			return Case{}, err
		}

		return Case{Name: fmt.Sprintf("spd-random-%d", n), A: spd, F: f}, nil
	}

	return Case{}, gauss.ErrSingular
}

// DefaultCases returns the deterministic part of the catalogue: the
// hand-written systems, the textbook systems, both generated families and
// the small SPD system.
func DefaultCases() []Case {
	out := handWritten()
	out = append(out, textbook()...)
	out = append(out, FamilyOneCases()...)
	out = append(out, FamilyTwoCases()...)

	return append(out, smallSPD())
}

// Catalogue returns the full catalogue in its canonical order, with the
// random SPD systems (DefaultSPDSizes, drawn from rng) placed before the
// small SPD system.
func Catalogue(rng *rand.Rand) ([]Case, error) {
	spd, err := RandomSPDCases(rng, DefaultSPDSizes)
	if err != nil {
		return nil, err
	}
	out := handWritten()
	out = append(out, textbook()...)
	out = append(out, FamilyOneCases()...)
	out = append(out, FamilyTwoCases()...)
	out = append(out, spd...)

	return append(out, smallSPD()), nil
}
