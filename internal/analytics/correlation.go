package analytics

import (
	"math"

	"github.com/niveshfolio/portfolio-backend/internal/model"
)

// CorrelationMatrix computes the full symmetric Pearson correlation matrix
// over the growth series. The series share one month axis by construction,
// so pairing is positional.
//
// Months where either series of a pair has an unknown value are excluded
// pairwise before computing r for that pair. The diagonal is always 1.
// Degenerate pairs (fewer than two shared points, or zero variance) yield 0.
func CorrelationMatrix(series []model.GrowthSeries) [][]float64 {
	matrix := make([][]float64, len(series))
	for i := range series {
		matrix[i] = make([]float64, len(series))
		for j := range series {
			switch {
			case i == j:
				matrix[i][j] = 1
			case j < i:
				matrix[i][j] = matrix[j][i]
			default:
				x, y := pairedValues(series[i].Series, series[j].Series)
				matrix[i][j] = pearson(x, y)
			}
		}
	}
	return matrix
}

// pairedValues collects the positions where both series have a known value.
func pairedValues(a, b []model.GrowthPoint) ([]float64, []float64) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	x := make([]float64, 0, n)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if a[i].GrowthPct == nil || b[i].GrowthPct == nil {
			continue
		}
		x = append(x, *a[i].GrowthPct)
		y = append(y, *b[i].GrowthPct)
	}
	return x, y
}

// pearson computes the sample correlation coefficient
// r = (n·Σxy − Σx·Σy) / sqrt((n·Σx² − (Σx)²)·(n·Σy² − (Σy)²)).
func pearson(x, y []float64) float64 {
	n := float64(len(x))
	if len(x) < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	denom := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denom == 0 || math.IsNaN(denom) {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}
