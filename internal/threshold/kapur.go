package threshold

import (
	"math"

	"inkpath/internal/models"
)

// kapurAlgorithm picks the global cutoff maximizing the summed entropy
// of the two classes the cutoff induces on the histogram. Entropy
// plateaus resolve to their mean threshold, same as Otsu.
type kapurAlgorithm struct{}

func (kapurAlgorithm) Name() string { return "kapur" }

func (kapurAlgorithm) Foreground(value uint16, cutoff float64) bool {
	return float64(value) > cutoff
}

func (kapurAlgorithm) Threshold(grid *models.IntensityGrid) float64 {
	hist := buildHistogram(grid)
	total := float64(grid.Width() * grid.Height())

	// Prefix mass and prefix sum of p*ln(p). Empty bins contribute
	// nothing to either.
	probMass := make([]float64, len(hist))
	entropySum := make([]float64, len(hist))
	mass := 0.0
	entropy := 0.0
	for i, count := range hist {
		if count > 0 {
			p := float64(count) / total
			mass += p
			entropy += p * math.Log(p)
		}
		probMass[i] = mass
		entropySum[i] = entropy
	}
	totalEntropy := entropy

	// Same degenerate fallback as Otsu: with one intensity value no
	// cutoff separates two non-empty classes, so zero wins throughout.
	maxTotal := math.Inf(-1)
	plateauSum := 0
	plateauCount := 0

	for t := range hist {
		w0 := probMass[t]
		w1 := 1 - w0
		if w0 <= 0 || w1 <= 0 {
			continue
		}

		// sum over class c of p*ln(p/w) = prefix(p*ln p) - w*ln(w)
		sum0 := entropySum[t] - w0*math.Log(w0)
		sum1 := (totalEntropy - entropySum[t]) - w1*math.Log(w1)

		switch h := -sum0 - sum1; {
		case h > maxTotal:
			maxTotal = h
			plateauSum = t
			plateauCount = 1
		case h == maxTotal:
			plateauSum += t
			plateauCount++
		}
	}

	if plateauCount == 0 {
		return 0
	}
	return float64(plateauSum / plateauCount)
}
