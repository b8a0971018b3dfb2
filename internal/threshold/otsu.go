package threshold

import "inkpath/internal/models"

// otsuAlgorithm picks the global cutoff maximizing between-class
// variance over the full 16-bit histogram. When several thresholds tie
// for the maximum (a flat variance plateau, typical for clean
// two-level images), the plateau's mean is used so the cutoff lands
// between the classes instead of on the lower one's edge.
type otsuAlgorithm struct{}

func (otsuAlgorithm) Name() string { return "otsu" }

func (otsuAlgorithm) Foreground(value uint16, cutoff float64) bool {
	return float64(value) > cutoff
}

func (otsuAlgorithm) Threshold(grid *models.IntensityGrid) float64 {
	hist := buildHistogram(grid)
	total := float64(grid.Width() * grid.Height())

	var totalSum uint64
	for i, count := range hist {
		totalSum += uint64(i) * count
	}

	// A single-valued grid never yields two non-empty classes, so the
	// variance stays zero for every candidate and the cutoff defaults
	// to the minimum representable value.
	maxVariance := 0.0
	plateauSum := 0
	plateauCount := 0

	var count0, sum0 uint64
	totalCount := uint64(total)
	for t, count := range hist {
		count0 += count
		sum0 += uint64(t) * count
		count1 := totalCount - count0
		if count0 == 0 || count1 == 0 {
			continue
		}

		w0 := float64(count0) / total
		w1 := float64(count1) / total
		mu0 := float64(sum0) / float64(count0)
		mu1 := float64(totalSum-sum0) / float64(count1)

		diff := mu0 - mu1
		variance := w0 * w1 * diff * diff
		switch {
		case variance > maxVariance:
			maxVariance = variance
			plateauSum = t
			plateauCount = 1
		case variance == maxVariance && plateauCount > 0:
			plateauSum += t
			plateauCount++
		}
	}

	if plateauCount == 0 {
		return 0
	}
	return float64(plateauSum / plateauCount)
}
