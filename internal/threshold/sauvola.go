package threshold

import (
	"math"

	"inkpath/internal/models"
)

const (
	sauvolaK = 0.5
	sauvolaR = 128
)

// sauvolaAlgorithm computes the Sauvola local threshold surface from
// windowed mean and standard deviation, then collapses it to its
// median for the final comparison. Collapsing per-pixel adaptivity to
// one scalar is a deliberate simplification, not an oversight: it
// keeps the binarization pass uniform across all five algorithms.
type sauvolaAlgorithm struct{}

func (sauvolaAlgorithm) Name() string { return "sauvola" }

func (sauvolaAlgorithm) Foreground(value uint16, cutoff float64) bool {
	return float64(value) <= cutoff
}

func (sauvolaAlgorithm) Threshold(grid *models.IntensityGrid) float64 {
	width := grid.Width()
	height := grid.Height()
	half := windowHalf(width, height)

	// Only pixels with a full window contribute. If the grid is too
	// small to hold a single window, fall back to its mid-range value.
	if width < 2*half+1 || height < 2*half+1 {
		return midRange(grid)
	}

	tables := newIntegralTables(grid)

	surface := make([]float64, 0, (width-2*half)*(height-2*half))
	for y := half; y < height-half; y++ {
		for x := half; x < width-half; x++ {
			mean, variance := tables.windowStats(x-half, y-half, x+half, y+half)
			stddev := math.Sqrt(variance)
			surface = append(surface, mean*(1+sauvolaK*(stddev/sauvolaR-1)))
		}
	}

	return median(surface)
}
