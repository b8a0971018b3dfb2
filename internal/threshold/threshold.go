// Package threshold turns a grayscale intensity grid into a binary
// foreground/background mask. Five interchangeable algorithms are
// provided; each computes a scalar cutoff for the grid and declares
// which side of the cutoff counts as drawable content.
package threshold

import (
	"fmt"
	"runtime"
	"sync"

	"inkpath/internal/models"
)

// Algorithm is one thresholding strategy. Threshold derives the scalar
// cutoff from the grid; Foreground applies the algorithm's comparison
// rule to a single sample. Implementations are stateless and safe for
// concurrent use.
type Algorithm interface {
	Name() string
	Threshold(grid *models.IntensityGrid) float64
	Foreground(value uint16, cutoff float64) bool
}

var algorithms = map[models.Strategy]Algorithm{
	models.StrategyOtsu:    otsuAlgorithm{},
	models.StrategyKapur:   kapurAlgorithm{},
	models.StrategySauvola: sauvolaAlgorithm{},
	models.StrategyWolf:    wolfAlgorithm{},
	models.StrategyBernsen: bernsenAlgorithm{},
}

// ForStrategy returns the algorithm registered for the strategy.
func ForStrategy(strategy models.Strategy) (Algorithm, error) {
	alg, ok := algorithms[strategy]
	if !ok {
		return nil, fmt.Errorf("unknown threshold strategy: %v", strategy)
	}
	return alg, nil
}

// Apply binarizes the grid with the selected strategy. The mask always
// matches the grid's dimensions; a zero-sized grid yields a zero-sized
// mask, never an error. The result is fully deterministic for a given
// grid and strategy.
func Apply(grid *models.IntensityGrid, strategy models.Strategy) (*models.BinaryMask, error) {
	alg, err := ForStrategy(strategy)
	if err != nil {
		return nil, err
	}

	if grid.Empty() {
		return models.NewBinaryMask(grid.Width(), grid.Height()), nil
	}

	cutoff := alg.Threshold(grid)
	return binarize(grid, alg, cutoff), nil
}

// binarize classifies every pixel against the cutoff. Each pixel
// depends only on its own intensity, so the pass runs across row bands
// on all CPUs with a single gather at the end.
func binarize(grid *models.IntensityGrid, alg Algorithm, cutoff float64) *models.BinaryMask {
	width := grid.Width()
	height := grid.Height()
	mask := models.NewBinaryMask(width, height)

	workers := runtime.NumCPU()
	if workers > height {
		workers = height
	}
	band := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += band {
		y1 := min(y0+band, height)
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				src := grid.Row(y)
				dst := mask.Row(y)
				for x, v := range src {
					if alg.Foreground(v, cutoff) {
						dst[x] = models.Foreground
					}
				}
			}
		}(y0, y1)
	}
	wg.Wait()

	return mask
}
