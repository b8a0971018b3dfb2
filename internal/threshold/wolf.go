package threshold

import "inkpath/internal/models"

const wolfK = 0.5

// wolfAlgorithm weights every pixel's intensity by its local contrast
// (window max minus window min) and derives one cutoff from the
// contrast-weighted mean. Flat grids carry no contrast anywhere and
// fall back to the mid-range value.
type wolfAlgorithm struct{}

func (wolfAlgorithm) Name() string { return "wolf" }

func (wolfAlgorithm) Foreground(value uint16, cutoff float64) bool {
	return float64(value) <= cutoff
}

func (wolfAlgorithm) Threshold(grid *models.IntensityGrid) float64 {
	width := grid.Width()
	height := grid.Height()
	half := windowHalf(width, height)

	mins, maxs := windowMinMax(grid, half)

	var weighted, totalContrast float64
	for y := 0; y < height; y++ {
		row := grid.Row(y)
		base := y * width
		for x, v := range row {
			contrast := float64(maxs[base+x]) - float64(mins[base+x])
			weighted += contrast * float64(v)
			totalContrast += contrast
		}
	}

	if totalContrast == 0 {
		return midRange(grid)
	}
	return wolfK * weighted / totalContrast
}
