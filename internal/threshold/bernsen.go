package threshold

import "inkpath/internal/models"

const bernsenHalf = 15

// bernsenAlgorithm takes the midpoint of the local min/max contrast
// window at every interior pixel and uses the median midpoint as the
// grid's cutoff.
type bernsenAlgorithm struct{}

func (bernsenAlgorithm) Name() string { return "bernsen" }

func (bernsenAlgorithm) Foreground(value uint16, cutoff float64) bool {
	return float64(value) <= cutoff
}

func (bernsenAlgorithm) Threshold(grid *models.IntensityGrid) float64 {
	width := grid.Width()
	height := grid.Height()

	if width < 2*bernsenHalf+1 || height < 2*bernsenHalf+1 {
		return midRange(grid)
	}

	mins, maxs := windowMinMax(grid, bernsenHalf)

	// Interior pixels only: the border clamp would shrink their
	// windows below the fixed size.
	surface := make([]float64, 0, (width-2*bernsenHalf)*(height-2*bernsenHalf))
	for y := bernsenHalf; y < height-bernsenHalf; y++ {
		base := y * width
		for x := bernsenHalf; x < width-bernsenHalf; x++ {
			lo := float64(mins[base+x])
			hi := float64(maxs[base+x])
			surface = append(surface, (lo+hi)/2)
		}
	}

	return median(surface)
}
