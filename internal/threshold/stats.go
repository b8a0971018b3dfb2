package threshold

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"inkpath/internal/models"
)

// buildHistogram counts samples over the full 16-bit intensity range.
func buildHistogram(grid *models.IntensityGrid) []uint64 {
	hist := make([]uint64, models.GridDepth)
	for y := 0; y < grid.Height(); y++ {
		for _, v := range grid.Row(y) {
			hist[v]++
		}
	}
	return hist
}

// windowHalf is the adaptive window half-size shared by Sauvola and
// Wolf: 5% of the smaller dimension, clamped to [5, 50].
func windowHalf(width, height int) int {
	side := min(width, height)
	half := int(math.Round(0.05 * float64(side)))
	if half < 5 {
		half = 5
	}
	if half > 50 {
		half = 50
	}
	return half
}

// midRange is the fallback cutoff for flat or undersized grids.
func midRange(grid *models.IntensityGrid) float64 {
	lo, hi := grid.MinMax()
	return (float64(lo) + float64(hi)) / 2
}

// median reduces a threshold surface to its representative scalar.
// The slice is sorted in place.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	return stat.Quantile(0.5, stat.Empirical, values, nil)
}

// integralTables holds 2D prefix sums of intensities and squared
// intensities, giving O(1) windowed mean and variance. Construction is
// an inherently sequential left-to-right, top-to-bottom scan and runs
// once before any parallel window evaluation.
type integralTables struct {
	width  int
	sum    []float64
	sqSum  []float64
	stride int
}

func newIntegralTables(grid *models.IntensityGrid) *integralTables {
	width := grid.Width()
	height := grid.Height()
	stride := width + 1

	t := &integralTables{
		width:  width,
		sum:    make([]float64, stride*(height+1)),
		sqSum:  make([]float64, stride*(height+1)),
		stride: stride,
	}

	for y := 0; y < height; y++ {
		row := grid.Row(y)
		base := (y + 1) * stride
		prev := y * stride
		var rowSum, rowSqSum float64
		for x, v := range row {
			f := float64(v)
			rowSum += f
			rowSqSum += f * f
			t.sum[base+x+1] = t.sum[prev+x+1] + rowSum
			t.sqSum[base+x+1] = t.sqSum[prev+x+1] + rowSqSum
		}
	}

	return t
}

// windowStats returns mean and variance over the inclusive rectangle
// [x0,x1]x[y0,y1]. Variance is clamped at zero against floating-point
// cancellation.
func (t *integralTables) windowStats(x0, y0, x1, y1 int) (float64, float64) {
	n := float64((x1 - x0 + 1) * (y1 - y0 + 1))

	a := y0*t.stride + x0
	b := y0*t.stride + x1 + 1
	c := (y1+1)*t.stride + x0
	d := (y1+1)*t.stride + x1 + 1

	s := t.sum[d] - t.sum[b] - t.sum[c] + t.sum[a]
	sq := t.sqSum[d] - t.sqSum[b] - t.sqSum[c] + t.sqSum[a]

	mean := s / n
	variance := sq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, variance
}

// windowMinMax computes per-pixel local minima and maxima over square
// windows of the given half-size, clamped at the grid borders. The
// rectangle extremum separates into a horizontal then a vertical
// sliding pass, each a monotonic-deque scan, so the whole surface
// costs O(width*height) regardless of window size.
func windowMinMax(grid *models.IntensityGrid, half int) ([]uint16, []uint16) {
	width := grid.Width()
	height := grid.Height()

	rowMin := make([]uint16, width*height)
	rowMax := make([]uint16, width*height)
	for y := 0; y < height; y++ {
		row := grid.Row(y)
		slideExtreme(row, rowMin[y*width:(y+1)*width], half, true)
		slideExtreme(row, rowMax[y*width:(y+1)*width], half, false)
	}

	outMin := make([]uint16, width*height)
	outMax := make([]uint16, width*height)
	colSrc := make([]uint16, height)
	colDst := make([]uint16, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			colSrc[y] = rowMin[y*width+x]
		}
		slideExtreme(colSrc, colDst, half, true)
		for y := 0; y < height; y++ {
			outMin[y*width+x] = colDst[y]
		}

		for y := 0; y < height; y++ {
			colSrc[y] = rowMax[y*width+x]
		}
		slideExtreme(colSrc, colDst, half, false)
		for y := 0; y < height; y++ {
			outMax[y*width+x] = colDst[y]
		}
	}

	return outMin, outMax
}

// slideExtreme writes the min (or max) of src over the clamped window
// [i-half, i+half] into dst[i], using a monotonic index deque.
func slideExtreme(src, dst []uint16, half int, wantMin bool) {
	n := len(src)
	deque := make([]int, 0, n)
	next := 0

	better := func(a, b uint16) bool {
		if wantMin {
			return a <= b
		}
		return a >= b
	}

	for i := 0; i < n; i++ {
		hi := min(i+half, n-1)
		for ; next <= hi; next++ {
			for len(deque) > 0 && better(src[next], src[deque[len(deque)-1]]) {
				deque = deque[:len(deque)-1]
			}
			deque = append(deque, next)
		}
		lo := i - half
		for len(deque) > 0 && deque[0] < lo {
			deque = deque[1:]
		}
		dst[i] = src[deque[0]]
	}
}
