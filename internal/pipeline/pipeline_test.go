package pipeline

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpath/internal/models"
)

// stripeGrid is dark background with full-width bright stripes. Under
// the global strategies the bright rows become the drawable content.
func stripeGrid(width, height int, stripeRows ...int) *models.IntensityGrid {
	samples := make([]uint16, width*height)
	for i := range samples {
		samples[i] = 10
	}
	for _, y := range stripeRows {
		for x := 0; x < width; x++ {
			samples[y*width+x] = 60000
		}
	}
	return models.NewIntensityGrid(width, height, samples)
}

func TestCompile_StripeProducesPaths(t *testing.T) {
	grid := stripeGrid(60, 60, 20, 21, 22)

	compiler := New(nil)
	result, err := compiler.Compile(grid, Options{
		Strategy: models.StrategyOtsu,
		Mode:     models.ScaleCenter,
		Region:   models.NewRegion(models.Point{X: 0, Y: 0}, models.Point{X: 60, Y: 60}),
		Accuracy: models.AccuracyAccurate,
	})
	require.NoError(t, err)

	assert.Equal(t, 60, result.Mask.Width())
	assert.Equal(t, 60, result.Mask.Height())
	assert.Equal(t, 180, result.Metrics.SampledPoints, "three bright rows of sixty pixels")
	require.NotEmpty(t, result.Paths)

	// Paths partition the sampled set: no duplicates, nothing invented.
	seen := make(map[models.Point]bool)
	for _, path := range result.Paths {
		assert.Greater(t, len(path), 2, "only drawable paths survive")
		for _, p := range path {
			assert.False(t, seen[p], "point %v appears twice", p)
			seen[p] = true
			assert.Equal(t, models.Foreground, result.Mask.At(p.X, p.Y))
		}
	}
	assert.LessOrEqual(t, len(seen), result.Metrics.SampledPoints)
	assert.Equal(t, result.Metrics.PathPoints, len(seen))
}

func TestCompile_EmptyForegroundIsNotAnError(t *testing.T) {
	// A uniform grid thresholds to no drawable content.
	samples := make([]uint16, 30*30)
	grid := models.NewIntensityGrid(30, 30, samples)

	compiler := New(nil)
	result, err := compiler.Compile(grid, Options{
		Strategy: models.StrategyOtsu,
		Mode:     models.ScaleCenter,
		Region:   models.NewRegion(models.Point{X: 0, Y: 0}, models.Point{X: 30, Y: 30}),
		Accuracy: models.AccuracyBalanced,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Paths)
	assert.Equal(t, 0, result.Metrics.SampledPoints)
}

func TestCompile_OffsetIsRegionOrigin(t *testing.T) {
	grid := stripeGrid(40, 40, 10)

	compiler := New(nil)
	result, err := compiler.Compile(grid, Options{
		Strategy: models.StrategyOtsu,
		Mode:     models.ScaleCenter,
		Region:   models.NewRegion(models.Point{X: 100, Y: 50}, models.Point{X: 40, Y: 90}),
		Accuracy: models.AccuracyFast,
	})
	require.NoError(t, err)
	assert.Equal(t, models.Point{X: 40, Y: 50}, result.Offset)
}

func TestCompile_AccuracyControlsSampling(t *testing.T) {
	grid := stripeGrid(60, 60, 30)

	region := models.NewRegion(models.Point{X: 0, Y: 0}, models.Point{X: 60, Y: 60})
	compiler := New(nil)

	accurate, err := compiler.Compile(grid, Options{
		Strategy: models.StrategyOtsu,
		Mode:     models.ScaleCenter,
		Region:   region,
		Accuracy: models.AccuracyAccurate,
	})
	require.NoError(t, err)

	fast, err := compiler.Compile(grid, Options{
		Strategy: models.StrategyOtsu,
		Mode:     models.ScaleCenter,
		Region:   region,
		Accuracy: models.AccuracyFast,
	})
	require.NoError(t, err)

	assert.Equal(t, 60, accurate.Metrics.SampledPoints)
	assert.Equal(t, 20, fast.Metrics.SampledPoints, "stride three keeps every third column of row thirty")
}

func TestResult_ShuffleIsSeedDeterministic(t *testing.T) {
	grid := stripeGrid(60, 60, 5, 25, 45)

	region := models.NewRegion(models.Point{X: 0, Y: 0}, models.Point{X: 60, Y: 60})
	compile := func() *Result {
		result, err := New(nil).Compile(grid, Options{
			Strategy: models.StrategyOtsu,
			Mode:     models.ScaleCenter,
			Region:   region,
			Accuracy: models.AccuracyAccurate,
		})
		require.NoError(t, err)
		return result
	}

	a := compile()
	b := compile()
	require.Greater(t, len(a.Paths), 1, "need several paths for the shuffle to matter")

	a.Shuffle(rand.New(rand.NewSource(42)))
	b.Shuffle(rand.New(rand.NewSource(42)))
	assert.Equal(t, a.Paths, b.Paths)
}

func TestSamplePoints_RowOrderDeterministic(t *testing.T) {
	mask := models.NewBinaryMask(9, 9)
	for _, p := range []models.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 6, Y: 3}, {X: 0, Y: 6}} {
		mask.Set(p.X, p.Y, models.Foreground)
	}

	got := samplePoints(mask, 3)
	want := []models.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 6, Y: 3}, {X: 0, Y: 6}}
	assert.Equal(t, want, got)

	// Off-stride foreground is skipped.
	mask.Set(1, 1, models.Foreground)
	assert.Equal(t, want, samplePoints(mask, 3))
}
