package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion_DimensionsFloor(t *testing.T) {
	tests := []struct {
		name       string
		c1, c2     Point
		wantW      int
		wantH      int
		wantOrigin Point
	}{
		{"normal", Point{100, 100}, Point{300, 200}, 200, 100, Point{100, 100}},
		{"swapped corners", Point{300, 200}, Point{100, 100}, 200, 100, Point{100, 100}},
		{"zero area clamps to floor", Point{50, 50}, Point{50, 50}, 10, 10, Point{50, 50}},
		{"thin region floors one axis", Point{0, 0}, Point{400, 3}, 400, 10, Point{0, 0}},
		{"mixed corner order", Point{300, 100}, Point{100, 200}, 200, 100, Point{100, 100}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegion(tc.c1, tc.c2)
			assert.Equal(t, tc.wantW, r.Width())
			assert.Equal(t, tc.wantH, r.Height())
			assert.Equal(t, tc.wantOrigin, r.Origin())
		})
	}
}

func TestRegion_CornerOrderInvariance(t *testing.T) {
	a := NewRegion(Point{10, 20}, Point{110, 90})
	b := NewRegion(Point{110, 90}, Point{10, 20})
	assert.Equal(t, a.Width(), b.Width())
	assert.Equal(t, a.Height(), b.Height())
	assert.Equal(t, a.Origin(), b.Origin())
}

func TestAccuracy_Stride(t *testing.T) {
	assert.Equal(t, 3, AccuracyFast.Stride())
	assert.Equal(t, 2, AccuracyBalanced.Stride())
	assert.Equal(t, 1, AccuracyAccurate.Stride())
}

func TestParseStrategy_RoundTrip(t *testing.T) {
	for _, s := range Strategies() {
		parsed, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStrategy("niblack")
	assert.Error(t, err)
}

func TestParseScaleMode_RoundTrip(t *testing.T) {
	for _, m := range []ScaleMode{ScaleStretch, ScaleFit, ScaleFill, ScaleCenter, ScaleTile} {
		parsed, err := ParseScaleMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := ParseScaleMode("mirror")
	assert.Error(t, err)
}

func TestPoint_Ordering(t *testing.T) {
	assert.True(t, Point{5, 1}.Less(Point{0, 2}), "row dominates column")
	assert.True(t, Point{1, 3}.Less(Point{2, 3}))
	assert.False(t, Point{2, 3}.Less(Point{2, 3}))
}

func TestPath_Translate(t *testing.T) {
	p := Path{{0, 0}, {1, 2}}
	got := p.Translate(Point{10, 20})
	assert.Equal(t, Path{{10, 20}, {11, 22}}, got)
	assert.Equal(t, Path{{0, 0}, {1, 2}}, p, "original untouched")
}

func TestInterpolate(t *testing.T) {
	a := Point{0, 0}
	b := Point{6, 0}
	pts := Interpolate(a, b)
	require.NotEmpty(t, pts)
	assert.Equal(t, a, pts[0])
	assert.Equal(t, b, pts[len(pts)-1])
	for i := 1; i < len(pts); i++ {
		assert.LessOrEqual(t, pts[i-1].DistanceSquared(pts[i]), 2, "steps stay pixel-sized")
	}

	adjacent := Interpolate(Point{3, 3}, Point{4, 3})
	assert.Equal(t, []Point{{3, 3}, {4, 3}}, adjacent)
}

func TestBinaryMask_Basics(t *testing.T) {
	m := NewBinaryMask(4, 3)
	assert.Equal(t, 0, m.ForegroundCount())

	m.Set(2, 1, Foreground)
	assert.Equal(t, Foreground, m.At(2, 1))
	assert.Equal(t, Background, m.At(0, 0))
	assert.Equal(t, 1, m.ForegroundCount())

	other := NewBinaryMask(4, 3)
	assert.False(t, m.Equal(other))
	other.Set(2, 1, Foreground)
	assert.True(t, m.Equal(other))
}

func TestIntensityGrid_MinMax(t *testing.T) {
	g := NewIntensityGrid(2, 2, []uint16{7, 60000, 3, 9})
	lo, hi := g.MinMax()
	assert.Equal(t, uint16(3), lo)
	assert.Equal(t, uint16(60000), hi)

	empty := NewIntensityGrid(0, 0, nil)
	lo, hi = empty.MinMax()
	assert.Equal(t, uint16(0), lo)
	assert.Equal(t, uint16(0), hi)
	assert.True(t, empty.Empty())
}
