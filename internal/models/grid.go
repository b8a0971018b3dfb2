package models

// IntensityGrid is an immutable width x height grid of 16-bit
// grayscale samples. The imaging codec produces it once per run; every
// later stage only reads it.
type IntensityGrid struct {
	width   int
	height  int
	samples []uint16
}

// GridDepth is the number of representable intensity values.
const GridDepth = 65536

// NewIntensityGrid wraps samples in row-major order. The slice length
// must be width*height; the grid takes ownership of it.
func NewIntensityGrid(width, height int, samples []uint16) *IntensityGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &IntensityGrid{width: width, height: height, samples: samples}
}

func (g *IntensityGrid) Width() int { return g.width }

func (g *IntensityGrid) Height() int { return g.height }

// Empty reports whether the grid holds no samples.
func (g *IntensityGrid) Empty() bool {
	return g.width <= 0 || g.height <= 0 || len(g.samples) == 0
}

// At returns the sample at (x, y). Callers stay in bounds; the hot
// loops index rows directly via Row.
func (g *IntensityGrid) At(x, y int) uint16 {
	return g.samples[y*g.width+x]
}

// Row returns the y-th row as a read-only slice.
func (g *IntensityGrid) Row(y int) []uint16 {
	return g.samples[y*g.width : (y+1)*g.width]
}

// MinMax returns the smallest and largest sample in the grid. Both are
// zero for an empty grid.
func (g *IntensityGrid) MinMax() (uint16, uint16) {
	if g.Empty() {
		return 0, 0
	}
	lo, hi := g.samples[0], g.samples[0]
	for _, v := range g.samples {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Sample is one cell of a BinaryMask.
type Sample uint8

const (
	// Background is the white-equivalent value. Scaling pads with it.
	Background Sample = iota
	// Foreground marks drawable content.
	Foreground
)

// BinaryMask is a width x height grid of two-valued samples. Each
// pipeline stage consumes its predecessor's mask and produces a new
// one; masks are never shared for mutation across stages.
type BinaryMask struct {
	width   int
	height  int
	samples []Sample
}

// NewBinaryMask allocates a mask filled with Background.
func NewBinaryMask(width, height int) *BinaryMask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &BinaryMask{
		width:   width,
		height:  height,
		samples: make([]Sample, width*height),
	}
}

func (m *BinaryMask) Width() int { return m.width }

func (m *BinaryMask) Height() int { return m.height }

// Empty reports whether the mask holds no samples.
func (m *BinaryMask) Empty() bool {
	return m.width <= 0 || m.height <= 0
}

// At returns the sample at (x, y).
func (m *BinaryMask) At(x, y int) Sample {
	return m.samples[y*m.width+x]
}

// Set writes the sample at (x, y).
func (m *BinaryMask) Set(x, y int, s Sample) {
	m.samples[y*m.width+x] = s
}

// Row returns the y-th row of the mask.
func (m *BinaryMask) Row(y int) []Sample {
	return m.samples[y*m.width : (y+1)*m.width]
}

// ForegroundCount returns the number of foreground samples.
func (m *BinaryMask) ForegroundCount() int {
	n := 0
	for _, s := range m.samples {
		if s == Foreground {
			n++
		}
	}
	return n
}

// Equal reports whether two masks have identical dimensions and
// samples.
func (m *BinaryMask) Equal(other *BinaryMask) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i, s := range m.samples {
		if s != other.samples[i] {
			return false
		}
	}
	return true
}
