// Package pipeline chains the four compilation stages: threshold the
// intensity grid, scale the mask into the target region, sample
// foreground points at the accuracy stride, and trace the points into
// ordered stroke paths.
package pipeline

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"inkpath/internal/logger"
	"inkpath/internal/models"
	"inkpath/internal/scaling"
	"inkpath/internal/threshold"
	"inkpath/internal/trace"
)

// DefaultMaxDistance is the neighbor radius the tracer chains points
// within when the caller leaves it unset.
const DefaultMaxDistance = 3

// Options configures one compilation. All knobs travel through this
// value; nothing is read from ambient state.
type Options struct {
	Strategy    models.Strategy
	Mode        models.ScaleMode
	Region      models.Region
	Accuracy    models.Accuracy
	MaxDistance int
}

// Result is the compilation artifact handed to the actuator. Paths are
// in the scaled mask's local coordinate space; Offset is the region
// origin to translate by before replay.
type Result struct {
	Mask    *models.BinaryMask
	Paths   []models.Path
	Offset  models.Point
	Metrics Metrics
}

// Shuffle reorders the paths with the given source, for callers that
// want strokes replayed in random order. A fixed seed reproduces the
// same order.
func (r *Result) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(r.Paths), func(i, j int) {
		r.Paths[i], r.Paths[j] = r.Paths[j], r.Paths[i]
	})
}

// Compiler runs the image-to-paths pipeline.
type Compiler struct {
	log logger.Logger
}

// New returns a compiler logging to log; pass nil to stay silent.
func New(log logger.Logger) *Compiler {
	if log == nil {
		log = logger.Nop()
	}
	return &Compiler{log: log}
}

// Compile turns an intensity grid into an ordered list of stroke
// paths. A grid with no foreground content compiles to an empty path
// list, not an error.
func (c *Compiler) Compile(grid *models.IntensityGrid, opts Options) (*Result, error) {
	maxDistance := opts.MaxDistance
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}

	result := &Result{Offset: opts.Region.Origin()}

	var mask *models.BinaryMask
	var err error
	timed(&result.Metrics.ThresholdTime, func() {
		mask, err = threshold.Apply(grid, opts.Strategy)
	})
	if err != nil {
		return nil, fmt.Errorf("threshold stage: %w", err)
	}
	result.Metrics.ForegroundPixels = mask.ForegroundCount()
	c.log.Debug("pipeline", "threshold stage done", map[string]interface{}{
		"strategy":   opts.Strategy.String(),
		"foreground": result.Metrics.ForegroundPixels,
		"size":       fmt.Sprintf("%dx%d", mask.Width(), mask.Height()),
	})

	var scaled *models.BinaryMask
	timed(&result.Metrics.ScaleTime, func() {
		scaled, err = scaling.Scale(mask, opts.Region, opts.Mode)
	})
	if err != nil {
		return nil, fmt.Errorf("scale stage: %w", err)
	}
	result.Mask = scaled
	c.log.Debug("pipeline", "scale stage done", map[string]interface{}{
		"mode": opts.Mode.String(),
		"size": fmt.Sprintf("%dx%d", scaled.Width(), scaled.Height()),
	})

	var points []models.Point
	timed(&result.Metrics.SampleTime, func() {
		points = samplePoints(scaled, opts.Accuracy.Stride())
	})
	result.Metrics.SampledPoints = len(points)

	if len(points) == 0 {
		c.log.Warning("pipeline", "no foreground points to trace", map[string]interface{}{
			"strategy": opts.Strategy.String(),
		})
		return result, nil
	}

	timed(&result.Metrics.TraceTime, func() {
		result.Paths = trace.Trace(points, maxDistance)
	})
	result.Metrics.PathCount = len(result.Paths)
	for _, p := range result.Paths {
		result.Metrics.PathPoints += len(p)
	}

	c.log.Info("pipeline", "compilation done", map[string]interface{}{
		"points":      result.Metrics.SampledPoints,
		"paths":       result.Metrics.PathCount,
		"path_points": result.Metrics.PathPoints,
		"total_ms":    result.Metrics.Total().Milliseconds(),
	})

	return result, nil
}

// samplePoints collects foreground pixels at the given stride. Rows
// are independent, so the scan fans out across CPU-count workers and
// gathers in row order to keep the output deterministic.
func samplePoints(mask *models.BinaryMask, stride int) []models.Point {
	if mask.Empty() {
		return nil
	}
	if stride < 1 {
		stride = 1
	}

	height := mask.Height()
	rows := (height + stride - 1) / stride
	perRow := make([][]models.Point, rows)

	workers := runtime.NumCPU()
	if workers > rows {
		workers = rows
	}
	band := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for r0 := 0; r0 < rows; r0 += band {
		r1 := min(r0+band, rows)
		wg.Add(1)
		go func(r0, r1 int) {
			defer wg.Done()
			for r := r0; r < r1; r++ {
				y := r * stride
				row := mask.Row(y)
				var pts []models.Point
				for x := 0; x < len(row); x += stride {
					if row[x] == models.Foreground {
						pts = append(pts, models.Point{X: x, Y: y})
					}
				}
				perRow[r] = pts
			}
		}(r0, r1)
	}
	wg.Wait()

	var points []models.Point
	for _, pts := range perRow {
		points = append(points, pts...)
	}
	return points
}
