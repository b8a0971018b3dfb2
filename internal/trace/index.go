package trace

import "inkpath/internal/models"

type cellKey struct {
	x int
	y int
}

// Index buckets points into fixed-size grid cells so neighbor lookups
// only touch the 3x3 block of cells around a query point. It is built
// once per trace and never mutated afterwards; consumed points are
// tracked in the caller's visited set instead.
type Index struct {
	cellSize int
	cells    map[cellKey][]models.Point
}

// NewIndex buckets the points with cell size max(maxDistance, 1).
func NewIndex(points []models.Point, maxDistance int) *Index {
	cellSize := max(maxDistance, 1)

	ix := &Index{
		cellSize: cellSize,
		cells:    make(map[cellKey][]models.Point),
	}
	for _, p := range points {
		key := cellKey{x: floorDiv(p.X, cellSize), y: floorDiv(p.Y, cellSize)}
		ix.cells[key] = append(ix.cells[key], p)
	}
	return ix
}

// Nearest returns the closest unvisited point within maxDistance of
// from. Equidistant candidates resolve to the smallest (y, x) point so
// traces never depend on map iteration order.
func (ix *Index) Nearest(from models.Point, visited map[models.Point]bool, maxDistance int) (models.Point, bool) {
	centerX := floorDiv(from.X, ix.cellSize)
	centerY := floorDiv(from.Y, ix.cellSize)
	limit := maxDistance * maxDistance

	var best models.Point
	bestDist := -1

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			for _, p := range ix.cells[cellKey{x: centerX + dx, y: centerY + dy}] {
				if visited[p] {
					continue
				}
				d := from.DistanceSquared(p)
				if d > limit {
					continue
				}
				if bestDist < 0 || d < bestDist || (d == bestDist && p.Less(best)) {
					best = p
					bestDist = d
				}
			}
		}
	}

	return best, bestDist >= 0
}

// floorDiv divides rounding toward negative infinity, keeping cell
// assignment consistent for negative coordinates.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
