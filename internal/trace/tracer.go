// Package trace converts a sparse set of foreground points into
// ordered polylines by greedy nearest-neighbor chaining over a grid
// bucket index.
package trace

import (
	"sort"

	"inkpath/internal/models"
)

// MinPathLength is the shortest path worth drawing; anything at or
// below it is treated as noise and discarded.
const MinPathLength = 2

// Trace partitions the point set into drawable paths. Starting points
// are taken in (y, x) order; each path then follows the nearest
// unvisited neighbor within maxDistance until none remains. Paths
// longer than MinPathLength are kept and returned longest-first.
//
// Tracing mutates a shared visited set, so it runs single-threaded;
// the index and the set live and die inside this one call.
func Trace(points []models.Point, maxDistance int) []models.Path {
	if len(points) == 0 {
		return nil
	}

	index := NewIndex(points, maxDistance)

	sorted := make([]models.Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	visited := make(map[models.Point]bool, len(sorted))
	var paths []models.Path

	for _, start := range sorted {
		if visited[start] {
			continue
		}

		path := models.Path{start}
		visited[start] = true

		for {
			next, ok := index.Nearest(path[len(path)-1], visited, maxDistance)
			if !ok {
				break
			}
			path = append(path, next)
			visited[next] = true
		}

		if len(path) > MinPathLength {
			paths = append(paths, path)
		}
	}

	// Longest strokes first. Stable so equal-length paths keep their
	// deterministic discovery order.
	sort.SliceStable(paths, func(i, j int) bool { return len(paths[i]) > len(paths[j]) })
	return paths
}
