package trace

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"inkpath/internal/models"
)

func TestTrace_EmptyInput(t *testing.T) {
	paths := Trace(nil, 3)
	if len(paths) != 0 {
		t.Fatalf("Trace(nil) = %d paths, want 0", len(paths))
	}
}

func TestTrace_TriangleBecomesSinglePath(t *testing.T) {
	// Three points within maxDistance of each other chain into one
	// stroke starting at the lexicographically smallest point.
	points := []models.Point{{X: 4, Y: 3}, {X: 0, Y: 0}, {X: 2, Y: 2}}
	paths := Trace(points, 5)

	want := []models.Path{{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 4, Y: 3}}}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("Trace() mismatch (-want +got):\n%s", diff)
	}
}

func TestTrace_DiscardsShortPaths(t *testing.T) {
	// Two isolated pairs: each would form a 2-point path, below the
	// drawable minimum.
	points := []models.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 100, Y: 100}, {X: 101, Y: 100},
	}
	paths := Trace(points, 2)
	if len(paths) != 0 {
		t.Fatalf("Trace() = %d paths, want 0 (all below minimum length)", len(paths))
	}
}

func TestTrace_PartitionsPointSet(t *testing.T) {
	// A horizontal run and a vertical run, far apart.
	var points []models.Point
	for x := 0; x < 10; x++ {
		points = append(points, models.Point{X: x, Y: 0})
	}
	for y := 0; y < 7; y++ {
		points = append(points, models.Point{X: 50, Y: 20 + y})
	}

	paths := Trace(points, 2)
	if len(paths) != 2 {
		t.Fatalf("Trace() = %d paths, want 2", len(paths))
	}

	seen := make(map[models.Point]int)
	for _, path := range paths {
		for _, p := range path {
			seen[p]++
		}
	}
	for p, n := range seen {
		if n != 1 {
			t.Errorf("point %v appears %d times across paths", p, n)
		}
	}
	if len(seen) != len(points) {
		t.Errorf("paths cover %d points, want %d", len(seen), len(points))
	}
}

func TestTrace_LongestPathFirst(t *testing.T) {
	var points []models.Point
	for x := 0; x < 4; x++ {
		points = append(points, models.Point{X: x, Y: 0})
	}
	for x := 0; x < 9; x++ {
		points = append(points, models.Point{X: x, Y: 100})
	}

	paths := Trace(points, 1)
	if len(paths) != 2 {
		t.Fatalf("Trace() = %d paths, want 2", len(paths))
	}
	if len(paths[0]) != 9 || len(paths[1]) != 4 {
		t.Errorf("path lengths = %d, %d; want 9, 4 (longest first)", len(paths[0]), len(paths[1]))
	}
}

func TestTrace_EquidistantTieBreakIsDeterministic(t *testing.T) {
	// From (0,0) both (1,0) and (0,1) sit at distance 1; the smaller
	// (y,x) point, (1,0), must win every time.
	points := []models.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	want := []models.Path{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}}

	for i := 0; i < 20; i++ {
		paths := Trace(points, 2)
		if diff := cmp.Diff(want, paths); diff != "" {
			t.Fatalf("run %d: Trace() mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestIndex_NearestRespectsRadius(t *testing.T) {
	points := []models.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	ix := NewIndex(points, 3)
	visited := map[models.Point]bool{{X: 0, Y: 0}: true}

	if p, ok := ix.Nearest(models.Point{X: 0, Y: 0}, visited, 3); ok {
		t.Errorf("Nearest() = %v, want none (only candidate is outside radius)", p)
	}
}

func TestIndex_NegativeCoordinates(t *testing.T) {
	// Cell assignment must floor, not truncate, or points around the
	// origin land in the wrong bucket.
	points := []models.Point{{X: -1, Y: -1}, {X: 1, Y: 1}}
	ix := NewIndex(points, 3)

	p, ok := ix.Nearest(models.Point{X: 1, Y: 1}, map[models.Point]bool{{X: 1, Y: 1}: true}, 3)
	if !ok {
		t.Fatal("Nearest() found nothing, want (-1,-1)")
	}
	if p != (models.Point{X: -1, Y: -1}) {
		t.Errorf("Nearest() = %v, want (-1,-1)", p)
	}
}
