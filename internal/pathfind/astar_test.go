package pathfind

import (
	"testing"

	"voxelcore/internal/mathutil"
)

func flatPlane(y int) CheckFunc {
	return func(p mathutil.Point) bool { return p.Y != y }
}

func TestAStarStraightLine(t *testing.T) {
	source := mathutil.Pt(0, 1, 0)
	target := mathutil.Pt(4, 1, 0)

	path := AStar(source, target, flatPlane(0), 0, nil)

	want := []mathutil.Point{
		mathutil.Pt(0, 1, 0), mathutil.Pt(1, 1, 0), mathutil.Pt(2, 1, 0),
		mathutil.Pt(3, 1, 0), mathutil.Pt(4, 1, 0),
	}
	if len(path) != len(want) {
		t.Fatalf("path length = %d, want %d: %v", len(path), len(want), path)
	}
	for i, p := range want {
		if path[i] != p {
			t.Fatalf("path[%d] = %v, want %v (full path %v)", i, path[i], p, path)
		}
	}
}

func TestAStarJumpOverBlockingColumn(t *testing.T) {
	source := mathutil.Pt(0, 1, 0)
	target := mathutil.Pt(4, 1, 0)

	check := func(p mathutil.Point) bool {
		if p.Y == 0 {
			return false // solid floor base
		}
		if p.X == 2 && p.Y == 1 {
			return false // the blocking column
		}
		return true
	}

	path := AStar(source, target, check, 0, nil)
	if len(path) < 5 {
		t.Fatalf("expected a path of length >= 5, got %d: %v", len(path), path)
	}

	foundJump := false
	for _, p := range path {
		if p.X == 2 && p.Y == 2 {
			foundJump = true
		}
	}
	if !foundJump {
		t.Fatalf("expected a jump node at (2, 2, z) above the blocking column, got %v", path)
	}
}

func TestAStarUnreachableTargetReturnsBestEffort(t *testing.T) {
	source := mathutil.Pt(0, 1, 0)
	target := mathutil.Pt(10, 1, 0)

	check := func(p mathutil.Point) bool {
		if p.Y == 0 {
			return false
		}
		if p.X == 5 { // a full wall at x=5, every y and z
			return false
		}
		return true
	}

	path := AStar(source, target, check, 0, nil)
	if len(path) == 0 {
		t.Fatalf("expected a non-empty best-effort path when the target is walled off")
	}
	last := path[len(path)-1]
	if last == target {
		t.Fatalf("best-effort path should not reach the walled-off target, got %v", path)
	}
}

func TestAStarBoundedByLimit(t *testing.T) {
	source := mathutil.Pt(0, 1, 0)
	target := mathutil.Pt(1000, 1, 0)

	popped := 0
	record := func(mathutil.Point) { popped++ }

	path := AStar(source, target, flatPlane(0), 32, record)
	if popped > 32 {
		t.Fatalf("popped %d nodes, limit was 32", popped)
	}
	if len(path) > popped+1 {
		t.Fatalf("path length %d exceeds popped count + 1 (%d)", len(path), popped+1)
	}
}

func TestHeuristicZeroAtTarget(t *testing.T) {
	target := mathutil.Pt(4, 1, 0)
	dir := unitDirection(mathutil.Pt(0, 1, 0), target)
	if h := heuristic(target, target, dir); h != 0 {
		t.Fatalf("heuristic(target) = %d, want 0", h)
	}
}

func TestAStarCostMatchesChebyshevOnFlatOpenPlane(t *testing.T) {
	source := mathutil.Pt(0, 1, 0)
	target := mathutil.Pt(5, 1, 3)

	path := AStar(source, target, flatPlane(0), 0, nil)
	if len(path) == 0 || path[len(path)-1] != target {
		t.Fatalf("expected a full path to a reachable target on an open flat plane, got %v", path)
	}

	dx, dz := 5, 3
	wantCost := max(dx, dz)*UnitCost + min(dx, dz)*DiagonalPenalty

	gotCost := 0
	for i := 1; i < len(path); i++ {
		diag := path[i].X != path[i-1].X && path[i].Z != path[i-1].Z
		gotCost += stepCost(path[i-1], path[i], diag)
	}
	if gotCost != wantCost {
		t.Fatalf("path cost = %d, want %d (chebyshev + diagonal penalty)", gotCost, wantCost)
	}
}
