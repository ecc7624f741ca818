package pathfind

import (
	"container/heap"
	"math"

	"voxelcore/internal/mathutil"
)

// Movement cost constants.
const (
	UnitCost        = 16
	DiagonalPenalty = 1
	UpCost          = 64
	DownCost        = 4
)

// DefaultLimit bounds the number of pops per search when the caller
// does not supply one.
const DefaultLimit = 256

const flatLimit = 4
const jumpLimit = 3

// CheckFunc reports whether p is passable (empty). It must be pure and
// idempotent within a single search.
type CheckFunc func(p mathutil.Point) bool

// RecordFunc, if non-nil, receives every popped point in pop order —
// used for visualizing the search.
type RecordFunc func(p mathutil.Point)

// AStar searches from source to target. limit defaults to DefaultLimit
// pops when <= 0. It never returns an error: an unreachable target
// yields the best-effort path to the closest node found, and a
// malformed fall (a single descent of more than one block, when the
// target itself needed dropping by more than one block) is rejected in
// favor of an empty path.
func AStar(source, target mathutil.Point, check CheckFunc, limit int, record RecordFunc) []mathutil.Point {
	if limit <= 0 {
		limit = DefaultLimit
	}

	sx, sy, sz := source.X, source.Y, source.Z
	source = astarDrop(mathutil.Pt(sx, sy, sz), check)
	droppedTarget := astarDrop(target, check)
	drop := target.Y - droppedTarget.Y
	target = droppedTarget

	dir := unitDirection(source, target)

	start := &node{point: source, distance: 0}
	start.score = heuristic(start.point, target, dir)

	open := openSet{start}
	heap.Init(&open)
	closed := map[uint32]*node{closedKey(source, source): start}

	var best *node = start
	bestMargin := start.score - start.distance

	popped := 0
	isFirst := true
	for open.Len() > 0 && popped < limit {
		current := heap.Pop(&open).(*node)
		popped++
		if record != nil {
			record(current.point)
		}

		margin := current.score - current.distance
		if margin < bestMargin {
			bestMargin = margin
			best = current
		}

		if current.point == target {
			best = current
			break
		}

		for _, n := range astarNeighbors(source, current.point, check, isFirst) {
			isFirst = false
			dist := current.distance + n.cost
			key := closedKey(n.point, source)
			existing, inMap := closed[key]
			switch {
			case !inMap:
				nn := &node{point: n.point, parent: current, distance: dist}
				nn.score = dist + heuristic(n.point, target, dir)
				closed[key] = nn
				heap.Push(&open, nn)
			case existing.heapIndex >= 0 && dist < existing.distance:
				delta := dist - existing.distance
				existing.distance = dist
				existing.score += delta
				existing.parent = current
				open.fixUp(existing)
			}
			// Already-closed (heapIndex == -1) nodes are never reopened.
		}
		isFirst = false
	}

	path := reconstruct(best)
	if drop > 1 && hasMultiBlockDescent(path) {
		return nil
	}
	return path
}

func reconstruct(n *node) []mathutil.Point {
	var rev []mathutil.Point
	for cur := n; cur != nil; cur = cur.parent {
		rev = append(rev, cur.point)
	}
	out := make([]mathutil.Point, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}

func hasMultiBlockDescent(path []mathutil.Point) bool {
	for i := 1; i < len(path); i++ {
		if path[i-1].Y-path[i].Y > 1 {
			return true
		}
	}
	return false
}

// unitDirection returns the unit vector from source to target used by
// the heuristic's line-steering bonus. Returns the zero vector when
// source == target.
func unitDirection(source, target mathutil.Point) [3]float64 {
	dx := float64(target.X - source.X)
	dy := float64(target.Y - source.Y)
	dz := float64(target.Z - source.Z)
	length := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if length == 0 {
		return [3]float64{0, 0, 0}
	}
	return [3]float64{dx / length, dy / length, dz / length}
}

// heuristic is deliberately inadmissible: it steers toward the
// source-target line via the "off" perpendicular
// term, so heuristic(target) == 0 but intermediate nodes off that line
// can score above their true remaining cost.
func heuristic(p, target mathutil.Point, dir [3]float64) int {
	ax := float64(p.X - target.X)
	ay := float64(p.Y - target.Y)
	az := float64(p.Z - target.Z)

	dot := ax*dir[0] + ay*dir[1] + az*dir[2]
	px, py, pz := ax-dot*dir[0], ay-dot*dir[1], az-dot*dir[2]
	off := math.Sqrt(px*px + py*py + pz*pz)

	absX, absZ := math.Abs(ax), math.Abs(az)
	horiz := math.Max(absX, absZ)*UnitCost + math.Min(absX, absZ)*DiagonalPenalty

	var vertical float64
	if ay > 0 {
		vertical = ay * DownCost
	} else {
		vertical = ay * -UpCost
	}

	return int(horiz + off + vertical)
}

// astarDrop repeatedly steps down while the cell below is passable,
// yielding the lowest empty y.
func astarDrop(p mathutil.Point, check CheckFunc) mathutil.Point {
	for check(mathutil.Pt(p.X, p.Y-1, p.Z)) {
		p = mathutil.Pt(p.X, p.Y-1, p.Z)
	}
	return p
}

type neighbor struct {
	point mathutil.Point
	cost  int
}

// astarNeighbors expands the eight horizontal directions around
// current, honoring a blocked-diagonal bitmask and extending leap
// chains on downward steps.
func astarNeighbors(source, current mathutil.Point, check CheckFunc, isFirst bool) []neighbor {
	if isFirst {
		current = astarDrop(current, check)
	}

	var blocked [8]bool
	out := make([]neighbor, 0, 8)

	for i, d := range mathutil.All {
		target := mathutil.Pt(current.X+d.X, current.Y, current.Z+d.Z)
		adjustedY, ok := astarHeight(current, target, check)
		if !ok {
			if !mathutil.IsDiagonal(i) {
				blockDiagonalsOf(&blocked, i)
			}
			continue
		}
		if mathutil.IsDiagonal(i) && blocked[i] {
			continue
		}

		next := mathutil.Pt(target.X, adjustedY, target.Z)
		cost := stepCost(current, next, mathutil.IsDiagonal(i))
		out = append(out, neighbor{point: next, cost: cost})

		if adjustedY < current.Y && !mathutil.IsDiagonal(i) {
			out = append(out, leapChain(source, current, next, d, check)...)
		}
	}

	return out
}

// blockDiagonalsOf marks the two diagonals adjacent to a blocked
// cardinal direction i.
func blockDiagonalsOf(blocked *[8]bool, i int) {
	blocked[(i+7)%8] = true
	blocked[(i+1)%8] = true
}

// astarHeight resolves the landing height for a horizontal step: a
// jump-over if the target cell is blocked but clears at +1, else a drop
// to the target's floor. The second return is false if neither clears.
func astarHeight(source, target mathutil.Point, check CheckFunc) (int, bool) {
	if check(target) {
		dropped := astarDrop(target, check)
		return dropped.Y, true
	}
	up := mathutil.Pt(source.X, source.Y+1, source.Z)
	targetUp := mathutil.Pt(target.X, target.Y+1, target.Z)
	if check(up) && check(targetUp) {
		return target.Y + 1, true
	}
	return 0, false
}

// leapChain extends a descending cardinal step into a chain: when a
// cardinal step descends and the headroom above both current and the
// first step is clear, attempt further unit steps in the same
// direction, each dropping to its floor, stopping once a step rises
// back above current's height.
func leapChain(source, current, first mathutil.Point, d mathutil.Direction, check CheckFunc) []neighbor {
	headroomSource := check(mathutil.Pt(current.X, current.Y+1, current.Z))
	headroomFirst := check(mathutil.Pt(first.X, first.Y+1, first.Z))
	if !headroomSource || !headroomFirst {
		return nil
	}

	var out []neighbor
	prev := first
	for j := 1; j <= flatLimit; j++ {
		cand := mathutil.Pt(prev.X+d.X, prev.Y, prev.Z+d.Z)
		jumpUp := mathutil.Pt(cand.X, cand.Y+1, cand.Z)
		if !check(jumpUp) {
			break
		}
		if j >= jumpLimit && !check(mathutil.Pt(cand.X, cand.Y+2, cand.Z)) {
			break
		}

		dropped := astarDrop(cand, check)
		if dropped.Y > current.Y {
			break
		}

		out = append(out, neighbor{point: dropped, cost: stepCost(prev, dropped, false)})
		prev = dropped
	}
	return out
}

func stepCost(from, to mathutil.Point, diagonal bool) int {
	var horiz int
	if diagonal {
		horiz = UnitCost + DiagonalPenalty
	} else {
		horiz = UnitCost
	}
	dy := to.Y - from.Y
	switch {
	case dy > 0:
		return horiz + dy*UpCost
	case dy < 0:
		return horiz + (-dy)*DownCost
	default:
		return horiz
	}
}
