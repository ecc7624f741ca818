// Package mathutil holds the thin, dependency-light primitives shared by
// the mesher, world generator and pathfinder: integer points, the
// direction namespace, and a dense block-id tensor.
package mathutil

import "math"

// Point is an immutable (x, y, z) of signed integers.
type Point struct {
	X, Y, Z int
}

// Pt is a convenience constructor.
func Pt(x, y, z int) Point { return Point{x, y, z} }

// Add returns the componentwise sum.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }

// Sub returns the componentwise difference.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// Eq reports componentwise equality.
func (p Point) Eq(o Point) bool { return p.X == o.X && p.Y == o.Y && p.Z == o.Z }

// DistSq returns the squared Euclidean distance to o.
func (p Point) DistSq(o Point) int64 {
	dx := int64(p.X - o.X)
	dy := int64(p.Y - o.Y)
	dz := int64(p.Z - o.Z)
	return dx*dx + dy*dy + dz*dz
}

// Dist returns the Euclidean distance to o.
func (p Point) Dist(o Point) float64 {
	return math.Sqrt(float64(p.DistSq(o)))
}

// Direction is a Point restricted to a unit step. It is never subtyped from
// Point; it is exposed only as named Point values and the arrays below, per
// the "do not subtype" design note.
type Direction = Point

// The eight horizontal directions in clockwise order starting from north.
// The order is load-bearing: AStarNeighbors derives its blocked-diagonal
// mask from adjacency in this exact sequence.
var (
	North     = Direction{0, 0, -1}
	Northeast = Direction{1, 0, -1}
	East      = Direction{1, 0, 0}
	Southeast = Direction{1, 0, 1}
	South     = Direction{0, 0, 1}
	Southwest = Direction{-1, 0, 1}
	West      = Direction{-1, 0, 0}
	Northwest = Direction{-1, 0, -1}

	Up   = Direction{0, 1, 0}
	Down = Direction{0, -1, 0}
)

// All holds the eight horizontal directions in clockwise order.
var All = [8]Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

// Cardinal holds the four axis-aligned horizontal directions, in the same
// relative order as they appear in All (indices 0, 2, 4, 6).
var Cardinal = [4]Direction{North, East, South, West}

// Diagonal holds the four diagonal horizontal directions, in the same
// relative order as they appear in All (indices 1, 3, 5, 7).
var Diagonal = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// IsDiagonal reports whether index i into All names a diagonal direction.
func IsDiagonal(i int) bool { return i%2 == 1 }
