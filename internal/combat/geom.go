package combat

import (
	"fmt"
	"math"
)

type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Equal compares coordinates exactly, without tolerance.
func (a Vec2) Equal(b Vec2) bool { return a.X == b.X && a.Y == b.Y }

func (a Vec2) String() string { return fmt.Sprintf("(%.3f, %.3f)", a.X, a.Y) }

// Distance is the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 { return b.Sub(a).Len() }

// MoveTowards steps from `from` toward `to` by at most maxStep. A target within
// reach is returned exactly.
func MoveTowards(from, to Vec2, maxStep float64) (Vec2, error) {
	if maxStep < 0 {
		return Vec2{}, fmt.Errorf("move by %g: %w", maxStep, ErrNegativeStep)
	}
	d := Distance(from, to)
	if d <= maxStep {
		return to, nil
	}
	return from.Add(to.Sub(from).Scale(maxStep / d)), nil
}
