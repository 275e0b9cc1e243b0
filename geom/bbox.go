// Package geom provides the axis-aligned bounding box used for domain
// partitioning of particle sets.
package geom

import (
	"github.com/spume-sim/spume/vec"
)

// BBox is an axis-aligned bounding box.
type BBox[T vec.Elem] struct {
	low, high vec.Vec[T]
}

// NewBBox returns the bounding box of the given points. At least one point
// is required.
func NewBBox[T vec.Elem](point vec.Vec[T], rest ...vec.Vec[T]) BBox[T] {
	b := BBox[T]{low: point, high: point}
	for _, p := range rest {
		b.Update(p)
	}
	return b
}

// Low returns the low corner.
func (b BBox[T]) Low() vec.Vec[T] {
	return b.low
}

// High returns the high corner.
func (b BBox[T]) High() vec.Vec[T] {
	return b.high
}

// Center returns the box center.
func (b BBox[T]) Center() vec.Vec[T] {
	return vec.DivScalar(vec.Add(b.low, b.high), 2)
}

// Extents returns the box extents.
func (b BBox[T]) Extents() vec.Vec[T] {
	return vec.Sub(b.high, b.low)
}

// Update grows the box to contain the point.
func (b *BBox[T]) Update(p vec.Vec[T]) {
	b.low = vec.Min(b.low, p)
	b.high = vec.Max(b.high, p)
}

// Extend grows the box by delta on every side.
func (b *BBox[T]) Extend(delta vec.Vec[T]) {
	b.low = vec.Sub(b.low, delta)
	b.high = vec.Add(b.high, delta)
}

// Clamp returns the point clamped into the box.
func (b BBox[T]) Clamp(p vec.Vec[T]) vec.Vec[T] {
	return vec.Min(b.high, vec.Max(b.low, p))
}

// Proj returns the point on the box boundary nearest to p: the clamped
// point pushed to the face along the axis it is deepest on.
func (b BBox[T]) Proj(p vec.Vec[T]) vec.Vec[T] {
	p = b.Clamp(p)
	delta := vec.Sub(p, b.Center())
	i := vec.MaxValueIndex(vec.Mul(delta, delta))
	if delta.At(i) >= 0 {
		p.Set(i, b.high.At(i))
	} else {
		p.Set(i, b.low.At(i))
	}
	return p
}

// Split cuts the box in two along the given axis at the given coordinate.
func (b BBox[T]) Split(axis int, val T) (left, right BBox[T]) {
	left, right = b, b
	left.high.Set(axis, val)
	right.low.Set(axis, val)
	return left, right
}

// SplitAt cuts the box along the given axis at the point's coordinate.
func (b BBox[T]) SplitAt(axis int, p vec.Vec[T]) (left, right BBox[T]) {
	return b.Split(axis, p.At(axis))
}
