package simd

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Reg is a register of T lanes. Loads shorter than the register width run
// through lane masks: inactive lanes read as zero and are never stored, so
// padding past a vector's dimension stays untouched.
type Reg[T Scalar] struct {
	v hwy.Vec[T]
}

// Load fills a register from src. len(src) lanes are read, up to the
// hardware width.
func Load[T Scalar](src []T) Reg[T] {
	return Reg[T]{v: hwy.Load(src)}
}

// LoadN fills the first n lanes of a register from src; the remaining lanes
// are zero.
func LoadN[T Scalar](n int, src []T) Reg[T] {
	return Reg[T]{v: hwy.MaskLoad(hwy.TailMask[T](n), src)}
}

// Set broadcasts q to every lane.
func Set[T Scalar](q T) Reg[T] {
	return Reg[T]{v: hwy.Set(q)}
}

// Zero returns an all-zero register.
func Zero[T Scalar]() Reg[T] {
	return Reg[T]{v: hwy.Zero[T]()}
}

// Store writes the register to dst, min(lanes, len(dst)) lanes.
func (r Reg[T]) Store(dst []T) {
	hwy.Store(r.v, dst)
}

// StoreN writes the first n lanes of the register to dst; lanes past n are
// not written.
func (r Reg[T]) StoreN(n int, dst []T) {
	hwy.MaskStore(hwy.TailMask[T](n), r.v, dst)
}

// Lane returns lane i, or zero when i is out of range.
func (r Reg[T]) Lane(i int) T {
	return hwy.GetLane(r.v, i)
}

// BroadcastLane returns a register with every lane set to lane i of r.
func BroadcastLane[T Scalar](r Reg[T], lane int) Reg[T] {
	return Reg[T]{v: hwy.Broadcast(r.v, lane)}
}

// Add returns a + b lane-wise.
func Add[T Scalar](a, b Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.Add(a.v, b.v)}
}

// Sub returns a - b lane-wise.
func Sub[T Scalar](a, b Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.Sub(a.v, b.v)}
}

// Mul returns a * b lane-wise.
func Mul[T Scalar](a, b Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.Mul(a.v, b.v)}
}

// Div returns a / b lane-wise.
func Div[T Scalar](a, b Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.Div(a.v, b.v)}
}

// Neg returns -a lane-wise.
func Neg[T Scalar](a Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.Neg(a.v)}
}

// Abs returns |a| lane-wise.
func Abs[T Scalar](a Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.Abs(a.v)}
}

// Min returns the lane-wise minimum of a and b.
func Min[T Scalar](a, b Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.Min(a.v, b.v)}
}

// Max returns the lane-wise maximum of a and b.
func Max[T Scalar](a, b Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.Max(a.v, b.v)}
}

// Sqrt returns the lane-wise square root of a.
func Sqrt[T Scalar](a Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.Sqrt(a.v)}
}

// FMA returns a*b + c lane-wise, fused where the hardware supports it.
func FMA[T Scalar](a, b, c Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.FMA(a.v, b.v, c.v)}
}

// Floor returns the lane-wise floor of a.
func Floor[T Scalar](a Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.Floor(a.v)}
}

// Ceil returns the lane-wise ceiling of a.
func Ceil[T Scalar](a Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.Ceil(a.v)}
}

// Round returns a rounded lane-wise to the nearest integer.
func Round[T Scalar](a Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.Round(a.v)}
}

// StoreInt32 converts the register lanes to int32 (truncating) and stores
// them into dst.
func StoreInt32[T Scalar](r Reg[T], dst []int32) {
	hwy.Store(hwy.ConvertToInt32(r.v), dst)
}

// Equal returns the lane-wise a == b mask.
func Equal[T Scalar](a, b Reg[T]) Mask[T] {
	return Mask[T]{m: hwy.Equal(a.v, b.v)}
}

// NotEqual returns the lane-wise a != b mask.
func NotEqual[T Scalar](a, b Reg[T]) Mask[T] {
	return Mask[T]{m: hwy.NotEqual(a.v, b.v)}
}

// Less returns the lane-wise a < b mask.
func Less[T Scalar](a, b Reg[T]) Mask[T] {
	return Mask[T]{m: hwy.LessThan(a.v, b.v)}
}

// LessEqual returns the lane-wise a <= b mask.
func LessEqual[T Scalar](a, b Reg[T]) Mask[T] {
	return Mask[T]{m: hwy.LessEqual(a.v, b.v)}
}

// Greater returns the lane-wise a > b mask.
func Greater[T Scalar](a, b Reg[T]) Mask[T] {
	return Mask[T]{m: hwy.GreaterThan(a.v, b.v)}
}

// GreaterEqual returns the lane-wise a >= b mask.
func GreaterEqual[T Scalar](a, b Reg[T]) Mask[T] {
	return Mask[T]{m: hwy.GreaterEqual(a.v, b.v)}
}

// Select returns a where m is set and b elsewhere.
func Select[T Scalar](m Mask[T], a, b Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.IfThenElse(m.m, a.v, b.v)}
}

// Filter returns a where m is set and zero elsewhere.
func Filter[T Scalar](m Mask[T], a Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.IfThenElseZero(m.m, a.v)}
}

// TakeN returns the first n lanes of a with the remaining lanes zeroed.
func TakeN[T Scalar](n int, a Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.IfThenElseZero(hwy.TailMask[T](n), a.v)}
}

// MergeN returns the first n lanes of a and the remaining lanes of b.
func MergeN[T Scalar](n int, a, b Reg[T]) Reg[T] {
	return Reg[T]{v: hwy.IfThenElse(hwy.TailMask[T](n), a.v, b.v)}
}

// Sum reduces the register to the sum of its lanes.
func Sum[T Scalar](a Reg[T]) T {
	return hwy.ReduceSum(a.v)
}

// MinValue reduces the register to its smallest lane.
func MinValue[T Scalar](a Reg[T]) T {
	return hwy.ReduceMin(a.v)
}

// MaxValue reduces the register to its largest lane.
func MaxValue[T Scalar](a Reg[T]) T {
	return hwy.ReduceMax(a.v)
}
