package soa

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// BaseDistSq computes the squared Euclidean distance between two point sets
// (SoA layout), one distance per pair.
func BaseDistSq[T hwy.Floats](
	ax, ay, az []T,
	bx, by, bz []T,
	dst []T,
) {
	size := min(len(ax), len(ay), len(az), len(bx), len(by), len(bz), len(dst))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			dx := hwy.Sub(hwy.Load(ax[offset:]), hwy.Load(bx[offset:]))
			dy := hwy.Sub(hwy.Load(ay[offset:]), hwy.Load(by[offset:]))
			dz := hwy.Sub(hwy.Load(az[offset:]), hwy.Load(bz[offset:]))

			distSq := hwy.FMA(dx, dx, hwy.FMA(dy, dy, hwy.Mul(dz, dz)))
			hwy.Store(distSq, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			dx := hwy.Sub(hwy.MaskLoad(mask, ax[offset:]), hwy.MaskLoad(mask, bx[offset:]))
			dy := hwy.Sub(hwy.MaskLoad(mask, ay[offset:]), hwy.MaskLoad(mask, by[offset:]))
			dz := hwy.Sub(hwy.MaskLoad(mask, az[offset:]), hwy.MaskLoad(mask, bz[offset:]))

			distSq := hwy.FMA(dx, dx, hwy.FMA(dy, dy, hwy.Mul(dz, dz)))
			hwy.MaskStore(mask, distSq, dst[offset:])
		},
	)
}

// BaseMinDistSq finds the minimum squared Euclidean distance from a target
// point to a set of points (SoA layout). Returns +Inf for an empty set.
func BaseMinDistSq[T hwy.Floats](
	targetX, targetY, targetZ T,
	xs, ys, zs []T,
) T {
	size := min(len(xs), len(ys), len(zs))

	vTx := hwy.Set(targetX)
	vTy := hwy.Set(targetY)
	vTz := hwy.Set(targetZ)

	vInf := hwy.Set(T(math.Inf(1)))
	vMinDist := vInf

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			dx := hwy.Sub(hwy.Load(xs[offset:]), vTx)
			dy := hwy.Sub(hwy.Load(ys[offset:]), vTy)
			dz := hwy.Sub(hwy.Load(zs[offset:]), vTz)

			distSq := hwy.FMA(dx, dx, hwy.FMA(dy, dy, hwy.Mul(dz, dz)))
			vMinDist = hwy.Min(vMinDist, distSq)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			dx := hwy.Sub(hwy.MaskLoad(mask, xs[offset:]), vTx)
			dy := hwy.Sub(hwy.MaskLoad(mask, ys[offset:]), vTy)
			dz := hwy.Sub(hwy.MaskLoad(mask, zs[offset:]), vTz)

			distSq := hwy.FMA(dx, dx, hwy.FMA(dy, dy, hwy.Mul(dz, dz)))

			// Inactive lanes are zero after the masked loads; push them to
			// +Inf so they cannot win the minimum.
			distSq = hwy.IfThenElse(mask, distSq, vInf)
			vMinDist = hwy.Min(vMinDist, distSq)
		},
	)

	return hwy.ReduceMin(vMinDist)
}
